package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/internal/iocache"
	"github.com/brdge/sprintplan/schema"
)

func testConfig(baseURL string) *contract.Config {
	return &contract.Config{
		HRBaseURL:      baseURL,
		HRToken:        "hr-secret",
		OnCallBaseURL:  baseURL,
		OnCallToken:    "oc-secret",
		TrackerBaseURL: baseURL,
		TrackerToken:   "tr-secret",
		CacheTTL:       time.Hour,
	}
}

func testCache(t *testing.T) contract.CacheStore {
	t.Helper()
	store, err := iocache.NewCacheStore("response_cache", schema.SQLiteBackend, filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := schema.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestHRClientDirectory(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/directory", r.URL.Path)
		assert.Equal(t, "Bearer hr-secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"employee_id": "e1", "display_name": "Ada Lovelace", "division": "Platform"},
			{"employee_id": "e2", "display_name": "Bea Wilder", "division": "Support"}
		]`))
	}))
	defer srv.Close()

	client := NewHRClient(testConfig(srv.URL), testCache(t))
	entries, err := client.Directory(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, schema.DirectoryEntry{ID: "e1", Name: "Ada Lovelace", Division: "Platform"}, entries[0])

	// Second call inside the TTL is served from the cache.
	_, err = client.Directory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestHRClientAbsences(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/absences", r.URL.Path)
		assert.Equal(t, "e1,e2", r.URL.Query().Get("employee_ids"))
		assert.Equal(t, "2024-01-08", r.URL.Query().Get("start"))
		assert.Equal(t, "2024-02-04", r.URL.Query().Get("end"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"display_name": "Ada Lovelace", "start_date": "2024-01-09", "end_date": "2024-01-10"},
			{"display_name": "Ada Lovelace", "start_date": "2024-01-29", "end_date": "2024-01-29"}
		]`))
	}))
	defer srv.Close()

	client := NewHRClient(testConfig(srv.URL), testCache(t))
	absences, err := client.Absences(context.Background(),
		[]string{"e2", "e1"}, mustDate(t, "2024-01-08"), mustDate(t, "2024-02-04"))
	require.NoError(t, err)

	require.Len(t, absences["Ada Lovelace"], 2)
	assert.Equal(t, schema.AbsenceInterval{
		Start: mustDate(t, "2024-01-09"),
		End:   mustDate(t, "2024-01-10"),
	}, absences["Ada Lovelace"][0])
}

func TestHRClientAbsencesEmptyIDs(t *testing.T) {
	client := NewHRClient(testConfig("http://unreachable.invalid"), nil)
	absences, err := client.Absences(context.Background(), nil, mustDate(t, "2024-01-08"), mustDate(t, "2024-01-21"))
	require.NoError(t, err)
	assert.Empty(t, absences)
}

func TestHRClientMalformedInterval(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"display_name": "Ada", "start_date": "2024-01-10", "end_date": "2024-01-09"}]`))
	}))
	defer srv.Close()

	client := NewHRClient(testConfig(srv.URL), nil)
	_, err := client.Absences(context.Background(), []string{"e1"}, mustDate(t, "2024-01-08"), mustDate(t, "2024-01-21"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before start")
}

func TestOnCallClientShifts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rotations/rot-l1/shifts", r.URL.Path)
		assert.Equal(t, "Bearer oc-secret", r.Header.Get("Authorization"))
		assert.Equal(t, "2024-01-08", r.URL.Query().Get("since"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"user": "alovelace", "date": "2024-01-08"},
			{"user": "alovelace", "date": "2024-01-09"},
			{"user": "bwilder", "date": "2024-01-10"}
		]`))
	}))
	defer srv.Close()

	client := NewOnCallClient(testConfig(srv.URL), testCache(t))
	shifts, err := client.Shifts(context.Background(), "rot-l1", mustDate(t, "2024-01-08"), mustDate(t, "2024-01-21"))
	require.NoError(t, err)

	assert.Len(t, shifts["alovelace"], 2)
	assert.Equal(t, []time.Time{mustDate(t, "2024-01-10")}, shifts["bwilder"])
}

func TestTrackerClientScheduledEpics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/roadmap", r.URL.Path)
		assert.Equal(t, "BRG", r.URL.Query().Get("team"))
		assert.Equal(t, "2024-01-21", r.URL.Query().Get("sprint_end"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"epics": 2.5}`))
	}))
	defer srv.Close()

	client := NewTrackerClient(testConfig(srv.URL), testCache(t))
	epics, err := client.ScheduledEpics(context.Background(), "BRG", mustDate(t, "2024-01-21"))
	require.NoError(t, err)
	assert.InDelta(t, 2.5, epics, 1e-9)
}

func TestUpstreamFailureSurfacesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewTrackerClient(testConfig(srv.URL), nil)
	_, err := client.ScheduledEpics(context.Background(), "BRG", mustDate(t, "2024-01-21"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "token expired")
}
