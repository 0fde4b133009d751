package sources

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/internal/iocache"
	"github.com/brdge/sprintplan/schema"
)

// HRClient reads the employee directory and absence bookings from the HR
// system.
type HRClient struct {
	http    httpDoer
	baseURL string
	token   string
	cache   contract.CacheStore
	ttl     time.Duration
}

var _ contract.AbsenceSource = &HRClient{} // Compile-time check

// NewHRClient builds an HR client from the validated config, reading
// through the given cache store.
func NewHRClient(cfg *contract.Config, cache contract.CacheStore) *HRClient {
	return &HRClient{
		http:    newHTTPClient(),
		baseURL: cfg.HRBaseURL,
		token:   cfg.HRToken,
		cache:   cache,
		ttl:     cfg.CacheTTL,
	}
}

type directoryEntryRaw struct {
	EmployeeID  string `json:"employee_id"`
	DisplayName string `json:"display_name"`
	Division    string `json:"division"`
}

type absenceRaw struct {
	DisplayName string `json:"display_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Directory returns the full employee directory.
func (c *HRClient) Directory(ctx context.Context) ([]schema.DirectoryEntry, error) {
	raw, err := iocache.Fetch(c.cache, "hr:directory", c.ttl, func() ([]directoryEntryRaw, error) {
		var entries []directoryEntryRaw
		if err := getJSON(ctx, c.http, c.baseURL+"/directory", c.token, nil, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	entries := make([]schema.DirectoryEntry, 0, len(raw))
	for _, e := range raw {
		entries = append(entries, schema.DirectoryEntry{
			ID:       e.EmployeeID,
			Name:     e.DisplayName,
			Division: e.Division,
		})
	}
	return entries, nil
}

// Absences returns absence intervals for the given employees over the date
// range, keyed by HR display name. Intervals are normalized to UTC days at
// this boundary.
func (c *HRClient) Absences(ctx context.Context, employeeIDs []string, start, end time.Time) (map[string][]schema.AbsenceInterval, error) {
	if len(employeeIDs) == 0 {
		return map[string][]schema.AbsenceInterval{}, nil
	}
	ids := make([]string, len(employeeIDs))
	copy(ids, employeeIDs)
	sort.Strings(ids)

	key := fmt.Sprintf("hr:absences:%s:%s:%s",
		strings.Join(ids, ","), schema.FormatDate(start), schema.FormatDate(end))

	raw, err := iocache.Fetch(c.cache, key, c.ttl, func() ([]absenceRaw, error) {
		query := url.Values{
			"employee_ids": {strings.Join(ids, ",")},
			"start":        {schema.FormatDate(start)},
			"end":          {schema.FormatDate(end)},
		}
		var bookings []absenceRaw
		if err := getJSON(ctx, c.http, c.baseURL+"/absences", c.token, query, &bookings); err != nil {
			return nil, err
		}
		return bookings, nil
	})
	if err != nil {
		return nil, err
	}

	out := make(map[string][]schema.AbsenceInterval)
	for _, b := range raw {
		interval, err := parseInterval(b.StartDate, b.EndDate)
		if err != nil {
			return nil, fmt.Errorf("absence for %s: %w", b.DisplayName, err)
		}
		out[b.DisplayName] = append(out[b.DisplayName], interval)
	}
	return out, nil
}

func parseInterval(startStr, endStr string) (schema.AbsenceInterval, error) {
	start, err := schema.ParseDate(startStr)
	if err != nil {
		return schema.AbsenceInterval{}, err
	}
	end, err := schema.ParseDate(endStr)
	if err != nil {
		return schema.AbsenceInterval{}, err
	}
	if end.Before(start) {
		return schema.AbsenceInterval{}, fmt.Errorf("interval end %s before start %s", endStr, startStr)
	}
	return schema.AbsenceInterval{Start: start, End: end}, nil
}
