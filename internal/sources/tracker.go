package sources

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/internal/iocache"
	"github.com/brdge/sprintplan/schema"
)

// TrackerClient reads scheduled epic totals from the issue tracker roadmap.
type TrackerClient struct {
	http    httpDoer
	baseURL string
	token   string
	cache   contract.CacheStore
	ttl     time.Duration
}

var _ contract.EpicSource = &TrackerClient{} // Compile-time check

// NewTrackerClient builds a tracker client from the validated config,
// reading through the given cache store.
func NewTrackerClient(cfg *contract.Config, cache contract.CacheStore) *TrackerClient {
	return &TrackerClient{
		http:    newHTTPClient(),
		baseURL: cfg.TrackerBaseURL,
		token:   cfg.TrackerToken,
		cache:   cache,
		ttl:     cfg.CacheTTL,
	}
}

type roadmapRaw struct {
	Epics float64 `json:"epics"`
}

// ScheduledEpics returns the epic total scheduled against the team's sprint
// ending on sprintEnd. A sprint with nothing scheduled returns 0.
func (c *TrackerClient) ScheduledEpics(ctx context.Context, teamKey string, sprintEnd time.Time) (float64, error) {
	key := fmt.Sprintf("tracker:epics:%s:%s", teamKey, schema.FormatDate(sprintEnd))

	raw, err := iocache.Fetch(c.cache, key, c.ttl, func() (roadmapRaw, error) {
		query := url.Values{
			"team":       {teamKey},
			"sprint_end": {schema.FormatDate(sprintEnd)},
		}
		var roadmap roadmapRaw
		if err := getJSON(ctx, c.http, c.baseURL+"/roadmap", c.token, query, &roadmap); err != nil {
			return roadmapRaw{}, err
		}
		return roadmap, nil
	})
	if err != nil {
		return 0, err
	}
	if raw.Epics < 0 {
		return 0, fmt.Errorf("tracker returned negative epic total %.2f for %s", raw.Epics, teamKey)
	}
	return raw.Epics, nil
}
