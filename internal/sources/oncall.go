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

// OnCallClient reads rotation schedules from the on-call system.
type OnCallClient struct {
	http    httpDoer
	baseURL string
	token   string
	cache   contract.CacheStore
	ttl     time.Duration
}

var _ contract.OnCallSource = &OnCallClient{} // Compile-time check

// NewOnCallClient builds an on-call client from the validated config,
// reading through the given cache store.
func NewOnCallClient(cfg *contract.Config, cache contract.CacheStore) *OnCallClient {
	return &OnCallClient{
		http:    newHTTPClient(),
		baseURL: cfg.OnCallBaseURL,
		token:   cfg.OnCallToken,
		cache:   cache,
		ttl:     cfg.CacheTTL,
	}
}

type shiftRaw struct {
	User string `json:"user"`
	Date string `json:"date"`
}

// Shifts returns the duty dates for a rotation over the date range, keyed
// by the on-call system user name.
func (c *OnCallClient) Shifts(ctx context.Context, rotationID string, start, end time.Time) (map[string][]time.Time, error) {
	key := fmt.Sprintf("oncall:shifts:%s:%s:%s",
		rotationID, schema.FormatDate(start), schema.FormatDate(end))

	raw, err := iocache.Fetch(c.cache, key, c.ttl, func() ([]shiftRaw, error) {
		query := url.Values{
			"since": {schema.FormatDate(start)},
			"until": {schema.FormatDate(end)},
		}
		var shifts []shiftRaw
		endpoint := fmt.Sprintf("%s/rotations/%s/shifts", c.baseURL, url.PathEscape(rotationID))
		if err := getJSON(ctx, c.http, endpoint, c.token, query, &shifts); err != nil {
			return nil, err
		}
		return shifts, nil
	})
	if err != nil {
		return nil, err
	}

	out := make(map[string][]time.Time)
	for _, s := range raw {
		d, err := schema.ParseDate(s.Date)
		if err != nil {
			return nil, fmt.Errorf("shift for %s in rotation %s: %w", s.User, rotationID, err)
		}
		out[s.User] = append(out[s.User], d)
	}
	return out, nil
}
