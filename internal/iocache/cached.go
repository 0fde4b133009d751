package iocache

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/brdge/sprintplan/internal/contract"
)

// Fetch reads a value through the cache. A hit younger than ttl is
// deserialized and returned without calling fetch; anything else falls
// through to fetch and writes the result back. Cache read or write failures
// never fail the fetch, they only cost the round trip.
func Fetch[T any](store contract.CacheStore, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	var zero T
	if store != nil {
		if data, ts, err := store.Get(key); err == nil {
			if time.Since(time.Unix(ts, 0)) < ttl {
				var cached T
				if err := json.Unmarshal(data, &cached); err == nil {
					return cached, nil
				}
			}
		}
	}

	value, err := fetch()
	if err != nil {
		return zero, err
	}

	if store != nil {
		if data, err := json.Marshal(value); err == nil {
			_ = store.Set(key, data, time.Now().Unix())
		}
	}
	return value, nil
}
