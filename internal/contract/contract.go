// Package contract provides interfaces and shared utilities for the
// sprintplan internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/brdge/sprintplan/schema"
)

// AbsenceSource supplies HR absence data. Implementations are expected to be
// idempotent lookups from the engine's perspective; caching and staleness are
// the implementation's concern.
type AbsenceSource interface {
	// Directory returns the full employee directory.
	Directory(ctx context.Context) ([]schema.DirectoryEntry, error)

	// Absences returns absence intervals for the given employee IDs over the
	// date range, keyed by the HR system display name. Intervals are already
	// resolved to calendar dates.
	Absences(ctx context.Context, employeeIDs []string, start, end time.Time) (map[string][]schema.AbsenceInterval, error)
}

// OnCallSource supplies on-call scheduling data.
type OnCallSource interface {
	// Shifts returns the duty dates for a rotation over the date range,
	// keyed by the on-call system display name. Dates are weekday-restricted
	// upstream by the rotation definition.
	Shifts(ctx context.Context, rotationID string, start, end time.Time) (map[string][]time.Time, error)
}

// EpicSource supplies externally aggregated epic totals from the issue
// tracker roadmap.
type EpicSource interface {
	// ScheduledEpics returns the total epics scheduled for the team's sprint
	// ending on sprintEnd. Returns 0 with no error when nothing is scheduled.
	ScheduledEpics(ctx context.Context, teamKey string, sprintEnd time.Time) (float64, error)
}

// HolidayCalendar resolves public holidays for a region. It is a pure
// function of its inputs.
type HolidayCalendar interface {
	// Holidays returns the public holidays in [start, end] for the region,
	// in chronological order.
	Holidays(region schema.Region, start, end time.Time) []schema.Holiday
}

// CacheManager defines the interface for managing the response cache store.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetResponseStore() CacheStore
}

// CacheStore defines the interface for response cache storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int64, error)
	Set(key string, value []byte, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Clear() error
	Close() error
}

// CanvasPublisher pushes rendered report content to a chat canvas.
type CanvasPublisher interface {
	UpdateCanvas(ctx context.Context, canvasID, content string) error
}
