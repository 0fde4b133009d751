package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brdge/sprintplan/schema"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := schema.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestSprintStart(t *testing.T) {
	tests := []struct {
		name string
		day  string
		want string
	}{
		{
			name: "midweek day resolves to preceding even-week monday",
			day:  "2024-01-04",
			want: "2023-12-25",
		},
		{
			name: "sprint start monday maps to itself",
			day:  "2024-01-08",
			want: "2024-01-08",
		},
		{
			name: "second monday of a sprint stays in the same sprint",
			day:  "2024-01-15",
			want: "2024-01-08",
		},
		{
			name: "final sunday stays in the same sprint",
			day:  "2024-01-21",
			want: "2024-01-08",
		},
		{
			name: "day after sprint end starts the next sprint",
			day:  "2024-01-22",
			want: "2024-01-22",
		},
		{
			name: "stable across a year boundary",
			day:  "2023-12-29",
			want: "2023-12-25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SprintStart(mustDate(t, tt.day))
			assert.Equal(t, mustDate(t, tt.want), got)
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestSprintStartConsecutiveDaysPartition(t *testing.T) {
	// Every day in a sprint window must resolve to the same start, and the
	// day after the window must resolve to exactly 14 days later.
	start := mustDate(t, "2024-01-08")
	for i := range 14 {
		d := start.AddDate(0, 0, i)
		assert.Equal(t, start, SprintStart(d), "day %s", schema.FormatDate(d))
	}
	assert.Equal(t, start.AddDate(0, 0, 14), SprintStart(start.AddDate(0, 0, 14)))
}

func TestCalendarNumber(t *testing.T) {
	cal := Calendar{AnchorDate: time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC), AnchorNumber: 100}

	tests := []struct {
		name  string
		start string
		want  int
	}{
		{name: "anchor itself", start: "2024-01-08", want: 100},
		{name: "one sprint later", start: "2024-01-22", want: 101},
		{name: "one sprint earlier", start: "2023-12-25", want: 99},
		{name: "far before anchor", start: "2023-10-30", want: 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cal.Number(mustDate(t, tt.start)))
		})
	}
}

func TestCalendarEnumerate(t *testing.T) {
	cal := Calendar{AnchorDate: time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC), AnchorNumber: 100}
	windows := cal.Enumerate(mustDate(t, "2024-01-08"), 3)

	require.Len(t, windows, 3)
	for i, w := range windows {
		assert.Equal(t, 100+i, w.Number)
		assert.Equal(t, time.Monday, w.Start.Weekday())
		assert.Equal(t, w.Start.AddDate(0, 0, 13), w.End)
		if i > 0 {
			// Gapless: each start is the day after the previous end.
			assert.Equal(t, windows[i-1].End.AddDate(0, 0, 1), w.Start)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{28, 14, 2},
		{7, 14, 0},
		{0, 14, 0},
		{-7, 14, -1},
		{-14, 14, -1},
		{-15, 14, -2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, floorDiv(tt.a, tt.b), "floorDiv(%d, %d)", tt.a, tt.b)
	}
}
