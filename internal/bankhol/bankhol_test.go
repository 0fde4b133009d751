package bankhol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brdge/sprintplan/schema"
)

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{2024, date(2024, time.March, 31)},
		{2025, date(2025, time.April, 20)},
		{2026, date(2026, time.April, 5)},
		{2000, date(2000, time.April, 23)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, easterSunday(tt.year), "easter %d", tt.year)
	}
}

func holidayDates(hs []schema.Holiday) map[string]string {
	out := make(map[string]string, len(hs))
	for _, h := range hs {
		out[h.Name] = schema.FormatDate(h.Date)
	}
	return out
}

func TestForYearEngland(t *testing.T) {
	dates := holidayDates(ForYear(schema.RegionEngland, 2024))
	assert.Equal(t, map[string]string{
		"New Year's Day":         "2024-01-01",
		"Good Friday":            "2024-03-29",
		"Easter Monday":          "2024-04-01",
		"Early May Bank Holiday": "2024-05-06",
		"Spring Bank Holiday":    "2024-05-27",
		"Summer Bank Holiday":    "2024-08-26",
		"Christmas Day":          "2024-12-25",
		"Boxing Day":             "2024-12-26",
	}, dates)
}

func TestForYearScotland(t *testing.T) {
	dates := holidayDates(ForYear(schema.RegionScotland, 2024))
	// Scotland swaps Easter Monday for 2nd January, takes the earlier
	// summer holiday, and observes St Andrew's Day.
	assert.Equal(t, "2024-01-02", dates["2nd January"])
	assert.Equal(t, "2024-08-05", dates["Summer Bank Holiday"])
	// Nov 30 2024 is a Saturday, observed the following Monday.
	assert.Equal(t, "2024-12-02", dates["St Andrew's Day"])
	assert.NotContains(t, dates, "Easter Monday")
}

func TestForYearNorthernIreland(t *testing.T) {
	dates := holidayDates(ForYear(schema.RegionNIreland, 2024))
	assert.Equal(t, "2024-03-18", dates["St Patrick's Day"]) // Mar 17 is a Sunday
	assert.Equal(t, "2024-07-12", dates["Battle of the Boyne"])
}

func TestForYearIreland(t *testing.T) {
	dates := holidayDates(ForYear(schema.RegionIreland, 2024))
	assert.Equal(t, "2024-02-05", dates["St Brigid's Day"]) // first Monday of February
	assert.Equal(t, "2024-03-17", dates["St Patrick's Day"])
	assert.Equal(t, "2024-06-03", dates["June Bank Holiday"])
	assert.Equal(t, "2024-10-28", dates["October Bank Holiday"])
	assert.Equal(t, "2024-12-26", dates["St Stephen's Day"])

	// St Brigid's Day did not exist before 2023.
	assert.NotContains(t, holidayDates(ForYear(schema.RegionIreland, 2022)), "St Brigid's Day")
}

func TestChristmasSubstitution(t *testing.T) {
	tests := []struct {
		name       string
		year       int
		wantXmas   string
		wantBoxing string
	}{
		{name: "midweek pair stays put", year: 2024, wantXmas: "2024-12-25", wantBoxing: "2024-12-26"},
		{name: "saturday christmas shifts both", year: 2021, wantXmas: "2021-12-27", wantBoxing: "2021-12-28"},
		{name: "sunday christmas substitutes past boxing day", year: 2022, wantXmas: "2022-12-27", wantBoxing: "2022-12-26"},
		{name: "friday christmas shifts boxing day only", year: 2020, wantXmas: "2020-12-25", wantBoxing: "2020-12-28"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := holidayDates(ForYear(schema.RegionEngland, tt.year))
			assert.Equal(t, tt.wantXmas, dates["Christmas Day"])
			assert.Equal(t, tt.wantBoxing, dates["Boxing Day"])
		})
	}
}

func TestHolidaysRange(t *testing.T) {
	cal := New()
	hs := cal.Holidays(schema.RegionEngland, date(2024, time.March, 1), date(2024, time.May, 31))
	require.Len(t, hs, 4)
	assert.Equal(t, "Good Friday", hs[0].Name)
	assert.Equal(t, "Spring Bank Holiday", hs[3].Name)

	// Ranges spanning a year boundary pull from both years in order.
	hs = cal.Holidays(schema.RegionEngland, date(2024, time.December, 20), date(2025, time.January, 5))
	require.Len(t, hs, 3)
	assert.Equal(t, "Christmas Day", hs[0].Name)
	assert.Equal(t, "New Year's Day", hs[2].Name)
}
