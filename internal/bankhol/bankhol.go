// Package bankhol computes public holidays for the GB subdivisions and
// Ireland. Holidays are generated per calendar year from fixed rules plus
// the Gregorian Easter computus; no external data source is needed.
package bankhol

import (
	"sort"
	"time"

	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/schema"
)

// Calendar implements holiday resolution for all supported regions.
type Calendar struct{}

var _ contract.HolidayCalendar = Calendar{} // Compile-time check

// New returns a holiday calendar.
func New() Calendar { return Calendar{} }

// Holidays returns the public holidays in [start, end] for the region, in
// chronological order.
func (Calendar) Holidays(region schema.Region, start, end time.Time) []schema.Holiday {
	start, end = schema.Day(start), schema.Day(end)
	var out []schema.Holiday
	for year := start.Year(); year <= end.Year(); year++ {
		for _, h := range ForYear(region, year) {
			if !h.Date.Before(start) && !h.Date.After(end) {
				out = append(out, h)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// ForYear returns every public holiday for the region in one calendar year.
func ForYear(region schema.Region, year int) []schema.Holiday {
	easter := easterSunday(year)
	goodFriday := easter.AddDate(0, 0, -2)
	easterMonday := easter.AddDate(0, 0, 1)

	var hs []schema.Holiday
	add := func(d time.Time, name string) { hs = append(hs, schema.Holiday{Date: d, Name: name}) }

	switch region {
	case schema.RegionIreland:
		// Irish public holidays are not substituted onto a weekday here;
		// weekend occurrences simply cost no working day.
		add(date(year, time.January, 1), "New Year's Day")
		if year >= 2023 {
			add(stBrigidsDay(year), "St Brigid's Day")
		}
		add(date(year, time.March, 17), "St Patrick's Day")
		add(easterMonday, "Easter Monday")
		add(nthWeekday(year, time.May, time.Monday, 1), "May Day")
		add(nthWeekday(year, time.June, time.Monday, 1), "June Bank Holiday")
		add(nthWeekday(year, time.August, time.Monday, 1), "August Bank Holiday")
		add(lastWeekday(year, time.October, time.Monday), "October Bank Holiday")
		add(date(year, time.December, 25), "Christmas Day")
		add(date(year, time.December, 26), "St Stephen's Day")
		return hs

	case schema.RegionScotland:
		jan1, jan2 := pairObserved(date(year, time.January, 1))
		add(jan1, "New Year's Day")
		add(jan2, "2nd January")
		add(goodFriday, "Good Friday")
		add(nthWeekday(year, time.May, time.Monday, 1), "Early May Bank Holiday")
		add(lastWeekday(year, time.May, time.Monday), "Spring Bank Holiday")
		add(nthWeekday(year, time.August, time.Monday, 1), "Summer Bank Holiday")
		add(observed(date(year, time.November, 30)), "St Andrew's Day")

	case schema.RegionNIreland:
		add(observed(date(year, time.January, 1)), "New Year's Day")
		add(observed(date(year, time.March, 17)), "St Patrick's Day")
		add(goodFriday, "Good Friday")
		add(easterMonday, "Easter Monday")
		add(nthWeekday(year, time.May, time.Monday, 1), "Early May Bank Holiday")
		add(lastWeekday(year, time.May, time.Monday), "Spring Bank Holiday")
		add(observed(date(year, time.July, 12)), "Battle of the Boyne")
		add(lastWeekday(year, time.August, time.Monday), "Summer Bank Holiday")

	default: // England and Wales
		add(observed(date(year, time.January, 1)), "New Year's Day")
		add(goodFriday, "Good Friday")
		add(easterMonday, "Easter Monday")
		add(nthWeekday(year, time.May, time.Monday, 1), "Early May Bank Holiday")
		add(lastWeekday(year, time.May, time.Monday), "Spring Bank Holiday")
		add(lastWeekday(year, time.August, time.Monday), "Summer Bank Holiday")
	}

	xmas, boxing := pairObserved(date(year, time.December, 25))
	add(xmas, "Christmas Day")
	add(boxing, "Boxing Day")
	return hs
}

// easterSunday computes Easter for a Gregorian year using the anonymous
// computus.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return date(year, time.Month(month), day)
}

// stBrigidsDay is the first Monday of February, unless February 1st falls
// on a Friday, in which case it is the 1st.
func stBrigidsDay(year int) time.Time {
	feb1 := date(year, time.February, 1)
	if feb1.Weekday() == time.Friday {
		return feb1
	}
	return nthWeekday(year, time.February, time.Monday, 1)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// observed shifts a weekend holiday to the following Monday.
func observed(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

// pairObserved resolves a two-day holiday pair (Christmas/Boxing Day,
// Scottish New Year) so the substitutes never collide: each day shifts past
// the weekend and past the other holiday's substitute.
func pairObserved(first time.Time) (time.Time, time.Time) {
	second := first.AddDate(0, 0, 1)
	switch first.Weekday() {
	case time.Friday:
		// Second day lands on Saturday; substitute Monday.
		return first, first.AddDate(0, 0, 3)
	case time.Saturday:
		// Monday and Tuesday.
		return first.AddDate(0, 0, 2), first.AddDate(0, 0, 3)
	case time.Sunday:
		// Second day holds Monday; first substitutes onto Tuesday.
		return first.AddDate(0, 0, 2), second
	default:
		return first, second
	}
}

// nthWeekday returns the nth occurrence of a weekday in a month.
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	d := date(year, month, 1)
	offset := (int(weekday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset+7*(n-1))
}

// lastWeekday returns the final occurrence of a weekday in a month.
func lastWeekday(year int, month time.Month, weekday time.Weekday) time.Time {
	d := date(year, month+1, 1).AddDate(0, 0, -1)
	offset := (int(d.Weekday()) - int(weekday) + 7) % 7
	return d.AddDate(0, 0, -offset)
}
