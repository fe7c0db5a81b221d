package testutil

import "time"

// OpeningDay is the fixed first day of the season used by date-sensitive tests.
var OpeningDay = time.Date(2024, time.March, 28, 10, 0, 0, 0, time.UTC)

// SeasonDay returns OpeningDay advanced by n days.
func SeasonDay(n int) time.Time {
	return OpeningDay.AddDate(0, 0, n)
}

// NowAt returns a clock fixed at t.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseRFC3339 parses v or panics.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}
