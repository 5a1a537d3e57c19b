package analytics

import (
	"fmt"
	"strings"
	"time"
)

// Period selects the size of a trend bucket
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod maps a query value to a Period; anything unrecognised is monthly
func ParsePeriod(s string) Period {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodDaily:
		return PeriodDaily
	case PeriodWeekly:
		return PeriodWeekly
	default:
		return PeriodMonthly
	}
}

// bucketKey is the calendar tuple a record falls into.
// Monthly keys leave week and day zero, weekly keys leave month and day zero.
type bucketKey struct {
	year  int
	month int
	week  int
	day   int
}

func bucketOf(t time.Time, p Period) bucketKey {
	t = t.UTC()
	switch p {
	case PeriodDaily:
		return bucketKey{year: t.Year(), month: int(t.Month()), day: t.Day()}
	case PeriodWeekly:
		year, week := t.ISOWeek()
		return bucketKey{year: year, week: week}
	default:
		return bucketKey{year: t.Year(), month: int(t.Month())}
	}
}

func (k bucketKey) less(o bucketKey) bool {
	if k.year != o.year {
		return k.year < o.year
	}
	if k.month != o.month {
		return k.month < o.month
	}
	if k.week != o.week {
		return k.week < o.week
	}
	return k.day < o.day
}

func (k bucketKey) label(p Period) string {
	switch p {
	case PeriodDaily:
		return fmt.Sprintf("%04d-%02d-%02d", k.year, k.month, k.day)
	case PeriodWeekly:
		return fmt.Sprintf("%04d-W%02d", k.year, k.week)
	default:
		return fmt.Sprintf("%04d-%02d", k.year, k.month)
	}
}
