// Package dates collects civil date and time span recipes.
//
// time.Time is an instant; a calendar date is not. Payroll runs, market
// sessions and birthdays live on the calendar, where "2012-12-21" means
// the same day in every zone. rickb777/date models that directly, and
// rickb777/period covers calendar-aware distances ("P1M" is a month, not
// 30*24 hours). These helpers are thin on purpose: the recipe is knowing
// which type to reach for, not wrapping it.
package dates

import (
	"fmt"
	"time"

	"github.com/rickb777/date/v2"
	"github.com/rickb777/date/v2/timespan"
	"github.com/rickb777/period"
)

// Date is a civil calendar date with no time or zone attached.
type Date = date.Date

// Span is a half-open window between two instants.
type Span = timespan.TimeSpan

// NewDate builds the civil date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return date.New(year, month, day)
}

// ParseISO reads a civil date in ISO-8601 form, "2012-12-21".
func ParseISO(s string) (Date, error) {
	d, err := date.ParseISO(s)
	if err != nil {
		var zero Date
		return zero, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}

// Between spans the window from one instant to another.
func Between(from, to time.Time) Span {
	return timespan.BetweenTimes(from, to)
}

// ParsePeriod reads an ISO-8601 period such as "P1Y2M" or "PT15M".
// A period is calendar arithmetic, not a duration: "P1M" from January 31
// and from February 1 cover different numbers of hours.
func ParsePeriod(s string) (period.Period, error) {
	p, err := period.Parse(s)
	if err != nil {
		return period.Period{}, fmt.Errorf("parse period %q: %w", s, err)
	}
	return p, nil
}
