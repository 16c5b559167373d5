package models

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// DateLayout is the on-screen date format (yyyyMMdd).
const DateLayout = "20060102"

// Date is a calendar day with no time component.
type Date = civil.Date

// ParseDate parses a yyyyMMdd string into a Date.
func ParseDate(s string) (Date, error) {
	if len(s) != len(DateLayout) {
		return Date{}, fmt.Errorf("invalid date %q: expected yyyyMMdd", s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return civil.DateOf(t), nil
}

// MustParseDate is ParseDate for fixtures; it panics on bad input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FormatDate renders d as yyyyMMdd.
func FormatDate(d Date) string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// FirstDayOfMonth returns day 1 of the given month.
func FirstDayOfMonth(year int, month time.Month) Date {
	return Date{Year: year, Month: month, Day: 1}
}

// LastDayOfMonth returns the true last calendar day of the given month.
func LastDayOfMonth(year int, month time.Month) Date {
	return FirstDayOfMonth(year, month+1).AddDays(-1)
}

// InMonth reports whether d falls in (year, month).
func InMonth(d Date, year int, month time.Month) bool {
	return d.Year == year && d.Month == month
}

// CompareDates returns -1, 0 or +1 ordering a before, equal to, or after b.
func CompareDates(a, b Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
