// Package calendar implements the date logic behind percal: validation
// of (year, month, day) triples over the 1500-9999 range, Gregorian
// leap-year rules, and the Monday-first month grid used by every
// calendar view.
//
// The proleptic Gregorian calendar is applied uniformly across the
// whole range, so dates before the historical Gregorian adoption are
// computed with the same rules as modern ones.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Supported year range.
const (
	MinYear = 1500
	MaxYear = 9999
)

// Date is an immutable (year, month, day) triple. Ordering is
// lexicographic on the three fields, which matches ISO-8601 string
// ordering because String zero-pads every component.
type Date struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

// String renders the date as zero-padded ISO-8601 YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Compare returns -1, 0 or 1 depending on whether d sorts before,
// equal to, or after o.
func (d Date) Compare(o Date) int {
	a := [3]int{d.Year, d.Month, d.Day}
	b := [3]int{o.Year, o.Month, o.Day}
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Before reports whether d is chronologically earlier than o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// Weekday returns the day of the week for d. The stdlib time package
// uses the proleptic Gregorian calendar, so this is exact over the
// whole supported range.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// DateOf truncates a wall-clock time to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// RangeError reports a year, month or day outside its valid bounds.
// It is the only error kind the engine produces, and it is always
// recoverable: callers are expected to re-prompt and retry.
type RangeError struct {
	What  string // "year", "month" or "day"
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range (%d-%d)", e.What, e.Value, e.Min, e.Max)
}

// ValidateYear fails unless MinYear <= year <= MaxYear.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return &RangeError{What: "year", Value: year, Min: MinYear, Max: MaxYear}
	}
	return nil
}

// ValidateDay fails unless month is 1-12 and day fits the month length
// for that year.
func ValidateDay(year, month, day int) error {
	if month < 1 || month > 12 {
		return &RangeError{What: "month", Value: month, Min: 1, Max: 12}
	}
	if max := DaysInMonth(year, month); day < 1 || day > max {
		return &RangeError{What: "day", Value: day, Min: 1, Max: max}
	}
	return nil
}

// ValidateDate checks the full triple.
func ValidateDate(d Date) error {
	if err := ValidateYear(d.Year); err != nil {
		return err
	}
	return ValidateDay(d.Year, d.Month, d.Day)
}

// IsLeapYear applies the standard Gregorian rule: divisible by 4, and
// not by 100 unless also by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the length of the given month. month must be
// 1-12.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// ParseDate parses a zero-padded ISO-8601 YYYY-MM-DD string, rejecting
// anything syntactically or calendrically invalid.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Date{}, fmt.Errorf("malformed date %q: want YYYY-MM-DD", s)
	}
	var nums [3]int
	for i, p := range parts {
		for _, r := range p {
			if r < '0' || r > '9' {
				return Date{}, fmt.Errorf("malformed date %q: want YYYY-MM-DD", s)
			}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("malformed date %q: want YYYY-MM-DD", s)
		}
		nums[i] = n
	}
	d := Date{Year: nums[0], Month: nums[1], Day: nums[2]}
	if err := ValidateDate(d); err != nil {
		return Date{}, err
	}
	return d, nil
}
