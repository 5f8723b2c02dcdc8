package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestIsLeapYear(t *testing.T) {
	cases := []struct {
		year   int
		expect bool
	}{
		{1500, false}, // divisible by 100 but not 400
		{1600, true},
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{9996, true},
		{9999, false},
	}
	for _, tc := range cases {
		if got := IsLeapYear(tc.year); got != tc.expect {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tc.year, got, tc.expect)
		}
	}
}

func TestValidateYear(t *testing.T) {
	for _, year := range []int{1500, 1969, 9999} {
		if err := ValidateYear(year); err != nil {
			t.Errorf("ValidateYear(%d) = %v, want nil", year, err)
		}
	}
	for _, year := range []int{1499, 0, -1, 10000} {
		err := ValidateYear(year)
		var re *RangeError
		if !errors.As(err, &re) {
			t.Errorf("ValidateYear(%d) = %v, want *RangeError", year, err)
		}
	}
}

func TestValidateDayFebruary29(t *testing.T) {
	// validate_day(y, 2, 29) succeeds iff the year is leap.
	for _, year := range []int{1500, 1600, 1900, 2000, 2023, 2024} {
		err := ValidateDay(year, 2, 29)
		if IsLeapYear(year) && err != nil {
			t.Errorf("ValidateDay(%d, 2, 29) = %v, want nil", year, err)
		}
		if !IsLeapYear(year) && err == nil {
			t.Errorf("ValidateDay(%d, 2, 29) = nil, want error", year)
		}
	}
}

func TestValidateDayBounds(t *testing.T) {
	cases := []struct {
		year, month, day int
		ok               bool
	}{
		{2024, 1, 31, true},
		{2024, 4, 31, false},
		{2024, 4, 30, true},
		{2024, 0, 1, false},
		{2024, 13, 1, false},
		{2024, 6, 0, false},
		{2024, 12, 31, true},
	}
	for _, tc := range cases {
		err := ValidateDay(tc.year, tc.month, tc.day)
		if tc.ok && err != nil {
			t.Errorf("ValidateDay(%d, %d, %d) = %v, want nil", tc.year, tc.month, tc.day, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("ValidateDay(%d, %d, %d) = nil, want error", tc.year, tc.month, tc.day)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, expect int
	}{
		{2023, 2, 28},
		{2024, 2, 29},
		{2024, 4, 30},
		{2024, 7, 31},
		{2024, 8, 31},
		{1900, 2, 28},
		{2000, 2, 29},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.expect {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.expect)
		}
	}
}

func TestParseDate(t *testing.T) {
	good := map[string]Date{
		"1969-07-20": {Year: 1969, Month: 7, Day: 20},
		"1500-01-01": {Year: 1500, Month: 1, Day: 1},
		"9999-12-31": {Year: 9999, Month: 12, Day: 31},
		"2024-02-29": {Year: 2024, Month: 2, Day: 29},
	}
	for s, want := range good {
		got, err := ParseDate(s)
		if err != nil {
			t.Errorf("ParseDate(%q) error: %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("ParseDate(%q) = %v, want %v", s, got, want)
		}
	}

	bad := []string{
		"",
		"1969-7-20",    // not zero-padded
		"69-07-20",     // short year
		"1969/07/20",   // wrong separator
		"1969-07-20x",  // trailing junk
		"2023-02-29",   // not a leap year
		"2024-13-01",   // month out of range
		"2024-00-10",   // month out of range
		"1499-01-01",   // year below range
		"10000-01-01",  // year above range
		"abcd-ef-gh",   // not digits
		"2024-０1-01",   // non-ASCII digits
	}
	for _, s := range bad {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) = nil error, want failure", s)
		}
	}
}

func TestDateOrderingMatchesISOStrings(t *testing.T) {
	dates := []Date{
		{Year: 1500, Month: 1, Day: 1},
		{Year: 1969, Month: 7, Day: 20},
		{Year: 1969, Month: 7, Day: 21},
		{Year: 1969, Month: 8, Day: 1},
		{Year: 2020, Month: 3, Day: 11},
		{Year: 9999, Month: 12, Day: 31},
	}
	for i := 0; i < len(dates); i++ {
		for j := 0; j < len(dates); j++ {
			structural := dates[i].Compare(dates[j])
			lexical := 0
			if dates[i].String() < dates[j].String() {
				lexical = -1
			} else if dates[i].String() > dates[j].String() {
				lexical = 1
			}
			if structural != lexical {
				t.Errorf("Compare(%v, %v) = %d, string order = %d", dates[i], dates[j], structural, lexical)
			}
		}
	}
}

func TestDateString(t *testing.T) {
	d := Date{Year: 1600, Month: 2, Day: 5}
	if got := d.String(); got != "1600-02-05" {
		t.Errorf("String() = %q, want 1600-02-05", got)
	}
}

func TestWeekday(t *testing.T) {
	cases := []struct {
		date   Date
		expect time.Weekday
	}{
		{Date{Year: 1969, Month: 7, Day: 20}, time.Sunday},
		{Date{Year: 2000, Month: 1, Day: 1}, time.Saturday},
		{Date{Year: 2024, Month: 1, Day: 1}, time.Monday},
		{Date{Year: 2020, Month: 6, Day: 1}, time.Monday},
	}
	for _, tc := range cases {
		if got := tc.date.Weekday(); got != tc.expect {
			t.Errorf("%v.Weekday() = %v, want %v", tc.date, got, tc.expect)
		}
	}
}
