package inventory

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2024-01-31", NewDate(2024, time.January, 31), false},
		{"2024-1-5", NewDate(2024, time.January, 5), false},
		{"not-a-date", Date{}, true},
		{"2024-13-01", Date{}, true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDate_DayBounds(t *testing.T) {
	d := MustParseDate("2024-01-31")
	if got := d.StartOfDay(); !got.Equal(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartOfDay = %v", got)
	}
	if got := d.EndOfDay(); !got.Equal(time.Date(2024, time.January, 31, 23, 59, 59, 999999999, time.UTC)) {
		t.Errorf("EndOfDay = %v", got)
	}
}

func TestDate_StartEndOfPeriod(t *testing.T) {
	testCases := []struct {
		date      string
		period    Period
		wantStart string
		wantEnd   string
	}{
		{"2024-02-14", Monthly, "2024-02-01", "2024-02-29"},
		{"2023-02-14", Monthly, "2023-02-01", "2023-02-28"},
		{"2024-12-31", Monthly, "2024-12-01", "2024-12-31"},
		{"2024-06-15", Yearly, "2024-01-01", "2024-12-31"},
		{"2024-06-12", Weekly, "2024-06-10", "2024-06-16"}, // Wednesday -> Monday..Sunday
		{"2024-06-15", Daily, "2024-06-15", "2024-06-15"},
	}
	for _, tc := range testCases {
		d := MustParseDate(tc.date)
		if got := d.StartOf(tc.period); got.String() != tc.wantStart {
			t.Errorf("%s StartOf(%v) = %v, want %v", tc.date, tc.period, got, tc.wantStart)
		}
		if got := d.EndOf(tc.period); got.String() != tc.wantEnd {
			t.Errorf("%s EndOf(%v) = %v, want %v", tc.date, tc.period, got, tc.wantEnd)
		}
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(MustParseDate("2024-01-01"), MustParseDate("2024-01-31"))
	if !r.Contains(MustParseDate("2024-01-01")) || !r.Contains(MustParseDate("2024-01-31")) {
		t.Error("range boundaries must be inclusive")
	}
	if r.Contains(MustParseDate("2023-12-31")) || r.Contains(MustParseDate("2024-02-01")) {
		t.Error("range must exclude dates outside its bounds")
	}
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		r    Range
		want string
	}{
		{Monthly.Range(MustParseDate("2024-01-15")), "January 2024"},
		{Yearly.Range(MustParseDate("2024-06-15")), "2024"},
		{Daily.Range(MustParseDate("2024-06-15")), "2024-06-15"},
		{NewRange(MustParseDate("2024-01-02"), MustParseDate("2024-03-04")), "2024-01-02 to 2024-03-04"},
	}
	for _, tc := range testCases {
		if got := tc.r.Identifier(); got != tc.want {
			t.Errorf("Identifier(%v) = %q, want %q", tc.r, got, tc.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{
		"month": Monthly, "Monthly": Monthly, "year": Yearly, "week": Weekly, "day": Daily,
	} {
		got, err := ParsePeriod(in)
		if err != nil || got != want {
			t.Errorf("ParsePeriod(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Error("ParsePeriod accepted an unknown period")
	}
}
