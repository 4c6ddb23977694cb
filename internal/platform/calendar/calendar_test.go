package calendar

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2023, time.January, 31},
		{2023, time.April, 30},
		{2023, time.February, 28},
		{2024, time.February, 29},
		{2023, time.December, 31},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Fatalf("DaysInMonth(%d, %s): expected %d, got %d", tc.year, tc.month, tc.want, got)
		}
	}
}

func TestDayExists(t *testing.T) {
	if DayExists(2023, time.April, 31) {
		t.Fatal("expected day 31 to not exist in April")
	}
	if !DayExists(2024, time.February, 29) {
		t.Fatal("expected Feb 29 to exist in 2024")
	}
	if DayExists(2023, time.February, 29) {
		t.Fatal("expected Feb 29 to not exist in 2023")
	}
	if DayExists(2023, time.May, 0) {
		t.Fatal("expected day 0 to not exist")
	}
}

func TestClampDayShortMonth(t *testing.T) {
	got := ClampDay(2023, time.April, 31)
	want := time.Date(2023, time.April, 30, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestClampDayFebruary(t *testing.T) {
	got := ClampDay(2023, time.February, 30)
	want := time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected clamp to Feb 28, got %v", got)
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2023, time.June, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2023, time.June, 4, 0, 1, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 3 {
		t.Fatalf("expected 3 days, got %d", got)
	}
	if got := DaysBetween(b, a); got != -3 {
		t.Fatalf("expected -3 days, got %d", got)
	}
}
