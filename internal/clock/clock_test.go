package clock

import (
	"testing"
	"time"
)

func TestHourString(t *testing.T) {
	morning := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)
	if got := HourString(morning); got != "10h" {
		t.Fatalf("HourString(morning) = %q, want 10h", got)
	}
	noon := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	if got := HourString(noon); got != "15h" {
		t.Fatalf("HourString(noon) = %q, want 15h", got)
	}
	lateNight := time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)
	if got := HourString(lateNight); got != "15h" {
		t.Fatalf("HourString(late night) = %q, want 15h", got)
	}
}

func TestDateStringNoPadding(t *testing.T) {
	d := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if got := DateString(d); got != "5/3" {
		t.Fatalf("DateString = %q, want 5/3", got)
	}
	d = time.Date(2024, 11, 28, 0, 0, 0, 0, time.UTC)
	if got := DateString(d); got != "28/11" {
		t.Fatalf("DateString = %q, want 28/11", got)
	}
}
