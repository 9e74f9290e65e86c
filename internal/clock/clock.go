// Package clock produces the report header time and date strings.
package clock

import (
	"fmt"
	"time"
)

// UpdateInterval is how often the live header is re-checked against the
// wall clock.
const UpdateInterval = 30 * time.Second

// HourString maps the wall clock onto the two reporting slots: the
// morning report is "10h", the afternoon report is "15h".
func HourString(t time.Time) string {
	if t.Hour() < 12 {
		return "10h"
	}
	return "15h"
}

// DateString renders t as "day/month" with no zero padding, e.g. "3/7".
func DateString(t time.Time) string {
	return fmt.Sprintf("%d/%d", t.Day(), int(t.Month()))
}
