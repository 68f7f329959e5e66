package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the number of minutes in one calendar day.
const MinutesPerDay = 24 * 60

// Clock is a wall-clock position within a day. Hour may exceed 23 when
// scheduling math runs past midnight; callers decide whether rollover matters.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock decomposes an "HH:mm" string into a Clock. Malformed input is
// the caller's responsibility; unparseable components read as zero.
func ParseClock(s string) Clock {
	hourStr, minuteStr, _ := strings.Cut(s, ":")
	hour, _ := strconv.Atoi(hourStr)
	minute, _ := strconv.Atoi(minuteStr)
	return Clock{Hour: hour, Minute: minute}
}

// Add advances the clock by the given number of minutes, carrying minute
// overflow into hours.
func (c Clock) Add(minutes int) Clock {
	total := c.Minute + minutes
	return Clock{
		Hour:   c.Hour + total/60,
		Minute: total % 60,
	}
}

// Minutes returns the offset from midnight in minutes.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// String formats the clock as "HH:mm". Hours past 23 are printed as-is.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// At anchors the clock on a calendar date.
func (c Clock) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, date.Location())
}

// SleepDuration computes the elapsed minutes between a bedtime and a wake
// time. A negative raw difference is an overnight span: the wake time is
// always interpreted as occurring after the bedtime, even across midnight.
func SleepDuration(bedTime, wakeTime time.Time) int {
	minutes := int(wakeTime.Sub(bedTime) / time.Minute)
	if minutes < 0 {
		minutes += MinutesPerDay
	}
	return minutes
}
