package service

import (
	"time"
)

// meetingLeadTime is the minimum gap between "now" and a meeting's start
const meetingLeadTime = 5 * time.Minute

// nextOccurrence computes the first timestamp of a recurring series: the
// next future date whose weekday matches, at the given time of day. The
// series always starts at least one day out; when today already matches
// the weekday the first occurrence falls a full week ahead, even if the
// time of day has not passed yet.
func nextOccurrence(from time.Time, weekday time.Weekday, hour, minute int) time.Time {
	daysAhead := (int(weekday) - int(from.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	day := from.AddDate(0, 0, daysAhead)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, from.Location())
}

// seriesTimestamps expands the first occurrence into the full series by
// repeatedly adding the frequency interval. Consecutive timestamps are at
// least seven days apart while the meeting window is one hour, so
// candidates within one series can never collide with each other; conflict
// checks only need to run against persisted meetings.
func seriesTimestamps(first time.Time, intervalDays, count int) []time.Time {
	timestamps := make([]time.Time, count)
	for i := 0; i < count; i++ {
		timestamps[i] = first.AddDate(0, 0, i*intervalDays)
	}
	return timestamps
}

// parseTimeOfDay parses a 24-hour "HH:MM" string
func parseTimeOfDay(value string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}
