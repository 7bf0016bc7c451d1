// README: Day bucketizer; splits a flat activity stream into calendar days.
package itinerary

import (
	"strconv"
	"strings"
	"time"
)

var bucketThemes = [10]string{
	"Arrival & First Impressions",
	"Cultural Immersion",
	"Local Flavors",
	"Hidden Gems",
	"Nature & Outdoors",
	"Art & History",
	"Markets & Shopping",
	"Relaxation Day",
	"Adventure Day",
	"Farewell & Departure",
}

// Bucketize groups activities into days. A new day starts whenever an activity's time of day
// is not later than the previous activity in the current day. The result is padded with empty
// days up to requestedDays and never truncated.
func Bucketize(activities []Activity, start time.Time, requestedDays int) []DayItinerary {
	var buckets [][]Activity
	var current []Activity
	prev, havePrev := 0, false

	for i, a := range activities {
		minutes, ok := minutesOfDay(a.Time)
		if i > 0 && ok && havePrev && minutes <= prev {
			buckets = append(buckets, current)
			current = nil
		}
		current = append(current, a)
		prev, havePrev = minutes, ok
	}
	if len(current) > 0 {
		buckets = append(buckets, current)
	}
	for len(buckets) < requestedDays {
		buckets = append(buckets, nil)
	}

	days := make([]DayItinerary, len(buckets))
	for i, b := range buckets {
		if b == nil {
			b = []Activity{}
		}
		days[i] = DayItinerary{
			Day:        i + 1,
			Date:       dateAt(start, i),
			Theme:      bucketThemes[i%len(bucketThemes)],
			Activities: b,
		}
	}
	return days
}

// minutesOfDay parses "HH:MM" (optionally with seconds or an am/pm suffix) into minutes since
// midnight. ok is false when the value carries no usable clock time.
func minutesOfDay(v string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(v))
	pm := strings.HasSuffix(s, "pm")
	am := strings.HasSuffix(s, "am")
	if pm || am {
		s = strings.TrimSpace(s[:len(s)-2])
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	switch {
	case pm && h < 12:
		h += 12
	case am && h == 12:
		h = 0
	}
	if h < 0 || h > 23 {
		return 0, false
	}
	return h*60 + m, true
}
