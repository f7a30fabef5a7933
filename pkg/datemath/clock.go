package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	clockAmPmRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)
	clock24hRe  = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// ResolveClockTime converts a raw quick-add time fragment ("2pm", "9:30am",
// "14:30") into hour and minute. Bare day-part words like "morning" are not
// resolvable; ok is false and callers fall back to DefaultEventHour.
func ResolveClockTime(fragment string) (hour, minute int, ok bool) {
	fragment = strings.ToLower(strings.TrimSpace(fragment))
	if fragment == "" {
		return 0, 0, false
	}

	if m := clockAmPmRe.FindStringSubmatch(fragment); m != nil {
		hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour > 12 || minute > 59 {
			return 0, 0, false
		}
		if m[3] == "pm" && hour != 12 {
			hour += 12
		}
		if m[3] == "am" && hour == 12 {
			hour = 0
		}
		return hour, minute, true
	}

	if m := clock24hRe.FindStringSubmatch(fragment); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return 0, 0, false
		}
		return hour, minute, true
	}

	return 0, 0, false
}

// EventWindow combines a calendar date with a raw time fragment into a
// concrete start/end pair for an event record. When the fragment does not
// resolve to a clock time the start defaults to DefaultEventHour.
func (p *Parser) EventWindow(date time.Time, fragment string) (start, end time.Time) {
	day := p.StartOfDay(date)

	hour, minute, ok := ResolveClockTime(fragment)
	if !ok {
		hour, minute = DefaultEventHour, 0
	}

	start = day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	return start, start.Add(DefaultEventDuration)
}
