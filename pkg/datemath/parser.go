package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultEventHour is the clock hour used when an event has a date but no
// resolvable time fragment (bare words like "morning" are not resolved).
const DefaultEventHour = 9

// DefaultEventDuration is the duration assumed when only a start is known.
const DefaultEventDuration = time.Hour

// Parser resolves relative date strings and raw time fragments to absolute
// time.Time values in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a date parser for the given IANA timezone string,
// e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Resolve converts a relative date string to an absolute start-of-day time.
// The baseTime is the reference point (usually time.Now()).
// Unknown input falls back to the start of the base day.
func (p *Parser) Resolve(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.resolveInDuration(relative, baseTime)
	}

	if day, ok := weekdays[strings.TrimPrefix(relative, "next ")]; ok {
		return p.resolveWeekday(day, baseTime), nil
	}

	if t, err := time.ParseInLocation("2006-01-02", relative, p.location); err == nil {
		return t, nil
	}

	// Fallback: treat unknown as today
	return p.StartOfDay(baseTime), nil
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var inDurationRe = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)

// resolveInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) resolveInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	switch {
	case strings.HasPrefix(matches[2], "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(matches[2], "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// resolveWeekday returns the next occurrence of the target weekday.
// If baseTime already falls on that weekday the result is a full week out.
func (p *Parser) resolveWeekday(target time.Weekday, baseTime time.Time) time.Time {
	daysUntil := int(target - baseTime.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil))
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
