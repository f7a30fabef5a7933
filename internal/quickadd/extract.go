package quickadd

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"lifedesk/internal/model"
)

// --- Category ---

// extractCategory matches the input against each known category in the
// caller-supplied order. The first category that matches wins; the matched
// fragment is left in the title on purpose (category tags are informational).
func extractCategory(st *state) {
	lower := strings.ToLower(st.working)
	for _, cat := range st.categories {
		name := strings.ToLower(strings.TrimSpace(cat.Name))
		if name == "" {
			continue
		}
		if categoryMatches(lower, name) {
			st.result.CategoryID = cat.ID
			st.result.Confidence += WeightCategory
			return
		}
	}
}

func categoryMatches(lower, name string) bool {
	if strings.Contains(lower, "#"+name) ||
		strings.Contains(lower, name+":") ||
		strings.Contains(lower, "for "+name) ||
		strings.Contains(lower, name+" ") {
		return true
	}
	wordRe := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	return wordRe.MatchString(lower)
}

// --- Date ---

type datePattern struct {
	re      *regexp.Regexp
	resolve func(match []string, now time.Time) (time.Time, bool)
}

var weekdayIndex = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// datePatterns is tried in this exact order; the first matching pattern
// wins. Phrases that embed a shorter pattern are listed before it.
var datePatterns = []datePattern{
	{
		re:      regexp.MustCompile(`(?i)\b(?:today|now)\b`),
		resolve: offsetDays(0),
	},
	{
		// Ordered before the bare tomorrow pattern so the longer phrase wins.
		re:      regexp.MustCompile(`(?i)\bday after tomorrow\b`),
		resolve: offsetDays(2),
	},
	{
		re:      regexp.MustCompile(`(?i)\b(?:tomorrow|tmrw)\b`),
		resolve: offsetDays(1),
	},
	{
		re:      regexp.MustCompile(`(?i)\bnext week\b`),
		resolve: offsetDays(7),
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:next\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
		resolve: func(match []string, now time.Time) (time.Time, bool) {
			target := weekdayIndex[strings.ToLower(match[1])]
			days := int(target - now.Weekday())
			if days <= 0 {
				days += 7 // same weekday always jumps a full week, never 0
			}
			return midnight(now.AddDate(0, 0, days)), true
		},
	},
	{
		re: regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`),
		resolve: func(match []string, now time.Time) (time.Time, bool) {
			month, _ := strconv.Atoi(match[1])
			day, _ := strconv.Atoi(match[2])
			if month < 1 || month > 12 || day < 1 || day > 31 {
				return time.Time{}, false
			}
			return time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location()), true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bin (\d+) days?\b`),
		resolve: func(match []string, now time.Time) (time.Time, bool) {
			n, err := strconv.Atoi(match[1])
			if err != nil {
				// digit run too long to fit an int
				return time.Time{}, false
			}
			return midnight(now.AddDate(0, 0, n)), true
		},
	},
}

func offsetDays(n int) func([]string, time.Time) (time.Time, bool) {
	return func(_ []string, now time.Time) (time.Time, bool) {
		return midnight(now.AddDate(0, 0, n)), true
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// extractDate tries the date patterns in fixed order, stripping the matched
// fragment from the working text on the first hit.
func extractDate(st *state) {
	for _, p := range datePatterns {
		match := p.re.FindStringSubmatch(st.working)
		if match == nil {
			continue
		}
		due, ok := p.resolve(match, st.now)
		if !ok {
			continue
		}
		st.result.DueDate = &due
		st.strip(match[0])
		st.result.Confidence += WeightDate
		return
	}
}

// --- Time ---

// timePatterns in fixed order. Bare day-part words are matched but never
// resolved to a clock time; the raw word is stored as StartTime.
var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s*(?:am|pm)\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s*(?:am|pm)\b`),
	regexp.MustCompile(`\b\d{1,2}:\d{2}\b`),
	regexp.MustCompile(`(?i)\b(?:morning|afternoon|evening|night)\b`),
}

// extractTime stores the raw matched fragment and strips it. A time match
// is strong evidence of an event: without an explicit kind hint it upgrades
// the kind and earns the type-inference increment on top of the time weight.
func extractTime(st *state) {
	for _, re := range timePatterns {
		match := re.FindString(st.working)
		if match == "" {
			continue
		}
		st.result.StartTime = strings.TrimSpace(match)
		st.strip(match)
		st.result.Confidence += WeightTime
		if st.hint == "" {
			st.result.Kind = model.KindEvent
			st.timeForced = true
			st.result.Confidence += WeightType
		}
		return
	}
}

// --- Priority ---

// extractPriority scans high indicators before low ones. Matched words are
// deliberately not stripped; priority words stay part of the visible title.
func extractPriority(st *state) {
	lower := strings.ToLower(st.working)
	for _, word := range highPriorityWords {
		if strings.Contains(lower, word) {
			st.result.Priority = model.PriorityHigh
			st.result.Confidence += WeightPriority
			return
		}
	}
	for _, word := range lowPriorityWords {
		if strings.Contains(lower, word) {
			st.result.Priority = model.PriorityLow
			st.result.Confidence += WeightPriority
			return
		}
	}
}

// --- Recurrence ---

type recurrencePattern struct {
	re   *regexp.Regexp
	rule model.Recurrence
}

var recurrencePatterns = []recurrencePattern{
	{regexp.MustCompile(`(?i)\b(?:every ?day|daily)\b`), model.RecurrenceDaily},
	{regexp.MustCompile(`(?i)\b(?:every week|weekly)\b`), model.RecurrenceWeekly},
	{regexp.MustCompile(`(?i)\b(?:every month|monthly)\b`), model.RecurrenceMonthly},
	{everyWeekdayRe, model.RecurrenceWeekly},
	{regexp.MustCompile(`(?i)\b(?:every weekday|weekdays)\b`), model.RecurrenceWeekdays},
	{regexp.MustCompile(`(?i)\b(?:every weekend|weekends)\b`), model.RecurrenceWeekends},
}

var (
	everyWeekdayRe = regexp.MustCompile(`(?i)\bevery (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)s?\b`)
	everyWordRe    = regexp.MustCompile(`(?i)\bevery\b`)
)

func extractRecurrence(st *state) {
	for _, p := range recurrencePatterns {
		if p.re.MatchString(st.working) {
			st.result.Recurrence = p.rule
			st.result.Confidence += WeightRecurrence
			return
		}
	}
	// "every monday": the date rule already consumed the weekday, so the
	// phrase is only visible in the raw input. The weekly rule is recorded
	// from there and the dangling "every" removed from the title.
	if everyWeekdayRe.MatchString(st.raw) {
		st.result.Recurrence = model.RecurrenceWeekly
		st.result.Confidence += WeightRecurrence
		st.strip(everyWordRe.FindString(st.working))
	}
}

// --- Location ---

var (
	atLocationRe   = regexp.MustCompile(`(?i)(?:\bat\s+|@\s*)([^,\n]+)`)
	roomLocationRe = regexp.MustCompile(`(?i)\b(?:in|on)\s+((?:room|office|building|hall)\s+[A-Za-z0-9]+)`)
	bareLocationRe = regexp.MustCompile(`(?i)\b(` + strings.Join(bareLocationWords, "|") + `)\b`)
)

// extractLocation runs after date and time so "lunch at Cafe Rio tomorrow"
// captures only the venue. The matched fragment is stripped.
func extractLocation(st *state) {
	if match := atLocationRe.FindStringSubmatch(st.working); match != nil {
		loc := strings.TrimSpace(match[1])
		if loc != "" {
			st.result.Location = loc
			st.strip(match[0])
			st.result.Confidence += WeightLocation
			return
		}
	}
	if match := roomLocationRe.FindStringSubmatch(st.working); match != nil {
		st.result.Location = strings.TrimSpace(match[1])
		st.strip(match[0])
		st.result.Confidence += WeightLocation
		return
	}
	if match := bareLocationRe.FindStringSubmatch(st.working); match != nil {
		st.result.Location = strings.ToLower(match[1])
		st.strip(match[0])
		st.result.Confidence += WeightLocation
		return
	}
}

// --- Kind classification ---

// classifyKind scans the preset's keyword buckets in order. It only runs
// when no explicit hint was given and the time rule did not already force
// an event.
func classifyKind(st *state, buckets []KindBucket) {
	lower := strings.ToLower(st.working)
	for _, bucket := range buckets {
		for _, kw := range bucket.Keywords {
			if strings.Contains(lower, kw) {
				if bucket.Kind != "" {
					st.result.Kind = bucket.Kind
				}
				st.result.Subtype = bucket.Subtype
				st.result.Confidence += WeightType
				return
			}
		}
	}
}

// --- Title cleanup ---

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeTitle collapses internal whitespace runs and trims leading and
// trailing separator characters. Normalizing an already-normalized title is
// a no-op.
func NormalizeTitle(s string) string {
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.Trim(s, "-: ")
}
