package quickadd

import (
	"strings"
	"time"

	"lifedesk/internal/model"
)

// ParsedItem is the structured result of parsing one quick-add input string.
// It is ephemeral: built per keystroke or per submit, then either discarded
// (preview) or handed to a create operation by the caller.
type ParsedItem struct {
	Title      string
	Kind       model.ItemKind
	CategoryID string
	DueDate    *time.Time // calendar date at midnight, no time component
	StartTime  string     // raw matched time fragment, e.g. "2pm" or "morning"
	Priority   model.Priority
	Recurrence model.Recurrence
	Location   string

	// Subtype is a preset-specific routing label, e.g. "assignment" for the
	// school preset or "supplement" for the shopping preset.
	Subtype string

	// Preset-specific extractions. Zero values mean the rule did not match.
	Course         string
	Quantity       string
	Brand          string
	ServingsPerDay int

	Confidence  float64
	Suggestions []string
}

// Rule is a pluggable extraction step run against the working text before
// the generic pipeline. A rule that matches typically strips its fragment
// and contributes Weight to the confidence score.
type Rule struct {
	Name   string
	Weight float64
	Run    func(st *state) bool
}

// KindBucket maps a closed keyword set to an item kind and optional subtype.
// Buckets are scanned in order; the first bucket with any matching keyword
// wins.
type KindBucket struct {
	Kind     model.ItemKind
	Subtype  string
	Keywords []string
}

// Preset configures the parsing engine for a domain-specific quick-add
// surface. Each variant is a configuration of the same pipeline, not a fork.
type Preset struct {
	Name        string
	DefaultKind model.ItemKind
	Buckets     []KindBucket
	ExtraRules  []Rule
}

// state is the mutable working context threaded through the rule pipeline.
type state struct {
	raw        string // original input, untouched by stripping
	working    string // text with matched fragments progressively removed
	hint       model.ItemKind
	timeForced bool // time match upgraded the kind to event
	categories []model.Category
	now        time.Time
	result     *ParsedItem
}

// strip removes the first occurrence of fragment from the working text.
func (st *state) strip(fragment string) {
	if fragment == "" {
		return
	}
	if idx := strings.Index(st.working, fragment); idx >= 0 {
		st.working = st.working[:idx] + st.working[idx+len(fragment):]
	}
}
