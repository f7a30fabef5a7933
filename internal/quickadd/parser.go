// Package quickadd decomposes free-text quick-add input into a structured
// item using an ordered, rule-based extraction pipeline.
//
// Rules run in a fixed order; each rule, upon first match, removes its
// fragment from a working copy of the text (category, priority and
// recurrence leave the text untouched) and adds a fixed weight to the
// confidence score. The ordering encodes deliberate priority decisions:
// a date fragment is consumed before the location rule can see it, and a
// weekday name is consumed by the date rule before the recurrence rule
// runs. The recurrence rule still recognizes "every <weekday>" from the
// raw input, so both the due date and the weekly rule survive.
//
// Domain variants (school, work, shopping) are Preset configurations of
// the same engine.
package quickadd

import (
	"time"

	"lifedesk/internal/model"
)

// Parser is the quick-add parsing engine. It holds only static rule tables
// and is safe for concurrent use; a call is pure given the same inputs and
// the same injected clock.
type Parser struct {
	preset Preset
	now    func() time.Time
}

// New creates a Parser for the given preset. The clock is injectable so
// date-relative rules ("tomorrow") are testable; nil means time.Now.
func New(preset Preset, now func() time.Time) *Parser {
	if now == nil {
		now = time.Now
	}
	if preset.DefaultKind == "" {
		preset.DefaultKind = model.KindTask
	}
	return &Parser{preset: preset, now: now}
}

// Parse decomposes text into a ParsedItem. A non-empty hint pins the item
// kind: both keyword classification and the event upgrade on a time match
// are skipped. categories is read-only; a matched CategoryID is always
// drawn from it. Parse never fails - unmatched rules simply leave their
// fields unset.
func (p *Parser) Parse(text string, hint model.ItemKind, categories []model.Category) ParsedItem {
	st := &state{
		raw:        text,
		working:    text,
		hint:       hint,
		categories: categories,
		now:        p.now(),
		result: &ParsedItem{
			Kind:       p.preset.DefaultKind,
			Priority:   model.PriorityMedium,
			Confidence: ConfidenceBase,
		},
	}
	if hint != "" {
		st.result.Kind = hint
	}

	for _, rule := range p.preset.ExtraRules {
		if rule.Run(st) {
			st.result.Confidence += rule.Weight
		}
	}

	extractCategory(st)
	extractDate(st)
	extractTime(st)
	extractPriority(st)
	extractRecurrence(st)
	extractLocation(st)
	if st.hint == "" && !st.timeForced {
		classifyKind(st, p.preset.Buckets)
	}

	st.result.Title = NormalizeTitle(st.working)
	if st.result.Confidence > 1.0 {
		st.result.Confidence = 1.0
	}
	suggest(st.result)

	return *st.result
}

// suggest appends improvement hints for fields that were not confidently
// extracted. Only low-confidence results get suggestions.
func suggest(r *ParsedItem) {
	if r.Confidence >= SuggestionThreshold {
		return
	}
	if r.DueDate == nil {
		r.Suggestions = append(r.Suggestions, SuggestAddDueDate)
	}
	if r.CategoryID == "" {
		r.Suggestions = append(r.Suggestions, SuggestSpecifyCategory)
	}
	if r.Kind == model.KindEvent && r.StartTime == "" {
		r.Suggestions = append(r.Suggestions, SuggestAddTime)
	}
}
