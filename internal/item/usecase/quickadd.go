package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	categoryRepo "lifedesk/internal/category/repository"
	"lifedesk/internal/item"
	repo "lifedesk/internal/item/repository"
	"lifedesk/internal/model"
	"lifedesk/internal/quickadd"
	"lifedesk/pkg/gcalendar"
)

// maxParserCategories bounds the category list handed to the parser.
const maxParserCategories = 200

// Preview parses natural-language text without persisting anything.
func (uc *implUseCase) Preview(ctx context.Context, input item.PreviewInput) (item.PreviewOutput, error) {
	parsed, err := uc.parse(ctx, input.Text, input.TypeHint, input.Preset)
	if err != nil {
		return item.PreviewOutput{}, err
	}
	return item.PreviewOutput{Parsed: parsed}, nil
}

// QuickAdd parses natural-language text and persists the resulting Item.
// Events get a concrete start/end window resolved from the parsed date and
// time fragment; when the calendar mirror is configured the event is pushed
// there too (non-fatal on failure).
func (uc *implUseCase) QuickAdd(ctx context.Context, input item.QuickAddInput) (item.QuickAddOutput, error) {
	parsed, err := uc.parse(ctx, input.Text, input.TypeHint, input.Preset)
	if err != nil {
		return item.QuickAddOutput{}, err
	}

	opt := repo.CreateItemOptions{
		ID:         uuid.NewString(),
		Title:      parsed.Title,
		Kind:       parsed.Kind,
		CategoryID: parsed.CategoryID,
		DueDate:    parsed.DueDate,
		Priority:   parsed.Priority,
		Recurrence: parsed.Recurrence,
		Location:   parsed.Location,
		Status:     model.StatusOpen,
		Notes:      presetNotes(parsed),
	}

	if parsed.Kind == model.KindEvent {
		date := parsed.DueDate
		if date == nil {
			d := uc.dateMath.StartOfDay(uc.clock())
			date = &d
		}
		start, end := uc.dateMath.EventWindow(*date, parsed.StartTime)
		opt.StartAt = &start
		opt.EndAt = &end
	}

	created, err := uc.repo.CreateItem(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.QuickAdd CreateItem: %v", err)
		return item.QuickAddOutput{}, err
	}

	out := item.QuickAddOutput{Item: created, Parsed: parsed}
	if created.Kind == model.KindEvent && created.StartAt != nil {
		out.CalendarEventID = uc.tryMirrorEvent(ctx, created)
	}
	return out, nil
}

// parse runs the quick-add parser against the caller's categories.
func (uc *implUseCase) parse(ctx context.Context, text, typeHint, preset string) (quickadd.ParsedItem, error) {
	if strings.TrimSpace(text) == "" {
		return quickadd.ParsedItem{}, item.ErrEmptyText
	}

	var hint model.ItemKind
	if typeHint != "" {
		hint = model.ItemKind(typeHint)
		if !hint.Valid() {
			return quickadd.ParsedItem{}, item.ErrInvalidKind
		}
	}

	cats, _, err := uc.catRepo.ListCategories(ctx, categoryRepo.ListCategoriesOptions{Limit: maxParserCategories})
	if err != nil {
		uc.l.Errorf(ctx, "uc.parse ListCategories: %v", err)
		return quickadd.ParsedItem{}, err
	}

	p := quickadd.New(quickadd.PresetByName(preset), uc.clock)
	return p.Parse(text, hint, cats), nil
}

// tryMirrorEvent pushes one event to Google Calendar.
// Returns the created event ID, or empty string on failure (graceful degradation).
func (uc *implUseCase) tryMirrorEvent(ctx context.Context, it model.Item) string {
	if uc.calendar == nil {
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     it.Title,
		Description: it.Notes,
		Location:    it.Location,
		StartTime:   *it.StartAt,
		EndTime:     *it.EndAt,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "QuickAdd: calendar mirror failed for %q (non-fatal): %v", it.Title, err)
		return ""
	}
	return event.ID
}

// presetNotes serializes preset-specific extractions into the notes field.
func presetNotes(parsed quickadd.ParsedItem) string {
	var lines []string
	if parsed.Subtype != "" {
		lines = append(lines, fmt.Sprintf("Type: %s", parsed.Subtype))
	}
	if parsed.Course != "" {
		lines = append(lines, fmt.Sprintf("Course: %s", parsed.Course))
	}
	if parsed.Quantity != "" {
		lines = append(lines, fmt.Sprintf("Quantity: %s", parsed.Quantity))
	}
	if parsed.Brand != "" {
		lines = append(lines, fmt.Sprintf("Brand: %s", parsed.Brand))
	}
	if parsed.ServingsPerDay > 0 {
		lines = append(lines, fmt.Sprintf("Servings per day: %d", parsed.ServingsPerDay))
	}
	return strings.Join(lines, "\n")
}
