package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	categoryRepo "lifedesk/internal/category/repository"
	"lifedesk/internal/item"
	repo "lifedesk/internal/item/repository"
	"lifedesk/internal/item/usecase"
	"lifedesk/internal/model"
	"lifedesk/pkg/datemath"
	"lifedesk/pkg/gcalendar"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockItemRepo struct {
	failCreate bool
	created    []repo.CreateItemOptions
	items      map[string]model.Item
	listItems  []model.Item
	listOpts   []repo.ListItemsOptions
	updated    []repo.UpdateItemOptions
	deleted    []string
}

func (m *mockItemRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	if m.failCreate {
		return model.Item{}, errors.New("db error")
	}
	m.created = append(m.created, opt)
	return model.Item{
		ID: opt.ID, Title: opt.Title, Kind: opt.Kind, CategoryID: opt.CategoryID,
		DueDate: opt.DueDate, StartAt: opt.StartAt, EndAt: opt.EndAt,
		Priority: opt.Priority, Recurrence: opt.Recurrence, Location: opt.Location,
		Status: opt.Status, Notes: opt.Notes,
	}, nil
}

func (m *mockItemRepo) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	return m.items[opt.ID], nil
}

func (m *mockItemRepo) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, int, error) {
	m.listOpts = append(m.listOpts, opt)
	return m.listItems, len(m.listItems), nil
}

func (m *mockItemRepo) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	m.updated = append(m.updated, opt)
	return model.Item{
		ID: opt.ID, Title: opt.Title, Kind: m.items[opt.ID].Kind, CategoryID: opt.CategoryID,
		DueDate: opt.DueDate, StartAt: opt.StartAt, EndAt: opt.EndAt,
		Priority: opt.Priority, Recurrence: opt.Recurrence, Location: opt.Location,
		Status: opt.Status, Notes: opt.Notes,
	}, nil
}

func (m *mockItemRepo) DeleteItem(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockCategoryRepo struct {
	cats []model.Category
}

func (m *mockCategoryRepo) CreateCategory(ctx context.Context, opt categoryRepo.CreateCategoryOptions) (model.Category, error) {
	return model.Category{}, nil
}

func (m *mockCategoryRepo) GetOneCategory(ctx context.Context, opt categoryRepo.GetOneCategoryOptions) (model.Category, error) {
	for _, c := range m.cats {
		if c.ID == opt.ID || (opt.Name != "" && c.Name == opt.Name) {
			return c, nil
		}
	}
	return model.Category{}, nil
}

func (m *mockCategoryRepo) ListCategories(ctx context.Context, opt categoryRepo.ListCategoriesOptions) ([]model.Category, int, error) {
	return m.cats, len(m.cats), nil
}

func (m *mockCategoryRepo) UpdateCategory(ctx context.Context, opt categoryRepo.UpdateCategoryOptions) (model.Category, error) {
	return model.Category{}, nil
}

func (m *mockCategoryRepo) DeleteCategory(ctx context.Context, id string) error {
	return nil
}

type mockCalendarClient struct {
	fail bool
	reqs []gcalendar.CreateEventRequest
}

func (m *mockCalendarClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("cal error")
	}
	m.reqs = append(m.reqs, req)
	return &gcalendar.Event{ID: "cal-1", HtmlLink: "http://cal.link"}, nil
}

// fixedNow is a Wednesday, 2026-03-04 10:00 UTC.
var fixedNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, itemRepo *mockItemRepo, catRepo *mockCategoryRepo, cal usecase.Calendar) item.UseCase {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return usecase.New(&mockLogger{}, itemRepo, catRepo, dm, cal, "primary", "UTC").
		WithClock(func() time.Time { return fixedNow })
}

func TestQuickAdd_Event(t *testing.T) {
	itemRepo := &mockItemRepo{}
	cal := &mockCalendarClient{}
	uc := newTestUseCase(t, itemRepo, &mockCategoryRepo{}, cal)

	out, err := uc.QuickAdd(context.Background(), item.QuickAddInput{
		Text: "Meeting with Sarah tomorrow 2pm",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Item.Kind != model.KindEvent {
		t.Errorf("kind = %s, want event", out.Item.Kind)
	}
	if out.Item.Title != "Meeting with Sarah" {
		t.Errorf("title = %q", out.Item.Title)
	}
	wantDue := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	if out.Item.DueDate == nil || !out.Item.DueDate.Equal(wantDue) {
		t.Errorf("due date = %v, want %v", out.Item.DueDate, wantDue)
	}
	wantStart := time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC)
	wantEnd := wantStart.Add(time.Hour)
	if out.Item.StartAt == nil || !out.Item.StartAt.Equal(wantStart) {
		t.Errorf("start = %v, want %v", out.Item.StartAt, wantStart)
	}
	if out.Item.EndAt == nil || !out.Item.EndAt.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", out.Item.EndAt, wantEnd)
	}

	// Mirrored to the calendar.
	if out.CalendarEventID != "cal-1" {
		t.Errorf("calendar event id = %q, want cal-1", out.CalendarEventID)
	}
	if len(cal.reqs) != 1 || cal.reqs[0].Summary != "Meeting with Sarah" {
		t.Errorf("unexpected calendar requests: %+v", cal.reqs)
	}
}

func TestQuickAdd_EventDayPartDefaultsToMorning(t *testing.T) {
	itemRepo := &mockItemRepo{}
	uc := newTestUseCase(t, itemRepo, &mockCategoryRepo{}, nil)

	out, err := uc.QuickAdd(context.Background(), item.QuickAddInput{
		Text: "Dinner with Anna friday evening",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Item.Kind != model.KindEvent {
		t.Fatalf("kind = %s, want event", out.Item.Kind)
	}
	// Day-part words are never resolved to clock time; the event window
	// falls back to the default start hour.
	wantStart := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)
	if out.Item.StartAt == nil || !out.Item.StartAt.Equal(wantStart) {
		t.Errorf("start = %v, want %v", out.Item.StartAt, wantStart)
	}
	if out.CalendarEventID != "" {
		t.Errorf("calendar event id = %q, want empty without calendar", out.CalendarEventID)
	}
}

func TestQuickAdd_EventWithoutDateUsesToday(t *testing.T) {
	itemRepo := &mockItemRepo{}
	uc := newTestUseCase(t, itemRepo, &mockCategoryRepo{}, nil)

	out, err := uc.QuickAdd(context.Background(), item.QuickAddInput{
		Text: "Call mom 6pm",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC)
	if out.Item.StartAt == nil || !out.Item.StartAt.Equal(wantStart) {
		t.Errorf("start = %v, want %v", out.Item.StartAt, wantStart)
	}
}

func TestQuickAdd_Task(t *testing.T) {
	itemRepo := &mockItemRepo{}
	cal := &mockCalendarClient{}
	uc := newTestUseCase(t, itemRepo, &mockCategoryRepo{}, cal)

	out, err := uc.QuickAdd(context.Background(), item.QuickAddInput{
		Text: "Buy milk tomorrow",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Item.Kind != model.KindTask {
		t.Errorf("kind = %s, want task", out.Item.Kind)
	}
	if out.Item.StartAt != nil || out.Item.EndAt != nil {
		t.Errorf("task should not get an event window")
	}
	if out.Item.Status != model.StatusOpen {
		t.Errorf("status = %s, want open", out.Item.Status)
	}
	if len(cal.reqs) != 0 {
		t.Errorf("tasks must not be mirrored to the calendar")
	}
}

func TestQuickAdd_CategoryFromText(t *testing.T) {
	itemRepo := &mockItemRepo{}
	catRepo := &mockCategoryRepo{cats: []model.Category{
		{ID: "cat-1", Name: "groceries"},
		{ID: "cat-2", Name: "work"},
	}}
	uc := newTestUseCase(t, itemRepo, catRepo, nil)

	out, err := uc.QuickAdd(context.Background(), item.QuickAddInput{
		Text: "Buy milk #groceries",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Item.CategoryID != "cat-1" {
		t.Errorf("category = %q, want cat-1", out.Item.CategoryID)
	}
}

func TestQuickAdd_ShoppingPresetNotes(t *testing.T) {
	itemRepo := &mockItemRepo{}
	uc := newTestUseCase(t, itemRepo, &mockCategoryRepo{}, nil)

	out, err := uc.QuickAdd(context.Background(), item.QuickAddInput{
		Text:   "Vitamin D 2000 IU 2 per day",
		Preset: "shopping",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Item.Title != "Vitamin D" {
		t.Errorf("title = %q, want Vitamin D", out.Item.Title)
	}
	for _, want := range []string{"Type: supplement", "Quantity: 2000 IU", "Servings per day: 2"} {
		if !strings.Contains(out.Item.Notes, want) {
			t.Errorf("notes missing %q: %q", want, out.Item.Notes)
		}
	}
}

func TestQuickAdd_TypeHintPinsKind(t *testing.T) {
	itemRepo := &mockItemRepo{}
	uc := newTestUseCase(t, itemRepo, &mockCategoryRepo{}, nil)

	out, err := uc.QuickAdd(context.Background(), item.QuickAddInput{
		Text:     "Meeting notes from standup",
		TypeHint: "note",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Item.Kind != model.KindNote {
		t.Errorf("kind = %s, want note (hint wins)", out.Item.Kind)
	}
}

func TestQuickAdd_Errors(t *testing.T) {
	uc := newTestUseCase(t, &mockItemRepo{}, &mockCategoryRepo{}, nil)

	if _, err := uc.QuickAdd(context.Background(), item.QuickAddInput{Text: "   "}); err != item.ErrEmptyText {
		t.Errorf("blank text: err = %v, want ErrEmptyText", err)
	}
	if _, err := uc.QuickAdd(context.Background(), item.QuickAddInput{Text: "x", TypeHint: "reminder"}); err != item.ErrInvalidKind {
		t.Errorf("bad hint: err = %v, want ErrInvalidKind", err)
	}

	failRepo := &mockItemRepo{failCreate: true}
	ucFail := newTestUseCase(t, failRepo, &mockCategoryRepo{}, nil)
	if _, err := ucFail.QuickAdd(context.Background(), item.QuickAddInput{Text: "Buy milk"}); err == nil {
		t.Errorf("expected repository error to propagate")
	}
}

func TestQuickAdd_CalendarFailureIsNonFatal(t *testing.T) {
	itemRepo := &mockItemRepo{}
	cal := &mockCalendarClient{fail: true}
	uc := newTestUseCase(t, itemRepo, &mockCategoryRepo{}, cal)

	out, err := uc.QuickAdd(context.Background(), item.QuickAddInput{
		Text: "Meeting tomorrow 10am",
	})
	if err != nil {
		t.Fatalf("calendar failure must not fail quick-add: %v", err)
	}
	if out.CalendarEventID != "" {
		t.Errorf("calendar event id = %q, want empty on failure", out.CalendarEventID)
	}
	if len(itemRepo.created) != 1 {
		t.Errorf("item should still be persisted")
	}
}

func TestPreview_DoesNotPersist(t *testing.T) {
	itemRepo := &mockItemRepo{}
	uc := newTestUseCase(t, itemRepo, &mockCategoryRepo{}, nil)

	out, err := uc.Preview(context.Background(), item.PreviewInput{
		Text: "Submit report by friday urgent",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Parsed.Priority != model.PriorityHigh {
		t.Errorf("priority = %s, want high", out.Parsed.Priority)
	}
	if out.Parsed.DueDate == nil {
		t.Errorf("expected a resolved due date")
	}
	if len(itemRepo.created) != 0 {
		t.Errorf("preview must not persist items")
	}
}
