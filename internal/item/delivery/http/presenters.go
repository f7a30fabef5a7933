package http

import (
	"time"

	"lifedesk/internal/item"
	"lifedesk/internal/model"
	"lifedesk/internal/quickadd"
	"lifedesk/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title      string     `json:"title"       binding:"required,min=1,max=500"`
	Kind       string     `json:"kind"        binding:"omitempty,oneof=task event note idea"`
	CategoryID string     `json:"category_id"`
	DueDate    string     `json:"due_date"    binding:"omitempty,datetime=2006-01-02"`
	StartAt    *time.Time `json:"start_at"`
	EndAt      *time.Time `json:"end_at"`
	Priority   string     `json:"priority"    binding:"omitempty,oneof=low medium high"`
	Recurrence string     `json:"recurrence"  binding:"omitempty,oneof=daily weekly monthly weekdays weekends"`
	Location   string     `json:"location"    binding:"max=255"`
	Notes      string     `json:"notes"       binding:"max=5000"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Title:      r.Title,
		Kind:       model.ItemKind(r.Kind),
		CategoryID: r.CategoryID,
		DueDate:    parseDate(r.DueDate),
		StartAt:    r.StartAt,
		EndAt:      r.EndAt,
		Priority:   model.Priority(r.Priority),
		Recurrence: model.Recurrence(r.Recurrence),
		Location:   r.Location,
		Notes:      r.Notes,
	}
}

// ---

type listReq struct {
	Kind       string `form:"kind"        binding:"omitempty,oneof=task event note idea"`
	CategoryID string `form:"category_id"`
	Status     string `form:"status"      binding:"omitempty,oneof=open done archived"`
	Due        string `form:"due"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() item.ListItemsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return item.ListItemsInput{
		Kind:       r.Kind,
		CategoryID: r.CategoryID,
		Status:     r.Status,
		Due:        r.Due,
		Limit:      limit,
		Offset:     r.Offset,
	}
}

// ---

type updateReq struct {
	ID         string     `json:"-"` // populated from URI param
	Title      string     `json:"title"       binding:"omitempty,min=1,max=500"`
	CategoryID string     `json:"category_id"`
	DueDate    string     `json:"due_date"    binding:"omitempty,datetime=2006-01-02"`
	StartAt    *time.Time `json:"start_at"`
	EndAt      *time.Time `json:"end_at"`
	Priority   string     `json:"priority"    binding:"omitempty,oneof=low medium high"`
	Recurrence string     `json:"recurrence"  binding:"omitempty,oneof=daily weekly monthly weekdays weekends"`
	Location   string     `json:"location"    binding:"omitempty,max=255"`
	Status     string     `json:"status"      binding:"omitempty,oneof=open done archived"`
	Notes      string     `json:"notes"       binding:"omitempty,max=5000"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:         r.ID,
		Title:      r.Title,
		CategoryID: r.CategoryID,
		DueDate:    parseDate(r.DueDate),
		StartAt:    r.StartAt,
		EndAt:      r.EndAt,
		Priority:   model.Priority(r.Priority),
		Recurrence: model.Recurrence(r.Recurrence),
		Location:   r.Location,
		Status:     model.ItemStatus(r.Status),
		Notes:      r.Notes,
	}
}

// ---

type quickAddReq struct {
	Text     string `json:"text"      binding:"required,min=1,max=1000"`
	TypeHint string `json:"type_hint" binding:"omitempty,oneof=task event note idea"`
	Preset   string `json:"preset"    binding:"omitempty,oneof=general school work shopping"`
}

func (r quickAddReq) validate() error { return nil }

func (r quickAddReq) toInput() item.QuickAddInput {
	return item.QuickAddInput{
		Text:     r.Text,
		TypeHint: r.TypeHint,
		Preset:   r.Preset,
	}
}

func (r quickAddReq) toPreviewInput() item.PreviewInput {
	return item.PreviewInput{
		Text:     r.Text,
		TypeHint: r.TypeHint,
		Preset:   r.Preset,
	}
}

// parseDate converts a validated YYYY-MM-DD string to a date pointer.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(response.DateFormat, s)
	if err != nil {
		return nil
	}
	return &t
}

// --- Response DTOs ---

type itemResp struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Kind       string     `json:"kind"`
	CategoryID string     `json:"category_id,omitempty"`
	DueDate    string     `json:"due_date,omitempty"`
	StartAt    *time.Time `json:"start_at,omitempty"`
	EndAt      *time.Time `json:"end_at,omitempty"`
	Priority   string     `json:"priority"`
	Recurrence string     `json:"recurrence,omitempty"`
	Location   string     `json:"location,omitempty"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func newItemResp(it model.Item) itemResp {
	resp := itemResp{
		ID:         it.ID,
		Title:      it.Title,
		Kind:       string(it.Kind),
		CategoryID: it.CategoryID,
		StartAt:    it.StartAt,
		EndAt:      it.EndAt,
		Priority:   string(it.Priority),
		Recurrence: string(it.Recurrence),
		Location:   it.Location,
		Status:     string(it.Status),
		Notes:      it.Notes,
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
	}
	if it.DueDate != nil {
		resp.DueDate = it.DueDate.Format(response.DateFormat)
	}
	return resp
}

type parsedResp struct {
	Title          string   `json:"title"`
	Kind           string   `json:"kind"`
	CategoryID     string   `json:"category_id,omitempty"`
	DueDate        string   `json:"due_date,omitempty"`
	StartTime      string   `json:"start_time,omitempty"`
	Priority       string   `json:"priority"`
	Recurrence     string   `json:"recurrence,omitempty"`
	Location       string   `json:"location,omitempty"`
	Subtype        string   `json:"subtype,omitempty"`
	Course         string   `json:"course,omitempty"`
	Quantity       string   `json:"quantity,omitempty"`
	Brand          string   `json:"brand,omitempty"`
	ServingsPerDay int      `json:"servings_per_day,omitempty"`
	Confidence     float64  `json:"confidence"`
	Suggestions    []string `json:"suggestions,omitempty"`
}

func newParsedResp(parsed quickadd.ParsedItem) parsedResp {
	resp := parsedResp{
		Title:          parsed.Title,
		Kind:           string(parsed.Kind),
		CategoryID:     parsed.CategoryID,
		StartTime:      parsed.StartTime,
		Priority:       string(parsed.Priority),
		Recurrence:     string(parsed.Recurrence),
		Location:       parsed.Location,
		Subtype:        parsed.Subtype,
		Course:         parsed.Course,
		Quantity:       parsed.Quantity,
		Brand:          parsed.Brand,
		ServingsPerDay: parsed.ServingsPerDay,
		Confidence:     parsed.Confidence,
		Suggestions:    parsed.Suggestions,
	}
	if parsed.DueDate != nil {
		resp.DueDate = parsed.DueDate.Format(response.DateFormat)
	}
	return resp
}

type createResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newCreateResp(out item.CreateItemOutput) createResp {
	return createResp{Item: newItemResp(out.Item)}
}

type listResp struct {
	Items  []itemResp `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out item.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return listResp{
		Items:  items,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailResp(out item.DetailItemOutput) detailResp {
	return detailResp{Item: newItemResp(out.Item)}
}

type updateResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newUpdateResp(out item.UpdateItemOutput) updateResp {
	return updateResp{Item: newItemResp(out.Item)}
}

type quickAddResp struct {
	Item            itemResp   `json:"item"`
	Parsed          parsedResp `json:"parsed"`
	CalendarEventID string     `json:"calendar_event_id,omitempty"`
}

func (h *handler) newQuickAddResp(out item.QuickAddOutput) quickAddResp {
	return quickAddResp{
		Item:            newItemResp(out.Item),
		Parsed:          newParsedResp(out.Parsed),
		CalendarEventID: out.CalendarEventID,
	}
}

type previewResp struct {
	Parsed parsedResp `json:"parsed"`
}

func (h *handler) newPreviewResp(out item.PreviewOutput) previewResp {
	return previewResp{Parsed: newParsedResp(out.Parsed)}
}
