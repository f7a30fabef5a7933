package http

import (
	"time"

	"lifedesk/internal/category"
	"lifedesk/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name  string `json:"name"  binding:"required,min=1,max=100"`
	Icon  string `json:"icon"  binding:"max=16"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() category.CreateCategoryInput {
	return category.CreateCategoryInput{
		Name:  r.Name,
		Icon:  r.Icon,
		Color: r.Color,
	}
}

// ---

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() category.ListCategoriesInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return category.ListCategoriesInput{
		Limit:  limit,
		Offset: r.Offset,
	}
}

// ---

type updateReq struct {
	ID    string `json:"-"` // populated from URI param
	Name  string `json:"name"  binding:"omitempty,min=1,max=100"`
	Icon  string `json:"icon"  binding:"omitempty,max=16"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() category.UpdateCategoryInput {
	return category.UpdateCategoryInput{
		ID:    r.ID,
		Name:  r.Name,
		Icon:  r.Icon,
		Color: r.Color,
	}
}

// --- Response DTOs ---

type categoryResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCategoryResp(cat model.Category) categoryResp {
	return categoryResp{
		ID:        cat.ID,
		Name:      cat.Name,
		Icon:      cat.Icon,
		Color:     cat.Color,
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}
}

type createResp struct {
	Category categoryResp `json:"category"`
}

func (h *handler) newCreateResp(out category.CreateCategoryOutput) createResp {
	return createResp{Category: newCategoryResp(out.Category)}
}

type listResp struct {
	Categories []categoryResp `json:"categories"`
	Total      int            `json:"total"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

func (h *handler) newListResp(out category.ListCategoriesOutput) listResp {
	categories := make([]categoryResp, len(out.Categories))
	for i, cat := range out.Categories {
		categories[i] = newCategoryResp(cat)
	}
	return listResp{
		Categories: categories,
		Total:      out.Total,
		Limit:      out.Limit,
		Offset:     out.Offset,
	}
}

type detailResp struct {
	Category categoryResp `json:"category"`
}

func (h *handler) newDetailResp(out category.DetailCategoryOutput) detailResp {
	return detailResp{Category: newCategoryResp(out.Category)}
}

type updateResp struct {
	Category categoryResp `json:"category"`
}

func (h *handler) newUpdateResp(out category.UpdateCategoryOutput) updateResp {
	return updateResp{Category: newCategoryResp(out.Category)}
}
