package usecase_test

import (
	"context"
	"errors"
	"testing"

	"lifedesk/internal/category"
	repo "lifedesk/internal/category/repository"
	"lifedesk/internal/category/usecase"
	"lifedesk/internal/model"
)

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

type mockRepo struct {
	fail    bool
	cats    []model.Category
	created []repo.CreateCategoryOptions
	updated []repo.UpdateCategoryOptions
	deleted []string
}

func (m *mockRepo) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (model.Category, error) {
	if m.fail {
		return model.Category{}, errors.New("db error")
	}
	m.created = append(m.created, opt)
	return model.Category{ID: opt.ID, Name: opt.Name, Icon: opt.Icon, Color: opt.Color}, nil
}

func (m *mockRepo) GetOneCategory(ctx context.Context, opt repo.GetOneCategoryOptions) (model.Category, error) {
	if m.fail {
		return model.Category{}, errors.New("db error")
	}
	for _, c := range m.cats {
		if (opt.ID != "" && c.ID == opt.ID) || (opt.Name != "" && c.Name == opt.Name) {
			return c, nil
		}
	}
	return model.Category{}, nil
}

func (m *mockRepo) ListCategories(ctx context.Context, opt repo.ListCategoriesOptions) ([]model.Category, int, error) {
	return m.cats, len(m.cats), nil
}

func (m *mockRepo) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (model.Category, error) {
	m.updated = append(m.updated, opt)
	return model.Category{ID: opt.ID, Name: opt.Name, Icon: opt.Icon, Color: opt.Color}, nil
}

func (m *mockRepo) DeleteCategory(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := &mockRepo{}
		uc := usecase.New(r, &mockLogger{})

		out, err := uc.Create(context.Background(), category.CreateCategoryInput{Name: "school", Icon: "🎓", Color: "#3366ff"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category.ID == "" {
			t.Errorf("expected a generated id")
		}
		if out.Category.Name != "school" {
			t.Errorf("name = %q", out.Category.Name)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		r := &mockRepo{cats: []model.Category{{ID: "cat-1", Name: "school"}}}
		uc := usecase.New(r, &mockLogger{})

		_, err := uc.Create(context.Background(), category.CreateCategoryInput{Name: "school"})
		if err != category.ErrDuplicateName {
			t.Errorf("err = %v, want ErrDuplicateName", err)
		}
	})
}

func TestDetail(t *testing.T) {
	r := &mockRepo{cats: []model.Category{{ID: "cat-1", Name: "school"}}}
	uc := usecase.New(r, &mockLogger{})

	out, err := uc.Detail(context.Background(), "cat-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Category.Name != "school" {
		t.Errorf("name = %q", out.Category.Name)
	}

	if _, err := uc.Detail(context.Background(), "missing"); err != category.ErrCategoryNotFound {
		t.Errorf("err = %v, want ErrCategoryNotFound", err)
	}
}

func TestUpdate(t *testing.T) {
	t.Run("partial update carries existing fields", func(t *testing.T) {
		r := &mockRepo{cats: []model.Category{{ID: "cat-1", Name: "school", Icon: "🎓", Color: "#3366ff"}}}
		uc := usecase.New(r, &mockLogger{})

		out, err := uc.Update(context.Background(), category.UpdateCategoryInput{ID: "cat-1", Color: "#ff0000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category.Name != "school" || out.Category.Icon != "🎓" {
			t.Errorf("existing fields must be carried over: %+v", out.Category)
		}
		if out.Category.Color != "#ff0000" {
			t.Errorf("color = %q", out.Category.Color)
		}
	})

	t.Run("rename onto existing name", func(t *testing.T) {
		r := &mockRepo{cats: []model.Category{
			{ID: "cat-1", Name: "school"},
			{ID: "cat-2", Name: "work"},
		}}
		uc := usecase.New(r, &mockLogger{})

		_, err := uc.Update(context.Background(), category.UpdateCategoryInput{ID: "cat-1", Name: "work"})
		if err != category.ErrDuplicateName {
			t.Errorf("err = %v, want ErrDuplicateName", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})
		_, err := uc.Update(context.Background(), category.UpdateCategoryInput{ID: "missing"})
		if err != category.ErrCategoryNotFound {
			t.Errorf("err = %v, want ErrCategoryNotFound", err)
		}
	})
}

func TestDelete(t *testing.T) {
	r := &mockRepo{cats: []model.Category{{ID: "cat-1", Name: "school"}}}
	uc := usecase.New(r, &mockLogger{})

	if err := uc.Delete(context.Background(), "cat-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.deleted) != 1 || r.deleted[0] != "cat-1" {
		t.Errorf("deleted = %v", r.deleted)
	}

	if err := uc.Delete(context.Background(), "missing"); err != category.ErrCategoryNotFound {
		t.Errorf("err = %v, want ErrCategoryNotFound", err)
	}
}
