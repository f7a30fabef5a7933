package usecase

import (
	"lifedesk/internal/category/repository"
	"lifedesk/pkg/log"
)

// implUseCase is the private implementation of category.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new category UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
