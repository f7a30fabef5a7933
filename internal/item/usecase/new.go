package usecase

import (
	"context"
	"time"

	categoryRepo "lifedesk/internal/category/repository"
	"lifedesk/internal/item/repository"
	"lifedesk/pkg/datemath"
	"lifedesk/pkg/gcalendar"
	"lifedesk/pkg/log"
)

// Calendar is the subset of pkg/gcalendar used to mirror created events.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	catRepo    categoryRepo.Repository
	dateMath   *datemath.Parser
	calendar   Calendar // nil disables calendar mirroring
	calendarID string
	timezone   string
	clock      func() time.Time
}

// New creates a new item UseCase instance. calendar may be nil.
func New(
	l log.Logger,
	repo repository.Repository,
	catRepo categoryRepo.Repository,
	dateMath *datemath.Parser,
	calendar Calendar,
	calendarID string,
	timezone string,
) *implUseCase {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		catRepo:    catRepo,
		dateMath:   dateMath,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
		clock:      time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (uc *implUseCase) WithClock(clock func() time.Time) *implUseCase {
	uc.clock = clock
	return uc
}
