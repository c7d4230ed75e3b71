package usecase

import (
	"time"

	"rental-availability/internal/availability/repository"
	"rental-availability/internal/interpret"
	"rental-availability/internal/pricing"
	pkgLog "rental-availability/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	interpreter *interpret.Interpreter
	calendar    repository.CalendarRepository
	prices      *pricing.Table
	lookahead   int
	now         func() time.Time
}

// New creates a new availability UseCase instance. lookahead is the number of
// weeks the nearest-alternative search walks; zero means the default.
func New(
	l pkgLog.Logger,
	interpreter *interpret.Interpreter,
	calendar repository.CalendarRepository,
	prices *pricing.Table,
	lookahead int,
) *implUseCase {
	if lookahead <= 0 {
		lookahead = DefaultLookaheadWeeks
	}
	if prices == nil {
		prices = pricing.Empty()
	}
	return &implUseCase{
		l:           l,
		interpreter: interpreter,
		calendar:    calendar,
		prices:      prices,
		lookahead:   lookahead,
		now:         time.Now,
	}
}

// SetNow overrides the clock. Test hook.
func (uc *implUseCase) SetNow(now func() time.Time) {
	uc.now = now
}
