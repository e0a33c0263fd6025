package schedule

import (
	"context"
	"time"

	domain "github.com/avtoservice/workshop-scheduler/internal/domain/schedule"
	"github.com/avtoservice/workshop-scheduler/internal/metrics"
	"github.com/avtoservice/workshop-scheduler/internal/models"
)

// ======================================================
// USE CASE — keep a service's persisted days and slots in
// sync with the month "now" falls in.
// ======================================================

type ReconcileMonth struct {
	repo domain.Repository
}

func NewReconcileMonth(repo domain.Repository) *ReconcileMonth {
	return &ReconcileMonth{repo: repo}
}

// Execute compares the persisted day set against the expected working days
// for now's month and regenerates days and slots when they diverge.
// Invoked lazily on first calendar access; idempotent.
func (uc *ReconcileMonth) Execute(
	ctx context.Context,
	serviceID uint,
	now time.Time,
) ([]models.CalendarDay, error) {

	svc, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	target, err := expectedMonth(svc, now)
	if err != nil {
		return nil, err
	}

	days, err := uc.repo.ListDays(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if !isStale(days, now.Year(), now.Month(), target) {
		return days, nil
	}

	if err := uc.repo.ReplaceMonth(
		ctx,
		serviceID,
		now.Year(),
		now.Month(),
		target,
	); err != nil {
		return nil, err
	}

	metrics.IncMonthReconciled()

	return uc.repo.ListDays(ctx, serviceID)
}

// expectedMonth derives the target day/slot set from the service
// configuration for now's month.
func expectedMonth(svc *models.Service, now time.Time) ([]domain.DaySlots, error) {
	weekdays, err := domain.ParseWeekdaySet(svc.WorkingWeekdays)
	if err != nil {
		return nil, err
	}

	gran, err := domain.ParseGranularity(svc.SlotMinutes)
	if err != nil {
		return nil, err
	}

	opens, err := domain.ParseClock(svc.OpensAt)
	if err != nil {
		return nil, err
	}

	closes, err := domain.ParseClock(svc.ClosesAt)
	if err != nil {
		return nil, err
	}

	labels := domain.SlotLabels(opens, closes, gran)

	working := domain.WorkingDays(now.Year(), now.Month(), weekdays)

	target := make([]domain.DaySlots, 0, len(working))
	for _, day := range working {
		target = append(target, domain.DaySlots{Day: day, Labels: labels})
	}
	return target, nil
}

// isStale compares the exact persisted set, not just the count: a month
// rollover or a mid-month working-day change both show up as a set change.
func isStale(
	days []models.CalendarDay,
	year int,
	month time.Month,
	target []domain.DaySlots,
) bool {

	if len(days) != len(target) {
		return true
	}
	for i, d := range days {
		if d.Year != year || d.Month != int(month) || d.Day != target[i].Day {
			return true
		}
	}
	return false
}
