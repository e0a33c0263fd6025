package schedule

import (
	"context"
	"time"

	"github.com/avtoservice/workshop-scheduler/internal/models"
)

// DaySlots is one working day and its generated slot labels, the unit of
// work for a month replacement.
type DaySlots struct {
	Day    int
	Labels []string
}

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Calendar days --------
	ListDays(
		ctx context.Context,
		serviceID uint,
	) ([]models.CalendarDay, error)

	GetDay(
		ctx context.Context,
		serviceID uint,
		dayID uint,
	) (*models.CalendarDay, error)

	// ReplaceMonth atomically swaps the service's persisted days and slots
	// for the given target set. Re-checks staleness under a service row
	// lock so concurrent reconcilers do not double-create.
	ReplaceMonth(
		ctx context.Context,
		serviceID uint,
		year int,
		month time.Month,
		days []DaySlots,
	) error

	// -------- Slots --------
	ListSlots(
		ctx context.Context,
		dayID uint,
	) ([]models.TimeSlot, error)

	// ClaimSlot creates the customer and sets the slot's customer reference
	// in one transaction, failing with slot_already_taken if the slot is
	// claimed. The check-then-set is a single conditional update.
	ClaimSlot(
		ctx context.Context,
		dayID uint,
		slotID uint,
		customer *models.Customer,
	) (*models.TimeSlot, error)
}
