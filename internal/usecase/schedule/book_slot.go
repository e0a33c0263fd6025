package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/avtoservice/workshop-scheduler/internal/audit"
	domain "github.com/avtoservice/workshop-scheduler/internal/domain/schedule"
	"github.com/avtoservice/workshop-scheduler/internal/httperr"
	"github.com/avtoservice/workshop-scheduler/internal/mailer"
	"github.com/avtoservice/workshop-scheduler/internal/metrics"
	"github.com/avtoservice/workshop-scheduler/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type BookSlotInput struct {
	ServiceID uint
	DayID     uint
	SlotID    uint

	Name    string
	Surname string
	Email   string
	Phone   string
}

type BookSlotResult struct {
	Slot     *models.TimeSlot
	Day      *models.CalendarDay
	Customer *models.Customer

	// EmailSent is false when the confirmation could not be delivered.
	// The claim itself stands either way.
	EmailSent bool
}

// ======================================================
// USE CASE
// ======================================================

type BookSlot struct {
	repo   domain.Repository
	mailer mailer.Mailer
	audit  *audit.Dispatcher
	log    zerolog.Logger
}

func NewBookSlot(
	repo domain.Repository,
	m mailer.Mailer,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *BookSlot {
	return &BookSlot{
		repo:   repo,
		mailer: m,
		audit:  audit,
		log:    log,
	}
}

// Execute claims one slot for one customer. The claim is atomic: of two
// concurrent attempts on the same slot exactly one succeeds, the other
// gets slot_already_taken.
func (uc *BookSlot) Execute(
	ctx context.Context,
	in BookSlotInput,
) (*BookSlotResult, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	day, err := uc.repo.GetDay(ctx, in.ServiceID, in.DayID)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Name:      in.Name,
		Surname:   in.Surname,
		Email:     in.Email,
		Phone:     in.Phone,
		Reference: uuid.NewString(),
	}

	slot, err := uc.repo.ClaimSlot(ctx, day.ID, in.SlotID, customer)
	if err != nil {
		if httperr.IsBusiness(err, "slot_already_taken") {
			metrics.IncBookingConflict()
		}
		return nil, err
	}

	metrics.IncBookingCreated()

	uc.audit.Dispatch(audit.Event{
		ServiceID: svc.ID,
		Action:    "slot_booked",
		Entity:    "time_slot",
		EntityID:  &slot.ID,
		Metadata: map[string]any{
			"day":       day.Day,
			"label":     slot.Label,
			"reference": customer.Reference,
		},
	})

	result := &BookSlotResult{
		Slot:      slot,
		Day:       day,
		Customer:  customer,
		EmailSent: true,
	}

	subject := fmt.Sprintf("Appointment at %s", svc.Name)
	body := fmt.Sprintf(
		"Dear %s %s,\n\nYour appointment at %s is confirmed for day %02d.%02d.%d at %s.\nBooking reference: %s\n",
		customer.Surname, customer.Name,
		svc.Name,
		day.Day, day.Month, day.Year,
		slot.Label,
		customer.Reference,
	)

	if err := uc.mailer.Send(ctx, customer.Email, subject, body); err != nil {
		result.EmailSent = false
		metrics.IncMailFailed()
		uc.log.Warn().
			Err(err).
			Str("reference", customer.Reference).
			Msg("confirmation mail failed")
	}

	return result, nil
}
