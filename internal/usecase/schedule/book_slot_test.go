package schedule

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/avtoservice/workshop-scheduler/internal/httperr"
	infraRepo "github.com/avtoservice/workshop-scheduler/internal/infra/repository"
	"github.com/avtoservice/workshop-scheduler/internal/models"
)

type bookingFixture struct {
	db   *gorm.DB
	svc  *models.Service
	day  *models.CalendarDay
	slot *models.TimeSlot
	mail *fakeMailer
	uc   *BookSlot
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	db := newTestDB(t)
	svc := newTestService(t, db)
	repo := infraRepo.NewScheduleGormRepository(db)

	reconcile := NewReconcileMonth(repo)
	days, err := reconcile.Execute(context.Background(), svc.ID, march2025)
	require.NoError(t, err)
	require.NotEmpty(t, days)

	day := days[0]

	var slot models.TimeSlot
	require.NoError(t, db.
		Where("calendar_day_id = ? AND label = ?", day.ID, "14:00").
		First(&slot).Error)

	mail := &fakeMailer{}
	uc := NewBookSlot(repo, mail, newTestDispatcher(db), zerolog.Nop())

	return &bookingFixture{
		db:   db,
		svc:  svc,
		day:  &day,
		slot: &slot,
		mail: mail,
		uc:   uc,
	}
}

func (f *bookingFixture) input() BookSlotInput {
	return BookSlotInput{
		ServiceID: f.svc.ID,
		DayID:     f.day.ID,
		SlotID:    f.slot.ID,
		Name:      "Ivan",
		Surname:   "Petrov",
		Email:     "ivan@example.com",
		Phone:     "+200000000",
	}
}

func TestBookSlot_ClaimsSlot(t *testing.T) {
	f := newBookingFixture(t)

	result, err := f.uc.Execute(context.Background(), f.input())
	require.NoError(t, err)

	assert.Equal(t, "14:00", result.Slot.Label)
	assert.True(t, result.EmailSent)
	assert.NotEmpty(t, result.Customer.Reference)

	var slot models.TimeSlot
	require.NoError(t, f.db.First(&slot, f.slot.ID).Error)
	require.NotNil(t, slot.CustomerID)
	assert.Equal(t, result.Customer.ID, *slot.CustomerID)
	assert.Equal(t, "14:00", slot.Label)

	// Confirmation mail carries the booking reference.
	require.Len(t, f.mail.sent, 1)
	assert.Equal(t, "ivan@example.com", f.mail.sent[0].To)
	assert.True(t, strings.Contains(f.mail.sent[0].Body, result.Customer.Reference))
	assert.True(t, strings.Contains(f.mail.sent[0].Body, "14:00"))
}

func TestBookSlot_AlreadyTaken(t *testing.T) {
	f := newBookingFixture(t)

	first, err := f.uc.Execute(context.Background(), f.input())
	require.NoError(t, err)

	in := f.input()
	in.Name = "Maria"
	in.Email = "maria@example.com"

	_, err = f.uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_already_taken"))

	// The loser's customer row was rolled back with the claim.
	var customers int64
	require.NoError(t, f.db.Model(&models.Customer{}).Count(&customers).Error)
	assert.EqualValues(t, 1, customers)

	// The winner's claim is untouched.
	var slot models.TimeSlot
	require.NoError(t, f.db.First(&slot, f.slot.ID).Error)
	require.NotNil(t, slot.CustomerID)
	assert.Equal(t, first.Customer.ID, *slot.CustomerID)
}

func TestBookSlot_ConcurrentClaims(t *testing.T) {
	f := newBookingFixture(t)

	const attempts = 4

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Execute(context.Background(), f.input())
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			require.True(t, httperr.IsBusiness(err, "slot_already_taken"), "unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, won)

	var customers int64
	require.NoError(t, f.db.Model(&models.Customer{}).Count(&customers).Error)
	assert.EqualValues(t, 1, customers)
}

func TestBookSlot_MailFailureIsNonFatal(t *testing.T) {
	f := newBookingFixture(t)
	f.mail.fail = errors.New("relay unreachable")

	result, err := f.uc.Execute(context.Background(), f.input())
	require.NoError(t, err)
	assert.False(t, result.EmailSent)

	// The claim stands even though the confirmation failed.
	var slot models.TimeSlot
	require.NoError(t, f.db.First(&slot, f.slot.ID).Error)
	assert.NotNil(t, slot.CustomerID)
}

func TestBookSlot_NotFound(t *testing.T) {
	f := newBookingFixture(t)

	in := f.input()
	in.SlotID = 99999
	_, err := f.uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_not_found"))

	in = f.input()
	in.DayID = 99999
	_, err = f.uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "day_not_found"))

	in = f.input()
	in.ServiceID = 99999
	_, err = f.uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestBookSlot_DayOfAnotherService(t *testing.T) {
	f := newBookingFixture(t)

	other := models.Service{
		OwnerID:         f.svc.OwnerID,
		Name:            "Rival Garage",
		OpensAt:         "10:00",
		ClosesAt:        "12:00",
		WorkingWeekdays: "1,2,3,4,5",
		SlotMinutes:     60,
	}
	require.NoError(t, f.db.Create(&other).Error)

	in := f.input()
	in.ServiceID = other.ID

	// The day belongs to the original service, so the lookup must miss.
	_, err := f.uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "day_not_found"))
}

func TestBookSlot_ClaimSurvivesReconcile(t *testing.T) {
	f := newBookingFixture(t)

	result, err := f.uc.Execute(context.Background(), f.input())
	require.NoError(t, err)

	// Same month, nothing stale: reconciliation must not touch the claim.
	repo := infraRepo.NewScheduleGormRepository(f.db)
	_, err = NewReconcileMonth(repo).Execute(context.Background(), f.svc.ID, march2025)
	require.NoError(t, err)

	var slot models.TimeSlot
	require.NoError(t, f.db.First(&slot, f.slot.ID).Error)
	require.NotNil(t, slot.CustomerID)
	assert.Equal(t, result.Customer.ID, *slot.CustomerID)
	assert.Equal(t, "14:00", slot.Label)
}
