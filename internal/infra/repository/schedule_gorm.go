package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/avtoservice/workshop-scheduler/internal/domain/schedule"
	"github.com/avtoservice/workshop-scheduler/internal/httperr"
	"github.com/avtoservice/workshop-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Calendar days
// --------------------------------------------------

func (r *ScheduleGormRepository) ListDays(
	ctx context.Context,
	serviceID uint,
) ([]models.CalendarDay, error) {

	var days []models.CalendarDay
	if err := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("day ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}

	return days, nil
}

func (r *ScheduleGormRepository) GetDay(
	ctx context.Context,
	serviceID uint,
	dayID uint,
) (*models.CalendarDay, error) {

	var day models.CalendarDay
	if err := r.db.WithContext(ctx).
		Where("id = ? AND service_id = ?", dayID, serviceID).
		First(&day).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("day_not_found")
		}
		return nil, err
	}

	return &day, nil
}

func (r *ScheduleGormRepository) ReplaceMonth(
	ctx context.Context,
	serviceID uint,
	year int,
	month time.Month,
	days []domain.DaySlots,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Row lock on the service serializes concurrent reconcilers.
		// SQLite serializes writers on its own and rejects FOR UPDATE.
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var svc models.Service
		if err := q.First(&svc, serviceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("service_not_found")
			}
			return err
		}

		// Re-check under the lock: a concurrent request may already have
		// replaced the month while we waited.
		var existing []models.CalendarDay
		if err := tx.
			Where("service_id = ?", serviceID).
			Order("day ASC").
			Find(&existing).Error; err != nil {
			return err
		}
		if daysMatch(existing, year, month, days) {
			return nil
		}

		if err := tx.
			Where("calendar_day_id IN (?)",
				tx.Model(&models.CalendarDay{}).
					Select("id").
					Where("service_id = ?", serviceID),
			).
			Delete(&models.TimeSlot{}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("service_id = ?", serviceID).
			Delete(&models.CalendarDay{}).Error; err != nil {
			return err
		}

		for _, d := range days {
			day := models.CalendarDay{
				ServiceID: serviceID,
				Year:      year,
				Month:     int(month),
				Day:       d.Day,
			}
			if err := tx.Create(&day).Error; err != nil {
				return err
			}

			if len(d.Labels) == 0 {
				continue
			}

			slots := make([]models.TimeSlot, 0, len(d.Labels))
			for _, label := range d.Labels {
				slots = append(slots, models.TimeSlot{
					CalendarDayID: day.ID,
					Label:         label,
				})
			}
			if err := tx.Create(&slots).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func daysMatch(
	existing []models.CalendarDay,
	year int,
	month time.Month,
	target []domain.DaySlots,
) bool {

	if len(existing) != len(target) {
		return false
	}
	for i, d := range existing {
		if d.Year != year || d.Month != int(month) || d.Day != target[i].Day {
			return false
		}
	}
	return true
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (r *ScheduleGormRepository) ListSlots(
	ctx context.Context,
	dayID uint,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("calendar_day_id = ?", dayID).
		Order("id ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *ScheduleGormRepository) ClaimSlot(
	ctx context.Context,
	dayID uint,
	slotID uint,
	customer *models.Customer,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Where("id = ? AND calendar_day_id = ?", slotID, dayID).
			First(&slot).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("slot_not_found")
			}
			return err
		}

		if err := tx.Create(customer).Error; err != nil {
			return err
		}

		// Conditional update: the WHERE on customer_id IS NULL makes the
		// check-then-set atomic against a concurrent claim. Losing the
		// race rolls the customer row back with the transaction.
		res := tx.Model(&models.TimeSlot{}).
			Where("id = ? AND customer_id IS NULL", slotID).
			Update("customer_id", customer.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("slot_already_taken")
		}

		slot.CustomerID = &customer.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
