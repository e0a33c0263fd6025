package models

import "time"

// CalendarDay is one working day of the current month for a service.
// Rows are replaced wholesale when the month rolls over.
type CalendarDay struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceID uint    `gorm:"index;uniqueIndex:idx_service_day" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Year  int `gorm:"uniqueIndex:idx_service_day" json:"year"`
	Month int `gorm:"uniqueIndex:idx_service_day" json:"month"`
	Day   int `gorm:"uniqueIndex:idx_service_day" json:"day"`

	CreatedAt time.Time `json:"created_at"`
}
