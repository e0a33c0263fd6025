package models

import "time"

// TimeSlot is one bookable unit of time under a CalendarDay.
// CustomerID is set at most once; a non-null value is a permanent claim.
type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CalendarDayID uint        `gorm:"index" json:"calendar_day_id"`
	CalendarDay   CalendarDay `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Start-of-slot label, zero padded "HH:MM".
	Label string `gorm:"size:5;not null" json:"label"`

	CustomerID *uint     `gorm:"index" json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
