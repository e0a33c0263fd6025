package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`

	// Opening hours stored as "HH:MM", same convention as slot labels.
	OpensAt  string `gorm:"size:5;default:'10:00'" json:"opens_at"`
	ClosesAt string `gorm:"size:5;default:'20:00'" json:"closes_at"`

	// ISO weekday indices (1=Monday..7=Sunday), comma separated, e.g. "1,2,3,4,5".
	WorkingWeekdays string `gorm:"size:20;default:'1,2,3,4,5'" json:"working_weekdays"`

	// Slot step in minutes, 30 or 60.
	SlotMinutes int `gorm:"default:60" json:"slot_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
