package models

import "time"

// Customer is created at booking time and linked to exactly one TimeSlot.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Surname string `gorm:"size:100;not null" json:"surname"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`

	// Booking reference quoted in the confirmation email.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	CreatedAt time.Time `json:"created_at"`
}
