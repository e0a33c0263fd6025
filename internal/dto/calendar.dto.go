package dto

type CalendarDayDTO struct {
	ID  uint `json:"id"`
	Day int  `json:"day"`
}

type CalendarDTO struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Weeks [6][7]int `json:"weeks"`

	WorkingDays []CalendarDayDTO `json:"working_days"`
}

type TimeSlotDTO struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
	Taken bool   `json:"taken"`
}

type BookingDTO struct {
	SlotID    uint   `json:"slot_id"`
	Day       int    `json:"day"`
	Label     string `json:"label"`
	Reference string `json:"reference"`
	EmailSent bool   `json:"email_sent"`
}
