package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/avtoservice/workshop-scheduler/internal/domain/schedule"
	"github.com/avtoservice/workshop-scheduler/internal/dto"
	"github.com/avtoservice/workshop-scheduler/internal/httperr"
	"github.com/avtoservice/workshop-scheduler/internal/httpresp"
	"github.com/avtoservice/workshop-scheduler/internal/models"
	"github.com/avtoservice/workshop-scheduler/internal/timezone"
	ucSchedule "github.com/avtoservice/workshop-scheduler/internal/usecase/schedule"
	"github.com/avtoservice/workshop-scheduler/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER — customer-facing browsing and booking
////////////////////////////////////////////////////////

type PublicHandler struct {
	db        *gorm.DB
	repo      domain.Repository
	reconcile *ucSchedule.ReconcileMonth
	book      *ucSchedule.BookSlot
}

func NewPublicHandler(
	db *gorm.DB,
	repo domain.Repository,
	reconcile *ucSchedule.ReconcileMonth,
	book *ucSchedule.BookSlot,
) *PublicHandler {
	return &PublicHandler{
		db:        db,
		repo:      repo,
		reconcile: reconcile,
		book:      book,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type BookSlotRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// CALENDAR (lazy month reconciliation)
////////////////////////////////////////////////////////

func (h *PublicHandler) Calendar(c *gin.Context) {
	serviceID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	now := timezone.Now()

	days, err := h.reconcile.Execute(c.Request.Context(), serviceID, now)
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	grid := domain.NewMonthGrid(now.Year(), now.Month())

	out := dto.CalendarDTO{
		Year:        now.Year(),
		Month:       int(now.Month()),
		Weeks:       grid.Weeks(),
		WorkingDays: make([]dto.CalendarDayDTO, 0, len(days)),
	}
	for _, d := range days {
		out.WorkingDays = append(out.WorkingDays, dto.CalendarDayDTO{
			ID:  d.ID,
			Day: d.Day,
		})
	}

	httpresp.OK(c, out)
}

////////////////////////////////////////////////////////
// SLOTS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListSlots(c *gin.Context) {
	serviceID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}
	dayID, ok := uintParam(c, "dayID")
	if !ok {
		httperr.BadRequest(c, "invalid_day_id", "Invalid day id.")
		return
	}

	day, err := h.repo.GetDay(c.Request.Context(), serviceID, dayID)
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	slots, err := h.repo.ListSlots(c.Request.Context(), day.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_slots", "Failed to list slots.")
		return
	}

	out := make([]dto.TimeSlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, dto.TimeSlotDTO{
			ID:    s.ID,
			Label: s.Label,
			Taken: s.CustomerID != nil,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"day":   day.Day,
		"slots": out,
	})
}

////////////////////////////////////////////////////////
// BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) BookSlot(c *gin.Context) {
	serviceID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}
	dayID, ok := uintParam(c, "dayID")
	if !ok {
		httperr.BadRequest(c, "invalid_day_id", "Invalid day id.")
		return
	}
	slotID, ok := uintParam(c, "slotID")
	if !ok {
		httperr.BadRequest(c, "invalid_slot_id", "Invalid slot id.")
		return
	}

	var req BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if !validators.IsEmailValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
		return
	}

	result, err := h.book.Execute(c.Request.Context(), ucSchedule.BookSlotInput{
		ServiceID: serviceID,
		DayID:     dayID,
		SlotID:    slotID,
		Name:      req.Name,
		Surname:   req.Surname,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.Created(c, dto.BookingDTO{
		SlotID:    result.Slot.ID,
		Day:       result.Day.Day,
		Label:     result.Slot.Label,
		Reference: result.Customer.Reference,
		EmailSent: result.EmailSent,
	})
}

////////////////////////////////////////////////////////
// ERROR MAPPING
////////////////////////////////////////////////////////

func mapScheduleError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "service_not_found":
		httperr.NotFound(c, "service_not_found", "Service not found.")
	case "day_not_found":
		httperr.NotFound(c, "day_not_found", "Day not found.")
	case "slot_not_found":
		httperr.NotFound(c, "slot_not_found", "Slot not found.")
	case "slot_already_taken":
		httperr.Conflict(c, "slot_already_taken", "This slot has already been booked.")
	case "unsupported_granularity", "invalid_hours", "invalid_working_days":
		httperr.BadRequest(c, httperr.BusinessCode(err), "Service schedule is misconfigured.")
	default:
		httperr.Internal(c, "internal_error", "Something went wrong.")
	}
}
