package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/avtoservice/workshop-scheduler/internal/audit"
	domain "github.com/avtoservice/workshop-scheduler/internal/domain/schedule"
	"github.com/avtoservice/workshop-scheduler/internal/httperr"
	"github.com/avtoservice/workshop-scheduler/internal/httpresp"
	"github.com/avtoservice/workshop-scheduler/internal/middleware"
	"github.com/avtoservice/workshop-scheduler/internal/models"
)

// ======================================================
// HANDLER — owner-side service configuration
// ======================================================

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`

	OpensAt         string `json:"opens_at" binding:"required"`
	ClosesAt        string `json:"closes_at" binding:"required"`
	WorkingWeekdays []int  `json:"working_weekdays" binding:"required"`
	SlotMinutes     int    `json:"slot_minutes" binding:"required"`
}

type UpdateServiceRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`

	OpensAt         *string `json:"opens_at"`
	ClosesAt        *string `json:"closes_at"`
	WorkingWeekdays *[]int  `json:"working_weekdays"`
	SlotMinutes     *int    `json:"slot_minutes"`
}

// ======================================================
// HELPERS
// ======================================================

func weekdaySetFromList(days []int) (domain.WeekdaySet, error) {
	set := domain.WeekdaySet{}
	for _, d := range days {
		if d < 1 || d > 7 {
			return nil, httperr.ErrBusiness("invalid_working_days")
		}
		set[d] = struct{}{}
	}
	return set, nil
}

func validateScheduleConfig(opensAt, closesAt string, slotMinutes int) error {
	if _, err := domain.ParseClock(opensAt); err != nil {
		return err
	}
	if _, err := domain.ParseClock(closesAt); err != nil {
		return err
	}
	if _, err := domain.ParseGranularity(slotMinutes); err != nil {
		return err
	}
	return nil
}

// getOwnService loads the service and enforces ownership. A service that
// exists but belongs to someone else answers 403, not 404.
func (h *ServiceHandler) getOwnService(c *gin.Context) (*models.Service, bool) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return nil, false
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return nil, false
		}
		httperr.Internal(c, "internal_error", "Failed to load service.")
		return nil, false
	}

	if svc.OwnerID != ownerID {
		httperr.Forbidden(c, "not_owner", "You do not own this service.")
		return nil, false
	}

	return &svc, true
}

// ======================================================
// CREATE
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	set, err := weekdaySetFromList(req.WorkingWeekdays)
	if err != nil {
		httperr.BadRequest(c, "invalid_working_days", "Weekdays must be 1 (Monday) to 7 (Sunday).")
		return
	}

	if err := validateScheduleConfig(req.OpensAt, req.ClosesAt, req.SlotMinutes); err != nil {
		httperr.BadRequest(c, httperr.BusinessCode(err), "Invalid schedule configuration.")
		return
	}

	svc := models.Service{
		OwnerID:         ownerID,
		Name:            req.Name,
		Address:         req.Address,
		Phone:           req.Phone,
		Email:           req.Email,
		OpensAt:         req.OpensAt,
		ClosesAt:        req.ClosesAt,
		WorkingWeekdays: set.String(),
		SlotMinutes:     req.SlotMinutes,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ServiceID: svc.ID,
		UserID:    &ownerID,
		Action:    "service_created",
		Entity:    "service",
		EntityID:  &svc.ID,
	})

	httpresp.Created(c, svc)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var services []models.Service
	if err := h.db.
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	svc, ok := h.getOwnService(c)
	if !ok {
		return
	}
	httpresp.OK(c, svc)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ServiceHandler) Update(c *gin.Context) {
	svc, ok := h.getOwnService(c)
	if !ok {
		return
	}
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	schedChanged := req.OpensAt != nil || req.ClosesAt != nil ||
		req.WorkingWeekdays != nil || req.SlotMinutes != nil

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Address != nil {
		svc.Address = *req.Address
	}
	if req.Phone != nil {
		svc.Phone = *req.Phone
	}
	if req.Email != nil {
		svc.Email = *req.Email
	}
	if req.OpensAt != nil {
		svc.OpensAt = *req.OpensAt
	}
	if req.ClosesAt != nil {
		svc.ClosesAt = *req.ClosesAt
	}
	if req.SlotMinutes != nil {
		svc.SlotMinutes = *req.SlotMinutes
	}
	if req.WorkingWeekdays != nil {
		set, err := weekdaySetFromList(*req.WorkingWeekdays)
		if err != nil {
			httperr.BadRequest(c, "invalid_working_days", "Weekdays must be 1 (Monday) to 7 (Sunday).")
			return
		}
		svc.WorkingWeekdays = set.String()
	}

	if err := validateScheduleConfig(svc.OpensAt, svc.ClosesAt, svc.SlotMinutes); err != nil {
		httperr.BadRequest(c, httperr.BusinessCode(err), "Invalid schedule configuration.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(svc).Error; err != nil {
			return err
		}

		if !schedChanged {
			return nil
		}

		// Drop the generated month so the next calendar access rebuilds
		// it from the new configuration. A changed granularity keeps the
		// day set identical, so the lazy reconciler alone would miss it.
		if err := tx.
			Where("calendar_day_id IN (?)",
				tx.Model(&models.CalendarDay{}).
					Select("id").
					Where("service_id = ?", svc.ID),
			).
			Delete(&models.TimeSlot{}).Error; err != nil {
			return err
		}
		return tx.
			Where("service_id = ?", svc.ID).
			Delete(&models.CalendarDay{}).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to update service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ServiceID: svc.ID,
		UserID:    &ownerID,
		Action:    "service_updated",
		Entity:    "service",
		EntityID:  &svc.ID,
	})

	httpresp.OK(c, svc)
}
