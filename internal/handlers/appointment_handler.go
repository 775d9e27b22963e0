package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/hairlookapp/hairlook-api/internal/domain/appointment"
	"github.com/hairlookapp/hairlook-api/internal/dto"
	"github.com/hairlookapp/hairlook-api/internal/httperr"
	"github.com/hairlookapp/hairlook-api/internal/httpresp"
	"github.com/hairlookapp/hairlook-api/internal/models"
	ucAppointment "github.com/hairlookapp/hairlook-api/internal/usecase/appointment"
	"github.com/hairlookapp/hairlook-api/internal/validators"
)

type AppointmentHandler struct {
	db       *gorm.DB
	createUC *ucAppointment.CreateAppointment
	cancelUC *ucAppointment.CancelAppointment
	listUC   *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:       db,
		createUC: createUC,
		cancelUC: cancelUC,
		listUC:   listUC,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	Service string `json:"service" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Notes   string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Service *string `json:"service,omitempty"`
	Date    *string `json:"date,omitempty"`
	Time    *string `json:"time,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	Status  *string `json:"status,omitempty"`
}

func visibleAppointments(q *gorm.DB, callerID uint, isStaff bool) *gorm.DB {
	if isStaff {
		return q
	}
	return q.Where("user_id = ?", callerID)
}

// --------- Handlers ---------

func (h *AppointmentHandler) List(c *gin.Context) {
	callerID, isStaff := caller(c)

	aps, err := h.listUC.Execute(c.Request.Context(), callerID, isStaff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_appointments"})
		return
	}

	out := make([]dto.AppointmentResponse, 0, len(aps))
	for i := range aps {
		out = append(out, dto.NewAppointmentResponse(&aps[i]))
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Retrieve(c *gin.Context) {
	callerID, isStaff := caller(c)
	id, ok := pathID(c, "appointment_not_found")
	if !ok {
		return
	}

	var ap models.Appointment
	if err := visibleAppointments(h.db.Preload("User"), callerID, isStaff).
		Where("id = ?", id).
		First(&ap).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_appointment"})
		return
	}

	httpresp.OK(c, dto.NewAppointmentResponse(&ap))
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	callerID, _ := caller(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), callerID, ucAppointment.CreateInput{
		Service: req.Service,
		Date:    req.Date,
		Time:    req.Time,
		Notes:   req.Notes,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_service"):
			httperr.BadRequest(c, "invalid_service", "Unknown service code.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Date must be formatted 2006-01-02.")
		case httperr.IsBusiness(err, "invalid_time"):
			httperr.BadRequest(c, "invalid_time", "Time must be formatted 15:04.")
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_appointment"})
		}
		return
	}

	// The list projection embeds the owner's public identity; load it here too.
	if err := h.db.First(&ap.User, ap.UserID).Error; err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_appointment"})
		return
	}

	httpresp.Created(c, dto.NewAppointmentResponse(ap))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	callerID, isStaff := caller(c)
	id, ok := pathID(c, "appointment_not_found")
	if !ok {
		return
	}

	var ap models.Appointment
	if err := visibleAppointments(h.db.Preload("User"), callerID, isStaff).
		Where("id = ?", id).
		First(&ap).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_appointment"})
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Service != nil && !domain.ValidService(domain.Service(*req.Service)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_service"})
		return
	}
	if req.Date != nil && !validators.IsValidDate(*req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}
	if req.Time != nil && !validators.IsValidClockTime(*req.Time) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time"})
		return
	}
	if req.Status != nil && !domain.ValidStatus(domain.Status(*req.Status)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status"})
		return
	}

	if req.Service != nil {
		ap.Service = *req.Service
	}
	if req.Date != nil {
		ap.Date = *req.Date
	}
	if req.Time != nil {
		ap.Time = *req.Time
	}
	if req.Notes != nil {
		ap.Notes = *req.Notes
	}
	if req.Status != nil {
		ap.Status = *req.Status
	}

	if err := h.db.Omit("User").Save(&ap).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_appointment"})
		return
	}

	httpresp.OK(c, dto.NewAppointmentResponse(&ap))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	callerID, isStaff := caller(c)
	id, ok := pathID(c, "appointment_not_found")
	if !ok {
		return
	}

	res := visibleAppointments(h.db, callerID, isStaff).
		Where("id = ?", id).
		Delete(&models.Appointment{})

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_appointment"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment_not_found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Cancel does its own ownership check after a global lookup, so a non-owner
// gets a 403 rather than a 404, and the row is left untouched.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	callerID, isStaff := caller(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_appointment_id"})
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), callerID, isStaff, uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment_not_found"})
			return
		}
		if httperr.IsBusiness(err, "not_authorized") {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_cancel_appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": ap.Status})
}
