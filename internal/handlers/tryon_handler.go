package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hairlookapp/hairlook-api/internal/audit"
	"github.com/hairlookapp/hairlook-api/internal/dto"
	"github.com/hairlookapp/hairlook-api/internal/httpresp"
	"github.com/hairlookapp/hairlook-api/internal/models"
)

// Try-on sessions are strictly owner-scoped: staff gets no widened view here.
type TryOnHandler struct {
	db    *gorm.DB
	audit audit.Sink
}

func NewTryOnHandler(db *gorm.DB, sink audit.Sink) *TryOnHandler {
	return &TryOnHandler{db: db, audit: sink}
}

// --------- Requests ---------

// The owner is never client-supplied; a "user" field in the payload is simply
// not bound and the caller identity is injected at persistence time.
type CreateTryOnRequest struct {
	Hairstyle     uint   `json:"hairstyle" binding:"required"`
	OriginalPhoto string `json:"original_photo" binding:"required"`
	ResultPhoto   string `json:"result_photo"`
	IsSaved       *bool  `json:"is_saved,omitempty"`
}

type UpdateTryOnRequest struct {
	Hairstyle     *uint   `json:"hairstyle,omitempty"`
	OriginalPhoto *string `json:"original_photo,omitempty"`
	ResultPhoto   *string `json:"result_photo,omitempty"`
	IsSaved       *bool   `json:"is_saved,omitempty"`
}

// --------- Handlers ---------

func (h *TryOnHandler) List(c *gin.Context) {
	callerID, _ := caller(c)

	var sessions []models.TryOnSession
	if err := h.db.Preload("Hairstyle.Category").
		Where("user_id = ?", callerID).
		Order("created_at DESC").
		Find(&sessions).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_sessions"})
		return
	}

	out := make([]dto.TryOnSessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, dto.NewTryOnSessionResponse(&sessions[i]))
	}

	httpresp.List(c, out)
}

func (h *TryOnHandler) Retrieve(c *gin.Context) {
	callerID, _ := caller(c)
	id, ok := pathID(c, "session_not_found")
	if !ok {
		return
	}

	var session models.TryOnSession
	if err := h.db.Preload("Hairstyle.Category").
		Where("id = ? AND user_id = ?", id, callerID).
		First(&session).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "session_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_session"})
		return
	}

	httpresp.OK(c, dto.NewTryOnSessionResponse(&session))
}

func (h *TryOnHandler) Create(c *gin.Context) {
	callerID, _ := caller(c)

	var req CreateTryOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var hairstyle models.Hairstyle
	if err := h.db.Preload("Category").
		Where("id = ?", req.Hairstyle).
		First(&hairstyle).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_hairstyle"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_hairstyle"})
		return
	}

	session := models.TryOnSession{
		UserID:        callerID,
		HairstyleID:   hairstyle.ID,
		OriginalPhoto: req.OriginalPhoto,
		ResultPhoto:   req.ResultPhoto,
	}
	if req.IsSaved != nil {
		session.IsSaved = *req.IsSaved
	}

	if err := h.db.Omit("User", "Hairstyle").Create(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_session"})
		return
	}

	session.Hairstyle = hairstyle

	h.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "tryon_created",
		Entity:   "tryon_session",
		EntityID: &session.ID,
	})

	httpresp.Created(c, dto.NewTryOnSessionResponse(&session))
}

func (h *TryOnHandler) Update(c *gin.Context) {
	callerID, _ := caller(c)
	id, ok := pathID(c, "session_not_found")
	if !ok {
		return
	}

	var session models.TryOnSession
	if err := h.db.Preload("Hairstyle.Category").
		Where("id = ? AND user_id = ?", id, callerID).
		First(&session).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "session_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_session"})
		return
	}

	var req UpdateTryOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Hairstyle != nil {
		var hairstyle models.Hairstyle
		if err := h.db.Preload("Category").
			Where("id = ?", *req.Hairstyle).
			First(&hairstyle).Error; err != nil {

			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_hairstyle"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_hairstyle"})
			return
		}
		session.HairstyleID = hairstyle.ID
		session.Hairstyle = hairstyle
	}

	if req.OriginalPhoto != nil {
		session.OriginalPhoto = *req.OriginalPhoto
	}
	if req.ResultPhoto != nil {
		session.ResultPhoto = *req.ResultPhoto
	}
	if req.IsSaved != nil {
		session.IsSaved = *req.IsSaved
	}

	if err := h.db.Omit("User", "Hairstyle").Save(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_session"})
		return
	}

	httpresp.OK(c, dto.NewTryOnSessionResponse(&session))
}

func (h *TryOnHandler) Delete(c *gin.Context) {
	callerID, _ := caller(c)
	id, ok := pathID(c, "session_not_found")
	if !ok {
		return
	}

	res := h.db.
		Where("id = ? AND user_id = ?", id, callerID).
		Delete(&models.TryOnSession{})

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_session"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "session_not_found"})
		return
	}

	c.Status(http.StatusNoContent)
}
