package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hairlookapp/hairlook-api/internal/audit"
	"github.com/hairlookapp/hairlook-api/internal/domain/catalog"
	"github.com/hairlookapp/hairlook-api/internal/dto"
	"github.com/hairlookapp/hairlook-api/internal/httperr"
	"github.com/hairlookapp/hairlook-api/internal/httpresp"
	"github.com/hairlookapp/hairlook-api/internal/models"
)

// Saved hairstyles are strictly owner-scoped, like try-on sessions.
type SavedHandler struct {
	db      *gorm.DB
	catalog catalog.Repository
	audit   audit.Sink
}

func NewSavedHandler(db *gorm.DB, repo catalog.Repository, sink audit.Sink) *SavedHandler {
	return &SavedHandler{db: db, catalog: repo, audit: sink}
}

// --------- Requests ---------

type CreateSavedRequest struct {
	Hairstyle    uint  `json:"hairstyle" binding:"required"`
	TryOnSession *uint `json:"tryon_session,omitempty"`
}

type UpdateSavedRequest struct {
	TryOnSession *uint `json:"tryon_session,omitempty"`
}

// --------- Handlers ---------

func (h *SavedHandler) List(c *gin.Context) {
	callerID, _ := caller(c)

	var saved []models.SavedHairstyle
	if err := h.db.Preload("Hairstyle.Category").
		Where("user_id = ?", callerID).
		Order("saved_at DESC").
		Find(&saved).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_saved"})
		return
	}

	out := make([]dto.SavedHairstyleResponse, 0, len(saved))
	for i := range saved {
		out = append(out, dto.NewSavedHairstyleResponse(&saved[i]))
	}

	httpresp.List(c, out)
}

func (h *SavedHandler) Retrieve(c *gin.Context) {
	callerID, _ := caller(c)
	id, ok := pathID(c, "saved_hairstyle_not_found")
	if !ok {
		return
	}

	var saved models.SavedHairstyle
	if err := h.db.Preload("Hairstyle.Category").
		Where("id = ? AND user_id = ?", id, callerID).
		First(&saved).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "saved_hairstyle_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_saved"})
		return
	}

	httpresp.OK(c, dto.NewSavedHairstyleResponse(&saved))
}

func (h *SavedHandler) Create(c *gin.Context) {
	callerID, _ := caller(c)

	var req CreateSavedRequest
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

	// A linked try-on session must exist and belong to the caller.
	if req.TryOnSession != nil {
		var count int64
		if err := h.db.Model(&models.TryOnSession{}).
			Where("id = ? AND user_id = ?", *req.TryOnSession, callerID).
			Count(&count).Error; err != nil {

			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_session"})
			return
		}
		if count == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_tryon_session"})
			return
		}
	}

	saved := models.SavedHairstyle{
		UserID:         callerID,
		HairstyleID:    hairstyle.ID,
		TryOnSessionID: req.TryOnSession,
	}

	if err := h.catalog.SaveFavorite(c.Request.Context(), &saved); err != nil {
		if httperr.IsBusiness(err, "already_saved") {
			httperr.Conflict(c, "already_saved", "This hairstyle is already saved.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_hairstyle"})
		return
	}

	saved.Hairstyle = hairstyle

	h.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "hairstyle_saved",
		Entity:   "saved_hairstyle",
		EntityID: &saved.ID,
	})

	httpresp.Created(c, dto.NewSavedHairstyleResponse(&saved))
}

func (h *SavedHandler) Update(c *gin.Context) {
	callerID, _ := caller(c)
	id, ok := pathID(c, "saved_hairstyle_not_found")
	if !ok {
		return
	}

	var saved models.SavedHairstyle
	if err := h.db.Preload("Hairstyle.Category").
		Where("id = ? AND user_id = ?", id, callerID).
		First(&saved).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "saved_hairstyle_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_saved"})
		return
	}

	var req UpdateSavedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.TryOnSession != nil {
		var count int64
		if err := h.db.Model(&models.TryOnSession{}).
			Where("id = ? AND user_id = ?", *req.TryOnSession, callerID).
			Count(&count).Error; err != nil {

			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_session"})
			return
		}
		if count == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_tryon_session"})
			return
		}
		saved.TryOnSessionID = req.TryOnSession
	}

	if err := h.db.Omit("User", "Hairstyle", "TryOnSession").Save(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_saved"})
		return
	}

	httpresp.OK(c, dto.NewSavedHairstyleResponse(&saved))
}

func (h *SavedHandler) Delete(c *gin.Context) {
	callerID, _ := caller(c)
	id, ok := pathID(c, "saved_hairstyle_not_found")
	if !ok {
		return
	}

	res := h.db.
		Where("id = ? AND user_id = ?", id, callerID).
		Delete(&models.SavedHairstyle{})

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_saved"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "saved_hairstyle_not_found"})
		return
	}

	c.Status(http.StatusNoContent)
}
