package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hairlookapp/hairlook-api/internal/dto"
	"github.com/hairlookapp/hairlook-api/internal/httperr"
	"github.com/hairlookapp/hairlook-api/internal/httpresp"
	"github.com/hairlookapp/hairlook-api/internal/infra/repository"
	"github.com/hairlookapp/hairlook-api/internal/models"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// --------- Requests ---------

type CreateProfileRequest struct {
	Phone            string `json:"phone"`
	ProfilePicture   string `json:"profile_picture"`
	PreferredStylist string `json:"preferred_stylist"`
}

type UpdateProfileRequest struct {
	Phone            *string `json:"phone,omitempty"`
	ProfilePicture   *string `json:"profile_picture,omitempty"`
	PreferredStylist *string `json:"preferred_stylist,omitempty"`
}

func visibleProfiles(q *gorm.DB, callerID uint, isStaff bool) *gorm.DB {
	if isStaff {
		return q
	}
	return q.Where("user_id = ?", callerID)
}

// --------- Handlers ---------

func (h *ProfileHandler) List(c *gin.Context) {
	callerID, isStaff := caller(c)

	var profiles []models.UserProfile
	if err := visibleProfiles(h.db.Preload("User"), callerID, isStaff).
		Order("id ASC").
		Find(&profiles).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_profiles"})
		return
	}

	out := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, dto.NewProfileResponse(&profiles[i]))
	}

	httpresp.List(c, out)
}

func (h *ProfileHandler) Retrieve(c *gin.Context) {
	callerID, isStaff := caller(c)
	id, ok := pathID(c, "profile_not_found")
	if !ok {
		return
	}

	var profile models.UserProfile
	if err := visibleProfiles(h.db.Preload("User"), callerID, isStaff).
		Where("id = ?", id).
		First(&profile).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_profile"})
		return
	}

	httpresp.OK(c, dto.NewProfileResponse(&profile))
}

func (h *ProfileHandler) Create(c *gin.Context) {
	callerID, _ := caller(c)

	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	profile := models.UserProfile{
		UserID:           callerID,
		Phone:            req.Phone,
		ProfilePicture:   req.ProfilePicture,
		PreferredStylist: req.PreferredStylist,
	}

	if err := h.db.Omit("User").Create(&profile).Error; err != nil {
		if repository.IsUniqueViolation(err) {
			httperr.Conflict(c, "profile_exists", "This user already has a profile.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_profile"})
		return
	}

	if err := h.db.Preload("User").First(&profile, profile.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_profile"})
		return
	}

	httpresp.Created(c, dto.NewProfileResponse(&profile))
}

func (h *ProfileHandler) Update(c *gin.Context) {
	callerID, isStaff := caller(c)
	id, ok := pathID(c, "profile_not_found")
	if !ok {
		return
	}

	var profile models.UserProfile
	if err := visibleProfiles(h.db.Preload("User"), callerID, isStaff).
		Where("id = ?", id).
		First(&profile).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_profile"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.ProfilePicture != nil {
		profile.ProfilePicture = *req.ProfilePicture
	}
	if req.PreferredStylist != nil {
		profile.PreferredStylist = *req.PreferredStylist
	}

	if err := h.db.Omit("User").Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_profile"})
		return
	}

	httpresp.OK(c, dto.NewProfileResponse(&profile))
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	callerID, isStaff := caller(c)
	id, ok := pathID(c, "profile_not_found")
	if !ok {
		return
	}

	res := visibleProfiles(h.db, callerID, isStaff).
		Where("id = ?", id).
		Delete(&models.UserProfile{})

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_profile"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile_not_found"})
		return
	}

	c.Status(http.StatusNoContent)
}
