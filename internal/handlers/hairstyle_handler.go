package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hairlookapp/hairlook-api/internal/audit"
	"github.com/hairlookapp/hairlook-api/internal/domain/catalog"
	"github.com/hairlookapp/hairlook-api/internal/dto"
	"github.com/hairlookapp/hairlook-api/internal/httpresp"
	"github.com/hairlookapp/hairlook-api/internal/models"
	"github.com/hairlookapp/hairlook-api/internal/validators"
)

type HairstyleHandler struct {
	db      *gorm.DB
	catalog catalog.Repository
	audit   audit.Sink
}

func NewHairstyleHandler(db *gorm.DB, repo catalog.Repository, sink audit.Sink) *HairstyleHandler {
	return &HairstyleHandler{db: db, catalog: repo, audit: sink}
}

// --------- Requests ---------

type CreateHairstyleRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    uint   `json:"category" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Gender      string `json:"gender"`
	Length      string `json:"length" binding:"required"`
}

type UpdateHairstyleRequest struct {
	Name        *string `json:"name,omitempty"`
	Category    *uint   `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Length      *string `json:"length,omitempty"`
}

// Ordering allow-list; a leading "-" flips to descending.
var hairstyleOrderings = map[string]string{
	"name":       "name",
	"likes":      "likes",
	"created_at": "created_at",
}

// --------- Handlers ---------

func (h *HairstyleHandler) List(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	gender := strings.TrimSpace(c.Query("gender"))
	length := strings.TrimSpace(c.Query("length"))
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	ordering := strings.TrimSpace(c.Query("ordering"))

	q := h.db.Model(&models.Hairstyle{}).Preload("Category")

	// Category filters by name, not id.
	if category != "" {
		q = q.Joins("JOIN hairstyle_categories ON hairstyle_categories.id = hairstyles.category_id").
			Where("hairstyle_categories.name = ?", category)
	}
	if gender != "" {
		q = q.Where("gender = ?", gender)
	}
	if length != "" {
		q = q.Where("length = ?", length)
	}

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(hairstyles.name) LIKE ? OR LOWER(hairstyles.description) LIKE ?", like, like)
	}

	order := "id ASC"
	if ordering != "" {
		field := ordering
		desc := false
		if strings.HasPrefix(field, "-") {
			field = field[1:]
			desc = true
		}
		if col, ok := hairstyleOrderings[field]; ok {
			order = col + " ASC"
			if desc {
				order = col + " DESC"
			}
		}
	}

	var hairstyles []models.Hairstyle
	if err := q.
		Order(order).
		Find(&hairstyles).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_hairstyles"})
		return
	}

	out := make([]dto.HairstyleResponse, 0, len(hairstyles))
	for i := range hairstyles {
		out = append(out, dto.NewHairstyleResponse(&hairstyles[i]))
	}

	httpresp.List(c, out)
}

func (h *HairstyleHandler) Retrieve(c *gin.Context) {
	id, ok := pathID(c, "hairstyle_not_found")
	if !ok {
		return
	}

	var hairstyle models.Hairstyle
	if err := h.db.Preload("Category").
		Where("id = ?", id).
		First(&hairstyle).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "hairstyle_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_hairstyle"})
		return
	}

	httpresp.OK(c, dto.NewHairstyleResponse(&hairstyle))
}

func (h *HairstyleHandler) Create(c *gin.Context) {
	var req CreateHairstyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Gender == "" {
		req.Gender = "U"
	}
	if !validators.IsValidGender(req.Gender) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_gender"})
		return
	}
	if !validators.IsValidLength(req.Length) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_length"})
		return
	}

	var category models.HairstyleCategory
	if err := h.db.First(&category, req.Category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_category"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_category"})
		return
	}

	hairstyle := models.Hairstyle{
		CategoryID:  category.ID,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Gender:      req.Gender,
		Length:      req.Length,
	}

	if err := h.db.Omit("Category").Create(&hairstyle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_hairstyle"})
		return
	}

	hairstyle.Category = category
	httpresp.Created(c, dto.NewHairstyleResponse(&hairstyle))
}

func (h *HairstyleHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "hairstyle_not_found")
	if !ok {
		return
	}

	var hairstyle models.Hairstyle
	if err := h.db.Preload("Category").
		Where("id = ?", id).
		First(&hairstyle).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "hairstyle_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_hairstyle"})
		return
	}

	var req UpdateHairstyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Gender != nil && !validators.IsValidGender(*req.Gender) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_gender"})
		return
	}
	if req.Length != nil && !validators.IsValidLength(*req.Length) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_length"})
		return
	}

	if req.Category != nil {
		var category models.HairstyleCategory
		if err := h.db.First(&category, *req.Category).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_category"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_category"})
			return
		}
		hairstyle.CategoryID = category.ID
		hairstyle.Category = category
	}

	if req.Name != nil {
		hairstyle.Name = *req.Name
	}
	if req.Description != nil {
		hairstyle.Description = *req.Description
	}
	if req.Image != nil {
		hairstyle.Image = *req.Image
	}
	if req.Gender != nil {
		hairstyle.Gender = *req.Gender
	}
	if req.Length != nil {
		hairstyle.Length = *req.Length
	}

	if err := h.db.Omit("Category").Save(&hairstyle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_hairstyle"})
		return
	}

	httpresp.OK(c, dto.NewHairstyleResponse(&hairstyle))
}

func (h *HairstyleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "hairstyle_not_found")
	if !ok {
		return
	}

	res := h.db.Where("id = ?", id).Delete(&models.Hairstyle{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_hairstyle"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "hairstyle_not_found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Like bumps the counter atomically at the storage layer and answers with the
// fresh count.
func (h *HairstyleHandler) Like(c *gin.Context) {
	callerID, _ := caller(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_hairstyle_id"})
		return
	}

	likes, err := h.catalog.IncrementLikes(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "hairstyle_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_like_hairstyle"})
		return
	}

	hairstyleID := uint(id)
	h.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "hairstyle_liked",
		Entity:   "hairstyle",
		EntityID: &hairstyleID,
	})

	c.JSON(http.StatusOK, gin.H{"likes": likes})
}
