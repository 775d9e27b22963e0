package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hairlookapp/hairlook-api/internal/httpresp"
	"github.com/hairlookapp/hairlook-api/internal/models"
)

// Categories are shared reference data: globally visible and read-only here.
// Writes happen through operational tooling, not this API.
type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.HairstyleCategory
	if err := h.db.
		Order("id ASC").
		Find(&categories).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_categories"})
		return
	}

	httpresp.List(c, categories)
}

func (h *CategoryHandler) Retrieve(c *gin.Context) {
	id, ok := pathID(c, "category_not_found")
	if !ok {
		return
	}

	var category models.HairstyleCategory
	if err := h.db.
		Where("id = ?", id).
		First(&category).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "category_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_category"})
		return
	}

	httpresp.OK(c, category)
}
