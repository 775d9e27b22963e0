package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hairlookapp/hairlook-api/internal/dto"
	"github.com/hairlookapp/hairlook-api/internal/httpresp"
	"github.com/hairlookapp/hairlook-api/internal/models"
)

// Identity provisioning is external (register/out-of-band tooling); this
// resource only lists, shows and updates accounts.
type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// --------- Requests ---------

type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// visibleUsers narrows the queryset to the caller's own account unless the
// caller is staff.
func visibleUsers(q *gorm.DB, callerID uint, isStaff bool) *gorm.DB {
	if isStaff {
		return q
	}
	return q.Where("id = ?", callerID)
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	callerID, isStaff := caller(c)

	var users []models.User
	if err := visibleUsers(h.db, callerID, isStaff).
		Order("id ASC").
		Find(&users).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_users"})
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}

	httpresp.List(c, out)
}

func (h *UserHandler) Retrieve(c *gin.Context) {
	callerID, isStaff := caller(c)
	id, ok := pathID(c, "user_not_found")
	if !ok {
		return
	}

	var user models.User
	if err := visibleUsers(h.db, callerID, isStaff).
		Where("id = ?", id).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_user"})
		return
	}

	httpresp.OK(c, dto.NewUserResponse(&user))
}

func (h *UserHandler) Update(c *gin.Context) {
	callerID, isStaff := caller(c)
	id, ok := pathID(c, "user_not_found")
	if !ok {
		return
	}

	var user models.User
	if err := visibleUsers(h.db, callerID, isStaff).
		Where("id = ?", id).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_user"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_user"})
		return
	}

	httpresp.OK(c, dto.NewUserResponse(&user))
}
