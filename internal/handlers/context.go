package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hairlookapp/hairlook-api/internal/middleware"
)

// caller pulls the authenticated identity out of the gin context. Only valid
// behind the auth middleware.
func caller(c *gin.Context) (uint, bool) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)
	isStaff := c.MustGet(middleware.ContextIsStaff).(bool)
	return callerID, isStaff
}

// pathID parses the numeric :id segment. A non-numeric id can never name a
// row, so it answers 404 with the resource's code before any query runs.
func pathID(c *gin.Context, code string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": code})
		return 0, false
	}
	return uint(id), true
}
