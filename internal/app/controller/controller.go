// Package controller holds the Gin handlers for the ShopFlow API. Handlers
// bind and validate input, call the service layer and translate its
// sentinel errors into coded HTTP responses.
package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopflow/shopflow-backend/internal/errors"
	"github.com/shopflow/shopflow-backend/internal/middleware"
)

// parseIDParam reads the :id path parameter as a positive integer. On
// failure it writes the 400 response and returns false.
func parseIDParam(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		log := middleware.GetLoggerFromContext(c)
		log.Warn("Invalid ID parameter", map[string]interface{}{
			"id": idStr,
		})
		errors.BadRequest(c, errors.ValidationInvalidID, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}
