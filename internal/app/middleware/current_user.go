package middleware

import (
	"errors"

	"adagency/internal/app/role"

	"github.com/gin-gonic/gin"
)

// UserFromContext extracts the identity WithAuthCheck stored on the
// request context.
func UserFromContext(c *gin.Context) (uint, role.Role, error) {
	userID, exists := c.Get("userID")
	if !exists {
		return 0, "", errors.New("user not authenticated")
	}

	id, ok := userID.(uint)
	if !ok {
		return 0, "", errors.New("invalid user ID in context")
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	return id, r, nil
}
