package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"schoolgrid/backend/internal/api/middleware"
)

// currentUserID reads the authenticated user id set by JWTAuth.
func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get(middleware.CtxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// currentTokenID reads the JWT id set by JWTAuth.
func currentTokenID(c *gin.Context) string {
	return c.GetString(middleware.CtxTokenID)
}

// currentTokenExpiry reads the token expiry set by JWTAuth.
func currentTokenExpiry(c *gin.Context) time.Time {
	if v, ok := c.Get(middleware.CtxExpiresAt); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
