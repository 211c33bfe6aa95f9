package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID pulls the authenticated user id the auth middleware stored on
// the request context.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, false
	}
	s, ok := v.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
