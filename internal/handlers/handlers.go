package handlers

import (
	"github.com/gin-gonic/gin"

	"reporter-backend/internal/apperr"
	"reporter-backend/internal/detect"
	"reporter-backend/internal/report"
	"reporter-backend/internal/session"
	"reporter-backend/internal/store"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "session"

// ContextUserID is the gin context key under which the auth middleware
// stores the authenticated user's id.
const ContextUserID = "user_id"

// Handlers carries the dependencies shared by all HTTP handlers.
type Handlers struct {
	Store     store.Store
	Detector  detect.Detector
	Composer  report.Composer
	Sessions  *session.Store
	Results   *session.ResultStore
	UploadDir string
}

func respondError(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), gin.H{"message": err.Error()})
}
