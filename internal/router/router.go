package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"reporter-backend/internal/handlers"
	"reporter-backend/internal/session"
)

// AuthRequired resolves the session cookie to a user id and injects it
// into the request context. Anything without a valid session is sent
// back to sign-in.
func AuthRequired(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(handlers.SessionCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/signin")
			c.Abort()
			return
		}
		userID, ok := sessions.Resolve(token)
		if !ok {
			c.Redirect(http.StatusFound, "/signin")
			c.Abort()
			return
		}
		c.Set(handlers.ContextUserID, userID)
		c.Next()
	}
}

// New assembles the gin engine with all routes and middleware.
func New(h *handlers.Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", h.Index)
	r.GET("/signin", h.SignInForm)
	r.POST("/signin", h.SignIn)
	r.POST("/register", h.Register)

	auth := r.Group("", AuthRequired(h.Sessions))
	auth.GET("/logout", h.Logout)
	auth.GET("/profile", h.Profile)
	auth.POST("/patients", h.RegisterPatient)
	auth.POST("/patients/history", h.PatientHistory)
	auth.POST("/reports/generate", h.GenerateReport)

	return r
}
