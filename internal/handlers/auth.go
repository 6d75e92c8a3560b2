package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reporter-backend/internal/apperr"
	"reporter-backend/internal/models"
	"reporter-backend/internal/store"
	"reporter-backend/internal/utils"
)

// --- Structs for Request Binding ---

type RegisterRequest struct {
	Name          string `form:"name" binding:"required"`
	Surname       string `form:"surname" binding:"required"`
	Email         string `form:"email" binding:"required"`
	Username      string `form:"username" binding:"required"`
	Password      string `form:"password" binding:"required"`
	CheckPassword string `form:"check_password" binding:"required"`
}

type SignInRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// --- Handler Functions ---

func (h *Handlers) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "clinical reporter"})
}

func (h *Handlers) SignInForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "sign in with username and password"})
}

func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Password != req.CheckPassword {
		respondError(c, apperr.Validation("passwords do not match"))
		return
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		respondError(c, apperr.Validation(err.Error()))
		return
	}

	ctx := c.Request.Context()

	// Friendly pre-check; the unique index still catches a race here.
	if _, err := h.Store.FindUserByUsername(ctx, req.Username); err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": store.ErrUsernameTaken.Error()})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database error", "details": err.Error()})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to hash password"})
		return
	}

	user := &models.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Username: req.Username,
		Password: hash,
	}
	if err := h.Store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "sign up successful, please log in"})
}

func (h *Handlers) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Store.FindUserByUsername(c.Request.Context(), req.Username)
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, apperr.NotFound("user not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database error", "details": err.Error()})
		return
	}

	// Never more specific than this about which field was wrong.
	if !utils.CheckPassword(req.Password, user.Password) {
		respondError(c, apperr.Validation("wrong password"))
		return
	}

	token := h.Sessions.Issue(user.ID)
	c.SetCookie(SessionCookie, token, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/profile")
}

func (h *Handlers) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookie); err == nil {
		h.Sessions.Drop(token)
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) Profile(c *gin.Context) {
	user, err := h.Store.FindUserByID(c.Request.Context(), c.GetUint(ContextUserID))
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, apperr.NotFound("user not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database error", "details": err.Error()})
		return
	}

	resp := gin.H{"username": user.Username}
	if id := c.Query("result"); id != "" {
		if text, ok := h.Results.Take(id); ok {
			resp["generated_report"] = text
		}
	}
	c.JSON(http.StatusOK, resp)
}
