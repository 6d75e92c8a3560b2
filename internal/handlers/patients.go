package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reporter-backend/internal/apperr"
	"reporter-backend/internal/models"
	"reporter-backend/internal/store"
)

// --- Structs for Request Binding ---

type RegisterPatientRequest struct {
	Dossier string `form:"dossier" binding:"required"`
	Name    string `form:"name" binding:"required"`
	Surname string `form:"surname" binding:"required"`
	Gender  string `form:"gender" binding:"required"`
	Age     int    `form:"age" binding:"required"`
}

type PatientHistoryRequest struct {
	Dossier string `form:"dossier" binding:"required"`
}

// --- Handler Functions ---

func (h *Handlers) RegisterPatient(c *gin.Context) {
	var req RegisterPatientRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	// Friendly pre-check; the unique index still catches a race here.
	if _, err := h.Store.FindPatientByDossier(ctx, req.Dossier); err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": store.ErrDossierTaken.Error()})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database error", "details": err.Error()})
		return
	}

	patient := &models.Patient{
		Dossier: req.Dossier,
		Name:    req.Name,
		Surname: req.Surname,
		Gender:  req.Gender,
		Age:     req.Age,
	}
	if err := h.Store.CreatePatient(ctx, patient); err != nil {
		if errors.Is(err, store.ErrDossierTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to insert patient", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, patient)
}

func (h *Handlers) PatientHistory(c *gin.Context) {
	var req PatientHistoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	patient, err := h.Store.FindPatientByDossier(ctx, req.Dossier)
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, apperr.NotFound("patient not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database error", "details": err.Error()})
		return
	}

	reports, err := h.Store.ListReportsForPatient(ctx, patient.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database error fetching reports", "details": err.Error()})
		return
	}
	if len(reports) == 0 {
		respondError(c, apperr.NotFound("no reports found for this patient"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"patient": patient, "reports": reports})
}
