package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"reporter-backend/internal/apperr"
	"reporter-backend/internal/models"
	"reporter-backend/internal/report"
	"reporter-backend/internal/store"
	"reporter-backend/internal/utils"
)

// GenerateReport runs the report workflow: validate the patient, store
// the uploaded image, detect objects, compose the report text, persist
// it and redirect to the profile view carrying the result id.
func (h *Handlers) GenerateReport(c *gin.Context) {
	ctx := c.Request.Context()

	dossier := c.PostForm("dossier")
	if dossier == "" {
		respondError(c, apperr.Validation("dossier is required"))
		return
	}

	patient, err := h.Store.FindPatientByDossier(ctx, dossier)
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, apperr.NotFound("patient not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database error", "details": err.Error()})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, apperr.Validation("image file is required"))
		return
	}
	if !utils.AllowedImageExt(file.Filename) {
		respondError(c, apperr.Validation("unsupported image extension, use png, jpg or jpeg"))
		return
	}

	// Keyed by original filename; identical names overwrite.
	savePath := filepath.Join(h.UploadDir, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to save upload", "details": err.Error()})
		return
	}

	image, err := os.ReadFile(savePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to read upload", "details": err.Error()})
		return
	}

	detections, err := h.Detector.Detect(ctx, image)
	if err != nil {
		respondError(c, err)
		return
	}

	text, err := h.Composer.Compose(ctx, detections, report.PatientSummary{
		ID:      patient.ID,
		Dossier: patient.Dossier,
		Name:    patient.Name,
		Surname: patient.Surname,
		Gender:  patient.Gender,
		Age:     patient.Age,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// If this insert fails the generated text is gone; nothing re-shows
	// or retries it.
	rpt := &models.Report{
		PatientID:  patient.ID,
		ReportDate: time.Now(),
		ReportText: text,
	}
	if err := h.Store.CreateReport(ctx, rpt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to save report", "details": err.Error()})
		return
	}

	resultID := h.Results.Put(text)
	c.Redirect(http.StatusFound, "/profile?result="+resultID)
}
