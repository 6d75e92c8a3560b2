package store

import (
	"context"
	"errors"

	"reporter-backend/internal/models"
)

// Sentinel errors returned by store implementations. Uniqueness of
// usernames and dossiers is enforced by the storage layer itself, so a
// lost check-then-insert race still surfaces as a conflict here.
var (
	ErrNotFound      = errors.New("record not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrDossierTaken  = errors.New("a patient with this dossier already exists")
)

type UserStore interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

type PatientStore interface {
	FindPatientByDossier(ctx context.Context, dossier string) (*models.Patient, error)
	CreatePatient(ctx context.Context, patient *models.Patient) error
}

type ReportStore interface {
	// ListReportsForPatient returns a patient's reports in insertion
	// order. Callers needing any other order sort themselves.
	ListReportsForPatient(ctx context.Context, patientID uint) ([]models.Report, error)
	CreateReport(ctx context.Context, report *models.Report) error
}

// Store bundles the three record stores behind one dependency.
type Store interface {
	UserStore
	PatientStore
	ReportStore
}
