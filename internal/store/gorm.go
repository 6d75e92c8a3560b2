package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"reporter-backend/internal/models"
)

// GormStore implements Store on top of a gorm connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (s *GormStore) FindPatientByDossier(ctx context.Context, dossier string) (*models.Patient, error) {
	var patient models.Patient
	if err := s.db.WithContext(ctx).Where("dossier = ?", dossier).First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &patient, nil
}

func (s *GormStore) CreatePatient(ctx context.Context, patient *models.Patient) error {
	if err := s.db.WithContext(ctx).Create(patient).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDossierTaken
		}
		return err
	}
	return nil
}

func (s *GormStore) ListReportsForPatient(ctx context.Context, patientID uint) ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.WithContext(ctx).Where("patient_id = ?", patientID).Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *GormStore) CreateReport(ctx context.Context, report *models.Report) error {
	return s.db.WithContext(ctx).Create(report).Error
}

// isDuplicateKey matches unique-constraint violations from both
// Postgres and SQLite wordings.
func isDuplicateKey(err error) bool {
	return strings.Contains(err.Error(), "duplicate key value violates unique constraint") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

var _ Store = (*GormStore)(nil)
