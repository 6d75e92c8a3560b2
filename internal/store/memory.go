package store

import (
	"context"
	"sync"

	"reporter-backend/internal/models"
)

// MemoryStore is an in-memory Store with the same uniqueness semantics
// as the gorm implementation. Used in tests.
type MemoryStore struct {
	mu       sync.RWMutex
	users    []models.User
	patients []models.Patient
	reports  []models.Report
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Username == username {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Username == user.Username {
			return ErrUsernameTaken
		}
	}
	user.ID = uint(len(s.users) + 1)
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStore) FindPatientByDossier(ctx context.Context, dossier string) (*models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.patients {
		if s.patients[i].Dossier == dossier {
			patient := s.patients[i]
			return &patient, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreatePatient(ctx context.Context, patient *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].Dossier == patient.Dossier {
			return ErrDossierTaken
		}
	}
	patient.ID = uint(len(s.patients) + 1)
	s.patients = append(s.patients, *patient)
	return nil
}

func (s *MemoryStore) ListReportsForPatient(ctx context.Context, patientID uint) ([]models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var reports []models.Report
	for i := range s.reports {
		if s.reports[i].PatientID == patientID {
			reports = append(reports, s.reports[i])
		}
	}
	return reports, nil
}

func (s *MemoryStore) CreateReport(ctx context.Context, report *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	report.ID = uint(len(s.reports) + 1)
	s.reports = append(s.reports, *report)
	return nil
}

var _ Store = (*MemoryStore)(nil)
