package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"reporter-backend/internal/models"
)

func TestCreateUser_DuplicateUsername(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	err := s.CreateUser(ctx, &models.User{Username: "drsmith", Password: "hash"})
	require.NoError(t, err)

	err = s.CreateUser(ctx, &models.User{Username: "drsmith", Password: "otherhash"})
	require.ErrorIs(t, err, ErrUsernameTaken)

	user, err := s.FindUserByUsername(ctx, "drsmith")
	require.NoError(t, err)
	require.Equal(t, "hash", user.Password)
}

func TestFindUser_Miss(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.FindUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.FindUserByID(ctx, 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePatient_DuplicateDossier(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	err := s.CreatePatient(ctx, &models.Patient{Dossier: "A1", Name: "Jane"})
	require.NoError(t, err)

	err = s.CreatePatient(ctx, &models.Patient{Dossier: "A1", Name: "John"})
	require.ErrorIs(t, err, ErrDossierTaken)
}

// The uniqueness check lives inside the store's critical section, so
// two racing registrations of the same dossier produce exactly one row.
func TestCreatePatient_ConcurrentSameDossier(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.CreatePatient(ctx, &models.Patient{Dossier: "B2"})
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
		} else {
			require.ErrorIs(t, err, ErrDossierTaken)
		}
	}
	require.Equal(t, 1, ok)
}

func TestReport_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	patient := &models.Patient{Dossier: "A1", Name: "Jane", Surname: "Doe", Gender: "F", Age: 34}
	require.NoError(t, s.CreatePatient(ctx, patient))

	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	report := &models.Report{PatientID: patient.ID, ReportDate: date, ReportText: "two cats and a chair"}
	require.NoError(t, s.CreateReport(ctx, report))

	reports, err := s.ListReportsForPatient(ctx, patient.ID)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, date, reports[0].ReportDate)
	require.Equal(t, "two cats and a chair", reports[0].ReportText)
}

func TestListReports_InsertionOrderAndIsolation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	p1 := &models.Patient{Dossier: "A1"}
	p2 := &models.Patient{Dossier: "A2"}
	require.NoError(t, s.CreatePatient(ctx, p1))
	require.NoError(t, s.CreatePatient(ctx, p2))

	require.NoError(t, s.CreateReport(ctx, &models.Report{PatientID: p1.ID, ReportText: "first"}))
	require.NoError(t, s.CreateReport(ctx, &models.Report{PatientID: p2.ID, ReportText: "other patient"}))
	require.NoError(t, s.CreateReport(ctx, &models.Report{PatientID: p1.ID, ReportText: "second"}))

	reports, err := s.ListReportsForPatient(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	require.Equal(t, "first", reports[0].ReportText)
	require.Equal(t, "second", reports[1].ReportText)
}
