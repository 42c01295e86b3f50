package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/infra/repository"
)

func newManual(repo *repository.MemoryRepository) *CreateManualAppointment {
	ids := &seqIDs{}
	return NewCreateManualAppointment(repo, defaultSettings(), ids, ids, nil, nil)
}

func TestCreateManual_NeuropsychologyDefaults(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedClient(repo, "c1", "Arthur Lima", "arthur@email.com")

	ap, err := newManual(repo).Execute(context.Background(), ManualInput{
		ClientID: "c1", Date: "2025-03-13", Time: "15:10", Type: "Neuropsychology",
	})
	require.NoError(t, err)

	assert.Equal(t, "Neuropsychology", ap.Type)
	assert.Equal(t, 350.0, ap.Price)
	assert.Equal(t, 90, ap.Duration)
	assert.Equal(t, "admin", ap.Source)
	assert.Equal(t, "Arthur Lima", ap.Client.Name)
}

func TestCreateManual_ClinicalUsesSettingsAndOverrides(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedClient(repo, "c1", "Arthur Lima", "arthur@email.com")
	uc := newManual(repo)
	ctx := context.Background()

	ap, err := uc.Execute(ctx, ManualInput{ClientID: "c1", Date: "2025-03-13", Time: "09:00"})
	require.NoError(t, err)
	assert.Equal(t, "Clinical", ap.Type)
	assert.Equal(t, 180.0, ap.Price)
	assert.Equal(t, 40, ap.Duration)

	ap, err = uc.Execute(ctx, ManualInput{
		ClientID: "c1", Date: "2025-03-13", Time: "09:50", Type: "Clinical", Price: 220, Duration: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 220.0, ap.Price)
	assert.Equal(t, 50, ap.Duration)
}

func TestCreateManual_AllowsPastTimes(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedClient(repo, "c1", "Arthur Lima", "arthur@email.com")

	_, err := newManual(repo).Execute(context.Background(), ManualInput{
		ClientID: "c1", Date: "2020-01-02", Time: "08:00",
	})
	assert.NoError(t, err)
}

func TestCreateManual_Errors(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedClient(repo, "c1", "Arthur Lima", "arthur@email.com")
	uc := newManual(repo)
	ctx := context.Background()

	_, err := uc.Execute(ctx, ManualInput{ClientID: "nope", Date: "2025-03-13", Time: "09:00"})
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))

	_, err = uc.Execute(ctx, ManualInput{ClientID: "c1", Date: "2025-03-13", Time: "09:00", Type: "Massage"})
	assert.True(t, httperr.IsBusiness(err, "invalid_type"))

	_, err = uc.Execute(ctx, ManualInput{ClientID: "c1", Date: "2025-03-13", Time: "9h"})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestCreateManual_ConflictsWithPublicBooking(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedClient(repo, "c1", "Arthur Lima", "arthur@email.com")
	ctx := context.Background()

	_, err := newRegisterBooking(repo).Execute(ctx, BookingInput{
		Name: "Carla", Email: "carla@email.com", Phone: "1", Date: "2025-03-13", Time: "13:30",
	})
	require.NoError(t, err)

	_, err = newManual(repo).Execute(ctx, ManualInput{ClientID: "c1", Date: "2025-03-13", Time: "13:30"})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
}
