package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/infra/repository"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

func seedAppointment(t *testing.T, repo *repository.MemoryRepository, status string) {
	t.Helper()
	seedClient(repo, "c1", "Arthur Lima", "arthur@email.com")
	require.NoError(t, repo.CreateAppointment(context.Background(), &models.Appointment{
		ID:       "ap1",
		ClientID: "c1",
		Date:     "2025-03-12",
		Time:     "14:20",
		Type:     "Clinical",
		Status:   status,
		MeetLink: "https://meet.google.com/kezya-arthur-sessao",
		Price:    180,
		Duration: 40,
	}))
}

func TestStartTelehealth_RecognisesRevenueOnce(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedAppointment(t, repo, "scheduled")
	uc := NewStartTelehealth(repo, &seqIDs{}, testClock(), nil, nil)
	ctx := context.Background()

	res, err := uc.Execute(ctx, 1, "ap1")
	require.NoError(t, err)
	assert.Equal(t, "https://meet.google.com/kezya-arthur-sessao", res.MeetLink)
	require.NotNil(t, res.Appointment.StartedAt)

	finances := repo.Finances()
	require.Len(t, finances, 1)
	assert.Equal(t, "Atendimento (Clinical) - Arthur Lima", finances[0].Description)
	assert.Equal(t, 180.0, finances[0].Amount)
	assert.Equal(t, "income", finances[0].Type)
	assert.Equal(t, "2025-03-12", finances[0].Date)
	assert.Equal(t, "Atendimento", finances[0].Category)

	_, err = uc.Execute(ctx, 1, "ap1")
	assert.True(t, httperr.IsBusiness(err, "already_started"))
	assert.Len(t, repo.Finances(), 1)
}

func TestStartTelehealth_CancelledAppointment(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedAppointment(t, repo, "cancelled")

	_, err := NewStartTelehealth(repo, &seqIDs{}, testClock(), nil, nil).Execute(context.Background(), 1, "ap1")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Empty(t, repo.Finances())
}

func TestStartTelehealth_NotFound(t *testing.T) {
	uc := NewStartTelehealth(repository.NewMemoryRepository(), &seqIDs{}, testClock(), nil, nil)

	_, err := uc.Execute(context.Background(), 1, "missing")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCompleteAppointment_UpdatesClient(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedAppointment(t, repo, "scheduled")
	ctx := context.Background()

	ap, err := NewCompleteAppointment(repo, testClock(), nil).Execute(ctx, 1, "ap1")
	require.NoError(t, err)
	assert.Equal(t, "completed", ap.Status)
	assert.NotNil(t, ap.CompletedAt)

	client, err := repo.GetClient(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, client.LastSessionDate)
	assert.Equal(t, "2025-03-12", *client.LastSessionDate)
	assert.Equal(t, ClientStatusActive, client.Status)

	_, err = NewCompleteAppointment(repo, testClock(), nil).Execute(ctx, 1, "ap1")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelAppointment_FreesSlot(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedAppointment(t, repo, "scheduled")
	ctx := context.Background()

	ap, err := NewCancelAppointment(repo, testClock(), nil).Execute(ctx, 1, "ap1")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)

	taken, err := repo.HasActiveAppointmentAt(ctx, "2025-03-12", "14:20")
	require.NoError(t, err)
	assert.False(t, taken)

	_, err = NewCancelAppointment(repo, testClock(), nil).Execute(ctx, 1, "ap1")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
