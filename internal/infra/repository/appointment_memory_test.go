package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

func TestMemoryRepository_ClientLookupIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.CreateClient(ctx, &models.Client{ID: "c-1", Email: "Ana@X.com"}))

	c, err := repo.FindClientByEmail(ctx, "ana@x.COM")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "c-1", c.ID)

	c, err = repo.FindClientByEmail(ctx, "other@x.com")
	assert.NoError(t, err)
	assert.Nil(t, c)
}

func TestMemoryRepository_ActiveSlotIgnoresCancelled(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
		ID: "ap-1", Date: "2024-06-10", Time: "09:00", Status: "cancelled",
	}))

	taken, err := repo.HasActiveAppointmentAt(ctx, "2024-06-10", "09:00")
	require.NoError(t, err)
	assert.False(t, taken)

	require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
		ID: "ap-2", Date: "2024-06-10", Time: "09:00", Status: "scheduled",
	}))

	taken, err = repo.HasActiveAppointmentAt(ctx, "2024-06-10", "09:00")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestMemoryRepository_ListSortedWithClient(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.CreateClient(ctx, &models.Client{ID: "c-1", Name: "Beatriz"}))
	for _, ap := range []models.Appointment{
		{ID: "3", ClientID: "c-1", Date: "2024-06-11", Time: "09:00"},
		{ID: "2", ClientID: "c-1", Date: "2024-06-10", Time: "14:20"},
		{ID: "1", ClientID: "c-1", Date: "2024-06-10", Time: "09:50"},
		{ID: "4", ClientID: "c-1", Date: "2024-06-20", Time: "09:00"},
	} {
		ap := ap
		require.NoError(t, repo.CreateAppointment(ctx, &ap))
	}

	apps, err := repo.ListAppointmentsBetween(ctx, "2024-06-10", "2024-06-11")
	require.NoError(t, err)

	var ids []string
	for _, ap := range apps {
		ids = append(ids, ap.ID)
		assert.Equal(t, "Beatriz", ap.Client.Name)
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
}

func TestMemoryRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.GetAppointment(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetSettings(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.UpdateAppointment(ctx, &models.Appointment{ID: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
