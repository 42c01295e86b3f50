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

func TestGetAvailability_FutureDayDropsBooked(t *testing.T) {
	repo := repository.NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
		ID: "a1", Date: "2025-03-13", Time: "09:50", Status: "scheduled",
	}))
	require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
		ID: "a2", Date: "2025-03-13", Time: "10:40", Status: "cancelled",
	}))

	uc := NewGetAvailability(repo, defaultSettings(), testClock())
	out, err := uc.Execute(ctx, "2025-03-13")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-13", out.Date)
	assert.Equal(t, []string{
		"09:00", "10:40", "11:30",
		"13:30", "14:20", "15:10", "16:00", "16:50", "17:40", "18:30",
	}, out.Slots)
}

func TestGetAvailability_TodayDropsElapsedSlots(t *testing.T) {
	uc := NewGetAvailability(repository.NewMemoryRepository(), defaultSettings(), testClock())

	out, err := uc.Execute(context.Background(), "2025-03-12")
	require.NoError(t, err)

	assert.Equal(t, "10:40", out.Slots[0])
	assert.NotContains(t, out.Slots, "09:50")
}

func TestGetAvailability_PastDateIsEmpty(t *testing.T) {
	uc := NewGetAvailability(repository.NewMemoryRepository(), defaultSettings(), testClock())

	out, err := uc.Execute(context.Background(), "2025-03-11")
	require.NoError(t, err)
	assert.Empty(t, out.Slots)
	assert.NotNil(t, out.Slots)
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	uc := NewGetAvailability(repository.NewMemoryRepository(), defaultSettings(), testClock())

	_, err := uc.Execute(context.Background(), "12/03/2025")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestGetAvailability_UsesConfiguredDuration(t *testing.T) {
	settings := staticSettings{cfg: models.GlobalSettings{DefaultPrice: 200, DefaultDuration: 60}}
	uc := NewGetAvailability(repository.NewMemoryRepository(), settings, testClock())

	out, err := uc.Execute(context.Background(), "2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:10", "11:20", "13:30", "14:40", "15:50", "17:00", "18:10"}, out.Slots)
}

func TestGetAvailability_EnsureOffered(t *testing.T) {
	repo := repository.NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
		ID: "a1", Date: "2025-03-13", Time: "09:50", Status: "scheduled",
	}))
	uc := NewGetAvailability(repo, defaultSettings(), testClock())

	assert.NoError(t, uc.EnsureOffered(ctx, "2025-03-13", "14:20"))
	// ocupado continua na grade; o conflito é do Scheduler
	assert.NoError(t, uc.EnsureOffered(ctx, "2025-03-13", "09:50"))

	cases := []struct{ date, clock string }{
		{"2001-01-01", "09:00"}, // dia passado
		{"2025-03-12", "09:50"}, // hoje, já passou
		{"2025-03-13", "03:17"}, // fora da grade
		{"2025-03-13", "09:30"}, // entre dois horários
		{"2025-03-13", "12:00"}, // almoço
	}
	for _, c := range cases {
		err := uc.EnsureOffered(ctx, c.date, c.clock)
		assert.True(t, httperr.IsBusiness(err, "time_unavailable"), "%s %s", c.date, c.clock)
	}

	assert.True(t, httperr.IsBusiness(uc.EnsureOffered(ctx, "13/03/2025", "09:00"), "invalid_date"))
}
