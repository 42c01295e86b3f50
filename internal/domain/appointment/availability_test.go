package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	return loc
}

func TestFilterAvailable_ExcludesOccupiedSlot(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, loc)

	appointments := []models.Appointment{
		{Date: "2024-06-10", Time: "09:50", Status: string(StatusScheduled)},
	}

	got := FilterAvailable("2024-06-10", GenerateSlots(40), now, appointments)

	assert.NotContains(t, got, "09:50")
	assert.Len(t, got, len(GenerateSlots(40))-1)
	assert.Equal(t, []string{"09:00", "10:40", "11:30"}, got[:3])
}

func TestFilterAvailable_IgnoresCancelledAndOtherDates(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, loc)

	appointments := []models.Appointment{
		{Date: "2024-06-10", Time: "09:00", Status: string(StatusCancelled)},
		{Date: "2024-06-11", Time: "09:50", Status: string(StatusScheduled)},
		{Date: "2024-06-10", Time: "10:40", Status: string(StatusCompleted)},
	}

	got := FilterAvailable("2024-06-10", GenerateSlots(40), now, appointments)

	assert.Contains(t, got, "09:00")
	assert.Contains(t, got, "09:50")
	assert.NotContains(t, got, "10:40")
}

func TestFilterAvailable_TodayDropsPastAndCurrentMinute(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2024, 6, 10, 10, 15, 0, 0, loc)

	got := FilterAvailable("2024-06-10", GenerateSlots(40), now, nil)

	assert.NotContains(t, got, "09:00")
	assert.NotContains(t, got, "09:50")
	assert.Equal(t, "10:40", got[0])
}

func TestFilterAvailable_SlotEqualToNowIsExcluded(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2024, 6, 10, 10, 40, 59, 0, loc)

	got := FilterAvailable("2024-06-10", GenerateSlots(40), now, nil)

	assert.NotContains(t, got, "10:40")
	assert.Equal(t, "11:30", got[0])
}

func TestFilterAvailable_FutureDateKeepsMorning(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2024, 6, 10, 18, 45, 0, 0, loc)

	got := FilterAvailable("2024-06-11", GenerateSlots(40), now, nil)

	assert.Equal(t, GenerateSlots(40), got)
}
