package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlots_DefaultDuration(t *testing.T) {
	slots := GenerateSlots(40)

	assert.Equal(t, []string{"09:00", "09:50", "10:40", "11:30"}, slots[:4])
	assert.Equal(t, []string{
		"09:00", "09:50", "10:40", "11:30",
		"13:30", "14:20", "15:10", "16:00", "16:50", "17:40", "18:30",
	}, slots)
}

func TestGenerateSlots_Neuropsychology(t *testing.T) {
	slots := GenerateSlots(90)

	assert.Equal(t, []string{"09:00", "10:40", "13:30", "15:10", "16:50", "18:30"}, slots)
}

func TestGenerateSlots_StopsStrictlyBeforeWindowEnd(t *testing.T) {
	// passo de 60 minutos: 11:00 entra, 12:00 não
	slots := GenerateSlots(50)

	assert.Contains(t, slots, "11:00")
	assert.NotContains(t, slots, "12:00")
	assert.NotContains(t, slots, "19:00")
	assert.Equal(t, "18:30", slots[len(slots)-1])
}

func TestGenerateSlots_NonPositiveDurationFallsBack(t *testing.T) {
	assert.Equal(t, GenerateSlots(FallbackDuration), GenerateSlots(0))
	assert.Equal(t, GenerateSlots(FallbackDuration), GenerateSlots(-5))
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("13:30")
	assert.NoError(t, err)
	assert.Equal(t, 810, m)

	for _, bad := range []string{"", "9:00", "24:00", "12:60", "ab:cd", "12-00"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}
