package appointment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
)

// GenerateSlots lista os horários candidatos do dia: cada janela começa no
// seu início e avança duration+BreakMinutes, sempre antes do fim da janela.
func GenerateSlots(duration int) []string {
	if duration <= 0 {
		duration = FallbackDuration
	}
	step := duration + BreakMinutes

	var slots []string
	for _, w := range PracticeWindows() {
		for cur := w.Start; cur < w.End; cur += step {
			slots = append(slots, FormatClock(cur))
		}
	}
	return slots
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseClock converte HH:MM em minutos desde a meia-noite.
func ParseClock(hm string) (int, error) {
	parts := strings.Split(strings.TrimSpace(hm), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, httperr.ErrBusiness("invalid_time")
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, httperr.ErrBusiness("invalid_time")
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, httperr.ErrBusiness("invalid_time")
	}

	return h*60 + m, nil
}
