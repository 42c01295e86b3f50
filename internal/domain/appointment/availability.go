package appointment

import (
	"time"

	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

const DateLayout = "2006-01-02"

// FilterAvailable remove do dia os horários já passados (quando a data é
// hoje, inclusive o minuto atual) e os ocupados por agendamento não
// cancelado. A ordem de entrada é preservada.
func FilterAvailable(
	date string,
	slots []string,
	now time.Time,
	appointments []models.Appointment,
) []string {

	isToday := date == now.Format(DateLayout)
	nowMinutes := now.Hour()*60 + now.Minute()

	occupied := make(map[string]struct{}, len(appointments))
	for _, ap := range appointments {
		if ap.Date != date || Status(ap.Status) == StatusCancelled {
			continue
		}
		occupied[ap.Time] = struct{}{}
	}

	available := make([]string, 0, len(slots))
	for _, slot := range slots {
		if isToday {
			m, err := ParseClock(slot)
			if err != nil || m <= nowMinutes {
				continue
			}
		}
		if _, taken := occupied[slot]; taken {
			continue
		}
		available = append(available, slot)
	}

	return available
}
