package retention

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

const DefaultInactiveDays = 30

type Candidate struct {
	ClientID        string `json:"client_id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	LastSessionDate string `json:"last_session_date,omitempty"`
	DaysAway        int    `json:"days_away"`
}

// Candidates lista clientes sem sessão há mais de inactiveDays (ou que
// nunca tiveram uma). Inativas ficam de fora. Quem está há mais tempo
// afastada vem primeiro.
func Candidates(clients []models.Client, today time.Time, inactiveDays int) []Candidate {
	if inactiveDays <= 0 {
		inactiveDays = DefaultInactiveDays
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	cutoff := day.AddDate(0, 0, -inactiveDays)

	out := []Candidate{}
	for _, c := range clients {
		if c.Status == "inactive" {
			continue
		}

		cand := Candidate{
			ClientID: c.ID,
			Name:     c.Name,
			Phone:    c.Phone,
			Email:    c.Email,
			DaysAway: -1,
		}

		if c.LastSessionDate != nil && *c.LastSessionDate != "" {
			last, err := time.Parse("2006-01-02", *c.LastSessionDate)
			if err != nil {
				continue
			}
			if !last.Before(cutoff) {
				continue
			}
			cand.LastSessionDate = *c.LastSessionDate
			cand.DaysAway = int(day.Sub(last).Hours() / 24)
		}

		out = append(out, cand)
	}

	// sem sessão registrada vai para o fim
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysAway > out[j].DaysAway
	})
	return out
}
