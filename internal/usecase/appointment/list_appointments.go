package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

type AppointmentListItem struct {
	ID         string  `json:"id"`
	ClientID   string  `json:"client_id"`
	ClientName string  `json:"client_name"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Type       string  `json:"type"`
	TypeLabel  string  `json:"type_label"`
	Status     string  `json:"status"`
	Source     string  `json:"source"`
	MeetLink   string  `json:"meet_link"`
	Price      float64 `json:"price"`
	Duration   int     `json:"duration"`
	Started    bool    `json:"started"`
}

type DaySchedule struct {
	Date         string                `json:"date"`
	Weekday      string                `json:"weekday"`
	Appointments []AppointmentListItem `json:"appointments"`
}

var weekdayNames = [...]string{
	"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado",
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// ByDate lista um dia, ordenado por horário.
func (uc *ListAppointments) ByDate(ctx context.Context, date string) ([]AppointmentListItem, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	aps, err := uc.repo.ListAppointmentsBetween(ctx, date, date)
	if err != nil {
		return nil, err
	}
	return toListItems(aps), nil
}

// Week devolve segunda a sexta da semana que contém date.
func (uc *ListAppointments) Week(ctx context.Context, date string) ([]DaySchedule, error) {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)
	friday := monday.AddDate(0, 0, 4)

	aps, err := uc.repo.ListAppointmentsBetween(
		ctx,
		monday.Format(domain.DateLayout),
		friday.Format(domain.DateLayout),
	)
	if err != nil {
		return nil, err
	}

	week := make([]DaySchedule, 0, 5)
	index := make(map[string]int, 5)
	for i := 0; i < 5; i++ {
		d := monday.AddDate(0, 0, i)
		key := d.Format(domain.DateLayout)
		index[key] = i
		week = append(week, DaySchedule{
			Date:         key,
			Weekday:      weekdayNames[d.Weekday()],
			Appointments: []AppointmentListItem{},
		})
	}

	for _, item := range toListItems(aps) {
		if i, ok := index[item.Date]; ok {
			week[i].Appointments = append(week[i].Appointments, item)
		}
	}

	return week, nil
}

// Upcoming conta os agendamentos ativos de from em diante, até horizonDays.
func (uc *ListAppointments) Upcoming(ctx context.Context, from time.Time, horizonDays int) (int, error) {
	start := from.Format(domain.DateLayout)
	end := from.AddDate(0, 0, horizonDays).Format(domain.DateLayout)

	aps, err := uc.repo.ListAppointmentsBetween(ctx, start, end)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, ap := range aps {
		if domain.Status(ap.Status) == domain.StatusScheduled {
			count++
		}
	}
	return count, nil
}

func toListItems(aps []models.Appointment) []AppointmentListItem {
	out := make([]AppointmentListItem, 0, len(aps))
	for _, ap := range aps {
		out = append(out, AppointmentListItem{
			ID:         ap.ID,
			ClientID:   ap.ClientID,
			ClientName: ap.Client.Name,
			Date:       ap.Date,
			Time:       ap.Time,
			Type:       ap.Type,
			TypeLabel:  domain.Type(ap.Type).Label(),
			Status:     ap.Status,
			Source:     ap.Source,
			MeetLink:   ap.MeetLink,
			Price:      ap.Price,
			Duration:   ap.Duration,
			Started:    ap.StartedAt != nil,
		})
	}
	return out
}
