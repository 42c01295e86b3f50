package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/timezone"
)

type Availability struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

type GetAvailability struct {
	repo     domain.Repository
	settings domain.SettingsReader
	now      timezone.Clock
}

func NewGetAvailability(
	repo domain.Repository,
	settings domain.SettingsReader,
	now timezone.Clock,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		settings: settings,
		now:      now,
	}
}

func (uc *GetAvailability) Execute(ctx context.Context, date string) (Availability, error) {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return Availability{}, httperr.ErrBusiness("invalid_date")
	}

	out := Availability{Date: date, Slots: []string{}}

	now := uc.now()
	today, _ := time.Parse(domain.DateLayout, now.Format(domain.DateLayout))
	if day.Before(today) {
		return out, nil
	}

	cfg, err := uc.settings.Get(ctx)
	if err != nil {
		return Availability{}, err
	}

	booked, err := uc.repo.ListAppointmentsBetween(ctx, date, date)
	if err != nil {
		return Availability{}, err
	}

	slots := domain.GenerateSlots(cfg.DefaultDuration)
	out.Slots = domain.FilterAvailable(date, slots, now, booked)
	return out, nil
}

// EnsureOffered confere se o horário está na grade do dia e ainda não passou.
// Ocupação não é checada aqui: o Scheduler responde com time_conflict.
func (uc *GetAvailability) EnsureOffered(ctx context.Context, date, clock string) error {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return httperr.ErrBusiness("invalid_date")
	}

	now := uc.now()
	today, _ := time.Parse(domain.DateLayout, now.Format(domain.DateLayout))
	if day.Before(today) {
		return httperr.ErrBusiness("time_unavailable")
	}

	cfg, err := uc.settings.Get(ctx)
	if err != nil {
		return err
	}

	for _, slot := range domain.FilterAvailable(date, domain.GenerateSlots(cfg.DefaultDuration), now, nil) {
		if slot == clock {
			return nil
		}
	}
	return httperr.ErrBusiness("time_unavailable")
}
