package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

// Scheduler é a única porta de entrada para gravar agendamentos.
// Público e painel passam por aqui, então nenhum caminho cria dois
// agendamentos ativos na mesma data e hora.
type Scheduler struct {
	repo Repository
}

func NewScheduler(repo Repository) *Scheduler {
	return &Scheduler{repo: repo}
}

func (s *Scheduler) Schedule(ctx context.Context, ap *models.Appointment) error {
	return s.schedule(ctx, ap, nil)
}

// ScheduleForNewClient grava a cliente apenas se o horário for reservado.
func (s *Scheduler) ScheduleForNewClient(
	ctx context.Context,
	client *models.Client,
	ap *models.Appointment,
) error {
	return s.schedule(ctx, ap, client)
}

func (s *Scheduler) schedule(ctx context.Context, ap *models.Appointment, newClient *models.Client) error {
	if err := ValidateDateTime(ap.Date, ap.Time); err != nil {
		return err
	}
	if _, err := ParseType(ap.Type); err != nil {
		return err
	}

	taken, err := s.repo.HasActiveAppointmentAt(ctx, ap.Date, ap.Time)
	if err != nil {
		return err
	}
	if taken {
		return httperr.ErrBusiness("time_conflict")
	}

	if newClient != nil {
		err = s.repo.CreateClientWithAppointment(ctx, newClient, ap)
	} else {
		err = s.repo.CreateAppointment(ctx, ap)
	}
	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return httperr.ErrBusiness("time_conflict")
		}
		return err
	}

	return nil
}

func ValidateDateTime(date, clock string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := ParseClock(clock); err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	return nil
}
