package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/kezya-clinic/internal/audit"
	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
	"github.com/BruksfildServices01/kezya-clinic/internal/observability/metrics"
)

type ManualInput struct {
	UserID   uint
	ClientID string

	Date string
	Time string
	Type string

	// zero mantém o padrão do tipo
	Price    float64
	Duration int

	Notes string
}

// CreateManualAppointment agenda pelo painel. Não filtra horários
// passados, mas respeita o conflito de data e hora.
type CreateManualAppointment struct {
	repo      domain.Repository
	scheduler *domain.Scheduler
	settings  domain.SettingsReader
	ids       domain.IDGenerator
	links     domain.LinkGenerator
	audit     *audit.Dispatcher
	metrics   *metrics.ClinicMetrics
}

func NewCreateManualAppointment(
	repo domain.Repository,
	settings domain.SettingsReader,
	ids domain.IDGenerator,
	links domain.LinkGenerator,
	audit *audit.Dispatcher,
	metrics *metrics.ClinicMetrics,
) *CreateManualAppointment {
	return &CreateManualAppointment{
		repo:      repo,
		scheduler: domain.NewScheduler(repo),
		settings:  settings,
		ids:       ids,
		links:     links,
		audit:     audit,
		metrics:   metrics,
	}
}

func (uc *CreateManualAppointment) Execute(
	ctx context.Context,
	in ManualInput,
) (*models.Appointment, error) {

	if in.ClientID == "" || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	kind, err := domain.ParseType(in.Type)
	if err != nil {
		return nil, err
	}
	if in.Price < 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}
	if in.Duration < 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, err
	}

	cfg, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	price, duration := domain.DefaultsFor(kind, cfg)
	if in.Price > 0 {
		price = in.Price
	}
	if in.Duration > 0 {
		duration = in.Duration
	}

	ap := &models.Appointment{
		ID:       uc.ids.NewID(),
		ClientID: client.ID,
		Date:     in.Date,
		Time:     in.Time,
		Type:     string(kind),
		Status:   string(domain.InitialStatus()),
		Source:   string(domain.SourceAdmin),
		MeetLink: uc.links.MeetLink(),
		Price:    price,
		Duration: duration,
		Notes:    in.Notes,
	}

	if err := uc.scheduler.Schedule(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			uc.metrics.ObserveConflict(string(domain.SourceAdmin))
		}
		return nil, err
	}
	ap.Client = *client

	uc.metrics.ObserveBooking(ap.Source, ap.Type)
	uc.audit.Dispatch(audit.Event{
		UserID:   userRef(in.UserID),
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}

func userRef(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
