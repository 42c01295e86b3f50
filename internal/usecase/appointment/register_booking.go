package appointment

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/kezya-clinic/internal/audit"
	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
	"github.com/BruksfildServices01/kezya-clinic/internal/observability/metrics"
)

const (
	ClientStatusActive   = "active"
	ClientStatusPending  = "pending"
	ClientStatusInactive = "inactive"

	StageFirstContact = "First Contact"
	AddressPending    = "Pendente"
)

// ======================================================
// INPUT
// ======================================================

type BookingInput struct {
	Name  string
	Email string
	Phone string

	Date string
	Time string
}

type BookingResult struct {
	Appointment *models.Appointment
	Client      *models.Client
	NewClient   bool
}

// ======================================================
// USE CASE
// ======================================================

type RegisterBooking struct {
	repo      domain.Repository
	scheduler *domain.Scheduler
	settings  domain.SettingsReader
	ids       domain.IDGenerator
	links     domain.LinkGenerator
	audit     *audit.Dispatcher
	metrics   *metrics.ClinicMetrics
	log       *logrus.Entry
}

func NewRegisterBooking(
	repo domain.Repository,
	settings domain.SettingsReader,
	ids domain.IDGenerator,
	links domain.LinkGenerator,
	audit *audit.Dispatcher,
	metrics *metrics.ClinicMetrics,
	log *logrus.Entry,
) *RegisterBooking {
	return &RegisterBooking{
		repo:      repo,
		scheduler: domain.NewScheduler(repo),
		settings:  settings,
		ids:       ids,
		links:     links,
		audit:     audit,
		metrics:   metrics,
		log:       log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RegisterBooking) Execute(ctx context.Context, in BookingInput) (*BookingResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}
	if err := domain.ValidateDateTime(in.Date, in.Time); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Cliente: reaproveita pelo e-mail ou prepara uma nova
	// --------------------------------------------------
	client, err := uc.repo.FindClientByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}

	newClient := client == nil
	if newClient {
		client = &models.Client{
			ID:             uc.ids.NewID(),
			Name:           in.Name,
			Email:          in.Email,
			Phone:          in.Phone,
			Address:        AddressPending,
			Status:         ClientStatusPending,
			TreatmentStage: StageFirstContact,
		}
	}

	// --------------------------------------------------
	// Agendamento com os padrões da clínica
	// --------------------------------------------------
	cfg, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ID:       uc.ids.NewID(),
		ClientID: client.ID,
		Date:     in.Date,
		Time:     in.Time,
		Type:     string(domain.TypeClinical),
		Status:   string(domain.InitialStatus()),
		Source:   string(domain.SourcePublic),
		MeetLink: uc.links.MeetLink(),
		Price:    cfg.DefaultPrice,
		Duration: cfg.DefaultDuration,
	}

	// cliente nova só é gravada junto com o horário
	if newClient {
		err = uc.scheduler.ScheduleForNewClient(ctx, client, ap)
	} else {
		err = uc.scheduler.Schedule(ctx, ap)
	}
	if err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			uc.metrics.ObserveConflict(string(domain.SourcePublic))
		}
		return nil, err
	}
	ap.Client = *client

	uc.metrics.ObserveBooking(ap.Source, ap.Type)
	uc.log.WithFields(logrus.Fields{
		"appointment_id": ap.ID,
		"date":           ap.Date,
		"time":           ap.Time,
		"new_client":     newClient,
	}).Info("public booking registered")

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"client_id":  client.ID,
			"new_client": newClient,
		},
	})

	return &BookingResult{
		Appointment: ap,
		Client:      client,
		NewClient:   newClient,
	}, nil
}
