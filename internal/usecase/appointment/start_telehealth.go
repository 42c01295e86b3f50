package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/kezya-clinic/internal/audit"
	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
	"github.com/BruksfildServices01/kezya-clinic/internal/observability/metrics"
	"github.com/BruksfildServices01/kezya-clinic/internal/timezone"
)

// StartTelehealth abre a sessão e reconhece a receita do atendimento.
// Uma segunda chamada falha com already_started, sem novo lançamento.
type StartTelehealth struct {
	repo    domain.Repository
	ids     domain.IDGenerator
	now     timezone.Clock
	audit   *audit.Dispatcher
	metrics *metrics.ClinicMetrics
}

func NewStartTelehealth(
	repo domain.Repository,
	ids domain.IDGenerator,
	now timezone.Clock,
	audit *audit.Dispatcher,
	metrics *metrics.ClinicMetrics,
) *StartTelehealth {
	return &StartTelehealth{
		repo:    repo,
		ids:     ids,
		now:     now,
		audit:   audit,
		metrics: metrics,
	}
}

type StartResult struct {
	Appointment *models.Appointment
	Income      *models.FinancialRecord
	MeetLink    string
}

func (uc *StartTelehealth) Execute(
	ctx context.Context,
	userID uint,
	appointmentID string,
) (*StartResult, error) {

	ap, err := loadAppointment(ctx, uc.repo, appointmentID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if err := domain.Start(ap, now); err != nil {
		return nil, err
	}

	income := domain.IncomeFor(ap, ap.Client.Name, now)
	income.ID = uc.ids.NewID()

	if err := uc.repo.RecordSessionStart(ctx, ap, &income); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("already_started")
		}
		return nil, err
	}

	uc.metrics.ObserveRevenue(income.Amount)
	uc.audit.Dispatch(audit.Event{
		UserID:   userRef(userID),
		Action:   "telehealth_started",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"amount": income.Amount},
	})

	return &StartResult{
		Appointment: ap,
		Income:      &income,
		MeetLink:    ap.MeetLink,
	}, nil
}

func loadAppointment(ctx context.Context, repo domain.Repository, id string) (*models.Appointment, error) {
	ap, err := repo.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	return ap, nil
}
