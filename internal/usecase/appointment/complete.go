package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/kezya-clinic/internal/audit"
	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
	"github.com/BruksfildServices01/kezya-clinic/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	now   timezone.Clock
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	now timezone.Clock,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		now:   now,
		audit: audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := loadAppointment(ctx, uc.repo, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// a cliente passa a ativa e a última sessão é a data atendida
	client, err := uc.repo.GetClient(ctx, ap.ClientID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if client != nil {
		last := ap.Date
		if client.LastSessionDate == nil || *client.LastSessionDate < last {
			client.LastSessionDate = &last
		}
		client.Status = ClientStatusActive
		if err := uc.repo.UpdateClient(ctx, client); err != nil {
			return nil, err
		}
		ap.Client = *client
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userRef(userID),
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
