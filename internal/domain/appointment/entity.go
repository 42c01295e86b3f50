package appointment

import (
	"time"

	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Start marca o início do teleatendimento. Só pode acontecer uma vez.
func Start(ap *models.Appointment, now time.Time) error {
	if err := CanStart(Status(ap.Status)); err != nil {
		return err
	}
	if ap.StartedAt != nil {
		return httperr.ErrBusiness("already_started")
	}

	ap.StartedAt = &now
	return nil
}
