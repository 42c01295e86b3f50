package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

var ErrNotFound = errors.New("record not found")

type Repository interface {
	// -------- Settings --------
	GetSettings(ctx context.Context) (*models.GlobalSettings, error)

	SaveSettings(ctx context.Context, s *models.GlobalSettings) error

	// -------- Client --------

	// FindClientByEmail compara e-mails sem diferenciar maiúsculas.
	// Retorna nil, nil quando não existe.
	FindClientByEmail(ctx context.Context, email string) (*models.Client, error)

	GetClient(ctx context.Context, id string) (*models.Client, error)

	CreateClient(ctx context.Context, c *models.Client) error

	UpdateClient(ctx context.Context, c *models.Client) error

	// -------- Appointment (create / conflict) --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	HasActiveAppointmentAt(ctx context.Context, date string, clock string) (bool, error)

	// CreateClientWithAppointment grava a cliente nova e o agendamento
	// juntos: se um falhar, nenhum dos dois fica salvo.
	CreateClientWithAppointment(
		ctx context.Context,
		client *models.Client,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// RecordSessionStart grava o início da sessão e a receita juntos.
	RecordSessionStart(
		ctx context.Context,
		ap *models.Appointment,
		income *models.FinancialRecord,
	) error

	// -------- Listing --------

	// ListAppointmentsBetween inclui from e to, ordenado por data e hora.
	ListAppointmentsBetween(
		ctx context.Context,
		from string,
		to string,
	) ([]models.Appointment, error)
}

// SettingsReader fornece os valores padrão de preço e duração.
type SettingsReader interface {
	Get(ctx context.Context) (models.GlobalSettings, error)
}

type IDGenerator interface {
	NewID() string
}

type LinkGenerator interface {
	MeetLink() string
}
