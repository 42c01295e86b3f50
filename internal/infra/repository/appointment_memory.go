package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

// MemoryRepository guarda tudo em memória, sem banco.
type MemoryRepository struct {
	mu sync.Mutex

	settings     *models.GlobalSettings
	clients      []models.Client
	appointments []models.Appointment
	finances     []models.FinancialRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) GetSettings(ctx context.Context) (*models.GlobalSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.settings == nil {
		return nil, domain.ErrNotFound
	}
	s := *r.settings
	return &s, nil
}

func (r *MemoryRepository) SaveSettings(ctx context.Context, s *models.GlobalSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *s
	cp.ID = 1
	r.settings = &cp
	return nil
}

func (r *MemoryRepository) FindClientByEmail(ctx context.Context, email string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, c := range r.clients {
		if strings.ToLower(c.Email) == email {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) GetClient(ctx context.Context, id string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.clients {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryRepository) CreateClient(ctx context.Context, c *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clients = append(r.clients, *c)
	return nil
}

func (r *MemoryRepository) UpdateClient(ctx context.Context, c *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.clients {
		if r.clients[i].ID == c.ID {
			r.clients[i] = *c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemoryRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *ap
	cp.Client = models.Client{}
	r.appointments = append(r.appointments, cp)
	return nil
}

func (r *MemoryRepository) CreateClientWithAppointment(
	ctx context.Context,
	c *models.Client,
	ap *models.Appointment,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *ap
	cp.Client = models.Client{}
	r.clients = append(r.clients, *c)
	r.appointments = append(r.appointments, cp)
	return nil
}

func (r *MemoryRepository) HasActiveAppointmentAt(ctx context.Context, date, clock string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.appointments {
		if ap.Date == date && ap.Time == clock && ap.Status != string(domain.StatusCancelled) {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.appointments {
		if ap.ID == id {
			cp := r.withClient(ap)
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.replaceAppointment(ap)
}

func (r *MemoryRepository) RecordSessionStart(
	ctx context.Context,
	ap *models.Appointment,
	income *models.FinancialRecord,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.replaceAppointment(ap); err != nil {
		return err
	}
	r.finances = append(r.finances, *income)
	return nil
}

func (r *MemoryRepository) ListAppointmentsBetween(ctx context.Context, from, to string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Date >= from && ap.Date <= to {
			out = append(out, r.withClient(ap))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

// Clients devolve uma cópia dos clientes gravados.
func (r *MemoryRepository) Clients() []models.Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.Client(nil), r.clients...)
}

// Finances devolve uma cópia dos lançamentos gravados.
func (r *MemoryRepository) Finances() []models.FinancialRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.FinancialRecord(nil), r.finances...)
}

func (r *MemoryRepository) replaceAppointment(ap *models.Appointment) error {
	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			cp := *ap
			cp.Client = models.Client{}
			r.appointments[i] = cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemoryRepository) withClient(ap models.Appointment) models.Appointment {
	for _, c := range r.clients {
		if c.ID == ap.ClientID {
			ap.Client = c
			break
		}
	}
	return ap
}

var _ domain.Repository = (*MemoryRepository)(nil)
