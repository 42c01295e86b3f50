package payments

import (
	"context"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

const currencyBRL = "BRL"

// PreferenceCreator é o trecho do cliente de preferências do Mercado Pago usado aqui.
type PreferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type Link struct {
	PreferenceID string `json:"preference_id"`
	URL          string `json:"url"`
}

// LinkService gera links de pagamento (Checkout Pro) para agendamentos.
type LinkService struct {
	client PreferenceCreator
}

func NewLinkService(client PreferenceCreator) *LinkService {
	return &LinkService{client: client}
}

// NewMercadoPago devolve nil quando não há token configurado.
func NewMercadoPago(accessToken string) (*LinkService, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("payments: mercadopago config: %w", err)
	}
	return NewLinkService(preference.NewClient(cfg)), nil
}

func (s *LinkService) Enabled() bool {
	return s != nil && s.client != nil
}

func (s *LinkService) ForAppointment(ctx context.Context, ap *models.Appointment) (*Link, error) {
	if !s.Enabled() {
		return nil, httperr.ErrBusiness("payments_disabled")
	}
	if domain.Status(ap.Status) == domain.StatusCancelled {
		return nil, httperr.ErrBusiness("invalid_state")
	}
	if ap.Price <= 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	req := preference.Request{
		ExternalReference: ap.ID,
		Items: []preference.ItemRequest{{
			ID:         ap.ID,
			Title:      itemTitle(ap),
			Quantity:   1,
			UnitPrice:  ap.Price,
			CurrencyID: currencyBRL,
		}},
	}
	if ap.Client.Email != "" {
		req.Payer = &preference.PayerRequest{
			Name:  ap.Client.Name,
			Email: ap.Client.Email,
		}
	}

	res, err := s.client.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("payments: create preference: %w", err)
	}

	return &Link{PreferenceID: res.ID, URL: res.InitPoint}, nil
}

func itemTitle(ap *models.Appointment) string {
	return fmt.Sprintf(
		"%s - Fga. Kezya Rodrigues (%s %s)",
		domain.Type(ap.Type).Label(),
		ap.Date,
		ap.Time,
	)
}
