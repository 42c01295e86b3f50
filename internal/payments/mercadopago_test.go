package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

type mockPreferences struct {
	mock.Mock
}

func (m *mockPreferences) Create(ctx context.Context, req preference.Request) (*preference.Response, error) {
	args := m.Called(ctx, req)
	if res, ok := args.Get(0).(*preference.Response); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func appointment() *models.Appointment {
	return &models.Appointment{
		ID:     "ap1",
		Date:   "2025-03-14",
		Time:   "14:00",
		Type:   "Neuropsychology",
		Status: "scheduled",
		Price:  350,
		Client: models.Client{Name: "Beatriz Costa", Email: "beatriz@email.com"},
	}
}

func TestForAppointment_CreatesPreference(t *testing.T) {
	client := new(mockPreferences)
	client.On("Create", mock.Anything, mock.MatchedBy(func(req preference.Request) bool {
		item := req.Items[0]
		return req.ExternalReference == "ap1" &&
			item.UnitPrice == 350 &&
			item.Quantity == 1 &&
			item.CurrencyID == "BRL" &&
			item.Title == "Avaliação - Fga. Kezya Rodrigues (2025-03-14 14:00)" &&
			req.Payer != nil && req.Payer.Email == "beatriz@email.com"
	})).Return(&preference.Response{ID: "pref-1", InitPoint: "https://mp.test/checkout/pref-1"}, nil)

	link, err := NewLinkService(client).ForAppointment(context.Background(), appointment())
	require.NoError(t, err)

	assert.Equal(t, "pref-1", link.PreferenceID)
	assert.Equal(t, "https://mp.test/checkout/pref-1", link.URL)
	client.AssertExpectations(t)
}

func TestForAppointment_Rejections(t *testing.T) {
	var disabled *LinkService
	_, err := disabled.ForAppointment(context.Background(), appointment())
	assert.True(t, httperr.IsBusiness(err, "payments_disabled"))

	svc := NewLinkService(new(mockPreferences))

	cancelled := appointment()
	cancelled.Status = "cancelled"
	_, err = svc.ForAppointment(context.Background(), cancelled)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	free := appointment()
	free.Price = 0
	_, err = svc.ForAppointment(context.Background(), free)
	assert.True(t, httperr.IsBusiness(err, "invalid_price"))
}

func TestForAppointment_ProviderError(t *testing.T) {
	client := new(mockPreferences)
	client.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("401"))

	_, err := NewLinkService(client).ForAppointment(context.Background(), appointment())
	assert.Error(t, err)
}

func TestNewMercadoPago_NoToken(t *testing.T) {
	svc, err := NewMercadoPago("")
	require.NoError(t, err)
	assert.False(t, svc.Enabled())
}
