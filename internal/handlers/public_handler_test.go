package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicSlots(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/public/slots", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodGet, "/api/public/slots?date=2025-03-13", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "2025-03-13", body["date"])
	assert.Len(t, body["slots"], 11)

	w = app.do(t, http.MethodGet, "/api/public/slots?date=2025-03-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["slots"])
}

func TestPublicBooking_FlowAndConflict(t *testing.T) {
	app := newTestApp(t)

	req := map[string]any{
		"name":  "Carla Souza",
		"email": "carla@email.com",
		"phone": "21999990000",
		"date":  "2025-03-13",
		"time":  "09:50",
	}

	w := app.do(t, http.MethodPost, "/api/public/bookings", req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	msg := body["confirmation_message"].(string)
	assert.Contains(t, msg, "Olá Carla Souza")
	assert.Contains(t, msg, "13/03/2025 às 09:50")

	ap := body["appointment"].(map[string]any)
	assert.Equal(t, "scheduled", ap["status"])
	assert.Equal(t, 180.0, ap["price"])

	// o horário some da lista pública
	w = app.do(t, http.MethodGet, "/api/public/slots?date=2025-03-13", nil)
	assert.NotContains(t, decode(t, w)["slots"], "09:50")

	req["email"] = "davi@email.com"
	w = app.do(t, http.MethodPost, "/api/public/bookings", req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "time_conflict", decode(t, w)["error_code"])
}

func TestPublicBooking_RejectsTimesOutsideOfferedSlots(t *testing.T) {
	app := newTestApp(t)

	cases := map[string][2]string{
		"past day":      {"2001-01-01", "09:00"},
		"elapsed today": {"2025-03-12", "09:50"},
		"off grid":      {"2025-03-13", "03:17"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			w := app.do(t, http.MethodPost, "/api/public/bookings", map[string]any{
				"name":  "Carla Souza",
				"email": "carla@email.com",
				"phone": "21999990000",
				"date":  c[0],
				"time":  c[1],
			})

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Equal(t, "time_unavailable", decode(t, w)["error_code"])
		})
	}

	assert.Empty(t, app.repo.Clients())
}

func TestPublicBooking_ConflictLeavesNoOrphanClient(t *testing.T) {
	app := newTestApp(t)

	book := func(email string) int {
		return app.do(t, http.MethodPost, "/api/public/bookings", map[string]any{
			"name": "Cliente", "email": email, "phone": "21999990000",
			"date": "2025-03-13", "time": "09:00",
		}).Code
	}

	require.Equal(t, http.StatusCreated, book("a@x.com"))
	assert.Equal(t, http.StatusConflict, book("b@x.com"))
	assert.Len(t, app.repo.Clients(), 1)
}

func TestPublicBooking_MissingFields(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/public/bookings", map[string]any{
		"name": "Carla",
		"date": "2025-03-13",
		"time": "09:50",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_fields", decode(t, w)["error_code"])
	assert.Empty(t, app.repo.Clients())
}
