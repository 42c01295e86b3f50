package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/kezya-clinic/internal/infra/repository"
	"github.com/BruksfildServices01/kezya-clinic/internal/logger"
	"github.com/BruksfildServices01/kezya-clinic/internal/middleware"
	"github.com/BruksfildServices01/kezya-clinic/internal/settings"
	"github.com/BruksfildServices01/kezya-clinic/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/kezya-clinic/internal/usecase/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/usecase/message"
)

type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func (g *seqIDs) MeetLink() string {
	return fmt.Sprintf("https://meet.google.com/kezya-h%d", g.n)
}

// quarta-feira, 10:05 em Brasília
var testNow = time.Date(2025, 3, 12, 10, 5, 0, 0, time.FixedZone("BRT", -3*60*60))

type testApp struct {
	router *gin.Engine
	repo   *repository.MemoryRepository
}

// newTestApp monta rotas públicas e de agendamento sobre o repositório em memória.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepository()
	ids := &seqIDs{}
	clock := timezone.Fixed(testNow)
	log := logger.Discard().WithComponent("test")

	settingsService := settings.NewService(repo, nil, log)
	composer := message.NewTemplateComposer(rand.NewSource(1), nil)

	public := NewPublicHandler(
		ucAppointment.NewGetAvailability(repo, settingsService, clock),
		ucAppointment.NewRegisterBooking(repo, settingsService, ids, ids, nil, nil, log),
		composer,
		log,
	)

	appointments := NewAppointmentHandler(AppointmentDeps{
		Create:   ucAppointment.NewCreateManualAppointment(repo, settingsService, ids, ids, nil, nil),
		Start:    ucAppointment.NewStartTelehealth(repo, ids, clock, nil, nil),
		Complete: ucAppointment.NewCompleteAppointment(repo, clock, nil),
		Cancel:   ucAppointment.NewCancelAppointment(repo, clock, nil),
		List:     ucAppointment.NewListAppointments(repo),
		Repo:     repo,
		Now:      clock,
		Log:      log,
	})

	settingsHandler := NewSettingsHandler(settingsService, nil, log)

	r := gin.New()
	r.GET("/api/public/slots", public.Slots)
	r.POST("/api/public/bookings", public.CreateBooking)

	me := r.Group("/api/me", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(1))
		c.Next()
	})
	me.GET("/settings", settingsHandler.Get)
	me.PUT("/settings", settingsHandler.Update)
	me.GET("/appointments", appointments.ListByDate)
	me.POST("/appointments", appointments.Create)
	me.GET("/appointments/week", appointments.Week)
	me.PATCH("/appointments/:id/start", appointments.Start)
	me.PATCH("/appointments/:id/complete", appointments.Complete)
	me.PATCH("/appointments/:id/cancel", appointments.Cancel)
	me.POST("/appointments/:id/payment-link", appointments.PaymentLink)

	return &testApp{router: r, repo: repo}
}

func (a *testApp) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return doRequest(t, a.router, method, path, body)
}

func doRequest(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}
