package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/infra/repository"
	"github.com/BruksfildServices01/kezya-clinic/internal/logger"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
	"github.com/BruksfildServices01/kezya-clinic/internal/timezone"
)

type seqIDs struct {
	n int
}

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func (g *seqIDs) MeetLink() string {
	return fmt.Sprintf("https://meet.google.com/kezya-test%d", g.n)
}

type staticSettings struct {
	cfg models.GlobalSettings
}

func (s staticSettings) Get(ctx context.Context) (models.GlobalSettings, error) {
	return s.cfg, nil
}

var brt = time.FixedZone("BRT", -3*60*60)

// quarta-feira, 10:05 no horário da clínica
func fixedNow() time.Time {
	return time.Date(2025, 3, 12, 10, 5, 0, 0, brt)
}

func testClock() timezone.Clock {
	return timezone.Fixed(fixedNow())
}

func defaultSettings() staticSettings {
	return staticSettings{cfg: domain.DefaultSettings()}
}

func silentLog() *logrus.Entry {
	return logger.Discard().WithComponent("test")
}

func seedClient(repo *repository.MemoryRepository, id, name, email string) models.Client {
	c := models.Client{
		ID:     id,
		Name:   name,
		Email:  email,
		Status: ClientStatusActive,
	}
	_ = repo.CreateClient(context.Background(), &c)
	return c
}
