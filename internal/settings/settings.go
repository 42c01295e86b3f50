package settings

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

const (
	cacheKey = "kezya:settings"
	cacheTTL = 10 * time.Minute
)

// cachedSettings carrega o ID, que o JSON público de GlobalSettings omite.
type cachedSettings struct {
	ID              uint      `json:"id"`
	DefaultPrice    float64   `json:"default_price"`
	DefaultDuration int       `json:"default_duration"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Repository interface {
	GetSettings(ctx context.Context) (*models.GlobalSettings, error)
	SaveSettings(ctx context.Context, s *models.GlobalSettings) error
}

// Service lê e grava as configurações globais. Com redis configurado,
// as leituras passam pelo cache; falhas do cache só geram log.
type Service struct {
	repo  Repository
	cache *redis.Client
	log   *logrus.Entry
}

func NewService(repo Repository, cache *redis.Client, log *logrus.Entry) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

type Update struct {
	DefaultPrice    *float64
	DefaultDuration *int
}

func (s *Service) Get(ctx context.Context) (models.GlobalSettings, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	current, err := s.repo.GetSettings(ctx)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		def := domain.DefaultSettings()
		current = &def
	case err != nil:
		return models.GlobalSettings{}, err
	}

	s.store(ctx, *current)
	return *current, nil
}

func (s *Service) Update(ctx context.Context, in Update) (models.GlobalSettings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return models.GlobalSettings{}, err
	}

	if in.DefaultPrice != nil {
		if *in.DefaultPrice <= 0 {
			return models.GlobalSettings{}, httperr.ErrBusiness("invalid_price")
		}
		current.DefaultPrice = *in.DefaultPrice
	}
	if in.DefaultDuration != nil {
		if *in.DefaultDuration <= 0 {
			return models.GlobalSettings{}, httperr.ErrBusiness("invalid_duration")
		}
		current.DefaultDuration = *in.DefaultDuration
	}

	if err := s.repo.SaveSettings(ctx, &current); err != nil {
		return models.GlobalSettings{}, err
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, cacheKey).Err(); err != nil {
			s.log.WithError(err).Warn("settings cache invalidation failed")
		}
	}

	return current, nil
}

func (s *Service) fromCache(ctx context.Context) (models.GlobalSettings, bool) {
	if s.cache == nil {
		return models.GlobalSettings{}, false
	}

	raw, err := s.cache.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.WithError(err).Warn("settings cache read failed")
		}
		return models.GlobalSettings{}, false
	}

	var out cachedSettings
	if err := json.Unmarshal(raw, &out); err != nil {
		return models.GlobalSettings{}, false
	}
	return models.GlobalSettings{
		ID:              out.ID,
		DefaultPrice:    out.DefaultPrice,
		DefaultDuration: out.DefaultDuration,
		UpdatedAt:       out.UpdatedAt,
	}, true
}

func (s *Service) store(ctx context.Context, v models.GlobalSettings) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(cachedSettings{
		ID:              v.ID,
		DefaultPrice:    v.DefaultPrice,
		DefaultDuration: v.DefaultDuration,
		UpdatedAt:       v.UpdatedAt,
	})
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
		s.log.WithError(err).Warn("settings cache write failed")
	}
}
