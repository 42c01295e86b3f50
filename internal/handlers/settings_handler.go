package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/kezya-clinic/internal/audit"
	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/middleware"
	"github.com/BruksfildServices01/kezya-clinic/internal/settings"
)

type SettingsHandler struct {
	service *settings.Service
	audit   *audit.Dispatcher
	log     *logrus.Entry
}

func NewSettingsHandler(service *settings.Service, audit *audit.Dispatcher, log *logrus.Entry) *SettingsHandler {
	return &SettingsHandler{service: service, audit: audit, log: log}
}

type UpdateSettingsRequest struct {
	DefaultPrice    *float64 `json:"default_price"`
	DefaultDuration *int     `json:"default_duration"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	out, err := h.service.Get(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err, "settings_failed", "Erro ao carregar configurações.")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.service.Update(c.Request.Context(), settings.Update{
		DefaultPrice:    req.DefaultPrice,
		DefaultDuration: req.DefaultDuration,
	})
	if err != nil {
		writeError(c, h.log, err, "settings_failed", "Erro ao salvar configurações.")
		return
	}

	userID := middleware.UserID(c)
	h.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "settings_updated",
		Entity: "settings",
		Metadata: map[string]any{
			"default_price":    out.DefaultPrice,
			"default_duration": out.DefaultDuration,
		},
	})

	c.JSON(http.StatusOK, out)
}
