package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/kezya-clinic/internal/domain/retention"
	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
	"github.com/BruksfildServices01/kezya-clinic/internal/timezone"
	"github.com/BruksfildServices01/kezya-clinic/internal/usecase/message"
)

// RetentionHandler lista clientes afastadas e sugere a mensagem de retorno.
type RetentionHandler struct {
	db       *gorm.DB
	composer message.Composer
	now      timezone.Clock
	log      *logrus.Entry
}

func NewRetentionHandler(
	db *gorm.DB,
	composer message.Composer,
	now timezone.Clock,
	log *logrus.Entry,
) *RetentionHandler {
	return &RetentionHandler{db: db, composer: composer, now: now, log: log}
}

func (h *RetentionHandler) List(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(retention.DefaultInactiveDays)))
	if err != nil || days < 0 {
		httperr.BadRequest(c, "invalid_days", "Informe a quantidade de dias como número.")
		return
	}

	var clients []models.Client
	if err := h.db.WithContext(c.Request.Context()).
		Where("status <> ?", "inactive").
		Find(&clients).Error; err != nil {
		writeError(c, h.log, err, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":       days,
		"candidates": retention.Candidates(clients, h.now(), days),
	})
}

func (h *RetentionHandler) Message(c *gin.Context) {
	var client models.Client
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ?", c.Param("clientId")).
		First(&client).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrada.")
			return
		}
		writeError(c, h.log, err, "failed_to_load_client", "Erro ao carregar cliente.")
		return
	}

	last := ""
	if client.LastSessionDate != nil {
		last = *client.LastSessionDate
	}

	c.JSON(http.StatusOK, gin.H{
		"client_id": client.ID,
		"phone":     client.Phone,
		"email":     client.Email,
		"message":   h.composer.Retention(c.Request.Context(), client.Name, last),
	})
}
