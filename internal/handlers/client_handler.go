package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/kezya-clinic/internal/audit"
	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/middleware"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
	ucAppointment "github.com/BruksfildServices01/kezya-clinic/internal/usecase/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/validators"
)

var clientStatuses = map[string]bool{
	ucAppointment.ClientStatusActive:   true,
	ucAppointment.ClientStatusPending:  true,
	ucAppointment.ClientStatusInactive: true,
}

type ClientHandler struct {
	db     *gorm.DB
	ids    domain.IDGenerator
	emails *validators.EmailDomain
	audit  *audit.Dispatcher
}

func NewClientHandler(
	db *gorm.DB,
	ids domain.IDGenerator,
	emails *validators.EmailDomain,
	audit *audit.Dispatcher,
) *ClientHandler {
	return &ClientHandler{db: db, ids: ids, emails: emails, audit: audit}
}

type CreateClientRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	Address        string `json:"address"`
	Status         string `json:"status"`
	TreatmentStage string `json:"treatment_stage"`
}

type UpdateClientRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	Status         *string `json:"status"`
	TreatmentStage *string `json:"treatment_stage"`
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	status := strings.ToLower(strings.TrimSpace(c.Query("status")))

	q := h.db.WithContext(c.Request.Context()).Model(&models.Client{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var clients []models.Client
	if err := q.Order("name ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// ======================================================
// CREATE
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Informe nome, e-mail e telefone.")
		return
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status == "" {
		status = ucAppointment.ClientStatusActive
	}
	if !clientStatuses[status] {
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !h.emails.Valid(c.Request.Context(), email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	stage := strings.TrimSpace(req.TreatmentStage)
	if stage == "" {
		stage = ucAppointment.StageFirstContact
	}

	client := models.Client{
		ID:             h.ids.NewID(),
		Name:           strings.TrimSpace(req.Name),
		Email:          email,
		Phone:          strings.TrimSpace(req.Phone),
		Address:        strings.TrimSpace(req.Address),
		Status:         status,
		TreatmentStage: stage,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao cadastrar cliente.")
		return
	}

	userID := middleware.UserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: client.ID,
	})

	c.JSON(http.StatusCreated, client)
}

// ======================================================
// UPDATE
// ======================================================
func (h *ClientHandler) Update(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ctx := c.Request.Context()

	var client models.Client
	if err := h.db.WithContext(ctx).Where("id = ?", c.Param("id")).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_load_client", "Erro ao carregar cliente.")
		return
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		client.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		client.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		client.Address = strings.TrimSpace(*req.Address)
	}
	if req.TreatmentStage != nil {
		client.TreatmentStage = strings.TrimSpace(*req.TreatmentStage)
	}
	if req.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*req.Status))
		if !clientStatuses[status] {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		client.Status = status
	}

	if err := h.db.WithContext(ctx).Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	userID := middleware.UserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: client.ID,
	})

	c.JSON(http.StatusOK, client)
}
