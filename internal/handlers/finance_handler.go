package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/kezya-clinic/internal/audit"
	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/domain/finance"
	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/httpresp"
	"github.com/BruksfildServices01/kezya-clinic/internal/middleware"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
	"github.com/BruksfildServices01/kezya-clinic/internal/timezone"
)

type FinanceHandler struct {
	db    *gorm.DB
	ids   domain.IDGenerator
	now   timezone.Clock
	audit *audit.Dispatcher
}

func NewFinanceHandler(
	db *gorm.DB,
	ids domain.IDGenerator,
	now timezone.Clock,
	audit *audit.Dispatcher,
) *FinanceHandler {
	return &FinanceHandler{db: db, ids: ids, now: now, audit: audit}
}

type CreateFinanceRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
}

// month vem de ?month=YYYY-MM; padrão é o mês corrente.
func (h *FinanceHandler) month(c *gin.Context) string {
	return c.DefaultQuery("month", h.now().Format("2006-01"))
}

func (h *FinanceHandler) records(c *gin.Context, month string) ([]models.FinancialRecord, bool) {
	from, to, err := finance.MonthRange(month)
	if err != nil {
		writeError(c, nil, err, "", "")
		return nil, false
	}

	var out []models.FinancialRecord
	if err := h.db.WithContext(c.Request.Context()).
		Where(`"date" >= ? AND "date" <= ?`, from, to).
		Order(`"date" DESC, created_at DESC`).
		Find(&out).Error; err != nil {
		httperr.Internal(c, "failed_to_list_finances", "Erro ao listar lançamentos.")
		return nil, false
	}
	return out, true
}

func (h *FinanceHandler) List(c *gin.Context) {
	records, ok := h.records(c, h.month(c))
	if !ok {
		return
	}
	httpresp.List(c, records)
}

func (h *FinanceHandler) Summary(c *gin.Context) {
	month := h.month(c)
	records, ok := h.records(c, month)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, finance.Summarize(month, records))
}

func (h *FinanceHandler) Create(c *gin.Context) {
	var req CreateFinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Informe descrição, valor e tipo.")
		return
	}

	kind, err := finance.ParseType(req.Type)
	if err != nil {
		writeError(c, nil, err, "", "")
		return
	}
	if req.Amount <= 0 {
		httperr.BadRequest(c, "invalid_price", "Valor inválido.")
		return
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = h.now().Format(domain.DateLayout)
	}
	if err := domain.ValidateDateTime(date, "00:00"); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	record := models.FinancialRecord{
		ID:          h.ids.NewID(),
		Description: strings.TrimSpace(req.Description),
		Amount:      req.Amount,
		Type:        kind,
		Date:        date,
		Category:    strings.TrimSpace(req.Category),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&record).Error; err != nil {
		httperr.Internal(c, "failed_to_create_finance", "Erro ao registrar lançamento.")
		return
	}

	userID := middleware.UserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "finance_created",
		Entity:   "financial_record",
		EntityID: record.ID,
	})

	c.JSON(http.StatusCreated, record)
}
