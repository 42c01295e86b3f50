package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/kezya-clinic/internal/audit"
	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/middleware"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
	"github.com/BruksfildServices01/kezya-clinic/internal/storage"
	"github.com/BruksfildServices01/kezya-clinic/internal/timezone"
)

// ReportHandler cuida dos relatórios de sessão e seus anexos.
type ReportHandler struct {
	db    *gorm.DB
	store *storage.Store
	ids   domain.IDGenerator
	now   timezone.Clock
	audit *audit.Dispatcher
	log   *logrus.Entry
}

type ReportDeps struct {
	DB    *gorm.DB
	Store *storage.Store
	IDs   domain.IDGenerator
	Now   timezone.Clock
	Audit *audit.Dispatcher
	Log   *logrus.Entry
}

func NewReportHandler(d ReportDeps) *ReportHandler {
	return &ReportHandler{
		db:    d.DB,
		store: d.Store,
		ids:   d.IDs,
		now:   d.Now,
		audit: d.Audit,
		log:   d.Log,
	}
}

type CreateReportRequest struct {
	ClientID      string  `json:"client_id" binding:"required"`
	AppointmentID *string `json:"appointment_id"`
	Date          string  `json:"date"`
	Content       string  `json:"content" binding:"required"`
}

func (h *ReportHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Model(&models.SessionReport{})
	if clientID := strings.TrimSpace(c.Query("client_id")); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	var reports []models.SessionReport
	if err := q.Order(`"date" DESC, created_at DESC`).Find(&reports).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reports", "Erro ao listar relatórios.")
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *ReportHandler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Informe a cliente e o conteúdo.")
		return
	}

	ctx := c.Request.Context()

	var count int64
	if err := h.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", req.ClientID).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_load_client", "Erro ao carregar cliente.")
		return
	}
	if count == 0 {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrada.")
		return
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = h.now().Format(domain.DateLayout)
	}

	report := models.SessionReport{
		ID:            h.ids.NewID(),
		ClientID:      req.ClientID,
		AppointmentID: req.AppointmentID,
		Date:          date,
		Content:       req.Content,
	}
	if err := h.db.WithContext(ctx).Create(&report).Error; err != nil {
		httperr.Internal(c, "failed_to_create_report", "Erro ao salvar relatório.")
		return
	}

	userID := middleware.UserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "report_created",
		Entity:   "session_report",
		EntityID: report.ID,
	})

	c.JSON(http.StatusCreated, report)
}

// UploadAttachment recebe multipart "file". Imagens são gravadas como webp.
func (h *ReportHandler) UploadAttachment(c *gin.Context) {
	if !h.store.Enabled() {
		writeError(c, h.log, storage.ErrDisabled, "", "")
		return
	}

	report, ok := h.loadReport(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o arquivo no campo file.")
		return
	}
	if file.Size > storage.MaxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Arquivo maior que 10 MB.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Não foi possível ler o arquivo.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, storage.MaxUploadBytes+1))
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Não foi possível ler o arquivo.")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	ctx := c.Request.Context()
	att, err := h.store.Upload(ctx, report.ID, contentType, data)
	if err != nil {
		writeError(c, h.log, err, "attachment_upload_failed", "Erro ao enviar anexo.")
		return
	}

	report.AttachmentKey = att.Key
	report.AttachmentContentType = att.ContentType
	if err := h.db.WithContext(ctx).Save(report).Error; err != nil {
		httperr.Internal(c, "failed_to_update_report", "Erro ao salvar relatório.")
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) DownloadAttachment(c *gin.Context) {
	report, ok := h.loadReport(c)
	if !ok {
		return
	}
	if report.AttachmentKey == "" {
		httperr.NotFound(c, "attachment_not_found", "Relatório sem anexo.")
		return
	}

	body, err := h.store.Open(c.Request.Context(), report.AttachmentKey)
	if err != nil {
		writeError(c, h.log, err, "attachment_download_failed", "Erro ao baixar anexo.")
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, -1, report.AttachmentContentType, body, nil)
}

func (h *ReportHandler) loadReport(c *gin.Context) (*models.SessionReport, bool) {
	var report models.SessionReport
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ?", c.Param("id")).
		First(&report).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "report_not_found", "Relatório não encontrado.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_load_report", "Erro ao carregar relatório.")
		return nil, false
	}
	return &report, true
}
