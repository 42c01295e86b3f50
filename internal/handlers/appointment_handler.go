package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/httpresp"
	"github.com/BruksfildServices01/kezya-clinic/internal/middleware"
	"github.com/BruksfildServices01/kezya-clinic/internal/payments"
	"github.com/BruksfildServices01/kezya-clinic/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/kezya-clinic/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   *ucAppointment.CreateManualAppointment
	start    *ucAppointment.StartTelehealth
	complete *ucAppointment.CompleteAppointment
	cancel   *ucAppointment.CancelAppointment
	list     *ucAppointment.ListAppointments

	repo     domain.Repository
	payments *payments.LinkService
	now      timezone.Clock
	log      *logrus.Entry
}

type AppointmentDeps struct {
	Create   *ucAppointment.CreateManualAppointment
	Start    *ucAppointment.StartTelehealth
	Complete *ucAppointment.CompleteAppointment
	Cancel   *ucAppointment.CancelAppointment
	List     *ucAppointment.ListAppointments

	Repo     domain.Repository
	Payments *payments.LinkService
	Now      timezone.Clock
	Log      *logrus.Entry
}

func NewAppointmentHandler(d AppointmentDeps) *AppointmentHandler {
	return &AppointmentHandler{
		create:   d.Create,
		start:    d.Start,
		complete: d.Complete,
		cancel:   d.Cancel,
		list:     d.List,
		repo:     d.Repo,
		payments: d.Payments,
		now:      d.Now,
		log:      d.Log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID string  `json:"client_id" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Time     string  `json:"time" binding:"required"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
	Notes    string  `json:"notes"`
}

// ======================================================
// CREATE (painel)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Informe cliente, data e horário.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.ManualInput{
		UserID:   middleware.UserID(c),
		ClientID: req.ClientID,
		Date:     strings.TrimSpace(req.Date),
		Time:     strings.TrimSpace(req.Time),
		Type:     req.Type,
		Price:    req.Price,
		Duration: req.Duration,
		Notes:    req.Notes,
	})
	if err != nil {
		writeError(c, h.log, err, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.DefaultQuery("date", h.now().Format(domain.DateLayout))

	items, err := h.list.ByDate(c.Request.Context(), date)
	if err != nil {
		writeError(c, h.log, err, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) Week(c *gin.Context) {
	date := c.DefaultQuery("date", h.now().Format(domain.DateLayout))

	week, err := h.list.Week(c.Request.Context(), date)
	if err != nil {
		writeError(c, h.log, err, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.OK(c, gin.H{"days": week})
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *AppointmentHandler) Start(c *gin.Context) {
	res, err := h.start.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err, "failed_to_start_session", "Erro ao iniciar atendimento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointment": res.Appointment,
		"income":      res.Income,
		"meet_link":   res.MeetLink,
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	ap, err := h.complete.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err, "failed_to_complete_appointment", "Erro ao concluir agendamento.")
		return
	}
	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		return
	}
	c.JSON(http.StatusOK, ap)
}

// ======================================================
// PAYMENT LINK
// ======================================================

func (h *AppointmentHandler) PaymentLink(c *gin.Context) {
	ctx := c.Request.Context()

	ap, err := h.repo.GetAppointment(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		writeError(c, h.log, err, "failed_to_load_appointment", "Erro ao carregar agendamento.")
		return
	}

	link, err := h.payments.ForAppointment(ctx, ap)
	if err != nil {
		writeError(c, h.log, err, "payment_link_failed", "Erro ao gerar link de pagamento.")
		return
	}

	c.JSON(http.StatusCreated, link)
}
