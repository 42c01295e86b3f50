package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	ucAppointment "github.com/BruksfildServices01/kezya-clinic/internal/usecase/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/usecase/message"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	availability *ucAppointment.GetAvailability
	booking      *ucAppointment.RegisterBooking
	composer     message.Composer
	log          *logrus.Entry
}

func NewPublicHandler(
	availability *ucAppointment.GetAvailability,
	booking *ucAppointment.RegisterBooking,
	composer message.Composer,
	log *logrus.Entry,
) *PublicHandler {
	return &PublicHandler{
		availability: availability,
		booking:      booking,
		composer:     composer,
		log:          log,
	}
}

// ======================================================
// DTOs
// ======================================================

type PublicBookingRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Time  string `json:"time" binding:"required"` // HH:MM
}

// ======================================================
// SLOTS
// ======================================================

func (h *PublicHandler) Slots(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), date)
	if err != nil {
		writeError(c, h.log, err, "availability_failed", "Erro ao buscar horários.")
		return
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// BOOKING
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Preencha nome, e-mail, telefone, data e horário.")
		return
	}

	// o público só reserva horários oferecidos na grade
	if err := h.availability.EnsureOffered(c.Request.Context(), req.Date, req.Time); err != nil {
		writeError(c, h.log, err, "booking_failed", "Não foi possível concluir o agendamento.")
		return
	}

	res, err := h.booking.Execute(c.Request.Context(), ucAppointment.BookingInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Date:  req.Date,
		Time:  req.Time,
	})
	if err != nil {
		writeError(c, h.log, err, "booking_failed", "Não foi possível concluir o agendamento.")
		return
	}

	ap := res.Appointment
	confirmation := h.composer.Confirmation(
		c.Request.Context(),
		res.Client.Name,
		ap.Date,
		ap.Time,
		ap.MeetLink,
	)

	c.JSON(http.StatusCreated, gin.H{
		"appointment": gin.H{
			"id":        ap.ID,
			"date":      ap.Date,
			"time":      ap.Time,
			"type":      ap.Type,
			"status":    ap.Status,
			"meet_link": ap.MeetLink,
			"price":     ap.Price,
			"duration":  ap.Duration,
		},
		"client_id":            res.Client.ID,
		"confirmation_message": confirmation,
	})
}
