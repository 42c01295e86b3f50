package appointment

import (
	"strings"

	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusScheduled:
		return StatusScheduled, nil
	case StatusCancelled:
		return StatusCancelled, nil
	case StatusCompleted:
		return StatusCompleted, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// ===============================
// Session Type
// ===============================

type Type string

const (
	TypeClinical        Type = "Clinical"
	TypeNeuropsychology Type = "Neuropsychology"
)

// Label é o nome exibido para a paciente.
func (t Type) Label() string {
	switch t {
	case TypeNeuropsychology:
		return "Avaliação"
	default:
		return "Terapia"
	}
}

// ParseType aceita o valor interno ou o rótulo exibido.
// Vazio vira Clinical.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clinical", "terapia":
		return TypeClinical, nil
	case "neuropsychology", "avaliação", "avaliacao":
		return TypeNeuropsychology, nil
	}
	return "", httperr.ErrBusiness("invalid_type")
}

// ===============================
// Source
// ===============================

type Source string

const (
	SourcePublic Source = "public"
	SourceAdmin  Source = "admin"
)

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanStart define se o teleatendimento pode ser iniciado
func CanStart(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
