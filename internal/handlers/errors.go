package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
)

type errorInfo struct {
	status  int
	message string
}

var businessErrors = map[string]errorInfo{
	"missing_fields":         {http.StatusBadRequest, "Preencha todos os campos obrigatórios."},
	"invalid_date":           {http.StatusBadRequest, "Data inválida."},
	"invalid_time":           {http.StatusBadRequest, "Horário inválido."},
	"invalid_date_or_time":   {http.StatusBadRequest, "Data ou hora inválida."},
	"invalid_month":          {http.StatusBadRequest, "Mês inválido."},
	"invalid_days":           {http.StatusBadRequest, "Informe a quantidade de dias como número."},
	"invalid_type":           {http.StatusBadRequest, "Tipo de atendimento inválido."},
	"invalid_status":         {http.StatusBadRequest, "Status inválido."},
	"invalid_price":          {http.StatusBadRequest, "Valor inválido."},
	"invalid_duration":       {http.StatusBadRequest, "Duração inválida."},
	"invalid_finance_type":   {http.StatusBadRequest, "Tipo de lançamento inválido."},
	"invalid_state":          {http.StatusBadRequest, "Agendamento não pode ser alterado."},
	"invalid_image":          {http.StatusBadRequest, "Imagem inválida."},
	"unsupported_attachment": {http.StatusBadRequest, "Tipo de arquivo não suportado."},
	"client_not_found":       {http.StatusNotFound, "Cliente não encontrada."},
	"appointment_not_found":  {http.StatusNotFound, "Agendamento não encontrado."},
	"time_conflict":          {http.StatusConflict, "Este horário acabou de ser reservado. Escolha outro."},
	"time_unavailable":       {http.StatusUnprocessableEntity, "Horário indisponível. Escolha um dos horários oferecidos."},
	"already_started":        {http.StatusConflict, "Este atendimento já foi iniciado."},
	"payments_disabled":      {http.StatusServiceUnavailable, "Pagamentos não configurados."},
	"storage_disabled":       {http.StatusServiceUnavailable, "Armazenamento de anexos não configurado."},
}

// writeError traduz erros de negócio; o resto vira 500 com o código informado.
func writeError(c *gin.Context, log *logrus.Entry, err error, fallbackCode, fallbackMessage string) {
	if code, ok := httperr.CodeOf(err); ok {
		if info, known := businessErrors[code]; known {
			httperr.Write(c, info.status, code, info.message)
			return
		}
		httperr.BadRequest(c, code, "Requisição inválida.")
		return
	}

	if log != nil {
		log.WithError(err).WithField("path", c.FullPath()).Error(fallbackCode)
	}
	httperr.Internal(c, fallbackCode, fallbackMessage)
}
