package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

const (
	FinanceIncome  = "income"
	FinanceExpense = "expense"

	CategoryAttendance = "Atendimento"
)

// IncomeFor monta a receita reconhecida quando a sessão começa.
// A data é o dia do atendimento no fuso da clínica, não a data agendada.
func IncomeFor(ap *models.Appointment, clientName string, now time.Time) models.FinancialRecord {
	if clientName == "" {
		clientName = "Cliente"
	}

	id := ap.ID
	return models.FinancialRecord{
		Description:   fmt.Sprintf("Atendimento (%s) - %s", ap.Type, clientName),
		Amount:        ap.Price,
		Type:          FinanceIncome,
		Date:          now.Format(DateLayout),
		Category:      CategoryAttendance,
		AppointmentID: &id,
	}
}
