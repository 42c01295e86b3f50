package finance

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type Summary struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
	Count   int     `json:"count"`
}

func ParseType(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	}
	return "", httperr.ErrBusiness("invalid_finance_type")
}

// MonthRange devolve o primeiro e o último dia de um mês YYYY-MM.
func MonthRange(month string) (string, string, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", httperr.ErrBusiness("invalid_month")
	}
	end := start.AddDate(0, 1, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02"), nil
}

// Summarize soma os lançamentos do mês. Registros fora do mês são ignorados.
func Summarize(month string, records []models.FinancialRecord) Summary {
	out := Summary{Month: month}
	prefix := month + "-"

	for _, r := range records {
		if !strings.HasPrefix(r.Date, prefix) {
			continue
		}
		switch r.Type {
		case TypeIncome:
			out.Income += r.Amount
		case TypeExpense:
			out.Expense += r.Amount
		default:
			continue
		}
		out.Count++
	}

	out.Balance = out.Income - out.Expense
	return out
}
