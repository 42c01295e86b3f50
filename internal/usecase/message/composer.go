package message

import (
	"context"
	"fmt"
	"time"
)

// Composer produz os textos enviados às pacientes. Nunca falha: quando a
// geração não funciona, devolve um texto fixo com o nome da cliente.
type Composer interface {
	Confirmation(ctx context.Context, clientName, date, clock, meetLink string) string
	Retention(ctx context.Context, clientName, lastSession string) string
}

const (
	KindConfirmation = "confirmation"
	KindRetention    = "retention"
)

// DisplayDate converte YYYY-MM-DD em DD/MM/YYYY. Outros formatos passam
// sem alteração.
func DisplayDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

func fallbackConfirmation(clientName, date, clock, meetLink string) string {
	return fmt.Sprintf(
		"Olá %s, sua consulta com a Fga. Kezya Rodrigues está confirmada para %s às %s. Link: %s. Até lá!",
		clientName, DisplayDate(date), clock, meetLink,
	)
}

func fallbackRetention(clientName string) string {
	return fmt.Sprintf(
		"Olá %s, como você está? Notei que faz um tempo que não realizamos nossa sessão de fonoaudiologia. "+
			"Gostaria de saber se está tudo bem e se gostaria de retomar seu acompanhamento. Abraços, Kezya.",
		clientName,
	)
}
