package message

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/kezya-clinic/internal/observability/metrics"
)

// TextGenerator é o serviço de texto generativo (Gemini em produção).
type TextGenerator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

var errEmptyText = errors.New("message: generator returned empty text")

type GeneratedComposer struct {
	gen     TextGenerator
	model   string
	log     *logrus.Entry
	metrics *metrics.ClinicMetrics
}

func NewGeneratedComposer(
	gen TextGenerator,
	model string,
	log *logrus.Entry,
	metrics *metrics.ClinicMetrics,
) *GeneratedComposer {
	return &GeneratedComposer{
		gen:     gen,
		model:   model,
		log:     log,
		metrics: metrics,
	}
}

func (c *GeneratedComposer) Confirmation(ctx context.Context, clientName, date, clock, meetLink string) string {
	prompt := fmt.Sprintf(
		"Escreva uma mensagem de confirmação de agendamento de consulta fonoaudiológica para o paciente %s.\n"+
			"Data: %s às %s.\n"+
			"Link da sessão: %s.\n"+
			"A profissional é Kezya Rodrigues, Fonoaudióloga.\n"+
			"A mensagem deve ser profissional, acolhedora e instruir o paciente a clicar no link no horário da sessão.",
		clientName, DisplayDate(date), clock, meetLink,
	)

	return c.compose(ctx, KindConfirmation, prompt, func() string {
		return fallbackConfirmation(clientName, date, clock, meetLink)
	})
}

func (c *GeneratedComposer) Retention(ctx context.Context, clientName, lastSession string) string {
	since := lastSession
	if since == "" {
		since = "algum tempo"
	} else {
		since = DisplayDate(since)
	}

	prompt := fmt.Sprintf(
		"Escreva uma mensagem curta, acolhedora e profissional para o WhatsApp/Email de um paciente chamado %s "+
			"que não comparece a uma sessão de fonoaudiologia desde %s. O objetivo é demonstrar preocupação com a "+
			"continuidade do tratamento e oferecer uma nova consulta de forma gentil. A profissional é Kezya Rodrigues, "+
			"Fonoaudióloga. Mantenha o tom empático e focado na evolução da comunicação/saúde do paciente.",
		clientName, since,
	)

	return c.compose(ctx, KindRetention, prompt, func() string {
		return fallbackRetention(clientName)
	})
}

func (c *GeneratedComposer) compose(ctx context.Context, kind, prompt string, fallback func() string) string {
	text, err := c.gen.Generate(ctx, c.model, prompt)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errEmptyText
	}

	if err != nil {
		c.log.WithError(err).WithField("kind", kind).Warn("message generation failed, using fallback")
		c.metrics.ObserveMessage(kind, "fallback")
		return fallback()
	}

	c.metrics.ObserveMessage(kind, "generated")
	return text
}
