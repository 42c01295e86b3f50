package message

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/BruksfildServices01/kezya-clinic/internal/observability/metrics"
)

var retentionTemplates = []string{
	"Olá %s, tudo bem? Percebi que faz um tempo que não nos vemos. A saúde da sua comunicação é muito importante! " +
		"Vamos agendar um retorno para avaliarmos sua evolução? Abraços, Fga. Kezya Rodrigues.",
	"Oi %s! Como você tem estado? Estou passando para lembrar da importância de manter a continuidade no seu " +
		"tratamento fonoaudiológico. Que tal marcarmos uma consulta para essa semana? Aguardo seu retorno! Att, Kezya Rodrigues.",
	"Olá %s, espero que esteja tudo ótimo! Senti sua falta nas últimas semanas. Para garantir que continuemos " +
		"progredindo, seria ideal retomarmos suas sessões. Me avise qual horário fica melhor para você! Um abraço, Fga. Kezya.",
	"Oi %s, tudo bom? Estou revisando os prontuários e notei seu afastamento. Gostaria de saber se está tudo bem e " +
		"me colocar à disposição para retomarmos seu acompanhamento. A constância é chave para os resultados! Beijos, Kezya Rodrigues.",
}

const confirmationTemplate = "Olá %s, sua consulta com a Fga. Kezya Rodrigues está confirmada para %s às %s. " +
	"Link da sala virtual: %s. Por favor, entre 5 minutos antes. Até lá!"

// TemplateComposer usa textos fixos, sem serviço externo.
type TemplateComposer struct {
	mu      sync.Mutex
	rnd     *rand.Rand
	metrics *metrics.ClinicMetrics
}

// NewTemplateComposer aceita a fonte aleatória; nil usa uma semeada pelo relógio.
func NewTemplateComposer(src rand.Source, metrics *metrics.ClinicMetrics) *TemplateComposer {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &TemplateComposer{
		rnd:     rand.New(src),
		metrics: metrics,
	}
}

func (c *TemplateComposer) Confirmation(ctx context.Context, clientName, date, clock, meetLink string) string {
	c.metrics.ObserveMessage(KindConfirmation, "template")
	return fmt.Sprintf(confirmationTemplate, clientName, DisplayDate(date), clock, meetLink)
}

func (c *TemplateComposer) Retention(ctx context.Context, clientName, lastSession string) string {
	c.mu.Lock()
	i := c.rnd.Intn(len(retentionTemplates))
	c.mu.Unlock()

	c.metrics.ObserveMessage(KindRetention, "template")
	return fmt.Sprintf(retentionTemplates[i], clientName)
}
