package appointment

import "github.com/BruksfildServices01/kezya-clinic/internal/models"

const (
	NeuropsychologyPrice    = 350
	NeuropsychologyDuration = 90
)

// DefaultsFor devolve preço e duração sugeridos ao escolher o tipo da sessão.
func DefaultsFor(t Type, settings models.GlobalSettings) (float64, int) {
	if t == TypeNeuropsychology {
		return NeuropsychologyPrice, NeuropsychologyDuration
	}
	return settings.DefaultPrice, settings.DefaultDuration
}

func DefaultSettings() models.GlobalSettings {
	return models.GlobalSettings{
		ID:              1,
		DefaultPrice:    180,
		DefaultDuration: 40,
	}
}
