package appointment

// Window is a working period of the day, [Start, End) in minutes since midnight.
type Window struct {
	Start int
	End   int
}

// Intervalo entre sessões, somado à duração para obter o passo dos horários.
const BreakMinutes = 10

const FallbackDuration = 40

var (
	Morning   = Window{Start: 9 * 60, End: 12 * 60}
	Afternoon = Window{Start: 13*60 + 30, End: 19 * 60}
)

func PracticeWindows() []Window {
	return []Window{Morning, Afternoon}
}
