package spectro

import "fmt"

// Overlay is the static top-row label line: "Min: ... 1-N N-M M+ ... Max:
// ...", spec.md 4.7 step 4's "separate static overlay row at the top".
type Overlay struct {
	MinLabel  string
	LowLabel  string
	MedLabel  string
	HighLabel string
	MaxLabel  string
}

// BuildOverlay renders the threshold/bounds labels for the current cached
// state.
func (e *Engine) BuildOverlay() Overlay {
	b := e.Bounds()
	th := e.Thresholds()
	return Overlay{
		MinLabel:  fmt.Sprintf("Min: %g", b.MinValue),
		LowLabel:  fmt.Sprintf("1-%d", th.Green-1),
		MedLabel:  fmt.Sprintf("%d-%d", th.Green, th.Yellow-1),
		HighLabel: fmt.Sprintf("%d+", th.Yellow),
		MaxLabel:  fmt.Sprintf("Max: %g", b.MaxValue),
	}
}
