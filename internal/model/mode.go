package model

// Mode represents how the user selects a tempo
type Mode int

const (
	// ModeMaelzel restricts tempo selection to the traditional metronome table
	ModeMaelzel Mode = iota

	// ModePrecise allows free integer tempo entry within [MinTempo, MaxTempo]
	ModePrecise
)

// Tempo bounds for Precise mode
const (
	MinTempo = 20
	MaxTempo = 300
)

// String returns the human-friendly mode name shown in the mode indicator
func (m Mode) String() string {
	switch m {
	case ModeMaelzel:
		return "Maelzel's metronome"
	case ModePrecise:
		return "Precise tempo"
	default:
		return "Unknown"
	}
}

// Toggled returns the other mode
func (m Mode) Toggled() Mode {
	if m == ModeMaelzel {
		return ModePrecise
	}
	return ModeMaelzel
}
