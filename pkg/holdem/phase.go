package holdem

// Phase is the stage of the current round
type Phase int

// Phase constants
const (
	PhaseNotStarted Phase = iota
	PhasePreFlop
	PhaseFlop
	PhaseTurn
	PhaseRiver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhasePreFlop:
		return "pre-flop"
	case PhaseFlop:
		return "flop"
	case PhaseTurn:
		return "turn"
	case PhaseRiver:
		return "river"
	}

	return ""
}

// InProgress returns true while cards are out
func (p Phase) InProgress() bool {
	return p >= PhasePreFlop && p <= PhaseRiver
}

// CommunityCards is how many community cards are revealed during the phase
func (p Phase) CommunityCards() int {
	switch p {
	case PhaseFlop:
		return 3
	case PhaseTurn:
		return 4
	case PhaseRiver:
		return 5
	}

	return 0
}

func (p Phase) isValid() bool {
	return p >= PhaseNotStarted && p <= PhaseRiver
}
