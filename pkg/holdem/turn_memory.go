package holdem

import "github.com/google/uuid"

// TurnMemory remembers who acted since the current betting round began
type TurnMemory struct {
	played []uuid.UUID
}

func newTurnMemory(played ...uuid.UUID) *TurnMemory {
	m := &TurnMemory{}
	for _, id := range played {
		m.save(id)
	}

	return m
}

func (m *TurnMemory) save(id uuid.UUID) {
	if !m.HasPlayed(id) {
		m.played = append(m.played, id)
	}
}

// HasPlayed returns true if the player acted during the current betting round
func (m *TurnMemory) HasPlayed(id uuid.UUID) bool {
	for _, played := range m.played {
		if played == id {
			return true
		}
	}

	return false
}

// Played returns the players who acted, in order
func (m *TurnMemory) Played() []uuid.UUID {
	played := make([]uuid.UUID, len(m.played))
	copy(played, m.played)
	return played
}

func (m *TurnMemory) reset() {
	m.played = nil
}
