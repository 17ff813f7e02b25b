package potmanager

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// WinManager groups participants into tiers of equal hand strength
type WinManager[T any] struct {
	tiers *treemap.Map
}

// NewWinManager returns an empty WinManager
func NewWinManager[T any]() *WinManager[T] {
	return &WinManager[T]{
		tiers: treemap.NewWithIntComparator(),
	}
}

// AddParticipant adds a participant with the given hand strength
func (w *WinManager[T]) AddParticipant(p T, handStrength int) {
	var participants []T
	if tier, found := w.tiers.Get(handStrength); found {
		participants = tier.([]T)
	}

	w.tiers.Put(handStrength, append(participants, p))
}

// GetSortedTiers returns the tiers from the strongest to the weakest
// Participants within a tier keep the order they were added in
func (w *WinManager[T]) GetSortedTiers() [][]T {
	tiers := make([][]T, 0, w.tiers.Size())
	it := w.tiers.Iterator()
	for it.End(); it.Prev(); {
		tiers = append(tiers, it.Value().([]T))
	}

	return tiers
}

// Winners returns the participants in the strongest tier
func (w *WinManager[T]) Winners() []T {
	if w.tiers.Empty() {
		return nil
	}

	_, tier := w.tiers.Max()
	return tier.([]T)
}

// Split divides amount evenly between n winners
// The remaining chips are handed out one at a time starting with the first winner
func Split(amount, n int) []int {
	if n <= 0 {
		return nil
	}

	shares := make([]int, n)
	each := amount / n
	remainder := amount % n
	for i := range shares {
		shares[i] = each
		if i < remainder {
			shares[i]++
		}
	}

	return shares
}
