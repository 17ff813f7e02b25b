package deck

import "holdem-server/internal/rng"

// ShufflingStrategy reorders a slice of cards in place
type ShufflingStrategy interface {
	Shuffle(cards []*Card)
}

// RandomShuffle is a Fisher-Yates shuffle backed by a random number generator
type RandomShuffle struct {
	rng rng.Generator
}

// NewRandomShuffle returns a RandomShuffle
// If generator is nil, crypto/rand is used
func NewRandomShuffle(generator rng.Generator) *RandomShuffle {
	if generator == nil {
		generator = rng.Crypto{}
	}

	return &RandomShuffle{rng: generator}
}

// Shuffle implements ShufflingStrategy
func (r *RandomShuffle) Shuffle(cards []*Card) {
	for j := len(cards) - 1; j > 0; j-- {
		i := r.rng.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}
}

// NoShuffle leaves the cards in their current order
type NoShuffle struct{}

// Shuffle implements ShufflingStrategy
func (NoShuffle) Shuffle([]*Card) {}
