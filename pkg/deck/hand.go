package deck

import (
	"strings"
)

// Hand represents an ordered collection of cards
// It is also used for the waste pile and the community cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if cmp := strings.Compare(string(h[i].Suit), string(h[j].Suit)); cmp != 0 {
		return cmp < 0
	}

	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// AddCards adds multiple cards to the hand
func (h *Hand) AddCards(cards ...*Card) {
	*h = append(*h, cards...)
}

// RemoveAll empties the hand and returns the cards it held
func (h *Hand) RemoveAll() Hand {
	cards := *h
	*h = Hand{}
	return cards
}

// HasCard returns true if the hand contains the specified card
func (h *Hand) HasCard(card *Card) bool {
	for _, c := range *h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// FirstCard returns the first card in the hand or nil if the cards are empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// Copy returns a copy of the hand holding copies of the cards
func (h Hand) Copy() Hand {
	h2 := make(Hand, len(h))
	for i, card := range h {
		c := *card
		h2[i] = &c
	}

	return h2
}
