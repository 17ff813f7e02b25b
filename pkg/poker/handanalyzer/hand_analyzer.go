package handanalyzer

import (
	"holdem-server/pkg/deck"
	"sort"
)

// hands of the same category are worth the same
const categoryWeight = 1000

// HandAnalyzer can analyze up to seven cards (two private cards plus the community)
type HandAnalyzer struct {
	// cards sorted by rank, ascending
	cards deck.Hand

	hand     Hand
	best     deck.Hand
	strength int
}

// New will return a new HandAnalyzer instance
func New(cards []*deck.Card) *HandAnalyzer {
	// clone to prevent modifying original
	sortedCards := make(deck.Hand, len(cards))
	copy(sortedCards, cards)
	sortAscending(sortedCards)

	h := &HandAnalyzer{cards: sortedCards}
	h.calculateHand()
	return h
}

// calculateHand tests each category from the strongest to the weakest
func (h *HandAnalyzer) calculateHand() {
	checks := []struct {
		hand  Hand
		check func() (deck.Hand, bool)
	}{
		{RoyalFlush, h.GetRoyalFlush},
		{StraightFlush, h.GetStraightFlush},
		{FourOfAKind, h.GetFourOfAKind},
		{FullHouse, h.GetFullHouse},
		{Flush, h.GetFlush},
		{Straight, h.GetStraight},
		{ThreeOfAKind, h.GetThreeOfAKind},
		{TwoPair, h.GetTwoPair},
		{Pair, h.GetPair},
	}

	for _, c := range checks {
		if cards, ok := c.check(); ok {
			h.setHand(c.hand, cards)
			return
		}
	}

	h.setHand(HighCard, h.GetHighCard())
}

func (h *HandAnalyzer) setHand(hand Hand, cards deck.Hand) {
	h.hand = hand
	h.best = cards
	h.strength = int(hand) * categoryWeight
}

// GetHand returns the best hand category
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// GetStrength returns the strength of the hand
func (h *HandAnalyzer) GetStrength() int {
	return h.strength
}

// GetCards returns the cards that make up the hand
func (h *HandAnalyzer) GetCards() deck.Hand {
	return h.best.Clone()
}

// GetRoyalFlush returns a straight flush when the ten through the ace are all present
func (h *HandAnalyzer) GetRoyalFlush() (deck.Hand, bool) {
	for _, rank := range []deck.Rank{deck.Ten, deck.Jack, deck.Queen, deck.King, deck.Ace} {
		if !hasRank(h.cards, rank) {
			return nil, false
		}
	}

	return h.GetStraightFlush()
}

// GetStraightFlush returns the highest straight found within a single suit
func (h *HandAnalyzer) GetStraightFlush() (deck.Hand, bool) {
	var best deck.Hand
	for _, suited := range groupBySuit(h.cards) {
		if len(suited) < 5 {
			continue
		}

		if straight, ok := findStraight(suited); ok {
			if best == nil || straight.LastCard().Rank > best.LastCard().Rank {
				best = straight
			}
		}
	}

	return best, best != nil
}

// GetFourOfAKind returns the highest four of a kind
func (h *HandAnalyzer) GetFourOfAKind() (deck.Hand, bool) {
	return ofAKind(h.cards, 4)
}

// GetFullHouse returns three of a kind plus a pair among the remaining cards
// A second three of a kind does not count as the pair.
func (h *HandAnalyzer) GetFullHouse() (deck.Hand, bool) {
	trips, ok := ofAKind(h.cards, 3)
	if !ok {
		return nil, false
	}

	pair, ok := ofAKind(without(h.cards, trips), 2)
	if !ok {
		return nil, false
	}

	return append(trips.Clone(), pair...), true
}

// GetFlush returns the top five cards of the suit holding the highest card
func (h *HandAnalyzer) GetFlush() (deck.Hand, bool) {
	var best deck.Hand
	for _, suited := range groupBySuit(h.cards) {
		if len(suited) < 5 {
			continue
		}

		if best == nil || suited.LastCard().Rank > best.LastCard().Rank {
			best = suited
		}
	}

	if best == nil {
		return nil, false
	}

	return best[len(best)-5:].Clone(), true
}

// GetStraight returns the highest five consecutive ranks
func (h *HandAnalyzer) GetStraight() (deck.Hand, bool) {
	return findStraight(h.cards)
}

// GetThreeOfAKind returns the highest three of a kind
func (h *HandAnalyzer) GetThreeOfAKind() (deck.Hand, bool) {
	return ofAKind(h.cards, 3)
}

// GetTwoPair returns the highest pair plus the highest pair among the remaining cards
func (h *HandAnalyzer) GetTwoPair() (deck.Hand, bool) {
	first, ok := ofAKind(h.cards, 2)
	if !ok {
		return nil, false
	}

	second, ok := ofAKind(without(h.cards, first), 2)
	if !ok {
		return nil, false
	}

	return append(first.Clone(), second...), true
}

// GetPair returns the highest pair
func (h *HandAnalyzer) GetPair() (deck.Hand, bool) {
	return ofAKind(h.cards, 2)
}

// GetHighCard returns the card with the highest rank
func (h *HandAnalyzer) GetHighCard() deck.Hand {
	if len(h.cards) == 0 {
		return deck.Hand{}
	}

	return deck.Hand{h.cards.LastCard()}
}

// ofAKind returns the highest ranked group holding exactly size cards
func ofAKind(cards deck.Hand, size int) (deck.Hand, bool) {
	groups := groupByRank(cards)
	for i := len(groups) - 1; i >= 0; i-- {
		if len(groups[i]) == size {
			return groups[i], true
		}
	}

	return nil, false
}

// findStraight expects cards sorted ascending. Each card is tried as the low end of a run
// made of the four cards that follow it, so a paired rank inside the run breaks it.
// The ace only plays low.
func findStraight(cards deck.Hand) (deck.Hand, bool) {
	var best deck.Hand
	for i := 0; i+5 <= len(cards); i++ {
		window := cards[i : i+5]
		if isRun(window) {
			best = window
		}
	}

	if best == nil {
		return nil, false
	}

	return best.Clone(), true
}

func isRun(cards deck.Hand) bool {
	for i := 1; i < len(cards); i++ {
		if cards[i].Rank != cards[i-1].Rank+1 {
			return false
		}
	}

	return true
}

// groupByRank returns the groups ordered by rank, ascending
func groupByRank(cards deck.Hand) []deck.Hand {
	groups := make([]deck.Hand, 0, len(cards))
	for _, card := range cards {
		n := len(groups)
		if n > 0 && groups[n-1][0].Rank == card.Rank {
			groups[n-1] = append(groups[n-1], card)
		} else {
			groups = append(groups, deck.Hand{card})
		}
	}

	return groups
}

func groupBySuit(cards deck.Hand) map[deck.Suit]deck.Hand {
	groups := make(map[deck.Suit]deck.Hand)
	for _, card := range cards {
		groups[card.Suit] = append(groups[card.Suit], card)
	}

	return groups
}

func hasRank(cards deck.Hand, rank deck.Rank) bool {
	for _, card := range cards {
		if card.Rank == rank {
			return true
		}
	}

	return false
}

// without returns cards minus the removed cards, preserving order
func without(cards, removed deck.Hand) deck.Hand {
	remaining := make(deck.Hand, 0, len(cards))
	for _, card := range cards {
		isRemoved := false
		for _, r := range removed {
			if card == r {
				isRemoved = true
				break
			}
		}

		if !isRemoved {
			remaining = append(remaining, card)
		}
	}

	return remaining
}

func sortAscending(cards deck.Hand) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Rank < cards[j].Rank
	})
}
