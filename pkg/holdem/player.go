package holdem

import (
	"github.com/google/uuid"
	"holdem-server/pkg/deck"
)

// Hand is the pair of private cards a player holds during a round
type Hand struct {
	cards  deck.Hand
	folded bool
}

func newHand() *Hand {
	return &Hand{
		cards: make(deck.Hand, 0, 2),
	}
}

// Cards returns a copy of the cards in the hand
func (h *Hand) Cards() deck.Hand {
	return h.cards.Clone()
}

// IsFolded returns true if the hand was folded
func (h *Hand) IsFolded() bool {
	return h.folded
}

func (h *Hand) addCard(card *deck.Card) error {
	if h.folded {
		return ErrHandFolded
	}

	h.cards.AddCard(card)
	return nil
}

func (h *Hand) fold() error {
	if h.folded {
		return ErrHandFolded
	}

	h.folded = true
	return nil
}

func (h *Hand) removeAll() deck.Hand {
	return h.cards.RemoveAll()
}

// Player is a person seated at the table
type Player struct {
	id         uuid.UUID
	name       string
	balance    int
	hand       *Hand
	sittingOut bool
}

func newPlayer(id uuid.UUID, name string, balance int) *Player {
	return &Player{
		id:      id,
		name:    name,
		balance: balance,
	}
}

// ID returns the player's identifier
func (p *Player) ID() uuid.UUID {
	return p.id
}

// Name returns the player's display name
func (p *Player) Name() string {
	return p.name
}

// Balance returns the chips the player has not committed to the pot
func (p *Player) Balance() int {
	return p.balance
}

// Hand returns the player's hand, or nil if the player was not dealt in
func (p *Player) Hand() *Hand {
	return p.hand
}

// HasHand returns true if the player holds cards, folded or not
func (p *Player) HasHand() bool {
	return p.hand != nil
}

// IsActive returns true if the player holds a hand that has not been folded
func (p *Player) IsActive() bool {
	return p.hand != nil && !p.hand.folded
}

// IsSittingOut returns true if the player asked not to be dealt in
func (p *Player) IsSittingOut() bool {
	return p.sittingOut
}

func (p *Player) String() string {
	return p.name
}

func (p *Player) debit(amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if amount > p.balance {
		return ErrInsufficientFunds
	}

	p.balance -= amount
	return nil
}

func (p *Player) credit(amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	p.balance += amount
	return nil
}

// discardHand takes the cards away from the player
func (p *Player) discardHand() deck.Hand {
	if p.hand == nil {
		return nil
	}

	cards := p.hand.removeAll()
	p.hand = nil
	return cards
}
