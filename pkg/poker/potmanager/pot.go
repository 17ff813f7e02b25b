package potmanager

import (
	"errors"
	"fmt"
)

// ErrInvalidSeat is returned when a seat index is outside of the pot
var ErrInvalidSeat = errors.New("invalid seat index")

// Pot tracks what each seat has committed during the current hand
// Contributions are indexed by seat. Dead money belongs to nobody and is paid
// out with the rest of the pot.
type Pot struct {
	bets []int
	dead int
}

// New returns an empty pot for a table with the given number of seats
func New(seats int) *Pot {
	return &Pot{
		bets: make([]int, seats),
	}
}

// Restore rebuilds a pot from persisted contributions
func Restore(bets []int, dead int) (*Pot, error) {
	if dead < 0 {
		return nil, fmt.Errorf("dead money cannot be negative: %d", dead)
	}

	for i, bet := range bets {
		if bet < 0 {
			return nil, fmt.Errorf("bet for seat %d cannot be negative: %d", i, bet)
		}
	}

	b := make([]int, len(bets))
	copy(b, bets)
	return &Pot{bets: b, dead: dead}, nil
}

func (p *Pot) checkSeat(seat int) error {
	if seat < 0 || seat >= len(p.bets) {
		return ErrInvalidSeat
	}

	return nil
}

// PlaceBet adds amount to the seat's contribution
func (p *Pot) PlaceBet(seat, amount int) error {
	if err := p.checkSeat(seat); err != nil {
		return err
	}

	if amount <= 0 {
		return fmt.Errorf("bet must be positive: %d", amount)
	}

	p.bets[seat] += amount
	return nil
}

// BetOf returns the seat's contribution
func (p *Pot) BetOf(seat int) int {
	if p.checkSeat(seat) != nil {
		return 0
	}

	return p.bets[seat]
}

// HighestBet returns the largest contribution at the table
func (p *Pot) HighestBet() int {
	highest := 0
	for _, bet := range p.bets {
		if bet > highest {
			highest = bet
		}
	}

	return highest
}

// CallAmount returns what the seat must add to match the highest contribution
func (p *Pot) CallAmount(seat int) int {
	return p.HighestBet() - p.BetOf(seat)
}

// Forfeit turns the seat's contribution into dead money
func (p *Pot) Forfeit(seat int) {
	if p.checkSeat(seat) != nil {
		return
	}

	p.dead += p.bets[seat]
	p.bets[seat] = 0
}

// AddDeadMoney adds chips that belong to no seat
func (p *Pot) AddDeadMoney(amount int) {
	if amount > 0 {
		p.dead += amount
	}
}

// Total returns the amount in the pot
func (p *Pot) Total() int {
	total := p.dead
	for _, bet := range p.bets {
		total += bet
	}

	return total
}

// Collect empties the pot and returns its total
func (p *Pot) Collect() int {
	total := p.Total()
	for i := range p.bets {
		p.bets[i] = 0
	}

	p.dead = 0
	return total
}

// Bets returns a copy of the contributions, indexed by seat
func (p *Pot) Bets() []int {
	b := make([]int, len(p.bets))
	copy(b, p.bets)
	return b
}

// DeadMoney returns the chips that belong to no seat
func (p *Pot) DeadMoney() int {
	return p.dead
}

// Size returns the number of seats tracked by the pot
func (p *Pot) Size() int {
	return len(p.bets)
}
