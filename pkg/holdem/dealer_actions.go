package holdem

import (
	"github.com/google/uuid"
	"holdem-server/pkg/poker/action"
)

// QuitResult is what a player walks away with
type QuitResult struct {
	Player   *Player
	Bankroll int
}

func (d *Dealer) checkTurn(t *Table, p *Player) error {
	if !t.HasButton(p, Turn) {
		return ErrNotYourTurn
	}

	return nil
}

func (d *Dealer) check(t *Table, p *Player) error {
	if err := d.checkTurn(t, p); err != nil {
		return err
	}

	if t.BetOf(p) < t.HighestBet() {
		return ErrCannotCheck
	}

	d.recordAction(p.id, action.Check, 0)
	return d.onTurnTaken(t, p)
}

// validateBet ensures amount brings the player's bet to at least the minimum bet and the highest bet
func (d *Dealer) validateBet(t *Table, p *Player, amount int) error {
	if err := d.checkTurn(t, p); err != nil {
		return err
	}

	if amount <= 0 {
		return ErrInvalidAmount
	}

	total := t.BetOf(p) + amount
	if total < d.rules.MinimumBet() {
		return ErrBetTooLow
	}

	if highest := t.HighestBet(); total < highest {
		return newError(KindBetTooLow, "bet is less than the highest bet of ${%d}", highest)
	}

	if amount > p.balance {
		return ErrInsufficientFunds
	}

	return nil
}

// bet is used for both bets and raises, act tells the log which one
func (d *Dealer) bet(t *Table, p *Player, amount int, act action.Action) error {
	if err := d.validateBet(t, p, amount); err != nil {
		return err
	}

	if err := d.commit(t, p, amount); err != nil {
		return err
	}

	d.recordAction(p.id, act, amount)
	return d.onTurnTaken(t, p)
}

func (d *Dealer) call(t *Table, p *Player) error {
	if err := d.checkTurn(t, p); err != nil {
		return err
	}

	amount := t.CallAmount(p)
	if amount <= 0 {
		return ErrNothingToCall
	}

	if amount > p.balance {
		return ErrInsufficientFunds
	}

	if err := d.commit(t, p, amount); err != nil {
		return err
	}

	d.recordAction(p.id, action.Call, amount)
	return d.onTurnTaken(t, p)
}

func (d *Dealer) fold(t *Table, p *Player) error {
	if err := d.checkTurn(t, p); err != nil {
		return err
	}

	if p.hand == nil {
		return ErrNoHand
	}

	if err := p.hand.fold(); err != nil {
		return err
	}

	d.recordAction(p.id, action.Fold, 0)
	return d.onTurnTaken(t, p)
}

// commit moves chips from the player's bankroll into the pot
func (d *Dealer) commit(t *Table, p *Player, amount int) error {
	if err := p.debit(amount); err != nil {
		return err
	}

	return t.placeBet(p, amount)
}

func (d *Dealer) join(t *Table, id uuid.UUID, seat int, name string, bankroll int) (*Player, error) {
	if bankroll < d.rules.MinimumBet() {
		return nil, newError(KindInsufficientFunds, "bankroll must be at least the minimum bet of ${%d}", d.rules.MinimumBet())
	}

	p := newPlayer(id, name, bankroll)
	if err := t.sitPlayer(seat, p); err != nil {
		return nil, err
	}

	d.recordAction(id, action.Join, bankroll)
	return p, nil
}

// quit takes the player's cards and passes their turn before they leave the seat
func (d *Dealer) quit(t *Table, p *Player) (*QuitResult, error) {
	t.discard(p.discardHand()...)

	if t.HasButton(p, Turn) {
		if err := d.onTurnTaken(t, p); err != nil {
			return nil, err
		}
	}

	if err := t.standPlayer(p); err != nil {
		return nil, err
	}

	d.recordAction(p.id, action.Quit, p.balance)
	return &QuitResult{
		Player:   p,
		Bankroll: p.balance,
	}, nil
}

func (d *Dealer) rebuy(p *Player, amount int) error {
	if !d.rules.AllowRebuys() {
		return ErrRebuyNotAllowed
	}

	if p.IsActive() {
		return ErrPlayerInHand
	}

	if err := p.credit(amount); err != nil {
		return err
	}

	d.recordAction(p.id, action.Rebuy, amount)
	return nil
}

func (d *Dealer) sitOut(p *Player) {
	p.sittingOut = true
	d.recordAction(p.id, action.SitOut, 0)
}

func (d *Dealer) sitIn(p *Player) {
	p.sittingOut = false
	d.recordAction(p.id, action.SitIn, 0)
}
