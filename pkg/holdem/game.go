package holdem

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker/action"
)

// Game is a table of Texas Hold'em and the dealer running it
// A Game is not safe for concurrent use. Callers must run one command at a time.
type Game struct {
	id     uuid.UUID
	table  *Table
	dealer *Dealer
}

// NewGame returns a new game with one seat for each of the maximum players
func NewGame(logger logrus.FieldLogger, id uuid.UUID, rules *Rules) (*Game, error) {
	t, err := newTable(rules.MaxPlayers(), deck.New())
	if err != nil {
		return nil, err
	}

	return &Game{
		id:     id,
		table:  t,
		dealer: newDealer(logger.WithField("game", id), rules),
	}, nil
}

// ID returns the game identifier
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Table returns the table. Its exported methods never modify it.
func (g *Game) Table() *Table {
	return g.table
}

// Rules returns the rules of the game
func (g *Game) Rules() *Rules {
	return g.dealer.rules
}

// Phase returns the phase of the current round
func (g *Game) Phase() Phase {
	return g.dealer.phase
}

// TurnMemory returns who acted during the current betting round
func (g *Game) TurnMemory() *TurnMemory {
	return g.dealer.memory
}

// LastAction returns the last accepted command, or nil
func (g *Game) LastAction() *LastAction {
	return g.dealer.lastAction
}

// LastWinners returns who was paid at the end of the previous round
func (g *Game) LastWinners() []*Winner {
	return g.dealer.lastWinners
}

// Player returns a seated player
func (g *Game) Player(id uuid.UUID) (*Player, error) {
	return g.table.Player(id)
}

// CurrentTurn returns the player who must act
func (g *Game) CurrentTurn() (*Player, error) {
	return g.table.ButtonPlayer(Turn)
}

// IsEligible returns true if the player would be dealt into the next round
func (g *Game) IsEligible(p *Player) bool {
	return g.dealer.isEligible(p)
}

// StartRound rotates the buttons, posts the blinds, and deals two cards to every eligible player
func (g *Game) StartRound() error {
	return g.dealer.startRound(g.table)
}

// AbortRound ends the current round immediately and pays the best hand
func (g *Game) AbortRound() error {
	return g.dealer.abortRound(g.table)
}

// Join seats a new player
func (g *Game) Join(playerID uuid.UUID, seat int, name string, bankroll int) error {
	_, err := g.dealer.join(g.table, playerID, seat, name, bankroll)
	return err
}

// Quit removes the player from the table and returns their final bankroll
func (g *Game) Quit(playerID uuid.UUID) (*QuitResult, error) {
	p, err := g.table.Player(playerID)
	if err != nil {
		return nil, err
	}

	return g.dealer.quit(g.table, p)
}

// Rebuy adds to the player's bankroll
func (g *Game) Rebuy(playerID uuid.UUID, amount int) error {
	p, err := g.table.Player(playerID)
	if err != nil {
		return err
	}

	return g.dealer.rebuy(p, amount)
}

// SitOut keeps the player seated but out of the next rounds
func (g *Game) SitOut(playerID uuid.UUID) error {
	p, err := g.table.Player(playerID)
	if err != nil {
		return err
	}

	g.dealer.sitOut(p)
	return nil
}

// SitIn deals the player back into the next round
func (g *Game) SitIn(playerID uuid.UUID) error {
	p, err := g.table.Player(playerID)
	if err != nil {
		return err
	}

	g.dealer.sitIn(p)
	return nil
}

// Check passes the action without betting
func (g *Game) Check(playerID uuid.UUID) error {
	p, err := g.table.Player(playerID)
	if err != nil {
		return err
	}

	return g.dealer.check(g.table, p)
}

// Bet adds amount to the player's bet
func (g *Game) Bet(playerID uuid.UUID, amount int) error {
	p, err := g.table.Player(playerID)
	if err != nil {
		return err
	}

	return g.dealer.bet(g.table, p, amount, action.Bet)
}

// Call matches the highest bet
func (g *Game) Call(playerID uuid.UUID) error {
	p, err := g.table.Player(playerID)
	if err != nil {
		return err
	}

	return g.dealer.call(g.table, p)
}

// Raise adds amount to the player's bet
func (g *Game) Raise(playerID uuid.UUID, amount int) error {
	p, err := g.table.Player(playerID)
	if err != nil {
		return err
	}

	return g.dealer.bet(g.table, p, amount, action.Raise)
}

// Fold gives up the hand
func (g *Game) Fold(playerID uuid.UUID) error {
	p, err := g.table.Player(playerID)
	if err != nil {
		return err
	}

	return g.dealer.fold(g.table, p)
}
