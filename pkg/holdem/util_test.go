package holdem

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"holdem-server/pkg/deck"
)

func testOptions() Options {
	return Options{
		MinPlayers:  2,
		MaxPlayers:  5,
		SmallBlind:  5,
		BigBlind:    10,
		AllowRebuys: true,
		Shuffler:    deck.NoShuffle{},
	}
}

// setupNewGame seats one player per bankroll, starting at seat 0
func setupNewGame(t *testing.T, opts Options, bankrolls ...int) (*Game, []uuid.UUID) {
	t.Helper()

	rules, err := NewRules(opts)
	if err != nil {
		t.Fatal(err)
	}

	game, err := NewGame(logrus.StandardLogger(), uuid.New(), rules)
	if err != nil {
		t.Fatal(err)
	}

	ids := make([]uuid.UUID, len(bankrolls))
	for i, bankroll := range bankrolls {
		ids[i] = uuid.New()
		if err := game.Join(ids[i], i, fmt.Sprintf("player-%d", i+1), bankroll); err != nil {
			t.Fatal(err)
		}
	}

	return game, ids
}

// stackDeck replaces the deck. With deck.NoShuffle cards are dealt round-robin in seat order,
// then the flop, the turn, and the river.
func stackDeck(game *Game, cards string) {
	game.table.deck.Cards = deck.CardsFromString(cards)
}

func assertTurn(t *testing.T, game *Game, playerID uuid.UUID, msgAndArgs ...interface{}) {
	t.Helper()

	p, err := game.CurrentTurn()
	if assert.NoError(t, err, msgAndArgs...) {
		assert.Equal(t, playerID, p.ID(), msgAndArgs...)
	}
}

func assertButton(t *testing.T, game *Game, b Button, playerID uuid.UUID, msgAndArgs ...interface{}) {
	t.Helper()

	p, err := game.Table().ButtonPlayer(b)
	if assert.NoError(t, err, msgAndArgs...) {
		assert.Equal(t, playerID, p.ID(), msgAndArgs...)
	}
}

func assertBalances(t *testing.T, game *Game, ids []uuid.UUID, balances ...int) {
	t.Helper()

	for i, id := range ids {
		p, err := game.Player(id)
		if assert.NoError(t, err) {
			assert.Equal(t, balances[i], p.Balance(), "balance of player %d", i+1)
		}
	}
}

func assertChecks(t *testing.T, game *Game, ids ...uuid.UUID) {
	t.Helper()

	for _, id := range ids {
		assert.NoError(t, game.Check(id))
	}
}

func balance(t *testing.T, game *Game, id uuid.UUID) int {
	t.Helper()

	p, err := game.Player(id)
	if err != nil {
		t.Fatal(err)
	}

	return p.Balance()
}
