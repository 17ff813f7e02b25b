package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"holdem-server/pkg/holdem"
	"holdem-server/pkg/poker/action"
	"holdem-server/pkg/store"
)

var cbg = context.Background()

func testOptions() holdem.Options {
	return holdem.Options{
		MinPlayers:  2,
		MaxPlayers:  5,
		SmallBlind:  5,
		BigBlind:    10,
		AllowRebuys: true,
	}
}

func newTestService(t *testing.T) (*Service, *holdem.Game) {
	t.Helper()

	s := NewService(logrus.StandardLogger(), store.NewMemoryStore(logrus.StandardLogger()), NewMemoryLocker())
	game, err := s.CreateGame(cbg, testOptions())
	if err != nil {
		t.Fatal(err)
	}

	return s, game
}

// join seats one player per bankroll, starting at seat 0
func join(t *testing.T, s *Service, gameID uuid.UUID, bankrolls ...int) []uuid.UUID {
	t.Helper()

	ids := make([]uuid.UUID, len(bankrolls))
	for i, bankroll := range bankrolls {
		ids[i] = uuid.New()
		_, err := s.Execute(cbg, gameID, &Request{
			Action:   action.Join,
			PlayerID: ids[i],
			Seat:     i,
			Name:     "player",
			Amount:   bankroll,
		})

		if err != nil {
			t.Fatal(err)
		}
	}

	return ids
}

func TestService_CreateGame(t *testing.T) {
	a := assert.New(t)

	s := NewService(logrus.StandardLogger(), store.NewMemoryStore(logrus.StandardLogger()), NewMemoryLocker())

	opts := testOptions()
	opts.SmallBlind = 10
	game, err := s.CreateGame(cbg, opts)
	a.EqualError(err, "small blind must be less than the big blind")
	a.Nil(game)

	game, err = s.CreateGame(cbg, testOptions())
	a.NoError(err)

	stored, err := s.Game(cbg, game.ID())
	a.NoError(err)
	a.Equal(5, stored.Table().SeatCount())
	a.Equal(holdem.PhaseNotStarted, stored.Phase())
}

func TestService_Execute(t *testing.T) {
	a := assert.New(t)

	s, game := newTestService(t)
	ids := join(t, s, game.ID(), 1000, 1000)

	res, err := s.Execute(cbg, game.ID(), &Request{Action: action.StartRound})
	a.NoError(err)
	a.Equal(holdem.PhasePreFlop, res.Game.Phase())

	_, err = s.Execute(cbg, game.ID(), &Request{Action: action.Call, PlayerID: ids[1]})
	a.NoError(err)

	// a rejected command leaves the stored game alone
	_, err = s.Execute(cbg, game.ID(), &Request{Action: action.Bet, PlayerID: ids[1], Amount: 10})
	a.Equal(holdem.ErrNotYourTurn, err)

	stored, err := s.Game(cbg, game.ID())
	a.NoError(err)
	a.Equal(&holdem.LastAction{PlayerID: ids[1], Action: action.Call, Amount: 5}, stored.LastAction())
	turn, err := stored.CurrentTurn()
	if a.NoError(err) {
		a.Equal(ids[0], turn.ID())
	}

	res, err = s.Execute(cbg, game.ID(), &Request{Action: action.Check, PlayerID: ids[0]})
	a.NoError(err)
	a.Equal(holdem.PhaseFlop, res.Game.Phase())
	a.Len(res.Game.Table().Community(), 3)

	res, err = s.Execute(cbg, game.ID(), &Request{Action: action.Fold, PlayerID: ids[1]})
	a.NoError(err)
	a.Equal(holdem.PhaseNotStarted, res.Game.Phase())

	p, err := res.Game.Player(ids[0])
	a.NoError(err)
	a.Equal(1010, p.Balance())
}

func TestService_ExecuteQuit(t *testing.T) {
	a := assert.New(t)

	s, game := newTestService(t)
	ids := join(t, s, game.ID(), 1000, 250)

	res, err := s.Execute(cbg, game.ID(), &Request{Action: action.Quit, PlayerID: ids[1]})
	a.NoError(err)
	if a.NotNil(res.Quit) {
		a.Equal(ids[1], res.Quit.Player.ID())
		a.Equal(250, res.Quit.Bankroll)
	}

	stored, err := s.Game(cbg, game.ID())
	a.NoError(err)
	a.False(stored.Table().IsPlayerSeated(ids[1]))

	_, err = s.Execute(cbg, game.ID(), &Request{Action: action.Quit, PlayerID: ids[1]})
	a.Equal(holdem.ErrPlayerNotFound, err)
}

func TestService_ExecuteErrors(t *testing.T) {
	a := assert.New(t)

	s, game := newTestService(t)

	_, err := s.Execute(cbg, uuid.New(), &Request{Action: action.StartRound})
	a.Equal(store.ErrGameNotFound, err)

	_, err = s.Execute(cbg, game.ID(), &Request{Action: action.Action("shuffle")})
	a.True(errors.Is(err, ErrUnknownAction))
	a.EqualError(err, "unknown action: shuffle")

	_, err = s.Execute(cbg, game.ID(), &Request{Action: action.StartRound})
	a.True(errors.Is(err, holdem.ErrNotEnoughPlayers))
}

type failingRepository struct {
	Repository
	err error
}

func (f *failingRepository) Save(context.Context, *holdem.Game) error {
	return f.err
}

func TestService_ExecuteSaveFails(t *testing.T) {
	a := assert.New(t)

	repo := &failingRepository{
		Repository: store.NewMemoryStore(logrus.StandardLogger()),
		err:        errors.New("disk full"),
	}

	s := NewService(logrus.StandardLogger(), repo, NewMemoryLocker())
	game, err := s.CreateGame(cbg, testOptions())
	a.NoError(err)

	res, err := s.Execute(cbg, game.ID(), &Request{Action: action.Join, PlayerID: uuid.New(), Name: "Alice", Amount: 100})
	a.EqualError(err, "disk full")
	a.Nil(res)

	stored, err := s.Game(cbg, game.ID())
	a.NoError(err)
	a.Empty(stored.Table().Players())
}

func TestService_ExecuteConcurrently(t *testing.T) {
	a := assert.New(t)

	s, game := newTestService(t)
	ids := join(t, s, game.ID(), 1000)

	const workers = 25
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := s.Execute(cbg, game.ID(), &Request{Action: action.Rebuy, PlayerID: ids[0], Amount: 10})
			a.NoError(err)
		}()
	}

	wg.Wait()

	stored, err := s.Game(cbg, game.ID())
	a.NoError(err)
	p, err := stored.Player(ids[0])
	a.NoError(err)
	a.Equal(1000+workers*10, p.Balance())
}
