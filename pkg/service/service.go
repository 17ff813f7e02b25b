package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/holdem"
	"holdem-server/pkg/poker/action"
	"holdem-server/pkg/store"
)

// ErrUnknownAction is returned when a request names an action no command handles
var ErrUnknownAction = errors.New("unknown action")

// Repository loads and saves games
type Repository interface {
	Create(ctx context.Context, game *holdem.Game) error
	Load(ctx context.Context, id uuid.UUID) (*holdem.Game, error)
	Save(ctx context.Context, game *holdem.Game) error
}

// Request is one command for a game
// Seat and Name are used by join, Amount by join, rebuy, bet and raise.
type Request struct {
	Action   action.Action `json:"action"`
	PlayerID uuid.UUID     `json:"playerId"`
	Seat     int           `json:"seat"`
	Name     string        `json:"name"`
	Amount   int           `json:"amount"`
}

// Result is the state of the game after a command
type Result struct {
	Game *holdem.Game
	// Quit is set when the command was a quit
	Quit *holdem.QuitResult
}

// Service runs commands against stored games
// At most one command per game is in flight at a time.
type Service struct {
	logger logrus.FieldLogger
	repo   Repository
	locker Locker
}

// NewService returns a Service
func NewService(logger logrus.FieldLogger, repo Repository, locker Locker) *Service {
	return &Service{
		logger: logger,
		repo:   repo,
		locker: locker,
	}
}

// CreateGame stores a new game with an empty table
func (s *Service) CreateGame(ctx context.Context, opts holdem.Options) (*holdem.Game, error) {
	rules, err := holdem.NewRules(opts)
	if err != nil {
		return nil, err
	}

	game, err := holdem.NewGame(s.logger, uuid.New(), rules)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, game); err != nil {
		s.logger.WithError(err).WithField("game", game.ID()).Error("could not create game")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"game":       game.ID(),
		"maxPlayers": rules.MaxPlayers(),
		"smallBlind": rules.SmallBlind(),
		"bigBlind":   rules.BigBlind(),
	}).Info("game created")

	return game, nil
}

// Game returns the stored game
func (s *Service) Game(ctx context.Context, id uuid.UUID) (*holdem.Game, error) {
	return s.repo.Load(ctx, id)
}

// Execute loads the game, runs one command and saves the game
// Nothing is saved when the command fails.
func (s *Service) Execute(ctx context.Context, gameID uuid.UUID, req *Request) (*Result, error) {
	log := s.logger.WithFields(logrus.Fields{
		"game":   gameID,
		"action": string(req.Action),
	})

	if req.PlayerID != uuid.Nil {
		log = log.WithField("player", req.PlayerID)
	}

	unlock, err := s.locker.Lock(ctx, gameID.String())
	if err != nil {
		log.WithError(err).Error("could not lock game")
		return nil, err
	}
	defer unlock()

	game, err := s.repo.Load(ctx, gameID)
	if err != nil {
		s.logFailure(log, err, "could not load game")
		return nil, err
	}

	result, err := apply(game, req)
	if err != nil {
		s.logFailure(log, err, "command rejected")
		return nil, err
	}

	if err := s.repo.Save(ctx, game); err != nil {
		log.WithError(err).Error("could not save game")
		return nil, err
	}

	log.WithField("phase", game.Phase().String()).Debug("command applied")
	return result, nil
}

// logFailure logs rejected commands and missing games at info, everything else at error
func (s *Service) logFailure(log logrus.FieldLogger, err error, msg string) {
	if holdem.IsUserError(err) || errors.Is(err, store.ErrGameNotFound) || errors.Is(err, ErrUnknownAction) {
		log.WithError(err).Info(msg)
		return
	}

	log.WithError(err).Error(msg)
}

func apply(game *holdem.Game, req *Request) (*Result, error) {
	result := &Result{Game: game}

	var err error
	switch req.Action {
	case action.StartRound:
		err = game.StartRound()
	case action.AbortRound:
		err = game.AbortRound()
	case action.Join:
		err = game.Join(req.PlayerID, req.Seat, req.Name, req.Amount)
	case action.Quit:
		result.Quit, err = game.Quit(req.PlayerID)
	case action.Rebuy:
		err = game.Rebuy(req.PlayerID, req.Amount)
	case action.SitOut:
		err = game.SitOut(req.PlayerID)
	case action.SitIn:
		err = game.SitIn(req.PlayerID)
	case action.Check:
		err = game.Check(req.PlayerID)
	case action.Call:
		err = game.Call(req.PlayerID)
	case action.Bet:
		err = game.Bet(req.PlayerID, req.Amount)
	case action.Raise:
		err = game.Raise(req.PlayerID, req.Amount)
	case action.Fold:
		err = game.Fold(req.PlayerID)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, string(req.Action))
	}

	if err != nil {
		return nil, err
	}

	return result, nil
}
