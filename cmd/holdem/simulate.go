package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-server/internal/rng"
	"holdem-server/internal/util"
	"holdem-server/pkg/holdem"
	"holdem-server/pkg/poker/action"
	"holdem-server/pkg/service"
)

// maxActionsPerHand stops a hand that never finishes
const maxActionsPerHand = 500

// standing is where a player ended the simulation
type standing struct {
	Name     string
	Bankroll int
	Seated   bool
}

type simulator struct {
	logger  logrus.FieldLogger
	service *service.Service
	rng     rng.Generator
}

// run seats the players and plays until hands are done or too few players can afford the blinds
func (s *simulator) run(ctx context.Context, opts holdem.Options, players, hands, bankroll int) ([]*standing, error) {
	if players > opts.MaxPlayers {
		return nil, fmt.Errorf("the table seats at most %d players", opts.MaxPlayers)
	}

	game, err := s.service.CreateGame(ctx, opts)
	if err != nil {
		return nil, err
	}

	gameID := game.ID()
	standings := make(map[uuid.UUID]*standing, players)
	order := make([]uuid.UUID, 0, players)
	for seat, name := range util.GetRandomNames(players) {
		id := uuid.New()
		if _, err := s.service.Execute(ctx, gameID, &service.Request{
			Action:   action.Join,
			PlayerID: id,
			Seat:     seat,
			Name:     name,
			Amount:   bankroll,
		}); err != nil {
			return nil, err
		}

		standings[id] = &standing{Name: name, Bankroll: bankroll, Seated: true}
		order = append(order, id)
	}

	for hand := 1; hand <= hands; hand++ {
		if _, err := s.service.Execute(ctx, gameID, &service.Request{Action: action.StartRound}); err != nil {
			if errors.Is(err, holdem.ErrNotEnoughPlayers) {
				s.logger.WithField("hand", hand).Info("not enough players left to deal")
				break
			}

			return nil, err
		}

		if err := s.playHand(ctx, gameID); err != nil {
			return nil, err
		}

		if err := s.leaveBroke(ctx, gameID, standings); err != nil {
			return nil, err
		}
	}

	game, err = s.service.Game(ctx, gameID)
	if err != nil {
		return nil, err
	}

	result := make([]*standing, 0, len(order))
	for _, id := range order {
		st := standings[id]
		if p, err := game.Player(id); err == nil {
			st.Bankroll = p.Balance()
		}

		s.logger.WithFields(logrus.Fields{
			"player":   st.Name,
			"bankroll": st.Bankroll,
			"seated":   st.Seated,
		}).Info("final bankroll")

		result = append(result, st)
	}

	return result, nil
}

func (s *simulator) playHand(ctx context.Context, gameID uuid.UUID) error {
	for i := 0; i < maxActionsPerHand; i++ {
		game, err := s.service.Game(ctx, gameID)
		if err != nil {
			return err
		}

		if !game.Phase().InProgress() {
			return nil
		}

		p, err := game.CurrentTurn()
		if err != nil {
			return err
		}

		_, err = s.service.Execute(ctx, gameID, s.decide(game, p))
		if err == nil {
			continue
		}

		if !holdem.IsUserError(err) {
			return err
		}

		// a rejected decision gives up the hand
		if _, err := s.service.Execute(ctx, gameID, &service.Request{Action: action.Fold, PlayerID: p.ID()}); err != nil {
			return err
		}
	}

	s.logger.WithField("game", gameID).Warn("hand did not finish, aborting")
	_, err := s.service.Execute(ctx, gameID, &service.Request{Action: action.AbortRound})
	return err
}

// decide picks a legal action for the player on the turn
func (s *simulator) decide(game *holdem.Game, p *holdem.Player) *service.Request {
	req := &service.Request{PlayerID: p.ID()}
	toCall := game.Table().CallAmount(p)
	bigBlind := game.Rules().BigBlind()
	roll := s.rng.Intn(10)

	switch {
	case toCall == 0 && roll < 2 && p.Balance() >= bigBlind:
		req.Action = action.Bet
		req.Amount = bigBlind
	case toCall == 0:
		req.Action = action.Check
	case toCall > p.Balance() || roll == 0:
		req.Action = action.Fold
	case roll == 1 && p.Balance() >= toCall+bigBlind:
		req.Action = action.Raise
		req.Amount = toCall + bigBlind
	default:
		req.Action = action.Call
	}

	return req
}

// leaveBroke removes the players who can no longer afford the big blind
func (s *simulator) leaveBroke(ctx context.Context, gameID uuid.UUID, standings map[uuid.UUID]*standing) error {
	game, err := s.service.Game(ctx, gameID)
	if err != nil {
		return err
	}

	for _, p := range game.Table().Players() {
		if game.IsEligible(p) {
			continue
		}

		res, err := s.service.Execute(ctx, gameID, &service.Request{Action: action.Quit, PlayerID: p.ID()})
		if err != nil {
			return err
		}

		st := standings[p.ID()]
		st.Bankroll = res.Quit.Bankroll
		st.Seated = false
	}

	return nil
}
