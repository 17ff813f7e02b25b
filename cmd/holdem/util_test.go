package main

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"holdem-server/pkg/holdem"
	"holdem-server/pkg/poker/action"
	"holdem-server/pkg/service"
)

func joinPlayer(t *testing.T, s *simulator, game *holdem.Game, seat, bankroll int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	if _, err := s.service.Execute(context.Background(), game.ID(), &service.Request{
		Action:   action.Join,
		PlayerID: id,
		Seat:     seat,
		Name:     "player",
		Amount:   bankroll,
	}); err != nil {
		t.Fatal(err)
	}

	return id
}
