package holdem

import (
	"encoding/json"
	"fmt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker/potmanager"
)

type gameJSON struct {
	ID          uuid.UUID     `json:"id"`
	Rules       Options       `json:"rules"`
	Phase       Phase         `json:"phase"`
	TurnMemory  []uuid.UUID   `json:"turnMemory"`
	Seats       []*playerJSON `json:"seats"`
	Buttons     []int         `json:"buttons"`
	Deck        deck.Hand     `json:"deck"`
	Waste       deck.Hand     `json:"waste"`
	Community   deck.Hand     `json:"community"`
	Bets        []int         `json:"bets"`
	DeadMoney   int           `json:"deadMoney"`
	LastAction  *LastAction   `json:"lastAction,omitempty"`
	LastWinners []*Winner     `json:"lastWinners,omitempty"`
}

type playerJSON struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Balance    int       `json:"balance"`
	SittingOut bool      `json:"sittingOut"`
	Hand       *handJSON `json:"hand,omitempty"`
}

type handJSON struct {
	Cards  deck.Hand `json:"cards"`
	Folded bool      `json:"folded"`
}

// MarshalJSON encodes the complete state of the game
func (g *Game) MarshalJSON() ([]byte, error) {
	t := g.table
	seats := make([]*playerJSON, len(t.seats))
	for i, seat := range t.seats {
		p := seat.player
		if p == nil {
			continue
		}

		pj := &playerJSON{
			ID:         p.id,
			Name:       p.name,
			Balance:    p.balance,
			SittingOut: p.sittingOut,
		}

		if p.hand != nil {
			pj.Hand = &handJSON{
				Cards:  p.hand.cards,
				Folded: p.hand.folded,
			}
		}

		seats[i] = pj
	}

	return json.Marshal(gameJSON{
		ID:          g.id,
		Rules:       g.dealer.rules.Options(),
		Phase:       g.dealer.phase,
		TurnMemory:  g.dealer.memory.Played(),
		Seats:       seats,
		Buttons:     t.buttons[:],
		Deck:        t.deck.Cards,
		Waste:       t.waste,
		Community:   t.community,
		Bets:        t.pot.Bets(),
		DeadMoney:   t.pot.DeadMoney(),
		LastAction:  g.dealer.lastAction,
		LastWinners: g.dealer.lastWinners,
	})
}

// UnmarshalGame restores a game encoded by MarshalJSON
// The restored rules shuffle with the default strategy.
func UnmarshalGame(logger logrus.FieldLogger, data []byte) (*Game, error) {
	var gj gameJSON
	if err := json.Unmarshal(data, &gj); err != nil {
		return nil, err
	}

	rules, err := NewRules(gj.Rules)
	if err != nil {
		return nil, err
	}

	t, err := newTable(len(gj.Seats), &deck.Deck{Cards: nonNil(gj.Deck)})
	if err != nil {
		return nil, err
	}

	for i, pj := range gj.Seats {
		if pj == nil {
			continue
		}

		p := newPlayer(pj.ID, pj.Name, pj.Balance)
		p.sittingOut = pj.SittingOut
		if pj.Hand != nil {
			p.hand = &Hand{
				cards:  nonNil(pj.Hand.Cards),
				folded: pj.Hand.Folded,
			}
		}

		if err := t.sitPlayer(i, p); err != nil {
			return nil, err
		}
	}

	if len(gj.Buttons) != int(buttonCount) {
		return nil, fmt.Errorf("expected %d buttons, got %d", buttonCount, len(gj.Buttons))
	}

	for b, seat := range gj.Buttons {
		if seat < noSeat || seat >= t.SeatCount() {
			return nil, fmt.Errorf("%s button is at an invalid seat: %d", Button(b), seat)
		}

		t.buttons[b] = seat
	}

	if len(gj.Bets) != t.SeatCount() {
		return nil, fmt.Errorf("expected %d bets, got %d", t.SeatCount(), len(gj.Bets))
	}

	if t.pot, err = potmanager.Restore(gj.Bets, gj.DeadMoney); err != nil {
		return nil, err
	}

	if !gj.Phase.isValid() {
		return nil, fmt.Errorf("invalid phase: %d", gj.Phase)
	}

	if len(gj.Community) != gj.Phase.CommunityCards() {
		return nil, fmt.Errorf("%s expects %d community cards, got %d", gj.Phase, gj.Phase.CommunityCards(), len(gj.Community))
	}

	t.waste = nonNil(gj.Waste)
	t.community = nonNil(gj.Community)

	d := newDealer(logger.WithField("game", gj.ID), rules)
	d.phase = gj.Phase
	d.memory = newTurnMemory(gj.TurnMemory...)
	d.lastAction = gj.LastAction
	d.lastWinners = gj.LastWinners

	return &Game{
		id:     gj.ID,
		table:  t,
		dealer: d,
	}, nil
}

func nonNil(h deck.Hand) deck.Hand {
	if h == nil {
		return deck.Hand{}
	}

	return h
}
