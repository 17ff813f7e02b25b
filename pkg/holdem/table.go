package holdem

import (
	"github.com/google/uuid"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker/potmanager"
)

// Button is a role that at most one seat holds at a time
type Button int

// Button constants
const (
	DealerButton Button = iota
	SmallBlind
	BigBlind
	Turn
	buttonCount
)

// Buttons lists every button
var Buttons = []Button{DealerButton, SmallBlind, BigBlind, Turn}

func (b Button) String() string {
	switch b {
	case DealerButton:
		return "dealer"
	case SmallBlind:
		return "small-blind"
	case BigBlind:
		return "big-blind"
	case Turn:
		return "turn"
	}

	return ""
}

const noSeat = -1

// Seat is a position at the table
type Seat struct {
	index  int
	player *Player
}

// Index returns the position of the seat
func (s *Seat) Index() int {
	return s.index
}

// Player returns the seated player, or nil
func (s *Seat) Player() *Player {
	return s.player
}

// IsEmpty returns true if nobody sits in the seat
func (s *Seat) IsEmpty() bool {
	return s.player == nil
}

// Table keeps track of who sits where, who holds which button, and where the cards and chips are.
// The table does not know the rules of the game. Only the dealer changes it.
type Table struct {
	seats     []*Seat
	buttons   [buttonCount]int
	deck      *deck.Deck
	waste     deck.Hand
	community deck.Hand
	pot       *potmanager.Pot
}

func newTable(seatCount int, d *deck.Deck) (*Table, error) {
	if seatCount < 2 {
		return nil, newError(KindInvalidTable, "a table needs at least 2 seats")
	}

	seats := make([]*Seat, seatCount)
	for i := range seats {
		seats[i] = &Seat{index: i}
	}

	t := &Table{
		seats:     seats,
		deck:      d,
		waste:     deck.Hand{},
		community: deck.Hand{},
		pot:       potmanager.New(seatCount),
	}

	t.clearButtons()
	return t, nil
}

// SeatCount returns the number of seats
func (t *Table) SeatCount() int {
	return len(t.seats)
}

// Seat returns the seat at index
func (t *Table) Seat(index int) (*Seat, error) {
	if index < 0 || index >= len(t.seats) {
		return nil, ErrSeatNotFound
	}

	return t.seats[index], nil
}

// AvailableSeats returns the indexes of the empty seats
func (t *Table) AvailableSeats() []int {
	available := make([]int, 0, len(t.seats))
	for _, seat := range t.seats {
		if seat.IsEmpty() {
			available = append(available, seat.index)
		}
	}

	return available
}

// Players returns the seated players in seat order
func (t *Table) Players() []*Player {
	players := make([]*Player, 0, len(t.seats))
	for _, seat := range t.seats {
		if seat.player != nil {
			players = append(players, seat.player)
		}
	}

	return players
}

// ActivePlayers returns the players holding a hand that has not been folded
func (t *Table) ActivePlayers() []*Player {
	active := make([]*Player, 0, len(t.seats))
	for _, p := range t.Players() {
		if p.IsActive() {
			active = append(active, p)
		}
	}

	return active
}

// Player returns the seated player with the given ID
func (t *Table) Player(id uuid.UUID) (*Player, error) {
	for _, seat := range t.seats {
		if seat.player != nil && seat.player.id == id {
			return seat.player, nil
		}
	}

	return nil, ErrPlayerNotFound
}

// IsPlayerSeated returns true if the player sits at the table
func (t *Table) IsPlayerSeated(id uuid.UUID) bool {
	_, err := t.Player(id)
	return err == nil
}

// SeatOf returns the seat index of the player
func (t *Table) SeatOf(p *Player) (int, error) {
	for _, seat := range t.seats {
		if seat.player == p {
			return seat.index, nil
		}
	}

	return noSeat, ErrPlayerNotFound
}

// ButtonSeat returns the index of the seat holding the button
func (t *Table) ButtonSeat(b Button) (int, error) {
	seat := t.buttons[b]
	if seat == noSeat {
		return noSeat, newError(KindButtonNotAssigned, "the %s button is not assigned", b)
	}

	return seat, nil
}

// ButtonPlayer returns the player sitting in the seat holding the button
func (t *Table) ButtonPlayer(b Button) (*Player, error) {
	seat, err := t.ButtonSeat(b)
	if err != nil {
		return nil, err
	}

	if p := t.seats[seat].player; p != nil {
		return p, nil
	}

	return nil, newError(KindButtonNotAssigned, "nobody sits in the %s seat", b)
}

// HasButton returns true if the player's seat holds the button
func (t *Table) HasButton(p *Player, b Button) bool {
	seat, err := t.SeatOf(p)
	return err == nil && t.buttons[b] == seat
}

// ButtonsAt returns the buttons held by the seat
func (t *Table) ButtonsAt(seat int) []Button {
	buttons := make([]Button, 0)
	for _, b := range Buttons {
		if t.buttons[b] == seat {
			buttons = append(buttons, b)
		}
	}

	return buttons
}

// NextSeat returns the first seat clockwise of from that matches. The from seat itself is never returned.
func (t *Table) NextSeat(from int, matches func(seat *Seat) bool) (int, error) {
	n := len(t.seats)
	if from < 0 || from >= n {
		return noSeat, ErrSeatNotFound
	}

	for i := 1; i < n; i++ {
		seat := t.seats[(from+i)%n]
		if matches(seat) {
			return seat.index, nil
		}
	}

	return noSeat, ErrNoSeatAvailable
}

// NextPlayer returns the first seated player clockwise of from that matches
func (t *Table) NextPlayer(from int, matches func(p *Player) bool) (*Player, error) {
	seat, err := t.NextSeat(from, func(seat *Seat) bool {
		return seat.player != nil && matches(seat.player)
	})
	if err != nil {
		return nil, err
	}

	return t.seats[seat].player, nil
}

// PlayersFrom returns the seated players clockwise, starting after the from seat and ending with it
func (t *Table) PlayersFrom(from int) []*Player {
	n := len(t.seats)
	players := make([]*Player, 0, n)
	for i := 1; i <= n; i++ {
		if p := t.seats[((from+i)%n+n)%n].player; p != nil {
			players = append(players, p)
		}
	}

	return players
}

// BetOf returns what the player committed to the pot during this round
func (t *Table) BetOf(p *Player) int {
	seat, err := t.SeatOf(p)
	if err != nil {
		return 0
	}

	return t.pot.BetOf(seat)
}

// HighestBet returns the largest amount committed by a seat
func (t *Table) HighestBet() int {
	return t.pot.HighestBet()
}

// CallAmount returns what the player must add to match the highest bet
func (t *Table) CallAmount(p *Player) int {
	return t.HighestBet() - t.BetOf(p)
}

// PotTotal returns the chips in the pot
func (t *Table) PotTotal() int {
	return t.pot.Total()
}

// Community returns the revealed community cards
func (t *Table) Community() deck.Hand {
	return t.community.Clone()
}

// Waste returns the discarded cards
func (t *Table) Waste() deck.Hand {
	return t.waste.Clone()
}

// CardsInDeck returns the number of undealt cards
func (t *Table) CardsInDeck() int {
	return t.deck.CardsLeft()
}

func (t *Table) sitPlayer(index int, p *Player) error {
	seat, err := t.Seat(index)
	if err != nil {
		return err
	}

	if !seat.IsEmpty() {
		return ErrSeatTaken
	}

	if t.IsPlayerSeated(p.id) {
		return ErrPlayerAlreadySeated
	}

	seat.player = p
	return nil
}

// standPlayer empties the player's seat. Chips they left in the pot become dead money.
func (t *Table) standPlayer(p *Player) error {
	seat, err := t.SeatOf(p)
	if err != nil {
		return err
	}

	t.pot.Forfeit(seat)
	t.seats[seat].player = nil
	return nil
}

func (t *Table) assignButton(b Button, p *Player) error {
	seat, err := t.SeatOf(p)
	if err != nil {
		return err
	}

	t.buttons[b] = seat
	return nil
}

func (t *Table) removeButton(b Button, p *Player) error {
	if !t.HasButton(p, b) {
		return newError(KindIllegalState, "%s does not hold the %s button", p, b)
	}

	t.buttons[b] = noSeat
	return nil
}

func (t *Table) clearButton(b Button) {
	t.buttons[b] = noSeat
}

func (t *Table) clearButtons() {
	for _, b := range Buttons {
		t.clearButton(b)
	}
}

func (t *Table) placeBet(p *Player, amount int) error {
	seat, err := t.SeatOf(p)
	if err != nil {
		return err
	}

	return t.pot.PlaceBet(seat, amount)
}

func (t *Table) collectBets() int {
	return t.pot.Collect()
}

func (t *Table) discard(cards ...*deck.Card) {
	for _, card := range cards {
		card.TurnFaceDown()
		t.waste.AddCard(card)
	}
}
