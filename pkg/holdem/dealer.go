package holdem

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker/action"
	"holdem-server/pkg/poker/handanalyzer"
	"holdem-server/pkg/poker/potmanager"
)

// cardsPerPlayer is the number of private cards dealt to each player
const cardsPerPlayer = 2

// communityCardCount is the number of community cards dealt over a full round
const communityCardCount = 5

// LastAction is the last command the dealer accepted
type LastAction struct {
	PlayerID uuid.UUID     `json:"playerId"`
	Action   action.Action `json:"action"`
	Amount   int           `json:"amount"`
}

// Dealer enforces the rules and moves a round from the pre-flop to the showdown.
// The dealer holds no cards or chips. Everything it manipulates lives on the Table.
type Dealer struct {
	logger     logrus.FieldLogger
	rules      *Rules
	memory     *TurnMemory
	phase      Phase
	lastAction *LastAction

	// lastWinners are the players paid at the end of the previous round
	lastWinners []*Winner
}

func newDealer(logger logrus.FieldLogger, rules *Rules) *Dealer {
	return &Dealer{
		logger: logger,
		rules:  rules,
		memory: newTurnMemory(),
		phase:  PhaseNotStarted,
	}
}

// isEligible returns true if the player can be dealt into the next round
func (d *Dealer) isEligible(p *Player) bool {
	return !p.sittingOut && p.balance >= d.rules.MinimumBet()
}

func (d *Dealer) eligiblePlayers(t *Table) []*Player {
	eligible := make([]*Player, 0)
	for _, p := range t.Players() {
		if d.isEligible(p) {
			eligible = append(eligible, p)
		}
	}

	return eligible
}

func (d *Dealer) startRound(t *Table) error {
	if d.phase.InProgress() {
		return ErrRoundInProgress
	}

	eligible := d.eligiblePlayers(t)
	if len(eligible) < d.rules.MinPlayers() {
		return newError(KindNotEnoughPlayers, "not enough players: %d of %d", len(eligible), d.rules.MinPlayers())
	}

	if need := len(eligible)*cardsPerPlayer + communityCardCount; t.deck.CardsLeft()+t.waste.Len() < need {
		return ErrNotEnoughCards
	}

	dealer, smallBlind, bigBlind, err := d.nextButtonHolders(t, eligible)
	if err != nil {
		return err
	}

	bigBlindSeat, err := t.SeatOf(bigBlind)
	if err != nil {
		return err
	}

	firstToAct, err := t.NextPlayer(bigBlindSeat, d.isEligible)
	if err != nil {
		return err
	}

	// nothing below can fail for a reason other than a defect
	t.clearButtons()
	for b, p := range map[Button]*Player{DealerButton: dealer, SmallBlind: smallBlind, BigBlind: bigBlind} {
		if err := t.assignButton(b, p); err != nil {
			return err
		}
	}

	if err := d.postBlind(t, smallBlind, d.rules.SmallBlind()); err != nil {
		return err
	}

	if err := d.postBlind(t, bigBlind, d.rules.BigBlind()); err != nil {
		return err
	}

	t.deck.AddCards(t.waste.RemoveAll()...)
	t.deck.Shuffle(d.rules.Shuffler())

	for _, p := range eligible {
		p.hand = newHand()
	}

	for i := 0; i < cardsPerPlayer; i++ {
		for _, p := range eligible {
			card, err := t.deck.Draw()
			if err != nil {
				return err
			}

			if err := p.hand.addCard(card); err != nil {
				return err
			}
		}
	}

	if err := t.assignButton(Turn, firstToAct); err != nil {
		return err
	}

	d.memory.reset()
	d.phase = PhasePreFlop
	d.recordAction(uuid.Nil, action.StartRound, 0)

	d.logger.WithFields(logrus.Fields{
		"dealer":     dealer.name,
		"smallBlind": smallBlind.name,
		"bigBlind":   bigBlind.name,
		"turn":       firstToAct.name,
		"players":    len(eligible),
	}).Info("round started")

	return nil
}

// nextButtonHolders moves the dealer button one eligible player clockwise, then
// hands the blinds to the next two eligible players
func (d *Dealer) nextButtonHolders(t *Table, eligible []*Player) (dealer, smallBlind, bigBlind *Player, err error) {
	if seat, seatErr := t.ButtonSeat(DealerButton); seatErr == nil {
		if dealer, err = t.NextPlayer(seat, d.isEligible); err != nil {
			return nil, nil, nil, err
		}
	} else {
		dealer = eligible[0]
	}

	next := func(p *Player) (*Player, error) {
		seat, err := t.SeatOf(p)
		if err != nil {
			return nil, err
		}

		return t.NextPlayer(seat, d.isEligible)
	}

	if smallBlind, err = next(dealer); err != nil {
		return nil, nil, nil, err
	}

	if bigBlind, err = next(smallBlind); err != nil {
		return nil, nil, nil, err
	}

	return dealer, smallBlind, bigBlind, nil
}

func (d *Dealer) postBlind(t *Table, p *Player, amount int) error {
	if err := p.debit(amount); err != nil {
		return err
	}

	return t.placeBet(p, amount)
}

// abortRound ends the round right away and pays whoever holds the best hand
func (d *Dealer) abortRound(t *Table) error {
	if !d.phase.InProgress() {
		return ErrNoRoundInProgress
	}

	d.recordAction(uuid.Nil, action.AbortRound, 0)
	return d.endRound(t)
}

// onTurnTaken is called after every accepted betting action and after a player on
// the turn quits
func (d *Dealer) onTurnTaken(t *Table, p *Player) error {
	d.memory.save(p.id)
	if err := t.removeButton(Turn, p); err != nil {
		return err
	}

	if len(t.ActivePlayers()) < d.rules.MinPlayers() {
		d.logger.Info("not enough players left in the round")
		return d.endRound(t)
	}

	if d.isBettingRoundOver(t) {
		return d.finishBettingRound(t)
	}

	seat, err := t.SeatOf(p)
	if err != nil {
		return err
	}

	next, err := t.NextPlayer(seat, (*Player).IsActive)
	if err != nil {
		return err
	}

	return t.assignButton(Turn, next)
}

// isBettingRoundOver returns true if every active player acted and matched the highest bet
func (d *Dealer) isBettingRoundOver(t *Table) bool {
	highest := t.HighestBet()
	for _, p := range t.ActivePlayers() {
		if !d.memory.HasPlayed(p.id) || t.BetOf(p) != highest {
			return false
		}
	}

	return true
}

func (d *Dealer) finishBettingRound(t *Table) error {
	var err error
	switch d.phase {
	case PhasePreFlop:
		err = d.dealFlop(t)
	case PhaseFlop:
		err = d.dealTurn(t)
	case PhaseTurn:
		err = d.dealRiver(t)
	case PhaseRiver:
		return d.endRound(t)
	default:
		return newError(KindIllegalState, "cannot finish a betting round during %s", d.phase)
	}

	if err != nil {
		return err
	}

	return d.startBettingRound(t)
}

func (d *Dealer) dealFlop(t *Table) error {
	return d.dealCommunity(t, 0, 3, PhaseFlop)
}

func (d *Dealer) dealTurn(t *Table) error {
	return d.dealCommunity(t, 3, 1, PhaseTurn)
}

func (d *Dealer) dealRiver(t *Table) error {
	return d.dealCommunity(t, 4, 1, PhaseRiver)
}

// dealCommunity deals n face up cards when exactly `have` cards are already revealed
func (d *Dealer) dealCommunity(t *Table, have, n int, next Phase) error {
	if t.community.Len() != have || d.phase.CommunityCards() != have {
		return newError(KindIllegalState, "cannot deal the %s with %d community cards during %s", next, t.community.Len(), d.phase)
	}

	if !t.deck.CanDraw(n) {
		return ErrNotEnoughCards
	}

	for i := 0; i < n; i++ {
		card, err := t.deck.Draw()
		if err != nil {
			return err
		}

		card.TurnFaceUp()
		t.community.AddCard(card)
	}

	d.phase = next
	d.logger.WithFields(logrus.Fields{
		"phase":     next.String(),
		"community": t.community.String(),
	}).Debug("community cards dealt")

	return nil
}

// startBettingRound gives the turn to the first active player clockwise of the dealer
func (d *Dealer) startBettingRound(t *Table) error {
	dealerSeat, err := t.ButtonSeat(DealerButton)
	if err != nil {
		return err
	}

	first, err := t.NextPlayer(dealerSeat, (*Player).IsActive)
	if err != nil {
		return err
	}

	d.memory.reset()
	return t.assignButton(Turn, first)
}

// Winner is a player who took chips at the end of a round
type Winner struct {
	PlayerID uuid.UUID         `json:"playerId"`
	Hand     handanalyzer.Hand `json:"hand"`
	Cards    deck.Hand         `json:"cards"`
	Amount   int               `json:"amount"`
}

type contender struct {
	player   *Player
	analyzer *handanalyzer.HandAnalyzer
}

// endRound pays out the pot and gathers every card into the waste
func (d *Dealer) endRound(t *Table) error {
	amount := t.collectBets()
	contenders := d.findWinners(t)
	d.lastWinners = make([]*Winner, 0, len(contenders))

	if len(contenders) == 0 {
		// nobody is left to claim the chips, they stay for the next round
		t.pot.AddDeadMoney(amount)
		d.logger.WithField("amount", amount).Warn("no active players, pot carried over")
	}

	for i, share := range potmanager.Split(amount, len(contenders)) {
		c := contenders[i]
		if share > 0 {
			if err := c.player.credit(share); err != nil {
				return err
			}
		}

		d.lastWinners = append(d.lastWinners, &Winner{
			PlayerID: c.player.id,
			Hand:     c.analyzer.GetHand(),
			Cards:    c.analyzer.GetCards().Copy(),
			Amount:   share,
		})

		d.logger.WithFields(logrus.Fields{
			"player": c.player.id,
			"amount": share,
			"hand":   c.analyzer.GetHand().String(),
		}).Info("pot awarded")
	}

	d.collectCards(t)
	t.clearButton(Turn)
	d.memory.reset()
	d.phase = PhaseNotStarted

	return nil
}

// findWinners returns the active players holding the strongest hand, clockwise from the dealer
func (d *Dealer) findWinners(t *Table) []*contender {
	from := 0
	if seat, err := t.ButtonSeat(DealerButton); err == nil {
		from = seat
	}

	wm := potmanager.NewWinManager[*contender]()
	for _, p := range t.PlayersFrom(from) {
		if !p.IsActive() {
			continue
		}

		analyzer := handanalyzer.New(append(p.hand.Cards(), t.community...))
		wm.AddParticipant(&contender{player: p, analyzer: analyzer}, analyzer.GetStrength())
	}

	return wm.Winners()
}

func (d *Dealer) collectCards(t *Table) {
	for _, p := range t.Players() {
		t.discard(p.discardHand()...)
	}

	t.discard(t.community.RemoveAll()...)
}

func (d *Dealer) recordAction(playerID uuid.UUID, act action.Action, amount int) {
	d.lastAction = &LastAction{
		PlayerID: playerID,
		Action:   act,
		Amount:   amount,
	}

	fields := logrus.Fields{
		"action": string(act),
		"phase":  d.phase.String(),
	}

	if playerID != uuid.Nil {
		fields["player"] = playerID
	}

	d.logger.WithFields(fields).Info(act.LogMessage(amount))
}
