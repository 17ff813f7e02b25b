package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits lists every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Rank is the rank of a card. Ace is the lowest rank.
type Rank int

// rank constants
const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Orientation is whether the face of a card can be seen
type Orientation string

// orientation constants
const (
	FaceDown Orientation = "face-down"
	FaceUp   Orientation = "face-up"
)

// Card is an individual playing card
type Card struct {
	Rank        Rank        `json:"rank"`
	Suit        Suit        `json:"suit"`
	Orientation Orientation `json:"orientation"`
}

// NewCard returns a face-down card
func NewCard(rank Rank, suit Suit) *Card {
	return &Card{
		Rank:        rank,
		Suit:        suit,
		Orientation: FaceDown,
	}
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(r))
	}
}

func (c *Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", c.Rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// IsFaceUp returns true if the card is face up
func (c *Card) IsFaceUp() bool {
	return c.Orientation == FaceUp
}

// TurnFaceUp reveals the card
func (c *Card) TurnFaceUp() {
	c.Orientation = FaceUp
}

// TurnFaceDown hides the card
func (c *Card) TurnFaceDown() {
	c.Orientation = FaceDown
}

var cardRx = regexp.MustCompile(`(?i)^(10|1[1-3]|[1-9]|[atjqk])([cdhs])\z`)

// CardFromString returns a face-down Card from the string.
// The string must be in the format of <rank><suit> where rank is A, 2-10, T, J, Q, K (or 1-13)
// and suit is in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	var rank Rank
	switch strings.ToLower(match[1]) {
	case "a":
		rank = Ace
	case "t":
		rank = Ten
	case "j":
		rank = Jack
	case "q":
		rank = Queen
	case "k":
		rank = King
	default:
		r, err := strconv.Atoi(match[1])
		if err != nil {
			panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
		}

		rank = Rank(r)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return NewCard(rank, suit)
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (Ac)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%s%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
