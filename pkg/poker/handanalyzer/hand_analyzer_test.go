package handanalyzer

import (
	"holdem-server/pkg/deck"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandAnalyzer_GetFourOfAKind(t *testing.T) {
	a := assert.New(t)

	h := New(deck.CardsFromString("2c,3c,3d,3h,3s"))
	r, ok := h.GetFourOfAKind()
	a.True(ok)
	a.Equal("3c,3d,3h,3s", r.String())
	_, ok = h.GetThreeOfAKind()
	a.False(ok)
	_, ok = h.GetPair()
	a.False(ok)

	h = New(deck.CardsFromString("9s,4h,5c,4d,4c"))
	r, ok = h.GetFourOfAKind()
	a.False(ok)
	a.Nil(r)
}

func TestHandAnalyzer_GetFullHouse(t *testing.T) {
	a := assert.New(t)

	h := New(deck.CardsFromString("Kc,2c,Kd,5c,Kh,2d,5h"))
	r, ok := h.GetFullHouse()
	a.True(ok)
	a.Equal("Kc,Kd,Kh,5c,5h", r.String())

	// a second three of a kind is not a pair
	h = New(deck.CardsFromString("3c,3d,3h,4c,4d,4h,9s"))
	r, ok = h.GetFullHouse()
	a.False(ok)
	a.Nil(r)
	a.Equal(ThreeOfAKind, h.GetHand())
	a.True(h.GetStrength() < New(deck.CardsFromString("2h,9h,3h,Kh,5h,7c,Qd")).GetStrength())

	// the pair may sit next to a second three of a kind
	h = New(deck.CardsFromString("3c,3d,3h,4c,4d,4h,9s,9d"))
	r, ok = h.GetFullHouse()
	a.True(ok)
	a.Equal("4c,4d,4h,9s,9d", r.String())

	h = New(deck.CardsFromString("3c,3d,3h,4c,5d,6h,8c"))
	r, ok = h.GetFullHouse()
	a.False(ok)
	a.Nil(r)
}

func TestHandAnalyzer_GetFlush(t *testing.T) {
	a := assert.New(t)

	h := New(deck.CardsFromString("2h,9h,3h,Kh,5h,7h,Qd"))
	r, ok := h.GetFlush()
	a.True(ok)
	a.Equal("3h,5h,7h,9h,Kh", r.String())
	a.Equal(Flush, h.GetHand())

	h = New(deck.CardsFromString("2h,9h,3h,Kc,5h,7c,Qd"))
	_, ok = h.GetFlush()
	a.False(ok)
}

func TestHandAnalyzer_GetStraight(t *testing.T) {
	a := assert.New(t)

	h := New(deck.CardsFromString("4c,5d,6h,7s,8c,8d,Kh"))
	r, ok := h.GetStraight()
	a.True(ok)
	a.Equal("4c,5d,6h,7s,8c", r.String())

	// the highest run wins
	h = New(deck.CardsFromString("4c,5d,6h,7s,8c,9d,2h"))
	r, ok = h.GetStraight()
	a.True(ok)
	a.Equal("5d,6h,7s,8c,9d", r.String())

	// the ace plays low
	h = New(deck.CardsFromString("Ac,2d,3h,4s,5c,Jd,Kh"))
	r, ok = h.GetStraight()
	a.True(ok)
	a.Equal("Ac,2d,3h,4s,5c", r.String())
	a.Equal(Straight, h.GetHand())

	// a paired rank inside the run breaks it
	h = New(deck.CardsFromString("2c,3d,3h,4s,5c,6d,Kh"))
	_, ok = h.GetStraight()
	a.False(ok)
	a.Equal(Pair, h.GetHand())

	h = New(deck.CardsFromString("2c,3d,4h,5s,6c,6d,Kh"))
	r, ok = h.GetStraight()
	a.True(ok)
	a.Equal("2c,3d,4h,5s,6c", r.String())

	// but never high
	h = New(deck.CardsFromString("10c,Jd,Qh,Ks,Ac,3d,7h"))
	_, ok = h.GetStraight()
	a.False(ok)
	a.Equal(HighCard, h.GetHand())
}

func TestHandAnalyzer_GetStraightFlush(t *testing.T) {
	a := assert.New(t)

	h := New(deck.CardsFromString("2h,3h,4h,5h,6h,Kc,Kd"))
	r, ok := h.GetStraightFlush()
	a.True(ok)
	a.Equal("2h,3h,4h,5h,6h", r.String())
	a.Equal(StraightFlush, h.GetHand())
	a.Equal(8000, h.GetStrength())

	// a straight and a flush in different cards is not a straight flush
	h = New(deck.CardsFromString("2h,3h,4h,5c,6h,9h,Kd"))
	_, ok = h.GetStraightFlush()
	a.False(ok)
	a.Equal(Flush, h.GetHand())
}

func TestHandAnalyzer_GetRoyalFlush(t *testing.T) {
	a := assert.New(t)

	h := New(deck.CardsFromString("9s,10s,Js,Qs,Ks,Ah,2d"))
	_, ok := h.GetRoyalFlush()
	a.True(ok)
	a.Equal(RoyalFlush, h.GetHand())
	a.Equal(9000, h.GetStrength())

	// ten through ace of one suit only makes a flush because the ace plays low
	h = New(deck.CardsFromString("10s,Js,Qs,Ks,As,2h,3d"))
	_, ok = h.GetRoyalFlush()
	a.False(ok)
	a.Equal(Flush, h.GetHand())
}

func TestHandAnalyzer_GetTwoPair(t *testing.T) {
	a := assert.New(t)

	h := New(deck.CardsFromString("2c,2d,9h,9s,Kc,Kd,4h"))
	r, ok := h.GetTwoPair()
	a.True(ok)
	a.Equal("Kc,Kd,9h,9s", r.String())
	a.Equal(TwoPair, h.GetHand())

	h = New(deck.CardsFromString("2c,2d,9h,8s,Kc,Jd,4h"))
	_, ok = h.GetTwoPair()
	a.False(ok)
	a.Equal(Pair, h.GetHand())
}

func TestHandAnalyzer_GetPair(t *testing.T) {
	a := assert.New(t)

	// aces rank below kings
	h := New(deck.CardsFromString("Ac,Ad,Kh,Ks,5c"))
	r, ok := h.GetPair()
	a.True(ok)
	a.Equal("Kh,Ks", r.String())

	h = New(deck.CardsFromString("Ac,Ad"))
	r, ok = h.GetPair()
	a.True(ok)
	a.Equal("Ac,Ad", r.String())
	a.Equal(Pair, h.GetHand())
	a.Equal(1000, h.GetStrength())
}

func TestHandAnalyzer_GetHand(t *testing.T) {
	tests := []struct {
		cards    string
		hand     Hand
		strength int
	}{
		{"2c,5d,9h,Js,Kc,3d,7h", HighCard, 0},
		{"2c,2d,9h,Js,Kc,3d,7h", Pair, 1000},
		{"2c,2d,9h,9s,Kc,3d,7h", TwoPair, 2000},
		{"2c,2d,2h,9s,Kc,3d,7h", ThreeOfAKind, 3000},
		{"2c,3d,4h,5s,6c,Jd,Kh", Straight, 4000},
		{"2c,5c,9c,Jc,Kc,3d,7h", Flush, 5000},
		{"2c,2d,2h,9s,9c,3d,7h", FullHouse, 6000},
		{"2c,2d,2h,2s,9c,3d,7h", FourOfAKind, 7000},
		{"3c,4c,5c,6c,7c,Jd,Kh", StraightFlush, 8000},
		{"9d,10d,Jd,Qd,Kd,Ac,2h", RoyalFlush, 9000},
	}

	for _, test := range tests {
		h := New(deck.CardsFromString(test.cards))
		assert.Equal(t, test.hand, h.GetHand(), test.cards)
		assert.Equal(t, test.strength, h.GetStrength(), test.cards)
	}
}

func TestHandAnalyzer_HighCard(t *testing.T) {
	a := assert.New(t)

	h := New(deck.CardsFromString("2c,5d,9h,Js,Kc,3d,7h"))
	a.Equal(HighCard, h.GetHand())
	a.Equal("Kc", h.GetCards().String())

	h = New(deck.CardsFromString("Ac,5d"))
	a.Equal("5d", h.GetCards().String())

	h = New(nil)
	a.Equal(HighCard, h.GetHand())
	a.Equal(0, h.GetCards().Len())
}

func TestHandAnalyzer_SameCategoryTies(t *testing.T) {
	a := assert.New(t)

	h1 := New(deck.CardsFromString("Kc,Kd,2h,5s,9c,Jd,3h"))
	h2 := New(deck.CardsFromString("2c,2d,4h,5s,9c,Jd,3h"))
	a.Equal(Pair, h1.GetHand())
	a.Equal(Pair, h2.GetHand())
	a.Equal(h1.GetStrength(), h2.GetStrength())
}

func TestHandAnalyzer_DoesNotModifyInput(t *testing.T) {
	cards := deck.CardsFromString("Kc,2d,9h")
	New(cards)
	assert.Equal(t, "Kc,2d,9h", deck.CardsToString(cards))
}

func TestHand_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("High card", HighCard.String())
	a.Equal("Four of a kind", FourOfAKind.String())
	a.Equal("Royal flush", RoyalFlush.String())
	a.Panics(func() {
		_ = Hand(99).String()
	})
}
