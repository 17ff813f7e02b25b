package holdem

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	a := assert.New(t)

	err := newError(KindBetTooLow, "bet is less than the highest bet of ${%d}", 20)
	a.True(errors.Is(err, ErrBetTooLow))
	a.False(errors.Is(err, ErrInsufficientFunds))
	a.EqualError(err, "bet is less than the highest bet of ${20}")

	wrapped := fmt.Errorf("could not bet: %w", err)
	a.True(errors.Is(wrapped, ErrBetTooLow))

	kind, ok := KindOf(wrapped)
	a.True(ok)
	a.Equal(KindBetTooLow, kind)
	a.Equal("bet-too-low", kind.String())

	_, ok = KindOf(errors.New("boom"))
	a.False(ok)
}

func TestIsUserError(t *testing.T) {
	a := assert.New(t)

	a.True(IsUserError(ErrNotYourTurn))
	a.False(IsUserError(ErrIllegalState))
	a.False(IsUserError(errors.New("database is down")))
	a.Equal("it's not the player's turn", ErrNotYourTurn.Error())
}
