package store

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	exerciseRepository(t, NewMemoryStore(logrus.StandardLogger()))
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	a := assert.New(t)

	m := NewMemoryStore(logrus.StandardLogger())
	game := newGame(t)
	a.NoError(m.Create(cbg, game))

	g1, err := m.Load(cbg, game.ID())
	a.NoError(err)
	g2, err := m.Load(cbg, game.ID())
	a.NoError(err)

	a.NotSame(g1, g2)
	a.NotSame(g1.Table(), g2.Table())
}
