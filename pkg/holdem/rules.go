package holdem

import (
	"holdem-server/pkg/deck"
)

// Options configures a table
type Options struct {
	MinPlayers  int  `json:"minPlayers" yaml:"minPlayers"`
	MaxPlayers  int  `json:"maxPlayers" yaml:"maxPlayers"`
	SmallBlind  int  `json:"smallBlind" yaml:"smallBlind"`
	BigBlind    int  `json:"bigBlind" yaml:"bigBlind"`
	AllowRebuys bool `json:"allowRebuys" yaml:"allowRebuys"`

	// Shuffler defaults to a crypto/rand backed Fisher-Yates shuffle
	Shuffler deck.ShufflingStrategy `json:"-" yaml:"-"`
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		MinPlayers:  2,
		MaxPlayers:  9,
		SmallBlind:  5,
		BigBlind:    10,
		AllowRebuys: true,
	}
}

// Rules are validated Options. Rules cannot be changed once created.
type Rules struct {
	opts Options
}

// NewRules validates the options
func NewRules(opts Options) (*Rules, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if opts.Shuffler == nil {
		opts.Shuffler = deck.NewRandomShuffle(nil)
	}

	return &Rules{opts: opts}, nil
}

func validateOptions(opts Options) error {
	if opts.MinPlayers < 2 {
		return newError(KindInvalidRules, "minimum players must be at least 2")
	}

	if opts.MaxPlayers < opts.MinPlayers {
		return newError(KindInvalidRules, "maximum players must be at least the minimum players")
	}

	if opts.SmallBlind <= 0 {
		return newError(KindInvalidRules, "small blind must be greater than zero")
	}

	if opts.BigBlind <= 0 {
		return newError(KindInvalidRules, "big blind must be greater than zero")
	}

	if opts.SmallBlind >= opts.BigBlind {
		return newError(KindInvalidRules, "small blind must be less than the big blind")
	}

	return nil
}

// MinPlayers is the number of eligible players needed to deal a round
func (r *Rules) MinPlayers() int {
	return r.opts.MinPlayers
}

// MaxPlayers is the number of seats at the table
func (r *Rules) MaxPlayers() int {
	return r.opts.MaxPlayers
}

// SmallBlind returns the small blind
func (r *Rules) SmallBlind() int {
	return r.opts.SmallBlind
}

// BigBlind returns the big blind
func (r *Rules) BigBlind() int {
	return r.opts.BigBlind
}

// MinimumBet is the smallest bet allowed, and the smallest bankroll a player can play with
func (r *Rules) MinimumBet() int {
	return r.opts.BigBlind
}

// AllowRebuys returns true if players can add to their bankroll between hands
func (r *Rules) AllowRebuys() bool {
	return r.opts.AllowRebuys
}

// Shuffler returns the shuffling strategy
func (r *Rules) Shuffler() deck.ShufflingStrategy {
	return r.opts.Shuffler
}

// Options returns a copy of the options the rules were built from
func (r *Rules) Options() Options {
	return r.opts
}
