package action

import (
	"encoding/json"
	"fmt"
)

// Action represents a command a player or the table can issue
type Action string

// action constants
const (
	StartRound Action = "start-round"
	AbortRound Action = "abort-round"
	Join       Action = "join"
	Quit       Action = "quit"
	Rebuy      Action = "rebuy"
	SitOut     Action = "sit-out"
	SitIn      Action = "sit-in"
	Fold       Action = "fold"
	Check      Action = "check"
	Call       Action = "call"
	Bet        Action = "bet"
	Raise      Action = "raise"
)

var allowedActions = map[Action]bool{
	StartRound: true,
	AbortRound: true,
	Join:       true,
	Quit:       true,
	Rebuy:      true,
	SitOut:     true,
	SitIn:      true,
	Fold:       true,
	Check:      true,
	Call:       true,
	Bet:        true,
	Raise:      true,
}

// FromString returns an action for the given string
func FromString(s string) (Action, error) {
	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case StartRound:
		return "Start round"
	case AbortRound:
		return "Abort round"
	case Join:
		return "Join"
	case Quit:
		return "Quit"
	case Rebuy:
		return "Rebuy"
	case SitOut:
		return "Sit out"
	case SitIn:
		return "Sit in"
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Bet:
		return "Bet"
	case Raise:
		return "Raise"
	}

	panic("unknown action")
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// UnmarshalJSON decodes either the identifier or the object written by MarshalJSON
func (a *Action) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		var obj struct {
			ID string `json:"id"`
		}

		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}

		id = obj.ID
	}

	parsed, err := FromString(id)
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// IsBettingAction returns true if the action can only be taken on the player's turn
func (a Action) IsBettingAction() bool {
	switch a {
	case Fold, Check, Call, Bet, Raise:
		return true
	}

	return false
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage(amount int) string {
	switch a {
	case StartRound:
		return "started a new round"
	case AbortRound:
		return "aborted the round"
	case Join:
		return fmt.Sprintf("joined with ${%d}", amount)
	case Quit:
		return fmt.Sprintf("left with ${%d}", amount)
	case Rebuy:
		return fmt.Sprintf("bought in for ${%d}", amount)
	case SitOut:
		return "is sitting out"
	case SitIn:
		return "is back in"
	case Fold:
		return "folded"
	case Check:
		return "checked"
	case Call:
		return fmt.Sprintf("called ${%d}", amount)
	case Bet:
		return fmt.Sprintf("bet ${%d}", amount)
	case Raise:
		return fmt.Sprintf("raised ${%d}", amount)
	}

	return ""
}
