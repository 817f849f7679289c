package holdem

import (
	"fmt"
)

type WagerAction string

const (
	WagerAction_Fold  WagerAction = "fold"
	WagerAction_Check WagerAction = "check"
	WagerAction_Call  WagerAction = "call"
	WagerAction_Raise WagerAction = "raise"
	WagerAction_AllIn WagerAction = "allin"
)

// ActionToken is one decision for the seat to act. Amount is only
// meaningful for raises: chips added on top of the amount to call.
type ActionToken struct {
	Action WagerAction `json:"action"`
	Amount int64       `json:"amount,omitempty"`
}

func Fold() ActionToken {
	return ActionToken{Action: WagerAction_Fold}
}

func Check() ActionToken {
	return ActionToken{Action: WagerAction_Check}
}

func Call() ActionToken {
	return ActionToken{Action: WagerAction_Call}
}

func Raise(amount int64) ActionToken {
	return ActionToken{Action: WagerAction_Raise, Amount: amount}
}

func AllIn() ActionToken {
	return ActionToken{Action: WagerAction_AllIn}
}

func (a ActionToken) IsKnown() bool {
	switch a.Action {
	case WagerAction_Fold, WagerAction_Check, WagerAction_Call, WagerAction_Raise, WagerAction_AllIn:
		return true
	}
	return false
}

func (a ActionToken) String() string {
	if a.Action == WagerAction_Raise {
		return fmt.Sprintf("%s(%d)", a.Action, a.Amount)
	}
	if a.Action == "" {
		return "none"
	}
	return string(a.Action)
}
