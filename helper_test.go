package holdem

import (
	"context"
	"errors"
	"sync"

	"github.com/weedbox/holdem/card"
)

// scriptedProvider answers from a per-seat queue and falls back to
// check/call when a queue runs dry.
type scriptedProvider struct {
	mu      sync.Mutex
	actions map[int][]ActionToken
	calls   []int
}

func newScriptedProvider(actions map[int][]ActionToken) *scriptedProvider {
	if actions == nil {
		actions = make(map[int][]ActionToken)
	}
	return &scriptedProvider{actions: actions}
}

func (sp *scriptedProvider) RequestAction(ctx context.Context, seat int, snapshot *Snapshot) (ActionToken, error) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	sp.calls = append(sp.calls, seat)

	queue := sp.actions[seat]
	if len(queue) == 0 {
		return checkOrCall(seat, snapshot), nil
	}

	token := queue[0]
	sp.actions[seat] = queue[1:]
	return token, nil
}

func (sp *scriptedProvider) Calls() []int {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return append([]int{}, sp.calls...)
}

func checkOrCall(seat int, snapshot *Snapshot) ActionToken {
	if snapshot.AmountToCall(seat) == 0 {
		return Check()
	}
	return Call()
}

var checkCallProvider = ActionProviderFunc(func(ctx context.Context, seat int, snapshot *Snapshot) (ActionToken, error) {
	return checkOrCall(seat, snapshot), nil
})

var errProviderBroken = errors.New("provider broken")

func newTestTable(names ...string) *Table {
	return NewTable(NewDefaultTableSettings(names...))
}

// postTestBlinds sets up pre-flop with the button on seat 0.
func postTestBlinds(t *Table) {
	t.Street = Street_Preflop
	t.AddToPot(t.Players[1].PlaceBet(t.SmallBlind))
	t.AddToPot(t.Players[2].PlaceBet(t.BigBlind))
	t.CurrentBet = t.BigBlind
}

func sumTotalBets(t *Table) int64 {
	total := int64(0)
	for _, p := range t.Players {
		total += p.TotalBet
	}
	return total
}

func distinctCards(cards []card.Card) bool {
	seen := make(map[card.Card]bool)
	for _, c := range cards {
		if seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}
