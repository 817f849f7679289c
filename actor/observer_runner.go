package actor

import (
	"sync"

	"github.com/weedbox/holdem"
)

// ObserverRunner is a StateSink that keeps the latest snapshot and forwards
// the end of every hand.
type ObserverRunner struct {
	mu              sync.RWMutex
	last            *holdem.Snapshot
	updates         int
	onHandFinished  func(snapshot *holdem.Snapshot)
	onAwaitNextHand func()
}

func NewObserverRunner() *ObserverRunner {
	return &ObserverRunner{
		onHandFinished:  func(*holdem.Snapshot) {},
		onAwaitNextHand: func() {},
	}
}

func (or *ObserverRunner) OnHandFinished(fn func(snapshot *holdem.Snapshot)) {
	or.onHandFinished = fn
}

func (or *ObserverRunner) OnNextHandAwaited(fn func()) {
	or.onAwaitNextHand = fn
}

func (or *ObserverRunner) OnStateUpdated(snapshot *holdem.Snapshot) {
	or.mu.Lock()
	or.last = snapshot
	or.updates++
	or.mu.Unlock()
}

func (or *ObserverRunner) OnAwaitNextHand() {
	or.onHandFinished(or.LastSnapshot())
	or.onAwaitNextHand()
}

func (or *ObserverRunner) LastSnapshot() *holdem.Snapshot {
	or.mu.RLock()
	defer or.mu.RUnlock()
	return or.last
}

func (or *ObserverRunner) Updates() int {
	or.mu.RLock()
	defer or.mu.RUnlock()
	return or.updates
}
