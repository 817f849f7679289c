package holdem

// StateSink receives every state change. Calls are synchronous on the engine
// goroutine, so implementations must return quickly.
type StateSink interface {
	OnStateUpdated(snapshot *Snapshot)
	OnAwaitNextHand()
}

// SinkFuncs adapts plain functions to a StateSink. Nil fields are ignored.
type SinkFuncs struct {
	StateUpdated  func(snapshot *Snapshot)
	AwaitNextHand func()
}

func (sf SinkFuncs) OnStateUpdated(snapshot *Snapshot) {
	if sf.StateUpdated != nil {
		sf.StateUpdated(snapshot)
	}
}

func (sf SinkFuncs) OnAwaitNextHand() {
	if sf.AwaitNextHand != nil {
		sf.AwaitNextHand()
	}
}

func NopSink() StateSink {
	return SinkFuncs{}
}
