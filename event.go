package holdem

import (
	"go.uber.org/zap"
)

const (
	HandEvent_Started         = "HandStarted"
	HandEvent_BlindsPosted    = "BlindsPosted"
	HandEvent_HoleCardsDealt  = "HoleCardsDealt"
	HandEvent_CommunityDealt  = "CommunityDealt"
	HandEvent_ActionRequested = "ActionRequested"
	HandEvent_ActionApplied   = "ActionApplied"
	HandEvent_RoundClosed     = "RoundClosed"
	HandEvent_Settled         = "Settled"
	HandEvent_AwaitNextHand   = "AwaitNextHand"
)

// emitState refreshes the table serial, logs the event and hands a snapshot
// to the sink.
func emitState(t *Table, sink StateSink, logger *zap.Logger, eventName string, actingSeat int, revealAll bool) *Snapshot {
	t.RefreshUpdateAt()

	logger.Debug("emit event",
		zap.String("event", eventName),
		zap.String("table_id", t.ID),
		zap.String("hand_id", t.HandID),
		zap.Int("hand_count", t.HandCount),
		zap.Int64("serial", t.UpdateSerial),
		zap.String("street", t.Street),
		zap.Int("acting_seat", actingSeat),
		zap.Int64("pot", t.Pot),
	)

	snapshot := NewSnapshot(t, actingSeat, revealAll)
	sink.OnStateUpdated(snapshot)
	return snapshot
}

func (e *handEngine) emitEvent(eventName string) {
	emitState(e.table, e.sink, e.logger, eventName, UnsetValue, e.isShowdown())
}

func (e *handEngine) emitAwaitNextHand() {
	e.logger.Info("hand finished",
		zap.String("hand_id", e.table.HandID),
		zap.Int("hand_count", e.table.HandCount),
		zap.String("winner", e.table.WinnerText),
	)

	e.table.WaitingNext = true
	e.emitEvent(HandEvent_AwaitNextHand)
	e.sink.OnAwaitNextHand()
}
