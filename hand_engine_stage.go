package holdem

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type streetDeal struct {
	name  string
	count int
}

var postflopStreets = []streetDeal{
	{name: Street_Flop, count: 3},
	{name: Street_Turn, count: 1},
	{name: Street_River, count: 1},
}

func (e *handEngine) isShowdown() bool {
	return e.table.Street == Street_Showdown
}

func (e *handEngine) assignPositions() error {
	for _, p := range e.table.Players {
		if err := e.sm.UpdateSeatHasChips(p.Seat, p.Stack > 0); err != nil {
			return err
		}
	}

	if !e.sm.IsInitPositions() {
		if err := e.sm.InitPositions(e.table.DealerSeat); err != nil {
			return err
		}
	}

	for seat, positions := range e.sm.Positions() {
		if p := e.table.GetPlayer(seat); p != nil {
			p.Positions = positions
		}
	}
	e.table.DealerSeat = e.sm.CurrentDealerSeatID()

	return nil
}

// postBlinds takes the forced bets. A short stack posts what it has.
func (e *handEngine) postBlinds() {
	if sb := e.table.GetPlayer(e.sm.CurrentSBSeatID()); sb != nil {
		paid := sb.PlaceBet(e.table.SmallBlind)
		e.table.AddToPot(paid)
		e.logger.Debug("small blind posted",
			zap.String("hand_id", e.table.HandID),
			zap.Int("seat", sb.Seat),
			zap.String("player", sb.Name),
			zap.Int64("chips", paid),
		)
	}

	if bb := e.table.GetPlayer(e.sm.CurrentBBSeatID()); bb != nil {
		paid := bb.PlaceBet(e.table.BigBlind)
		e.table.AddToPot(paid)
		e.logger.Debug("big blind posted",
			zap.String("hand_id", e.table.HandID),
			zap.Int("seat", bb.Seat),
			zap.String("player", bb.Name),
			zap.Int64("chips", paid),
		)
	}

	e.table.CurrentBet = e.table.BigBlind
	e.emitEvent(HandEvent_BlindsPosted)
}

// dealHoleCards gives one card at a time to every seat in the hand, starting
// left of the button, two passes.
func (e *handEngine) dealHoleCards() error {
	seatIDs := e.sm.ListActiveSeatIDsFromDealer()
	if len(seatIDs) < 2 {
		return ErrNotEnoughPlayers
	}
	order := make([]int, 0, len(seatIDs))
	order = append(order, seatIDs[1:]...)
	order = append(order, seatIDs[0])

	for pass := 0; pass < 2; pass++ {
		for _, seat := range order {
			c, err := e.deck.Deal()
			if err != nil {
				return err
			}
			e.table.GetPlayer(seat).GiveCard(c)
		}
	}

	e.emitEvent(HandEvent_HoleCardsDealt)
	return nil
}

// dealCommunityCards burns one card and reveals count cards.
func (e *handEngine) dealCommunityCards(street string, count int) error {
	if err := e.deck.Burn(); err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		c, err := e.deck.Deal()
		if err != nil {
			return err
		}
		e.table.AddCommunityCard(c)
	}

	e.table.Street = street
	e.logger.Debug("community cards dealt",
		zap.String("hand_id", e.table.HandID),
		zap.String("street", street),
		zap.Any("cards", e.table.CommunityCards),
	)
	e.emitEvent(HandEvent_CommunityDealt)
	return nil
}

func (e *handEngine) runBettingRound(ctx context.Context, street string, startSeat int) error {
	e.table.Street = street

	br := NewBettingRound(e.table, e.provider, e.sink, e.logger, e.stats, BettingRoundConfig{
		Street:            street,
		StartSeat:         startSeat,
		MaxInvalidActions: e.options.MaxInvalidActions,
		ActionTime:        e.settings.ActionTime,
	})

	return br.Run(ctx)
}

func (e *handEngine) showdown() {
	e.table.Street = Street_Showdown
	e.settlement = Showdown(e.table)

	for _, p := range e.table.Players {
		ps, ok := e.stats.Players[p.Seat]
		if !ok {
			continue
		}
		ps.Contributed = p.TotalBet
		if award, won := e.settlement.Awards[p.Seat]; won {
			ps.IsWinner = true
			ps.WinningChips = award
		}
	}

	e.logger.Info("hand settled",
		zap.String("hand_id", e.table.HandID),
		zap.Ints("winners", e.settlement.Winners),
		zap.Int64("pot", e.settlement.Pot),
		zap.String("text", e.settlement.Text),
	)
	e.emitEvent(HandEvent_Settled)
}

// finishHand moves the button to the next seat with chips and reshuffles.
func (e *handEngine) finishHand() {
	for _, p := range e.table.Players {
		if err := e.sm.UpdateSeatHasChips(p.Seat, p.Stack > 0); err != nil {
			e.logger.Warn("seat chips not updated",
				zap.String("hand_id", e.table.HandID),
				zap.Int("seat", p.Seat),
				zap.Int64("stack", p.Stack),
				zap.Error(err),
			)
		}
	}

	if err := e.sm.RotatePositions(); err != nil {
		// fewer than two seats have chips; the session is over
		e.logger.Info("button not rotated",
			zap.String("hand_id", e.table.HandID),
			zap.Error(err),
		)
	} else {
		e.table.DealerSeat = e.sm.CurrentDealerSeatID()
	}

	e.deck.Reset()
}

// abort ends a hand that cannot continue. Deck exhaustion is fatal.
func (e *handEngine) abort(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	e.logger.Error("hand aborted",
		zap.String("hand_id", e.table.HandID),
		zap.String("street", e.table.Street),
		zap.Error(err),
	)
	return fmt.Errorf("%w: %w", ErrHandAborted, err)
}
