package holdem

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/weedbox/holdem/card"
	"github.com/weedbox/holdem/seat_manager"
)

var (
	ErrHandAborted = errors.New("holdem: hand aborted")
)

type HandEngine interface {
	GetTable() *Table
	GetSeatManager() seat_manager.SeatManager
	GetLastSettlement() *SettlementResult
	GetLastStatistics() *HandStatistics

	PlayHand(ctx context.Context) error // 執行一手
	Run(ctx context.Context) error      // 連續執行直到玩家不足、達到手數上限或 context 結束
}

type handEngine struct {
	options    *HandEngineOptions
	settings   TableSettings
	table      *Table
	deck       *card.Deck
	sm         seat_manager.SeatManager
	provider   ActionProvider
	sink       StateSink
	logger     *zap.Logger
	settlement *SettlementResult
	stats      *HandStatistics
}

func NewHandEngine(settings TableSettings, provider ActionProvider, opts ...HandEngineOpt) (HandEngine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if provider == nil {
		return nil, ErrNilActionProvider
	}

	e := &handEngine{
		options:  NewHandEngineOptions(),
		settings: settings,
		table:    NewTable(settings),
		provider: provider,
		sink:     NopSink(),
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.deck == nil {
		e.deck = card.NewDeck()
	}

	e.sm = seat_manager.NewSeatManager(len(settings.Players))
	playerIDs := make([]string, 0, len(e.table.Players))
	for _, p := range e.table.Players {
		playerIDs = append(playerIDs, fmt.Sprintf("%d:%s", p.Seat, p.Name))
	}
	if err := e.sm.AssignSeats(playerIDs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	return e, nil
}

func (e *handEngine) GetTable() *Table {
	return e.table
}

func (e *handEngine) GetSeatManager() seat_manager.SeatManager {
	return e.sm
}

func (e *handEngine) GetLastSettlement() *SettlementResult {
	return e.settlement
}

func (e *handEngine) GetLastStatistics() *HandStatistics {
	return e.stats
}

/*
PlayHand 執行一手牌
  - Step 1: 檢查有籌碼的玩家數量
  - Step 2: 重置本手狀態與牌堆
  - Step 3: 決定位置
  - Step 4: 下盲注
  - Step 5: 發手牌
  - Step 6: 翻牌前、翻牌、轉牌、河牌下注 (剩一人未棄牌則直接攤牌)
  - Step 7: 攤牌結算
  - Step 8: 移動 Dealer 並洗牌
*/
func (e *handEngine) PlayHand(ctx context.Context) error {
	// Step 1
	if len(e.table.FundedPlayers()) < seat_manager.MinSeats {
		return ErrNotEnoughPlayers
	}

	// Step 2
	e.table.ResetForNewHand()
	e.deck.Reset()
	e.table.HandCount++
	e.table.Street = Street_Preflop
	e.stats = NewHandStatistics(e.table.HandID, len(e.table.Players))
	e.settlement = nil

	// Step 3
	if err := e.assignPositions(); err != nil {
		return err
	}
	e.logger.Info("hand started",
		zap.String("hand_id", e.table.HandID),
		zap.Int("hand_count", e.table.HandCount),
		zap.Int("dealer_seat", e.table.DealerSeat),
		zap.String("seats", seat_manager.DescribeSeats(e.sm)),
	)
	e.emitEvent(HandEvent_Started)

	// Step 4
	e.postBlinds()

	// Step 5
	if err := e.dealHoleCards(); err != nil {
		return e.abort(err)
	}

	// Step 6
	if err := e.runBettingRound(ctx, Street_Preflop, e.sm.PreflopFirstSeatID()); err != nil {
		return e.abort(err)
	}

	for _, street := range postflopStreets {
		if len(e.table.PlayersInHand()) <= 1 {
			break
		}

		if err := e.dealCommunityCards(street.name, street.count); err != nil {
			return e.abort(err)
		}

		if err := e.runBettingRound(ctx, street.name, e.sm.PostflopFirstSeatID()); err != nil {
			return e.abort(err)
		}
	}

	// Step 7
	e.showdown()

	// Step 8
	e.finishHand()

	return nil
}

/*
Run 連續執行牌局
  - 每手結束後通知 OnAwaitNextHand，並等待下一手訊號 (provider 實作 NextHandWaiter 時)
  - 有籌碼的玩家少於 2 人時回傳 ErrNotEnoughPlayers
*/
func (e *handEngine) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := e.PlayHand(ctx); err != nil {
			return err
		}

		e.emitAwaitNextHand()

		if e.settings.MaxHands > 0 && e.table.HandCount >= e.settings.MaxHands {
			return nil
		}

		if len(e.table.FundedPlayers()) < seat_manager.MinSeats {
			return ErrNotEnoughPlayers
		}

		if waiter, ok := e.provider.(NextHandWaiter); ok {
			if err := waiter.WaitNextHand(ctx); err != nil {
				return err
			}
		}
	}
}
