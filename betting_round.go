package holdem

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/weedbox/timebank"
	"go.uber.org/zap"
)

type BettingRoundConfig struct {
	Street            string
	StartSeat         int
	MaxInvalidActions int
	ActionTime        time.Duration // 0 waits forever
}

// BettingRound runs the betting of one street. It is the only writer of the
// table while Run is executing.
type BettingRound struct {
	table    *Table
	provider ActionProvider
	sink     StateSink
	logger   *zap.Logger
	stats    *HandStatistics
	config   BettingRoundConfig

	acted         map[int]bool // seats that acted since the last raise
	lastAggressor int
	prompts       int
}

func NewBettingRound(table *Table, provider ActionProvider, sink StateSink, logger *zap.Logger, stats *HandStatistics, config BettingRoundConfig) *BettingRound {
	if config.MaxInvalidActions <= 0 {
		config.MaxInvalidActions = DefaultMaxInvalidActions
	}

	if sink == nil {
		sink = NopSink()
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &BettingRound{
		table:         table,
		provider:      provider,
		sink:          sink,
		logger:        logger,
		stats:         stats,
		config:        config,
		acted:         make(map[int]bool),
		lastAggressor: UnsetValue,
	}
}

// Prompts is the number of times the provider was asked for an action.
func (br *BettingRound) Prompts() int {
	return br.prompts
}

func (br *BettingRound) LastAggressor() int {
	return br.lastAggressor
}

/*
Run 執行一輪下注直到結束
  - 只剩一位 (或沒有) 可以行動的玩家時直接結束，不再詢問任何人
  - 略過已棄牌或全下的座位
  - 每個還能行動的座位在最後一次加注後都行動過，且下注量都已跟齊時結束
  - 結束後所有玩家本街下注量與桌上需跟注量歸零
*/
func (br *BettingRound) Run(ctx context.Context) error {
	if br.stats != nil {
		br.stats.recordRound(br.config.Street)
	}

	seatCount := len(br.table.Players)
	seat := br.config.StartSeat
	if seat < 0 || seat >= seatCount {
		seat = 0
	}

	for !br.isClosed() {
		p := br.table.Players[seat]

		if !p.IsActive() || (br.acted[seat] && br.table.AmountToCall(p) == 0) {
			seat = (seat + 1) % seatCount
			continue
		}

		token, err := br.requestAction(ctx, p)
		if err != nil {
			return err
		}

		br.apply(p, token)
		emitState(br.table, br.sink, br.logger, HandEvent_ActionApplied, UnsetValue, false)

		seat = (seat + 1) % seatCount
	}

	br.table.ResetCurrentBets()
	emitState(br.table, br.sink, br.logger, HandEvent_RoundClosed, UnsetValue, false)

	br.logger.Debug("betting round closed",
		zap.String("hand_id", br.table.HandID),
		zap.String("street", br.config.Street),
		zap.Int("prompts", br.prompts),
		zap.Int64("pot", br.table.Pot),
	)

	return nil
}

/*
isClosed 判斷本輪是否結束
  - 只剩一位未棄牌玩家
  - 最多只剩一位可以行動的玩家 (即使還沒跟齊全下的玩家)
  - 所有可以行動的玩家在最後一次加注後都行動過且已跟齊
*/
func (br *BettingRound) isClosed() bool {
	if len(br.table.PlayersInHand()) <= 1 {
		return true
	}

	active := br.table.ActivePlayers()
	if len(active) <= 1 {
		return true
	}

	for _, p := range active {
		if !br.acted[p.Seat] || br.table.AmountToCall(p) > 0 {
			return false
		}
	}

	return true
}

func (br *BettingRound) defaultAction(p *Player) ActionToken {
	if br.table.AmountToCall(p) == 0 {
		return Check()
	}
	return Fold()
}

/*
requestAction 向 ActionProvider 取得動作
  - 不合法的加注 (amount <= 0，或籌碼不足以超過需跟注量) 重新詢問同一座位，超過上限套用預設動作
  - 未知動作、provider 錯誤、逾時皆套用預設動作 (可過牌則過牌，否則棄牌)
  - 只有 context 被取消時回傳錯誤
*/
func (br *BettingRound) requestAction(ctx context.Context, p *Player) (ActionToken, error) {
	invalid := 0

	for {
		snapshot := emitState(br.table, br.sink, br.logger, HandEvent_ActionRequested, p.Seat, false)
		br.prompts++

		token, err := br.askProvider(ctx, p.Seat, snapshot)
		if err != nil {
			if ctx.Err() != nil {
				return ActionToken{}, ctx.Err()
			}

			isTimeout := errors.Is(err, ErrActionTimeout)
			fallback := br.defaultAction(p)
			br.logger.Warn("action provider failed, applying default action",
				zap.String("hand_id", br.table.HandID),
				zap.Int("seat", p.Seat),
				zap.String("player", p.Name),
				zap.Bool("timeout", isTimeout),
				zap.String("action", fallback.String()),
				zap.Error(err),
			)
			br.recordDefault(p.Seat, isTimeout)
			return fallback, nil
		}

		if !token.IsKnown() {
			fallback := br.defaultAction(p)
			br.logger.Warn("unknown action, applying default action",
				zap.String("hand_id", br.table.HandID),
				zap.Int("seat", p.Seat),
				zap.String("player", p.Name),
				zap.String("received", token.String()),
				zap.String("action", fallback.String()),
			)
			br.recordDefault(p.Seat, false)
			return fallback, nil
		}

		if token.Action == WagerAction_Raise && !br.canRaise(p, token.Amount) {
			invalid++
			br.logger.Warn("invalid raise amount",
				zap.String("hand_id", br.table.HandID),
				zap.Int("seat", p.Seat),
				zap.String("player", p.Name),
				zap.Int64("amount", token.Amount),
				zap.Int64("to_call", br.table.AmountToCall(p)),
				zap.Int64("stack", p.Stack),
				zap.Int("attempt", invalid),
			)

			if invalid >= br.config.MaxInvalidActions {
				br.recordDefault(p.Seat, false)
				return br.defaultAction(p), nil
			}
			continue
		}

		return token, nil
	}
}

// canRaise reports whether a raise is still positive once capped at the stack.
func (br *BettingRound) canRaise(p *Player, amount int64) bool {
	return amount > 0 && p.Stack > br.table.AmountToCall(p)
}

// askProvider bounds the provider call with the action time. Expiry cancels
// the request context and is reported as ErrActionTimeout.
func (br *BettingRound) askProvider(ctx context.Context, seat int, snapshot *Snapshot) (ActionToken, error) {
	if br.config.ActionTime <= 0 {
		return br.provider.RequestAction(ctx, seat, snapshot)
	}

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var expired atomic.Bool
	tb := timebank.NewTimeBank()
	if err := tb.NewTask(br.config.ActionTime, func(isCancelled bool) {
		if isCancelled {
			return
		}
		expired.Store(true)
		cancel()
	}); err != nil {
		return ActionToken{}, err
	}
	defer tb.Cancel()

	token, err := br.provider.RequestAction(reqCtx, seat, snapshot)
	if expired.Load() && ctx.Err() == nil {
		return ActionToken{}, ErrActionTimeout
	}
	return token, err
}

/*
apply 套用動作並更新底池
  - CHECK 面對下注: 籌碼足夠則自動跟注，否則自動棄牌
  - RAISE: 投入 需跟注量 + amount (以籌碼上限為準)
  - RAISE/ALL_IN 使下注量超過桌上需跟注量時，更新需跟注量並成為最後加注者
*/
func (br *BettingRound) apply(p *Player, token ActionToken) {
	toCall := br.table.AmountToCall(p)
	applied := token.Action
	raised := false
	paid := int64(0)

	switch token.Action {
	case WagerAction_Fold:
		p.Fold()
	case WagerAction_Check:
		if toCall > 0 {
			if toCall <= p.Stack {
				paid = p.PlaceBet(toCall)
				applied = WagerAction_Call
				br.logger.Warn("illegal check, auto-calling",
					zap.String("hand_id", br.table.HandID),
					zap.Int("seat", p.Seat),
					zap.String("player", p.Name),
					zap.Int64("chips", paid),
				)
			} else {
				p.Fold()
				applied = WagerAction_Fold
				br.logger.Warn("illegal check, cannot cover the call, folding",
					zap.String("hand_id", br.table.HandID),
					zap.Int("seat", p.Seat),
					zap.String("player", p.Name),
					zap.Int64("to_call", toCall),
				)
			}
		}
	case WagerAction_Call:
		paid = p.PlaceBet(toCall)
	case WagerAction_Raise:
		paid = p.PlaceBet(toCall + token.Amount)
		raised = br.updateAggressor(p)
	case WagerAction_AllIn:
		paid = p.PlaceBet(p.Stack)
		raised = br.updateAggressor(p)
	}

	br.table.AddToPot(paid)

	if raised {
		br.acted = map[int]bool{p.Seat: true}
	} else {
		br.acted[p.Seat] = true
	}

	if br.stats != nil {
		br.stats.recordAction(p.Seat, br.config.Street, applied, raised)
	}

	br.logger.Debug("action applied",
		zap.String("hand_id", br.table.HandID),
		zap.String("street", br.config.Street),
		zap.Int("seat", p.Seat),
		zap.String("player", p.Name),
		zap.String("action", string(applied)),
		zap.Int64("chips", paid),
		zap.Int64("current_bet", p.CurrentBet),
		zap.Int64("stack", p.Stack),
	)
}

func (br *BettingRound) updateAggressor(p *Player) bool {
	if p.CurrentBet <= br.table.CurrentBet {
		return false
	}

	br.table.CurrentBet = p.CurrentBet
	br.lastAggressor = p.Seat
	return true
}

func (br *BettingRound) recordDefault(seat int, timeout bool) {
	if br.stats != nil {
		br.stats.recordDefault(seat, timeout)
	}
}
