package actor

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/thoas/go-funk"
	"github.com/weedbox/timebank"
	"go.uber.org/zap"

	"github.com/weedbox/holdem"
)

type WagerActionUpdatedFunc func(handID string, handCount int, street string, seat int, token holdem.ActionToken)

type ActionProbability struct {
	Action holdem.WagerAction
	Weight float64
}

var (
	actionProbabilities = []ActionProbability{
		{Action: holdem.WagerAction_Check, Weight: 0.3},
		{Action: holdem.WagerAction_Call, Weight: 0.35},
		{Action: holdem.WagerAction_Fold, Weight: 0.15},
		{Action: holdem.WagerAction_AllIn, Weight: 0.02},
		{Action: holdem.WagerAction_Raise, Weight: 0.18},
	}
)

type BotRunnerOpt func(*BotRunner)

// BotRunner answers every request published by a ChannelActionProvider with
// a weighted random action.
type BotRunner struct {
	mu                   sync.Mutex
	provider             *holdem.ChannelActionProvider
	logger               *zap.Logger
	rand                 *rand.Rand
	timebank             *timebank.TimeBank
	maxThinkingTime      time.Duration
	onWagerActionUpdated WagerActionUpdatedFunc
}

func NewBotRunner(provider *holdem.ChannelActionProvider, opts ...BotRunnerOpt) *BotRunner {
	br := &BotRunner{
		provider:             provider,
		logger:               zap.NewNop(),
		rand:                 rand.New(rand.NewSource(time.Now().UnixNano())),
		timebank:             timebank.NewTimeBank(),
		onWagerActionUpdated: func(string, int, string, int, holdem.ActionToken) {},
	}

	for _, opt := range opts {
		opt(br)
	}

	return br
}

func WithSeed(seed int64) BotRunnerOpt {
	return func(br *BotRunner) {
		br.rand = rand.New(rand.NewSource(seed))
	}
}

// WithHumanized delays every answer by a random time up to maxThinkingTime.
func WithHumanized(maxThinkingTime time.Duration) BotRunnerOpt {
	return func(br *BotRunner) {
		br.maxThinkingTime = maxThinkingTime
	}
}

func WithLogger(logger *zap.Logger) BotRunnerOpt {
	return func(br *BotRunner) {
		br.logger = logger
	}
}

func (br *BotRunner) OnWagerActionUpdated(fn WagerActionUpdatedFunc) {
	br.onWagerActionUpdated = fn
}

// Run answers requests until ctx is done.
func (br *BotRunner) Run(ctx context.Context) error {
	for {
		select {
		case req := <-br.provider.Requests():
			if err := br.requestMove(ctx, req); err != nil {
				return err
			}
		case <-ctx.Done():
			br.timebank.Cancel()
			return ctx.Err()
		}
	}
}

func (br *BotRunner) requestMove(ctx context.Context, req holdem.ActionRequest) error {
	if br.maxThinkingTime <= 0 {
		return br.respond(ctx, req)
	}

	// For simulating human-like behavior, to incorporate random delays when performing actions.
	br.mu.Lock()
	thinkingTime := time.Duration(br.rand.Int63n(int64(br.maxThinkingTime)))
	br.mu.Unlock()
	if thinkingTime == 0 {
		return br.respond(ctx, req)
	}

	return br.timebank.NewTask(thinkingTime, func(isCancelled bool) {
		if isCancelled {
			return
		}

		if err := br.respond(ctx, req); err != nil {
			br.logger.Debug("bot response dropped", zap.Int("seat", req.Seat), zap.Error(err))
		}
	})
}

func (br *BotRunner) respond(ctx context.Context, req holdem.ActionRequest) error {
	token := br.requestAI(req.Snapshot, req.Seat)

	if err := br.provider.Respond(ctx, req.ID, token); err != nil {
		return err
	}

	br.logger.Debug("bot acted",
		zap.String("hand_id", req.Snapshot.HandID),
		zap.Int("seat", req.Seat),
		zap.String("action", token.String()),
	)
	br.onWagerActionUpdated(req.Snapshot.HandID, req.Snapshot.HandCount, req.Snapshot.Street, req.Seat, token)
	return nil
}

func (br *BotRunner) calcActionProbabilities(actions []holdem.WagerAction) []ActionProbability {
	probabilities := funk.Filter(actionProbabilities, func(p ActionProbability) bool {
		return funk.Contains(actions, p.Action)
	}).([]ActionProbability)

	totalWeight := 0.0
	for _, p := range probabilities {
		totalWeight += p.Weight
	}

	// cumulative levels in (0, 1]
	weightLevel := 0.0
	levels := make([]ActionProbability, 0, len(probabilities))
	for _, p := range probabilities {
		weightLevel += p.Weight / totalWeight
		levels = append(levels, ActionProbability{Action: p.Action, Weight: weightLevel})
	}

	return levels
}

func (br *BotRunner) calcAction(actions []holdem.WagerAction) holdem.WagerAction {
	br.mu.Lock()
	randomNum := br.rand.Float64()
	br.mu.Unlock()

	for _, level := range br.calcActionProbabilities(actions) {
		if randomNum < level.Weight {
			return level.Action
		}
	}

	return actions[len(actions)-1]
}

func (br *BotRunner) requestAI(snapshot *holdem.Snapshot, seat int) holdem.ActionToken {
	allowed := snapshot.AllowedActions(seat)

	// None of actions is allowed
	if len(allowed) == 0 {
		return holdem.Fold()
	}

	switch br.calcAction(allowed) {
	case holdem.WagerAction_Check:
		return holdem.Check()
	case holdem.WagerAction_Call:
		return holdem.Call()
	case holdem.WagerAction_AllIn:
		return holdem.AllIn()
	case holdem.WagerAction_Raise:
		return br.calcRaise(snapshot, seat)
	}

	return holdem.Fold()
}

// calcRaise picks a raise between one big blind and everything behind.
func (br *BotRunner) calcRaise(snapshot *holdem.Snapshot, seat int) holdem.ActionToken {
	ss := snapshot.GetSeat(seat)
	minChipLevel := snapshot.BigBlind
	maxChipLevel := ss.Chips - snapshot.AmountToCall(seat)

	if maxChipLevel <= minChipLevel {
		return holdem.AllIn()
	}

	br.mu.Lock()
	chips := br.rand.Int63n(maxChipLevel-minChipLevel) + minChipLevel
	br.mu.Unlock()

	return holdem.Raise(chips)
}
