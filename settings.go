package holdem

import (
	"errors"
	"fmt"
	"time"

	"github.com/weedbox/holdem/seat_manager"
)

var (
	ErrInvalidSettings      = errors.New("holdem: invalid table settings")
	ErrNotEnoughPlayers     = errors.New("holdem: not enough players")
	ErrTooManyPlayers       = errors.New("holdem: too many players")
	ErrInvalidStartingChips = errors.New("holdem: invalid starting chips")
	ErrInvalidBlinds        = errors.New("holdem: invalid blinds")
	ErrInvalidDealerSeat    = errors.New("holdem: invalid dealer seat")
)

// TableSettings are owned by the host and never change during a session.
type TableSettings struct {
	Players       []PlayerSetting `json:"players"`        // 入座玩家 (依座位順序)
	StartingChips int64           `json:"starting_chips"` // 起始籌碼
	SmallBlind    int64           `json:"small_blind"`    // 小盲
	BigBlind      int64           `json:"big_blind"`      // 大盲
	DealerSeat    int             `json:"dealer_seat"`    // 第一手 Dealer 座位
	ActionTime    time.Duration   `json:"action_time"`    // 玩家動作思考時間 (0 表示不限時)
	MaxHands      int             `json:"max_hands"`      // 最多執行幾手 (0 表示不限)
}

type PlayerSetting struct {
	Name  string `json:"name"`
	Chips int64  `json:"chips"` // 0 uses StartingChips
}

func NewDefaultTableSettings(names ...string) TableSettings {
	players := make([]PlayerSetting, 0, len(names))
	for _, name := range names {
		players = append(players, PlayerSetting{Name: name})
	}

	return TableSettings{
		Players:       players,
		StartingChips: DefaultStartingChips,
		SmallBlind:    10,
		BigBlind:      20,
		DealerSeat:    0,
	}
}

func (s TableSettings) Validate() error {
	if len(s.Players) < seat_manager.MinSeats {
		return fmt.Errorf("%w: %d seats, need at least %d", ErrNotEnoughPlayers, len(s.Players), seat_manager.MinSeats)
	}

	if len(s.Players) > seat_manager.MaxSeats {
		return fmt.Errorf("%w: %d seats, at most %d", ErrTooManyPlayers, len(s.Players), seat_manager.MaxSeats)
	}

	if s.StartingChips <= 0 {
		return ErrInvalidStartingChips
	}

	for _, p := range s.Players {
		if p.Chips < 0 {
			return ErrInvalidStartingChips
		}
	}

	if s.SmallBlind <= 0 || s.BigBlind < s.SmallBlind {
		return ErrInvalidBlinds
	}

	if s.DealerSeat < 0 || s.DealerSeat >= len(s.Players) {
		return ErrInvalidDealerSeat
	}

	if s.ActionTime < 0 || s.MaxHands < 0 {
		return ErrInvalidSettings
	}

	return nil
}
