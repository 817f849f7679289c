package open_game_manager

import (
	"errors"
	"sync"

	"github.com/weedbox/syncsaga"
	"go.uber.org/zap"
)

var (
	ErrParticipantNotFound = errors.New("open_game_manager: participant not found")
	ErrNoParticipants      = errors.New("open_game_manager: no participants")
)

// OpenGameManager gates the start of the next hand: every seated participant
// confirms, or the timeout confirms for them.
type OpenGameManager interface {
	Setup(handCount int, participants map[string]int) error // key: participant_id, value: seat
	Ready(participantID string) error
	GetState() OpenGameState
	Stop()
}

type openGameManager struct {
	mu              sync.Mutex
	logger          *zap.Logger
	onOpenGameReady func(state OpenGameState)
	rg              *syncsaga.ReadyGroup
	state           *OpenGameState
}

type OpenGameOption struct {
	Timeout         int // seconds before everybody still pending is marked ready
	Logger          *zap.Logger
	OnOpenGameReady func(state OpenGameState)
}

type OpenGameState struct {
	Timeout      int                             `json:"timeout"`
	HandCount    int                             `json:"hand_count"`   // 剛結束的手數
	IsOpened     bool                            `json:"is_opened"`    // 下一手是否已開放
	Participants map[string]*OpenGameParticipant `json:"participants"` // key: participant_id, value: participant
}

type OpenGameParticipant struct {
	ID      string `json:"id"`
	Seat    int    `json:"seat"`
	IsReady bool   `json:"is_ready"`
}
