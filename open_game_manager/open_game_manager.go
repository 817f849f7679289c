package open_game_manager

import (
	"github.com/weedbox/syncsaga"
	"go.uber.org/zap"
)

func NewOpenGameManager(options OpenGameOption) OpenGameManager {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &openGameManager{
		logger:          logger,
		onOpenGameReady: options.OnOpenGameReady,
		state: &OpenGameState{
			Timeout:      options.Timeout,
			Participants: make(map[string]*OpenGameParticipant),
		},
	}

	m.rg = syncsaga.NewReadyGroup(syncsaga.WithTimeout(options.Timeout, func(rg *syncsaga.ReadyGroup) {
		// Auto Ready By Default
		for seat, isReady := range rg.GetParticipantStates() {
			if !isReady {
				m.logger.Debug("participant auto ready", zap.Int64("seat", seat))
				rg.Ready(seat)
			}
		}
	}))

	return m
}

/*
Setup 開始等待下一手
  - 重設所有參與者為未準備
  - 所有人準備好 (或逾時自動準備) 後呼叫 OnOpenGameReady
*/
func (m *openGameManager) Setup(handCount int, participants map[string]int) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}

	m.rg.Stop()

	m.mu.Lock()
	m.state.HandCount = handCount
	m.state.IsOpened = false
	m.mu.Unlock()

	m.rg.OnCompleted(func(rg *syncsaga.ReadyGroup) {
		m.readyGroupOnCompleted()
	})
	m.readyGroupResetParticipants()
	for id, seat := range participants {
		m.readyGroupAddParticipant(OpenGameParticipant{
			ID:   id,
			Seat: seat,
		})
	}

	m.logger.Info("waiting for next hand",
		zap.Int("hand_count", handCount),
		zap.Int("participants", len(participants)),
		zap.Int("timeout", m.state.Timeout),
	)

	m.rg.Start()
	return nil
}

func (m *openGameManager) Ready(participantID string) error {
	return m.readyGroupReady(participantID)
}

func (m *openGameManager) GetState() OpenGameState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cloneState()
}

func (m *openGameManager) Stop() {
	m.rg.Stop()
}
