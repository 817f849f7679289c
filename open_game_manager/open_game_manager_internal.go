package open_game_manager

import (
	"go.uber.org/zap"
)

func (m *openGameManager) cloneState() OpenGameState {
	state := *m.state
	state.Participants = make(map[string]*OpenGameParticipant, len(m.state.Participants))
	for id, participant := range m.state.Participants {
		copied := *participant
		state.Participants[id] = &copied
	}
	return state
}

func (m *openGameManager) readyGroupResetParticipants() {
	m.rg.ResetParticipants()

	m.mu.Lock()
	m.state.Participants = map[string]*OpenGameParticipant{}
	m.mu.Unlock()
}

func (m *openGameManager) readyGroupAddParticipant(participant OpenGameParticipant) {
	m.mu.Lock()
	m.state.Participants[participant.ID] = &OpenGameParticipant{
		ID:      participant.ID,
		Seat:    participant.Seat,
		IsReady: participant.IsReady,
	}
	m.mu.Unlock()

	m.rg.Add(int64(participant.Seat), participant.IsReady)
}

func (m *openGameManager) readyGroupOnCompleted() {
	m.mu.Lock()
	if m.state.IsOpened {
		m.mu.Unlock()
		return
	}
	m.state.IsOpened = true
	for participantID := range m.state.Participants {
		m.state.Participants[participantID].IsReady = true
	}
	state := m.cloneState()
	m.mu.Unlock()

	m.logger.Info("next hand opened", zap.Int("hand_count", state.HandCount))

	if m.onOpenGameReady != nil {
		m.onOpenGameReady(state)
	}
}

// readyGroupReady must not hold the lock while the ready group runs, its
// completion callback takes the lock again.
func (m *openGameManager) readyGroupReady(participantID string) error {
	m.mu.Lock()
	participant, exist := m.state.Participants[participantID]
	if !exist {
		m.mu.Unlock()
		return ErrParticipantNotFound
	}
	participant.IsReady = true
	seat := participant.Seat
	m.mu.Unlock()

	m.rg.Ready(int64(seat))
	return nil
}
