package seat_manager

import (
	"sync"

	"github.com/thoas/go-funk"
)

type seatManager struct {
	maxSeat         int
	seats           map[int]*SeatPlayer // key: seat_id (from 0 to maxSeat - 1), value: seat (nil by default)
	dealerSeatID    int                 // UnsetSeatID by default
	sbSeatID        int                 // UnsetSeatID by default
	bbSeatID        int                 // UnsetSeatID by default
	isInitPositions bool
	mu              sync.RWMutex
}

// AssignSeats seats players in order, starting from seat 0.
func (sm *seatManager) AssignSeats(playerIDs []string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	emptySeatIDs := sm.getEmptySeatIDs()
	if len(emptySeatIDs) < len(playerIDs) {
		return ErrNotEnoughSeats
	}

	seen := make([]string, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		if funk.ContainsString(seen, playerID) {
			return ErrDuplicatePlayers
		}
		seen = append(seen, playerID)
	}

	for _, sp := range sm.seats {
		if sp != nil && funk.ContainsString(seen, sp.ID) {
			return ErrDuplicatePlayers
		}
	}

	for i, playerID := range playerIDs {
		sp := sm.newSeatPlayer(playerID)
		sm.seats[emptySeatIDs[i]] = &sp
	}

	return nil
}

func (sm *seatManager) GetSeatID(playerID string) (int, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for seatID, sp := range sm.seats {
		if sp != nil && sp.ID == playerID {
			return seatID, nil
		}
	}
	return UnsetSeatID, ErrPlayerNotFound
}

func (sm *seatManager) UpdateSeatHasChips(seatID int, hasChips bool) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sp, exist := sm.seats[seatID]
	if !exist || sp == nil {
		return ErrUnavailableSeat
	}

	sp.HasChips = hasChips
	return nil
}

/*
InitPositions 決定第一手的 Dealer, SB, BB
  - 指定座位沒有籌碼時，往下家找第一個有籌碼的座位當 Dealer
*/
func (sm *seatManager) InitPositions(dealerSeatID int) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.getActiveSeatCount() < 2 {
		return ErrUnableToInitPositions
	}

	if sp, exist := sm.seats[dealerSeatID]; !exist || sp == nil || !sp.Active() {
		dealerSeatID = sm.nextActiveSeatID(dealerSeatID)
		if dealerSeatID == UnsetSeatID {
			return ErrUnableToInitPositions
		}
	}

	sm.dealerSeatID = dealerSeatID
	if err := sm.updateBlindSeats(); err != nil {
		return ErrUnableToInitPositions
	}

	sm.isInitPositions = true
	return nil
}

// RotatePositions moves the button to the next seat with chips.
func (sm *seatManager) RotatePositions() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.isInitPositions {
		return ErrPositionsNotInit
	}

	if sm.getActiveSeatCount() < 2 {
		return ErrUnableToRotatePositions
	}

	nextDealerSeatID := sm.nextActiveSeatID(sm.dealerSeatID)
	if nextDealerSeatID == UnsetSeatID {
		return ErrUnableToRotatePositions
	}

	sm.dealerSeatID = nextDealerSeatID
	if err := sm.updateBlindSeats(); err != nil {
		return ErrUnableToRotatePositions
	}

	return nil
}

func (sm *seatManager) Seats() map[int]*SeatPlayer {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	seats := make(map[int]*SeatPlayer, len(sm.seats))
	for seatID, sp := range sm.seats {
		if sp == nil {
			seats[seatID] = nil
			continue
		}
		copied := *sp
		seats[seatID] = &copied
	}
	return seats
}

func (sm *seatManager) CurrentDealerSeatID() int {
	return sm.dealerSeatID
}

func (sm *seatManager) CurrentSBSeatID() int {
	return sm.sbSeatID
}

func (sm *seatManager) CurrentBBSeatID() int {
	return sm.bbSeatID
}

func (sm *seatManager) IsInitPositions() bool {
	return sm.isInitPositions
}

func (sm *seatManager) IsHU() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.getActiveSeatCount() == 2
}

func (sm *seatManager) ListActiveSeatIDsFromDealer() []int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.activeSeatIDsFromDealer()
}

// Positions maps every active seat to its positions for the current button.
func (sm *seatManager) Positions() map[int][]string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	seatIDs := sm.activeSeatIDsFromDealer()
	positions := newPositions(len(seatIDs))

	result := make(map[int][]string, len(seatIDs))
	for idx, seatID := range seatIDs {
		if idx < len(positions) {
			result[seatID] = positions[idx]
		} else {
			result[seatID] = []string{Position_Unknown}
		}
	}
	return result
}

/*
PreflopFirstSeatID 翻牌前第一個行動的座位
  - 3 人以上: BB 下家 (Dealer 往後第 3 個有籌碼的座位)
  - 2 人: Dealer (同時為 SB)
*/
func (sm *seatManager) PreflopFirstSeatID() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	seatIDs := sm.activeSeatIDsFromDealer()
	if len(seatIDs) < 2 {
		return UnsetSeatID
	}
	if len(seatIDs) == 2 {
		return seatIDs[0]
	}
	return seatIDs[3%len(seatIDs)]
}

// PostflopFirstSeatID is the first seat with chips after the button.
func (sm *seatManager) PostflopFirstSeatID() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	seatIDs := sm.activeSeatIDsFromDealer()
	if len(seatIDs) < 2 {
		return UnsetSeatID
	}
	return seatIDs[1]
}
