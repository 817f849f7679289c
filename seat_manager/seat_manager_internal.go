package seat_manager

import (
	"sort"
)

func (sm *seatManager) getEmptySeatIDs() []int {
	emptySeatIDs := make([]int, 0)
	for seatID, sp := range sm.seats {
		if sp == nil {
			emptySeatIDs = append(emptySeatIDs, seatID)
		}
	}
	sort.Ints(emptySeatIDs)
	return emptySeatIDs
}

func (sm *seatManager) getActiveSeatIDs() []int {
	seatIDs := make([]int, 0)
	for seatID, sp := range sm.seats {
		if sp != nil && sp.Active() {
			seatIDs = append(seatIDs, seatID)
		}
	}
	sort.Ints(seatIDs)
	return seatIDs
}

func (sm *seatManager) getActiveSeatCount() int {
	return len(sm.getActiveSeatIDs())
}

func (sm *seatManager) nextActiveSeatID(startSeatID int) int {
	for i := 1; i <= sm.maxSeat; i++ {
		seatID := (startSeatID + i) % sm.maxSeat
		if sp, exist := sm.seats[seatID]; exist && sp != nil && sp.Active() {
			return seatID
		}
	}
	return UnsetSeatID
}

/*
updateBlindSeats 依照目前 Dealer 計算 SB & BB
  - 2 人: Dealer 同時為 SB，另一人為 BB
  - 超過 2 人: Dealer 下家為 SB，SB 下家為 BB
*/
func (sm *seatManager) updateBlindSeats() error {
	seatIDs := sm.activeSeatIDsFromDealer()
	if len(seatIDs) < 2 {
		return ErrUnableToInitPositions
	}

	if len(seatIDs) == 2 {
		sm.sbSeatID = seatIDs[0]
		sm.bbSeatID = seatIDs[1]
		return nil
	}

	sm.sbSeatID = seatIDs[1]
	sm.bbSeatID = seatIDs[2]
	return nil
}

func (sm *seatManager) activeSeatIDsFromDealer() []int {
	seatIDs := sm.getActiveSeatIDs()
	for idx, seatID := range seatIDs {
		if seatID == sm.dealerSeatID {
			return rotateIntArray(seatIDs, idx)
		}
	}
	return seatIDs
}

func (sm *seatManager) newSeatPlayer(playerID string) SeatPlayer {
	return SeatPlayer{
		ID:       playerID,
		HasChips: true,
	}
}

func newPositions(playerCount int) [][]string {
	switch playerCount {
	case 8:
		return [][]string{
			{Position_Dealer},
			{Position_SB},
			{Position_BB},
			{Position_UG},
			{Position_UG2},
			{Position_MP},
			{Position_HJ},
			{Position_CO},
		}
	case 7:
		return [][]string{
			{Position_Dealer},
			{Position_SB},
			{Position_BB},
			{Position_UG},
			{Position_MP},
			{Position_HJ},
			{Position_CO},
		}
	case 6:
		return [][]string{
			{Position_Dealer},
			{Position_SB},
			{Position_BB},
			{Position_UG},
			{Position_HJ},
			{Position_CO},
		}
	case 5:
		return [][]string{
			{Position_Dealer},
			{Position_SB},
			{Position_BB},
			{Position_UG},
			{Position_CO},
		}
	case 4:
		return [][]string{
			{Position_Dealer},
			{Position_SB},
			{Position_BB},
			{Position_UG},
		}
	case 3:
		return [][]string{
			{Position_Dealer},
			{Position_SB},
			{Position_BB},
		}
	case 2:
		return [][]string{
			{Position_Dealer, Position_SB},
			{Position_BB},
		}
	default:
		return make([][]string, 0)
	}
}

/*
rotateIntArray 給定 source, 以 startIndex 當作第一個元素做 Rotations
  - @param source Given source array
  - @param startIndex Base index for the rotation
  - @return rotated source (source is left untouched)

Example:
  - Given: []int{0, 1, 2, 3, 4}, startIndex = 2
  - Output: []int{2, 3, 4, 0, 1}
*/
func rotateIntArray(source []int, startIndex int) []int {
	if len(source) == 0 {
		return source
	}
	startIndex = startIndex % len(source)

	rotated := make([]int, 0, len(source))
	rotated = append(rotated, source[startIndex:]...)
	return append(rotated, source[:startIndex]...)
}
