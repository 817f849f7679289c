package seat_manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newSeatedManager(t *testing.T, playerIDs ...string) SeatManager {
	sm := NewSeatManager(MaxSeats)
	assert.NoError(t, sm.AssignSeats(playerIDs))
	return sm
}

func TestSeatManager_Init(t *testing.T) {
	sm := NewSeatManager(MaxSeats)

	assert.Equal(t, UnsetSeatID, sm.CurrentDealerSeatID())
	assert.Equal(t, UnsetSeatID, sm.CurrentSBSeatID())
	assert.Equal(t, UnsetSeatID, sm.CurrentBBSeatID())
	assert.False(t, sm.IsInitPositions())
	assert.Len(t, sm.Seats(), MaxSeats)
	for _, sp := range sm.Seats() {
		assert.Nil(t, sp)
	}
}

func TestSeatManager_AssignSeats(t *testing.T) {
	sm := newSeatedManager(t, "P1", "P2", "P3")

	for idx, playerID := range []string{"P1", "P2", "P3"} {
		seatID, err := sm.GetSeatID(playerID)
		assert.NoError(t, err)
		assert.Equal(t, idx, seatID)
	}

	_, err := sm.GetSeatID("P9")
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	assert.ErrorIs(t, sm.AssignSeats([]string{"P1"}), ErrDuplicatePlayers)
	assert.ErrorIs(t, sm.AssignSeats([]string{"P4", "P4"}), ErrDuplicatePlayers)
}

func TestSeatManager_AssignSeatsNotEnoughSeats(t *testing.T) {
	sm := NewSeatManager(2)
	assert.ErrorIs(t, sm.AssignSeats([]string{"P1", "P2", "P3"}), ErrNotEnoughSeats)
}

func TestSeatManager_FourPlayers(t *testing.T) {
	sm := newSeatedManager(t, "P1", "P2", "P3", "P4")

	assert.NoError(t, sm.InitPositions(0))
	assert.True(t, sm.IsInitPositions())
	assert.Equal(t, 0, sm.CurrentDealerSeatID())
	assert.Equal(t, 1, sm.CurrentSBSeatID())
	assert.Equal(t, 2, sm.CurrentBBSeatID())
	assert.Equal(t, 3, sm.PreflopFirstSeatID())
	assert.Equal(t, 1, sm.PostflopFirstSeatID())
	assert.Equal(t, []int{0, 1, 2, 3}, sm.ListActiveSeatIDsFromDealer())

	positions := sm.Positions()
	assert.Equal(t, []string{Position_Dealer}, positions[0])
	assert.Equal(t, []string{Position_SB}, positions[1])
	assert.Equal(t, []string{Position_BB}, positions[2])
	assert.Equal(t, []string{Position_UG}, positions[3])

	assert.NoError(t, sm.RotatePositions())
	assert.Equal(t, 1, sm.CurrentDealerSeatID())
	assert.Equal(t, 2, sm.CurrentSBSeatID())
	assert.Equal(t, 3, sm.CurrentBBSeatID())
	assert.Equal(t, 0, sm.PreflopFirstSeatID())
	assert.Equal(t, []int{1, 2, 3, 0}, sm.ListActiveSeatIDsFromDealer())

	// wraps around the table
	assert.NoError(t, sm.RotatePositions())
	assert.NoError(t, sm.RotatePositions())
	assert.NoError(t, sm.RotatePositions())
	assert.Equal(t, 0, sm.CurrentDealerSeatID())
}

func TestSeatManager_ThreePlayersButtonActsFirstPreflop(t *testing.T) {
	sm := newSeatedManager(t, "P1", "P2", "P3")

	assert.NoError(t, sm.InitPositions(2))
	assert.Equal(t, 2, sm.CurrentDealerSeatID())
	assert.Equal(t, 0, sm.CurrentSBSeatID())
	assert.Equal(t, 1, sm.CurrentBBSeatID())
	assert.Equal(t, 2, sm.PreflopFirstSeatID())
	assert.Equal(t, 0, sm.PostflopFirstSeatID())
}

func TestSeatManager_HeadsUp(t *testing.T) {
	sm := newSeatedManager(t, "P1", "P2")

	assert.NoError(t, sm.InitPositions(0))
	assert.True(t, sm.IsHU())
	assert.Equal(t, 0, sm.CurrentDealerSeatID())
	assert.Equal(t, 0, sm.CurrentSBSeatID())
	assert.Equal(t, 1, sm.CurrentBBSeatID())
	assert.Equal(t, 0, sm.PreflopFirstSeatID())
	assert.Equal(t, 1, sm.PostflopFirstSeatID())
	assert.Equal(t, []string{Position_Dealer, Position_SB}, sm.Positions()[0])

	assert.NoError(t, sm.RotatePositions())
	assert.Equal(t, 1, sm.CurrentDealerSeatID())
	assert.Equal(t, 1, sm.CurrentSBSeatID())
	assert.Equal(t, 0, sm.CurrentBBSeatID())
}

func TestSeatManager_SkipSeatsWithoutChips(t *testing.T) {
	sm := newSeatedManager(t, "P1", "P2", "P3", "P4")
	assert.NoError(t, sm.UpdateSeatHasChips(1, false))

	assert.NoError(t, sm.InitPositions(1))
	assert.Equal(t, 2, sm.CurrentDealerSeatID())
	assert.Equal(t, 3, sm.CurrentSBSeatID())
	assert.Equal(t, 0, sm.CurrentBBSeatID())
	assert.Equal(t, []int{2, 3, 0}, sm.ListActiveSeatIDsFromDealer())
	_, exist := sm.Positions()[1]
	assert.False(t, exist)

	assert.NoError(t, sm.RotatePositions())
	assert.Equal(t, 3, sm.CurrentDealerSeatID())

	assert.NoError(t, sm.UpdateSeatHasChips(0, false))
	assert.NoError(t, sm.RotatePositions())
	assert.Equal(t, 2, sm.CurrentDealerSeatID())
	assert.True(t, sm.IsHU())

	assert.NoError(t, sm.UpdateSeatHasChips(3, false))
	assert.ErrorIs(t, sm.RotatePositions(), ErrUnableToRotatePositions)
}

func TestSeatManager_Errors(t *testing.T) {
	sm := newSeatedManager(t, "P1")

	assert.ErrorIs(t, sm.RotatePositions(), ErrPositionsNotInit)
	assert.ErrorIs(t, sm.InitPositions(0), ErrUnableToInitPositions)
	assert.ErrorIs(t, sm.UpdateSeatHasChips(5, true), ErrUnavailableSeat)
}

func TestSeatManager_RotateIntArray(t *testing.T) {
	source := []int{0, 1, 2, 3, 4}
	assert.Equal(t, []int{2, 3, 4, 0, 1}, rotateIntArray(source, 2))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, source)
	assert.Equal(t, []int{1, 2, 3, 4, 0}, rotateIntArray(source, 6))
}
