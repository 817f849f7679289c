package seat_manager

import (
	"errors"
)

var (
	ErrNotEnoughSeats          = errors.New("seat manager: no enough seats")
	ErrPlayerNotFound          = errors.New("seat manager: player not found")
	ErrDuplicatePlayers        = errors.New("seat manager: duplicate players detected")
	ErrUnavailableSeat         = errors.New("seat manager: seat is not available")
	ErrUnableToInitPositions   = errors.New("seat manager: unable to init positions")
	ErrUnableToRotatePositions = errors.New("seat manager: unable to rotate positions")
	ErrPositionsNotInit        = errors.New("seat manager: positions are not initialized")
)

// SeatManager tracks who sits where and which seat holds the button.
// Seats without chips are skipped by every position calculation.
type SeatManager interface {
	AssignSeats(playerIDs []string) error
	GetSeatID(playerID string) (int, error)
	UpdateSeatHasChips(seatID int, hasChips bool) error
	InitPositions(dealerSeatID int) error
	RotatePositions() error

	Seats() map[int]*SeatPlayer
	CurrentDealerSeatID() int
	CurrentSBSeatID() int
	CurrentBBSeatID() int
	IsInitPositions() bool
	IsHU() bool
	ListActiveSeatIDsFromDealer() []int
	Positions() map[int][]string
	PreflopFirstSeatID() int
	PostflopFirstSeatID() int
}

type SeatPlayer struct {
	ID       string `json:"id"`
	HasChips bool   `json:"has_chips"`
}

func (sp *SeatPlayer) Active() bool {
	return sp.HasChips
}

func NewSeatManager(maxSeats int) SeatManager {
	seats := make(map[int]*SeatPlayer)
	for i := 0; i < maxSeats; i++ {
		seats[i] = nil
	}

	return &seatManager{
		maxSeat:      maxSeats,
		seats:        seats,
		dealerSeatID: UnsetSeatID,
		sbSeatID:     UnsetSeatID,
		bbSeatID:     UnsetSeatID,
	}
}
