package holdem

import (
	"github.com/weedbox/holdem/seat_manager"
)

const (
	// General
	UnsetValue = -1

	DefaultStartingChips     int64 = 1000
	DefaultMaxInvalidActions       = 3
	BoardSize                      = 5

	// Position
	Position_Unknown = seat_manager.Position_Unknown
	Position_Dealer  = seat_manager.Position_Dealer
	Position_SB      = seat_manager.Position_SB
	Position_BB      = seat_manager.Position_BB
	Position_UG      = seat_manager.Position_UG

	// Street
	Street_Preflop  = "preflop"
	Street_Flop     = "flop"
	Street_Turn     = "turn"
	Street_River    = "river"
	Street_Showdown = "showdown"

	// Winner announcement
	WinnerText_NoWinner = "no winner"
)
