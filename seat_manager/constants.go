package seat_manager

const (
	UnsetSeatID = -1

	MinSeats = 2
	MaxSeats = 8

	// Positions
	Position_Unknown = "unknown"
	Position_Dealer  = "dealer"
	Position_SB      = "sb"
	Position_BB      = "bb"
	Position_UG      = "ug"
	Position_UG2     = "ug2"
	Position_MP      = "mp"
	Position_HJ      = "hj"
	Position_CO      = "co"
)
