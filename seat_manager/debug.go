package seat_manager

import (
	"fmt"
	"strings"
)

// DescribeSeats renders the button, blinds and every seat on one line.
func DescribeSeats(sm SeatManager) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dealer: %d, SB: %d, BB: %d |", sm.CurrentDealerSeatID(), sm.CurrentSBSeatID(), sm.CurrentBBSeatID())

	seats := sm.Seats()
	for i := 0; i < len(seats); i++ {
		sp := seats[i]
		if sp == nil {
			fmt.Fprintf(&sb, " [%d] empty", i)
			continue
		}
		fmt.Fprintf(&sb, " [%d] %s HasChips: %t", i, sp.ID, sp.HasChips)
	}
	return sb.String()
}
