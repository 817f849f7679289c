package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weedbox/holdem/card"
	"github.com/weedbox/holdem/evaluator"
)

func setupShowdown(names []string, board string, holes []string, pot int64) *Table {
	table := newTestTable(names...)
	table.Street = Street_Showdown
	table.CommunityCards = card.MustParseList(board)
	for idx, hole := range holes {
		if hole == "" {
			table.Players[idx].Fold()
			continue
		}
		table.Players[idx].HoleCards = card.MustParseList(hole)
	}
	table.Pot = pot
	return table
}

func sumAwards(sr *SettlementResult) int64 {
	total := int64(0)
	for _, award := range sr.Awards {
		total += award
	}
	return total
}

func TestShowdown_NoContenders(t *testing.T) {
	table := newTestTable("Jeffrey", "Chuck")
	table.Pot = 40
	for _, p := range table.Players {
		p.Fold()
	}

	sr := Showdown(table)

	assert.Equal(t, WinnerText_NoWinner, sr.Text)
	assert.Equal(t, WinnerText_NoWinner, table.WinnerText)
	assert.Len(t, sr.Winners, 0)
	assert.Equal(t, int64(40), table.Pot)
}

func TestShowdown_LastPlayerStanding(t *testing.T) {
	table := setupShowdown([]string{"Jeffrey", "Chuck", "Fred"}, "", []string{"", "As Ad", ""}, 1240)

	sr := Showdown(table)

	assert.Equal(t, []int{1}, sr.Winners)
	assert.Equal(t, int64(1240), sr.Awards[1])
	assert.Equal(t, int64(2240), table.Players[1].Stack)
	assert.Equal(t, int64(0), table.Pot)
	assert.Equal(t, "Chuck wins 1,240 chips", sr.Text)
}

func TestShowdown_BestCategoryWins(t *testing.T) {
	table := setupShowdown(
		[]string{"Jeffrey", "Chuck", "Fred"},
		"9c 9d 5h 2s Kc",
		[]string{"Ah Qd", "9h 5d", "Kd 3c"},
		300,
	)

	sr := Showdown(table)

	assert.Equal(t, []int{1}, sr.Winners)
	assert.Equal(t, evaluator.FullHouse, sr.Rank)
	assert.Equal(t, int64(1300), table.Players[1].Stack)
	assert.Contains(t, sr.Text, "Chuck wins 300 chips with")
	assert.Equal(t, table.WinnerText, sr.Text)
}

func TestShowdown_HighCardBreaksTie(t *testing.T) {
	table := setupShowdown(
		[]string{"Jeffrey", "Chuck"},
		"2c 2d 7h 8s 9c",
		[]string{"Kh 3d", "Qh 4d"},
		100,
	)

	sr := Showdown(table)

	assert.Equal(t, []int{0}, sr.Winners)
	assert.Equal(t, evaluator.Pair, sr.Rank)
	assert.Equal(t, int64(1100), table.Players[0].Stack)
}

func TestShowdown_HighCardOnlyTieBreak(t *testing.T) {
	// kings-up and fives-up both play the board ace as their highest card
	table := setupShowdown(
		[]string{"Jeffrey", "Chuck"},
		"Ac 9d 9h 4s 2c",
		[]string{"Kd Kc", "5d 5h"},
		200,
	)

	sr := Showdown(table)

	assert.Equal(t, []int{0, 1}, sr.Winners)
	assert.Equal(t, evaluator.TwoPair, sr.Rank)
	assert.Equal(t, int64(100), sr.Awards[0])
	assert.Equal(t, int64(100), sr.Awards[1])
}

func TestShowdown_SplitRemainder(t *testing.T) {
	table := setupShowdown(
		[]string{"Jeffrey", "Chuck", "Fred"},
		"As Kd Qh Js 2c",
		[]string{"Tc 3d", "Th 4d", ""},
		101,
	)

	sr := Showdown(table)

	assert.Equal(t, []int{0, 1}, sr.Winners)
	assert.Equal(t, evaluator.Straight, sr.Rank)
	assert.Equal(t, int64(51), sr.Awards[0])
	assert.Equal(t, int64(50), sr.Awards[1])
	assert.Equal(t, sr.Pot, sumAwards(sr))
	assert.Equal(t, "Split pot: Jeffrey, Chuck win 50 chips each with Straight (Jeffrey receives 1 extra)", sr.Text)
}

func TestShowdown_ThreeWaySplit(t *testing.T) {
	table := setupShowdown(
		[]string{"Jeffrey", "Chuck", "Fred", "Ivan"},
		"Ts Jd Qh Kc Ac",
		[]string{"2c 3d", "", "4c 5d", "6c 7d"},
		100,
	)

	sr := Showdown(table)

	assert.Equal(t, []int{0, 2, 3}, sr.Winners)
	assert.Equal(t, int64(34), sr.Awards[0])
	assert.Equal(t, int64(33), sr.Awards[2])
	assert.Equal(t, int64(33), sr.Awards[3])
	assert.Equal(t, int64(100), sumAwards(sr))
	assert.Equal(t, int64(0), table.Pot)
	assert.Equal(t, int64(4100), table.TotalChips())
}
