package holdem

import (
	"github.com/thoas/go-funk"

	"github.com/weedbox/holdem/card"
)

type Player struct {
	Seat       int         `json:"seat"`        // 座位編號
	Name       string      `json:"name"`        // 玩家名稱
	Stack      int64       `json:"stack"`       // 玩家身上籌碼
	HoleCards  []card.Card `json:"hole_cards"`  // 手牌
	Folded     bool        `json:"folded"`      // 是否已棄牌
	SittingOut bool        `json:"sitting_out"` // 本手開始時沒有籌碼
	CurrentBet int64       `json:"current_bet"` // 本街下注量
	TotalBet   int64       `json:"total_bet"`   // 本手下注總量
	Positions  []string    `json:"positions"`   // 場上位置
}

func NewPlayer(seat int, name string, stack int64) *Player {
	return &Player{
		Seat:      seat,
		Name:      name,
		Stack:     stack,
		HoleCards: make([]card.Card, 0, 2),
		Positions: make([]string, 0),
	}
}

// IsAllIn reports a player that is still in the hand with no chips behind.
func (p *Player) IsAllIn() bool {
	return p.Stack == 0 && !p.Folded
}

// IsActive reports a player that can still act on this street.
func (p *Player) IsActive() bool {
	return !p.Folded && !p.IsAllIn()
}

func (p *Player) HasPosition(position string) bool {
	return funk.ContainsString(p.Positions, position)
}

// PlaceBet moves up to amount chips from the stack into the player's bets
// and returns the chips actually moved.
func (p *Player) PlaceBet(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	if amount > p.Stack {
		amount = p.Stack
	}

	p.Stack -= amount
	p.CurrentBet += amount
	p.TotalBet += amount
	return amount
}

func (p *Player) Fold() {
	p.Folded = true
}

func (p *Player) GiveCard(c card.Card) {
	p.HoleCards = append(p.HoleCards, c)
}

func (p *Player) Award(chips int64) {
	p.Stack += chips
}

func (p *Player) ResetForNewHand() {
	p.HoleCards = make([]card.Card, 0, 2)
	p.Folded = false
	p.SittingOut = false
	p.CurrentBet = 0
	p.TotalBet = 0
	p.Positions = make([]string, 0)

	if p.Stack == 0 {
		p.SittingOut = true
		p.Folded = true
	}
}
