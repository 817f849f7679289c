package holdem

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/thoas/go-funk"

	"github.com/weedbox/holdem/card"
)

type Table struct {
	ID             string      `json:"id"`
	HandID         string      `json:"hand_id"`         // 本手 ID
	HandCount      int         `json:"hand_count"`      // 執行牌局次數
	Street         string      `json:"street"`          // 當前街
	Players        []*Player   `json:"players"`         // 依座位順序
	CommunityCards []card.Card `json:"community_cards"` // 公牌 (0 → 3 → 4 → 5)
	Pot            int64       `json:"pot"`             // 底池
	CurrentBet     int64       `json:"current_bet"`     // 本街需跟注到的下注量
	SmallBlind     int64       `json:"small_blind"`     // 小盲籌碼量
	BigBlind       int64       `json:"big_blind"`       // 大盲籌碼量
	DealerSeat     int         `json:"dealer_seat"`     // 當前 Dealer 座位編號
	WinnerText     string      `json:"winner_text"`     // 贏家公告 (保留到下一手開始)
	WaitingNext    bool        `json:"waiting_next"`    // 等待開始下一手
	UpdateAt       int64       `json:"update_at"`       // 更新時間 (Seconds)
	UpdateSerial   int64       `json:"update_serial"`   // 更新序列號 (數字越大越晚發生)
}

func NewTable(settings TableSettings) *Table {
	players := make([]*Player, 0, len(settings.Players))
	for seat, ps := range settings.Players {
		chips := ps.Chips
		if chips == 0 {
			chips = settings.StartingChips
		}
		players = append(players, NewPlayer(seat, ps.Name, chips))
	}

	return &Table{
		ID:             uuid.New().String(),
		Players:        players,
		CommunityCards: make([]card.Card, 0, 5),
		SmallBlind:     settings.SmallBlind,
		BigBlind:       settings.BigBlind,
		DealerSeat:     settings.DealerSeat,
	}
}

// Setters
func (t *Table) RefreshUpdateAt() {
	t.UpdateAt = time.Now().Unix()
	t.UpdateSerial++
}

// ResetForNewHand clears everything scoped to a hand. Names and stacks stay.
func (t *Table) ResetForNewHand() {
	for _, p := range t.Players {
		p.ResetForNewHand()
	}

	t.HandID = uuid.New().String()
	t.Street = ""
	t.CommunityCards = make([]card.Card, 0, 5)
	t.Pot = 0
	t.CurrentBet = 0
	t.WinnerText = ""
	t.WaitingNext = false
}

func (t *Table) AddToPot(chips int64) {
	t.Pot += chips
}

func (t *Table) AddCommunityCard(c card.Card) {
	t.CommunityCards = append(t.CommunityCards, c)
}

// ResetCurrentBets closes a street: every street bet and the bet to match go back to 0.
func (t *Table) ResetCurrentBets() {
	for _, p := range t.Players {
		p.CurrentBet = 0
	}
	t.CurrentBet = 0
}

// Getters
func (t *Table) GetPlayer(seat int) *Player {
	if seat < 0 || seat >= len(t.Players) {
		return nil
	}
	return t.Players[seat]
}

// PlayersInHand lists players that have not folded.
func (t *Table) PlayersInHand() []*Player {
	return funk.Filter(t.Players, func(p *Player) bool {
		return !p.Folded
	}).([]*Player)
}

// ActivePlayers lists players that can still act (not folded, not all-in).
func (t *Table) ActivePlayers() []*Player {
	return funk.Filter(t.Players, func(p *Player) bool {
		return p.IsActive()
	}).([]*Player)
}

// FundedPlayers lists players that still have chips.
func (t *Table) FundedPlayers() []*Player {
	return funk.Filter(t.Players, func(p *Player) bool {
		return p.Stack > 0
	}).([]*Player)
}

func (t *Table) Contenders() []*Player {
	return t.PlayersInHand()
}

func (t *Table) TotalChips() int64 {
	total := t.Pot
	for _, p := range t.Players {
		total += p.Stack
	}
	return total
}

func (t *Table) AmountToCall(p *Player) int64 {
	toCall := t.CurrentBet - p.CurrentBet
	if toCall < 0 {
		return 0
	}
	return toCall
}

func (t *Table) GetJSON() (string, error) {
	encoded, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func (t *Table) Clone() (*Table, error) {
	encoded, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}

	var cloned Table
	if err := json.Unmarshal(encoded, &cloned); err != nil {
		return nil, err
	}
	return &cloned, nil
}
