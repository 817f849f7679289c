package holdem

type PlayerHandStatistics struct {
	ActionTimes  int    `json:"action_times"`  // 每手下注動作總次數
	RaiseTimes   int    `json:"raise_times"`   // 每手加注總次數 (含全下加注)
	CallTimes    int    `json:"call_times"`    // 每手跟注總次數
	CheckTimes   int    `json:"check_times"`   // 每手過牌總次數
	AllInTimes   int    `json:"allin_times"`   // 每手全下總次數
	DefaultTimes int    `json:"default_times"` // 不合法或逾時而套用預設動作的次數
	TimeoutTimes int    `json:"timeout_times"` // 逾時次數
	IsFold       bool   `json:"is_fold"`       // 每手是否蓋牌
	FoldStreet   string `json:"fold_street"`   // 每手蓋牌的街
	IsWinner     bool   `json:"is_winner"`     // 是否贏得底池
	WinningChips int64  `json:"winning_chips"` // 贏得的籌碼
	Contributed  int64  `json:"contributed"`   // 本手投入底池的籌碼
}

type HandStatistics struct {
	HandID        string                        `json:"hand_id"`
	BettingRounds int                           `json:"betting_rounds"` // 實際執行的下注輪數
	Streets       []string                      `json:"streets"`        // 依序執行過的街
	Players       map[int]*PlayerHandStatistics `json:"players"`        // key: seat
}

func NewHandStatistics(handID string, seats int) *HandStatistics {
	players := make(map[int]*PlayerHandStatistics, seats)
	for seat := 0; seat < seats; seat++ {
		players[seat] = &PlayerHandStatistics{}
	}

	return &HandStatistics{
		HandID:  handID,
		Streets: make([]string, 0, 4),
		Players: players,
	}
}

func (hs *HandStatistics) recordRound(street string) {
	hs.BettingRounds++
	hs.Streets = append(hs.Streets, street)
}

func (hs *HandStatistics) recordAction(seat int, street string, action WagerAction, raised bool) {
	ps, ok := hs.Players[seat]
	if !ok {
		return
	}

	ps.ActionTimes++
	switch action {
	case WagerAction_Fold:
		ps.IsFold = true
		ps.FoldStreet = street
	case WagerAction_Check:
		ps.CheckTimes++
	case WagerAction_Call:
		ps.CallTimes++
	case WagerAction_AllIn:
		ps.AllInTimes++
	}

	if raised {
		ps.RaiseTimes++
	}
}

func (hs *HandStatistics) recordDefault(seat int, timeout bool) {
	ps, ok := hs.Players[seat]
	if !ok {
		return
	}

	ps.DefaultTimes++
	if timeout {
		ps.TimeoutTimes++
	}
}
