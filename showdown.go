package holdem

import (
	"strings"

	"github.com/thoas/go-funk"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/weedbox/holdem/card"
	"github.com/weedbox/holdem/evaluator"
)

var printer = message.NewPrinter(language.English)

type SettlementResult struct {
	Pot         int64              `json:"pot"`         // 結算前底池
	Winners     []int              `json:"winners"`     // 贏家座位 (依座位順序)
	Awards      map[int]int64      `json:"awards"`      // key: seat, value: 贏得籌碼
	Rank        evaluator.HandRank `json:"rank"`        // 贏家牌型 (無人攤牌時為 HighCard)
	Description string             `json:"description"` // 贏家牌型說明
	Text        string             `json:"text"`        // 贏家公告
}

type contenderResult struct {
	player *Player
	result evaluator.Result
}

/*
Showdown 攤牌並分配底池
  - 沒有未棄牌玩家: 公告 "no winner"，底池不動
  - 只剩一位: 贏得整個底池
  - 其他: 取最大牌型，再以最大單張 (全部七張中最大的點數) 決勝，仍平手則平分
  - 平分時餘數給依座位順序的第一位贏家
*/
func Showdown(t *Table) *SettlementResult {
	sr := &SettlementResult{
		Pot:     t.Pot,
		Winners: make([]int, 0),
		Awards:  make(map[int]int64),
	}

	contenders := t.Contenders()

	switch len(contenders) {
	case 0:
		sr.Text = WinnerText_NoWinner
		t.WinnerText = sr.Text
		return sr
	case 1:
		winner := contenders[0]
		sr.Winners = append(sr.Winners, winner.Seat)
		sr.Awards[winner.Seat] = t.Pot
		winner.Award(t.Pot)
		t.Pot = 0

		sr.Text = printer.Sprintf("%s wins %d chips", winner.Name, sr.Awards[winner.Seat])
		t.WinnerText = sr.Text
		return sr
	}

	results := make([]contenderResult, 0, len(contenders))
	for _, p := range contenders {
		results = append(results, contenderResult{
			player: p,
			result: evaluator.Evaluate(handCards(p, t.CommunityCards)),
		})
	}

	// Step 1: best category
	bestRank := evaluator.HighCard
	for _, cr := range results {
		if cr.result.Rank > bestRank {
			bestRank = cr.result.Rank
		}
	}
	results = funk.Filter(results, func(cr contenderResult) bool {
		return cr.result.Rank == bestRank
	}).([]contenderResult)

	// Step 2: tie-break on the single highest card
	bestHigh := card.Rank(0)
	for _, cr := range results {
		if cr.result.HighCard > bestHigh {
			bestHigh = cr.result.HighCard
		}
	}
	results = funk.Filter(results, func(cr contenderResult) bool {
		return cr.result.HighCard == bestHigh
	}).([]contenderResult)

	// Step 3: distribute
	pot := t.Pot
	share := pot / int64(len(results))
	remainder := pot % int64(len(results))

	names := make([]string, 0, len(results))
	for idx, cr := range results {
		award := share
		if idx == 0 {
			award += remainder
		}
		cr.player.Award(award)
		sr.Winners = append(sr.Winners, cr.player.Seat)
		sr.Awards[cr.player.Seat] = award
		names = append(names, cr.player.Name)
	}
	t.Pot = 0

	sr.Rank = bestRank
	if len(results) == 1 {
		sr.Description = evaluator.Describe(handCards(results[0].player, t.CommunityCards))
		sr.Text = printer.Sprintf("%s wins %d chips with %s", names[0], pot, sr.Description)
	} else {
		sr.Description = bestRank.String()
		sr.Text = printer.Sprintf("Split pot: %s win %d chips each with %s", strings.Join(names, ", "), share, sr.Description)
		if remainder > 0 {
			sr.Text += printer.Sprintf(" (%s receives %d extra)", names[0], remainder)
		}
	}

	t.WinnerText = sr.Text
	return sr
}

func handCards(p *Player, community []card.Card) []card.Card {
	cards := make([]card.Card, 0, len(p.HoleCards)+len(community))
	cards = append(cards, p.HoleCards...)
	return append(cards, community...)
}
