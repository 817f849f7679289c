package evaluator

import (
	"github.com/weedbox/holdem/card"
)

// Result is the category of the best hand plus its tie-break key.
//
// HighCard is the single highest rank among all evaluated cards, not a
// five card kicker comparison. Two results with the same Rank and
// HighCard are an exact tie even when real poker rules would separate
// them (e.g. two pair hands with different second pairs).
type Result struct {
	Rank     HandRank  `json:"rank"`
	HighCard card.Rank `json:"high_card"`
}

/*
Evaluate 計算 5~7 張牌可組成的最佳牌型
  - 由高至低依序判斷，第一個符合者即為結果
  - 與輸入順序無關
*/
func Evaluate(cards []card.Card) Result {
	res := Result{
		Rank:     HighCard,
		HighCard: highestRank(cards),
	}

	// Step 1: flush candidate
	suitGroups := make(map[card.Suit][]card.Rank)
	for _, c := range cards {
		suitGroups[c.Suit] = append(suitGroups[c.Suit], c.Rank)
	}

	var flushRanks []card.Rank
	for _, ranks := range suitGroups {
		if len(ranks) >= 5 {
			flushRanks = ranks
			break
		}
	}

	// Step 2: straight flush & royal flush
	if flushRanks != nil {
		if top := straightTop(flushRanks); top != 0 {
			if top == card.Ace {
				res.Rank = RoyalFlush
			} else {
				res.Rank = StraightFlush
			}
			return res
		}
	}

	// Step 3: rank frequencies
	counts := make(map[card.Rank]int)
	for _, c := range cards {
		counts[c.Rank]++
	}

	quads, trips, pairs := 0, 0, 0
	for _, n := range counts {
		switch {
		case n >= 4:
			quads++
		case n == 3:
			trips++
		case n == 2:
			pairs++
		}
	}

	switch {
	case quads > 0:
		res.Rank = FourOfAKind
	case trips >= 2 || (trips == 1 && pairs >= 1):
		res.Rank = FullHouse
	case flushRanks != nil:
		res.Rank = Flush
	case straightTop(ranksOf(cards)) != 0:
		res.Rank = Straight
	case trips == 1:
		res.Rank = ThreeOfAKind
	case pairs >= 2:
		res.Rank = TwoPair
	case pairs == 1:
		res.Rank = Pair
	}

	return res
}

// Compare orders results by category first and then by high card. The high
// card is the highest of all evaluated cards, so hands of the same category
// that differ only in kickers or a second pair compare equal.
func Compare(a, b Result) int {
	switch {
	case a.Rank > b.Rank:
		return 1
	case a.Rank < b.Rank:
		return -1
	case a.HighCard > b.HighCard:
		return 1
	case a.HighCard < b.HighCard:
		return -1
	}
	return 0
}

/*
straightTop 回傳順子最大的點數，沒有順子則回傳 0
  - 重複點數視為同一張
  - A-2-3-4-5 (wheel) 為最小的順子，回傳 5
*/
func straightTop(ranks []card.Rank) card.Rank {
	present := make(map[card.Rank]bool, len(ranks))
	for _, r := range ranks {
		present[r] = true
	}

	for top := card.Ace; top >= card.Six; top-- {
		found := true
		for r := top; r > top-5; r-- {
			if !present[r] {
				found = false
				break
			}
		}
		if found {
			return top
		}
	}

	// wheel
	if present[card.Ace] && present[card.Two] && present[card.Three] && present[card.Four] && present[card.Five] {
		return card.Five
	}

	return 0
}

func ranksOf(cards []card.Card) []card.Rank {
	ranks := make([]card.Rank, 0, len(cards))
	for _, c := range cards {
		ranks = append(ranks, c.Rank)
	}
	return ranks
}

func highestRank(cards []card.Card) card.Rank {
	var high card.Rank
	for _, c := range cards {
		if c.Rank > high {
			high = c.Rank
		}
	}
	return high
}
