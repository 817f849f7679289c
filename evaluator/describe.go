package evaluator

import (
	"fmt"

	"github.com/paulhankin/poker"

	"github.com/weedbox/holdem/card"
)

var pokerSuits = map[card.Suit]poker.Suit{
	card.Clubs:    poker.Club,
	card.Diamonds: poker.Diamond,
	card.Hearts:   poker.Heart,
	card.Spades:   poker.Spade,
}

func toPokerCard(c card.Card) (poker.Card, error) {
	var zero poker.Card

	suit, ok := pokerSuits[c.Suit]
	if !ok || !c.Rank.Valid() {
		return zero, fmt.Errorf("%w: %v", card.ErrInvalidCard, c)
	}

	// ace is rank 1 in paulhankin/poker
	rank := poker.Rank(c.Rank)
	if c.Rank == card.Ace {
		rank = poker.Rank(1)
	}

	return poker.MakeCard(suit, rank)
}

func toPokerCards(cards []card.Card) ([]poker.Card, error) {
	pcs := make([]poker.Card, 0, len(cards))
	for _, c := range cards {
		pc, err := toPokerCard(c)
		if err != nil {
			return nil, err
		}
		pcs = append(pcs, pc)
	}
	return pcs, nil
}

// Describe returns a readable name for the best hand, e.g. "full house, fives
// full of nines". It falls back to the category name when the cards cannot
// be described (wrong count, invalid card).
func Describe(cards []card.Card) string {
	fallback := Evaluate(cards).Rank.String()

	if len(cards) != 5 && len(cards) != 7 {
		return fallback
	}

	pcs, err := toPokerCards(cards)
	if err != nil {
		return fallback
	}

	desc, err := poker.Describe(pcs)
	if err != nil || desc == "" {
		return fallback
	}

	return desc
}

// strength scores seven cards with a full kicker-aware evaluator. Higher is
// stronger. Showdown never uses it.
func strength(cards [7]card.Card) (int16, error) {
	var hand [7]poker.Card
	for i, c := range cards {
		pc, err := toPokerCard(c)
		if err != nil {
			return 0, err
		}
		hand[i] = pc
	}
	return poker.Eval7(&hand), nil
}
