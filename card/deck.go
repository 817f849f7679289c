package card

import (
	"math/rand"
	"time"

	"github.com/weedbox/pokerface"
)

const DeckSize = 52

type DeckOpt func(*Deck)

// Deck is a 52 card sequence dealt from a cursor. It is not safe for
// concurrent use; the hand engine owns it.
type Deck struct {
	cards   []Card
	stacked []Card
	cursor  int
	rand    *rand.Rand
}

func NewDeck(opts ...DeckOpt) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(d)
	}

	d.Reset()
	return d
}

func WithSeed(seed int64) DeckOpt {
	return func(d *Deck) {
		d.rand = rand.New(rand.NewSource(seed))
	}
}

/*
WithStackedCards 指定牌堆最上方的牌 (測試用)
  - 每次 Reset/Shuffle 後這些牌依序最先發出，其餘的牌照常洗亂
  - 重複或不合法的牌會被忽略
*/
func WithStackedCards(cards []Card) DeckOpt {
	return func(d *Deck) {
		seen := make(map[Card]bool)
		d.stacked = make([]Card, 0, len(cards))
		for _, c := range cards {
			if !c.Valid() || seen[c] {
				continue
			}
			seen[c] = true
			d.stacked = append(d.stacked, c)
		}
	}
}

func (d *Deck) Deal() (Card, error) {
	if d.cursor >= len(d.cards) {
		return Card{}, ErrDeckExhausted
	}

	c := d.cards[d.cursor]
	d.cursor++
	return c, nil
}

// Burn deals one card face down and discards it.
func (d *Deck) Burn() error {
	_, err := d.Deal()
	return err
}

// Shuffle permutes the cards without moving the cursor.
func (d *Deck) Shuffle() {
	d.fill()

	// stacked cards stay on top, the rest use the deck's own source so a
	// seeded deck repeats
	free := d.cards[len(d.stacked):]
	d.rand.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})
}

func (d *Deck) Reset() {
	d.cursor = 0
	d.Shuffle()
}

func (d *Deck) Remaining() int {
	return len(d.cards) - d.cursor
}

/*
fill 重新排列整副牌
  - 指定的牌放在最上方
  - 其餘的牌依 pokerface 標準牌組的順序補上
*/
func (d *Deck) fill() {
	used := make(map[Card]bool, len(d.stacked))
	d.cards = d.cards[:0]
	for _, c := range d.stacked {
		used[c] = true
		d.cards = append(d.cards, c)
	}

	for _, symbol := range pokerface.NewStandardDeckCards() {
		c, err := ParseSymbol(symbol)
		if err != nil || used[c] {
			continue
		}
		d.cards = append(d.cards, c)
	}
}
