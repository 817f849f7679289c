package card

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCard   = errors.New("card: invalid card")
	ErrDeckExhausted = errors.New("card: deck exhausted")
)

type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	return "?"
}

// Rank is the numeric card value, 2 through 14 (Ace high).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func New(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit >= Clubs && c.Suit <= Spades
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

/*
Parse 解析簡寫牌面
  - @param s rank + suit, e.g. "As", "Td", "10h", "2c"
  - @return parsed card
*/
func Parse(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	return parseParts(s, s[:len(s)-1], s[len(s)-1:])
}

// ParseSymbol parses the suit-first symbols of a pokerface deck, e.g. "SA",
// "HT", "C2".
func ParseSymbol(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	return parseParts(s, s[1:], s[:1])
}

func parseParts(s string, rankPart string, suitPart string) (Card, error) {
	rank, ok := parseRank(strings.ToUpper(rankPart))
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	suit, ok := parseSuit(strings.ToLower(suitPart))
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	return New(suit, rank), nil
}

func parseRank(s string) (Rank, bool) {
	switch s {
	case "A":
		return Ace, true
	case "K":
		return King, true
	case "Q":
		return Queen, true
	case "J":
		return Jack, true
	case "T", "10":
		return Ten, true
	}

	if len(s) != 1 || s[0] < '2' || s[0] > '9' {
		return 0, false
	}
	return Rank(s[0] - '0'), true
}

func parseSuit(s string) (Suit, bool) {
	switch s {
	case "c":
		return Clubs, true
	case "d":
		return Diamonds, true
	case "h":
		return Hearts, true
	case "s":
		return Spades, true
	}
	return 0, false
}

func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MustParseList parses a space separated list such as "As Ks Qs".
func MustParseList(s string) []Card {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		cards = append(cards, MustParse(f))
	}
	return cards
}
