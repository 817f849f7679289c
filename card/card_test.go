package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_Parse(t *testing.T) {
	cases := map[string]Card{
		"As":  New(Spades, Ace),
		"Td":  New(Diamonds, Ten),
		"10h": New(Hearts, Ten),
		"2c":  New(Clubs, Two),
		"kH":  New(Hearts, King),
	}

	for input, expected := range cases {
		c, err := Parse(input)
		assert.NoError(t, err, input)
		assert.Equal(t, expected, c, input)
	}
}

func TestCard_ParseInvalid(t *testing.T) {
	for _, input := range []string{"", "A", "1s", "Ax", "11h", "Zz"} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrInvalidCard, input)
	}
}

func TestCard_ParseSymbol(t *testing.T) {
	cases := map[string]Card{
		"SA":  New(Spades, Ace),
		"DT":  New(Diamonds, Ten),
		"H10": New(Hearts, Ten),
		"C2":  New(Clubs, Two),
		"hk":  New(Hearts, King),
	}

	for input, expected := range cases {
		c, err := ParseSymbol(input)
		assert.NoError(t, err, input)
		assert.Equal(t, expected, c, input)
	}

	for _, input := range []string{"", "S", "As", "X2", "S1"} {
		_, err := ParseSymbol(input)
		assert.ErrorIs(t, err, ErrInvalidCard, input)
	}
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "A♠", New(Spades, Ace).String())
	assert.Equal(t, "10♥", New(Hearts, Ten).String())
	assert.Equal(t, "2♣", New(Clubs, Two).String())
}
