package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weedbox/pokerface"
)

func TestDeck_DealAllDistinct(t *testing.T) {
	d := NewDeck(WithSeed(42))

	seen := make(map[Card]bool)
	for i := 0; i < DeckSize; i++ {
		c, err := d.Deal()
		require.NoError(t, err)
		assert.True(t, c.Valid())
		assert.False(t, seen[c], "card %s dealt twice", c)
		seen[c] = true
	}

	assert.Equal(t, DeckSize, len(seen))
	assert.Equal(t, 0, d.Remaining())

	_, err := d.Deal()
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestDeck_ResetRestoresCursor(t *testing.T) {
	d := NewDeck(WithSeed(7))
	for i := 0; i < 10; i++ {
		_, err := d.Deal()
		require.NoError(t, err)
	}
	assert.Equal(t, DeckSize-10, d.Remaining())

	d.Reset()
	assert.Equal(t, DeckSize, d.Remaining())
}

func TestDeck_ShuffleKeepsCursor(t *testing.T) {
	d := NewDeck(WithSeed(7))
	assert.NoError(t, d.Burn())
	assert.NoError(t, d.Burn())

	d.Shuffle()
	assert.Equal(t, DeckSize-2, d.Remaining())
}

func TestDeck_SameSeedSameOrder(t *testing.T) {
	d1 := NewDeck(WithSeed(99))
	d2 := NewDeck(WithSeed(99))

	for i := 0; i < DeckSize; i++ {
		c1, _ := d1.Deal()
		c2, _ := d2.Deal()
		assert.Equal(t, c1, c2)
	}
}

func TestDeck_StackedCards(t *testing.T) {
	stacked := MustParseList("As Ks Qs As")
	d := NewDeck(WithSeed(1), WithStackedCards(stacked))

	expected := MustParseList("As Ks Qs")
	for _, e := range expected {
		c, err := d.Deal()
		require.NoError(t, err)
		assert.Equal(t, e, c)
	}

	seen := map[Card]bool{}
	for _, e := range expected {
		seen[e] = true
	}
	for d.Remaining() > 0 {
		c, err := d.Deal()
		require.NoError(t, err)
		assert.False(t, seen[c])
		seen[c] = true
	}
	assert.Equal(t, DeckSize, len(seen))

	d.Reset()
	c, err := d.Deal()
	require.NoError(t, err)
	assert.Equal(t, expected[0], c)
}

func TestDeck_StandardDeckSymbols(t *testing.T) {
	symbols := pokerface.NewStandardDeckCards()
	assert.Len(t, symbols, DeckSize)

	seen := make(map[Card]bool)
	for _, symbol := range symbols {
		c, err := ParseSymbol(symbol)
		require.NoError(t, err, symbol)
		seen[c] = true
	}
	assert.Equal(t, DeckSize, len(seen))

	d := NewDeck(WithSeed(3))
	for d.Remaining() > 0 {
		c, err := d.Deal()
		require.NoError(t, err)
		assert.True(t, seen[c], "card %s is not in the standard deck", c)
	}
}
