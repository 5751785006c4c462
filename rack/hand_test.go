package rack

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestFrequencyDict(t *testing.T) {
	assert.Equal(t, Hand{'h': 1, 'e': 1, 'l': 2, 'o': 1}, FrequencyDict("hello"))
	assert.Equal(t, Hand{}, FrequencyDict(""))
}

func TestLen(t *testing.T) {
	is := is.New(t)
	is.Equal(Hand{}.Len(), 0)
	is.Equal(Hand{'a': 1, 'q': 1, 'l': 2, 'm': 1, 'u': 1, 'i': 1}.Len(), 7)
	is.Equal(Hand{'a': 0, 'b': 2}.Len(), 2)
}

func TestCanForm(t *testing.T) {
	is := is.New(t)
	hand := Hand{'a': 1, 'q': 1, 'l': 2, 'm': 1, 'u': 1, 'i': 1}
	orig := hand.Copy()

	is.True(hand.CanForm("quail"))
	is.True(hand.CanForm("mill"))
	is.True(hand.CanForm(""))
	is.True(!hand.CanForm("lull"))
	is.True(!hand.CanForm("rapture"))
	is.True(!Hand{'a': 0}.CanForm("a"))

	assert.Equal(t, orig, hand)
}

func TestUpdate(t *testing.T) {
	is := is.New(t)
	type updatetest struct {
		hand     Hand
		word     string
		expected Hand
	}
	cases := []updatetest{
		{Hand{'a': 1, 'q': 1, 'l': 2, 'm': 1, 'u': 1, 'i': 1}, "quail",
			Hand{'a': 0, 'q': 0, 'l': 1, 'm': 1, 'u': 0, 'i': 0}},
		{Hand{'e': 1, 'v': 2, 'n': 1, 'i': 1, 'l': 2}, "evil",
			Hand{'e': 0, 'v': 1, 'n': 1, 'i': 0, 'l': 1}},
		{Hand{'h': 1, 'e': 1, 'l': 2, 'o': 1}, "hello",
			Hand{'h': 0, 'e': 0, 'l': 0, 'o': 0}},
	}
	for _, c := range cases {
		orig := c.hand.Copy()
		updated := c.hand.Update(c.word)
		assert.Equal(t, c.expected, updated)
		// The input hand is left alone.
		assert.Equal(t, orig, c.hand)
		is.Equal(updated.Len(), c.hand.Len()-len(c.word))
	}
}

func TestUpdateSkipsMissingLetters(t *testing.T) {
	updated := Hand{'a': 1}.Update("ab")
	assert.Equal(t, Hand{'a': 0}, updated)
}

func TestString(t *testing.T) {
	is := is.New(t)
	is.Equal(Hand{'x': 2, 'a': 1, 'l': 3, 'e': 1, 'q': 0}.String(), "a e l l l x x")
	is.Equal(Hand{}.String(), "")
	assert.Equal(t, Hand{'a': 1, 'e': 1, 'l': 3, 'x': 2}, HandFromString("a e l l l x x"))
}
