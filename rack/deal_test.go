package rack

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordgame/config"
	"github.com/domino14/wordgame/testhelpers"
	"github.com/domino14/wordgame/tilemapping"
)

func TestDealSizes(t *testing.T) {
	is := is.New(t)
	ld, err := tilemapping.EnglishLetterDistribution(config.DefaultConfig())
	is.NoErr(err)

	for n := 0; n <= 30; n++ {
		for trial := 0; trial < 20; trial++ {
			h := Deal(n, ld, nil)
			is.Equal(h.Len(), n)
			vowels := 0
			for _, r := range h.Letters() {
				is.True(ld.Has(r))
				if ld.IsVowel(r) {
					vowels++
				}
			}
			// Consonants are never vowels, so the split is exact.
			is.Equal(vowels, n/3)
		}
	}
}

func TestDealNegative(t *testing.T) {
	is := is.New(t)
	ld, err := tilemapping.EnglishLetterDistribution(config.DefaultConfig())
	is.NoErr(err)
	is.Equal(Deal(-3, ld, nil).Len(), 0)
}

func TestDealSeeded(t *testing.T) {
	is := is.New(t)
	ld, err := tilemapping.EnglishLetterDistribution(config.DefaultConfig())
	is.NoErr(err)

	h1 := Deal(7, ld, testhelpers.SeededRNG(42))
	h2 := Deal(7, ld, testhelpers.SeededRNG(42))
	is.Equal(h1.String(), h2.String())
	is.Equal(h1.Len(), 7)
}
