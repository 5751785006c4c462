package rack

import (
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/wordgame/tilemapping"
)

// Intner is a source of random integers in [0, n). *frand.RNG satisfies it;
// tests use a seeded one.
type Intner interface {
	Intn(n int) int
}

type frandSource struct{}

func (frandSource) Intn(n int) int { return frand.Intn(n) }

// DefaultSource draws from the process-wide frand generator.
var DefaultSource Intner = frandSource{}

// Deal returns a random hand of n letters. n/3 (rounded down) of them are
// drawn uniformly from the vowels of the distribution, the rest uniformly
// from its consonants. A nil source uses DefaultSource.
func Deal(n int, ld *tilemapping.LetterDistribution, src Intner) Hand {
	if src == nil {
		src = DefaultSource
	}
	h := make(Hand)
	if n <= 0 {
		return h
	}
	vowels := ld.Vowels()
	consonants := ld.Consonants()
	numVowels := n / 3

	for i := 0; i < numVowels; i++ {
		h[vowels[src.Intn(len(vowels))]]++
	}
	for i := numVowels; i < n; i++ {
		h[consonants[src.Intn(len(consonants))]]++
	}
	log.Debug().Str("hand", h.String()).Int("size", n).Msg("dealt-hand")
	return h
}
