package rack

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Hand maps a letter to the number of copies the player holds. A letter
// with a count of zero is the same as a missing letter.
type Hand map[rune]int

// FrequencyDict returns the letter counts of a word.
func FrequencyDict(word string) Hand {
	h := make(Hand)
	for _, r := range word {
		h[r]++
	}
	return h
}

// HandFromString creates a hand from its letters. Spaces are ignored, so
// the output of Hand.String can be fed back in.
func HandFromString(letters string) Hand {
	return FrequencyDict(strings.ReplaceAll(letters, " ", ""))
}

// Len returns the number of letters in the hand.
func (h Hand) Len() int {
	return lo.Sum(lo.Values(map[rune]int(h)))
}

// Copy returns a deep copy of this hand.
func (h Hand) Copy() Hand {
	n := make(Hand, len(h))
	for k, v := range h {
		n[k] = v
	}
	return n
}

// CanForm returns true if the hand holds enough copies of every letter in
// word. The hand is not modified.
func (h Hand) CanForm(word string) bool {
	scratch := h.Copy()
	for _, r := range word {
		scratch[r]--
		if scratch[r] < 0 {
			return false
		}
	}
	return true
}

// Update returns a new hand without the letters in word. It assumes the
// word was already checked with CanForm; letters the hand does not hold are
// skipped rather than driven negative.
func (h Hand) Update(word string) Hand {
	n := h.Copy()
	for _, r := range word {
		if n[r] > 0 {
			n[r]--
		}
	}
	return n
}

// Letters returns the sorted letters with a nonzero count, one entry per
// copy.
func (h Hand) Letters() []rune {
	keys := lo.Filter(lo.Keys(map[rune]int(h)), func(r rune, _ int) bool { return h[r] > 0 })
	slices.Sort(keys)
	letters := make([]rune, 0, h.Len())
	for _, k := range keys {
		for i := 0; i < h[k]; i++ {
			letters = append(letters, k)
		}
	}
	return letters
}

// String returns a user-visible version of this hand, e.g. "a e l l x".
func (h Hand) String() string {
	letters := h.Letters()
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
