package tilemapping

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/wordgame/config"
)

var DefaultConfig = config.DefaultConfig()

func TestLetterDistributionScores(t *testing.T) {
	is := is.New(t)
	ld, err := EnglishLetterDistribution(DefaultConfig)
	is.NoErr(err)

	is.Equal(ld.Name, "english")
	is.Equal(ld.Score('a'), 1)
	is.Equal(ld.Score('d'), 2)
	is.Equal(ld.Score('k'), 5)
	is.Equal(ld.Score('x'), 8)
	is.Equal(ld.Score('z'), 10)
	is.Equal(ld.Score('?'), 0)
	is.True(!ld.Has('?'))
}

func TestVowelsAndConsonants(t *testing.T) {
	is := is.New(t)
	ld, err := EnglishLetterDistribution(DefaultConfig)
	is.NoErr(err)

	assert.Equal(t, []rune("aeiou"), ld.Vowels())
	assert.Equal(t, []rune("bcdfghjklmnpqrstvwxyz"), ld.Consonants())
	is.True(ld.IsVowel('e'))
	is.True(!ld.IsVowel('y'))

	// Callers can't modify the table through the returned slices.
	v := ld.Vowels()
	v[0] = 'z'
	is.Equal(ld.Vowels()[0], 'a')
}

func TestWordScore(t *testing.T) {
	is := is.New(t)
	ld, err := EnglishLetterDistribution(DefaultConfig)
	is.NoErr(err)

	type scoretest struct {
		word     string
		handSize int
		score    int
	}
	testCases := []scoretest{
		{"", 7, 0},
		{"it", 7, 4},
		{"was", 7, 18},
		{"cab", 7, 21},
		{"scored", 7, 54},
		{"fork", 7, 44},
		{"waybill", 7, 155},
		{"outgnaw", 7, 127},
		{"jukebox", 7, 239},
		{"jukebox", 8, 189},
		{"fork", 4, 94},
	}
	for _, tc := range testCases {
		is.Equal(ld.WordScore(tc.word, tc.handSize), tc.score)
	}
}

func TestBingoBonusIsExact(t *testing.T) {
	is := is.New(t)
	ld, err := EnglishLetterDistribution(DefaultConfig)
	is.NoErr(err)
	for _, w := range []string{"waybill", "outgnaw", "jukebox", "letters"} {
		is.Equal(ld.WordScore(w, 7)-ld.WordScore(w, 8), BingoBonus)
	}
}

func TestUnknownDistribution(t *testing.T) {
	is := is.New(t)
	_, err := NamedLetterDistribution(DefaultConfig, "klingon")
	is.True(errors.Is(err, ErrUnknownDistribution))
}

func TestScanLetterDistributionErrors(t *testing.T) {
	is := is.New(t)
	cases := []string{
		"",
		"# only a comment\n",
		"ab,1,0\n",
		"a,1,1\na,2,1\n",
		"a,x,1\n",
		"a,-1,1\n",
		"a,1\n",
		// Deal needs both a vowel and a consonant to draw from.
		"a,1,1\ne,1,1\n",
		"b,3,0\nc,3,0\n",
	}
	for _, c := range cases {
		_, err := ScanLetterDistribution(strings.NewReader(c))
		is.True(err != nil)
	}

	ld, err := ScanLetterDistribution(strings.NewReader("A, 2, 1\nb,5,0\n"))
	is.NoErr(err)
	is.Equal(ld.Score('a'), 2)
	is.Equal(ld.WordScore("ab", 2), (2+5)*2+BingoBonus)
}
