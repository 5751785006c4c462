package tilemapping

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordgame/cache"
	"github.com/domino14/wordgame/config"
)

// BingoBonus is added to the score of a word that uses every letter of a
// full-size hand.
const BingoBonus = 50

//go:embed data/*.csv
var distributionFiles embed.FS

var ErrUnknownDistribution = errors.New("unknown letter distribution")

// LetterDistribution holds the point value of every letter and splits the
// alphabet into vowels and consonants. It is never modified after loading.
type LetterDistribution struct {
	Name       string
	scores     map[rune]int
	vowels     []rune
	consonants []rune
}

// ScanLetterDistribution parses a csv of letter,value,vowel records. Lines
// starting with # are ignored.
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	r.Comment = '#'
	r.FieldsPerRecord = 3
	r.TrimLeadingSpace = true

	ld := &LetterDistribution{scores: make(map[rune]int)}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		letter := strings.ToLower(strings.TrimSpace(record[0]))
		if utf8.RuneCountInString(letter) != 1 {
			return nil, fmt.Errorf("bad letter %q: must be a single character", record[0])
		}
		rn, _ := utf8.DecodeRuneInString(letter)
		if _, ok := ld.scores[rn]; ok {
			return nil, fmt.Errorf("letter %q listed twice", letter)
		}
		p, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		if p < 0 {
			return nil, fmt.Errorf("letter %q has a negative value", letter)
		}
		v, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		ld.scores[rn] = p
		if v == 1 {
			ld.vowels = append(ld.vowels, rn)
		} else {
			ld.consonants = append(ld.consonants, rn)
		}
	}
	if len(ld.scores) == 0 {
		return nil, errors.New("letter distribution is empty")
	}
	if len(ld.vowels) == 0 || len(ld.consonants) == 0 {
		return nil, errors.New("letter distribution needs at least one vowel and one consonant")
	}
	return ld, nil
}

func loadLetterDistribution(cfg *config.Config, key string) (any, error) {
	name := strings.TrimPrefix(key, "letterdist:")
	f, err := distributionFiles.Open("data/" + name + ".csv")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDistribution, name)
	}
	defer f.Close()
	ld, err := ScanLetterDistribution(f)
	if err != nil {
		return nil, fmt.Errorf("parsing letter distribution %s: %w", name, err)
	}
	ld.Name = name
	return ld, nil
}

// NamedLetterDistribution loads the distribution with the given name from
// the embedded data files, caching it for the process lifetime.
func NamedLetterDistribution(cfg *config.Config, name string) (*LetterDistribution, error) {
	name = strings.ToLower(name)
	obj, err := cache.Load(cfg, "letterdist:"+name, loadLetterDistribution)
	if err != nil {
		return nil, err
	}
	return obj.(*LetterDistribution), nil
}

// EnglishLetterDistribution returns the English letter distribution.
func EnglishLetterDistribution(cfg *config.Config) (*LetterDistribution, error) {
	return NamedLetterDistribution(cfg, "english")
}

// Score gives the point value of a letter, or 0 if the letter is not in
// the distribution.
func (ld *LetterDistribution) Score(r rune) int {
	return ld.scores[r]
}

func (ld *LetterDistribution) Has(r rune) bool {
	_, ok := ld.scores[r]
	return ok
}

func (ld *LetterDistribution) IsVowel(r rune) bool {
	return slices.Contains(ld.vowels, r)
}

// Vowels returns a copy of the vowel set, in distribution order.
func (ld *LetterDistribution) Vowels() []rune {
	return slices.Clone(ld.vowels)
}

// Consonants returns a copy of the consonant set, in distribution order.
func (ld *LetterDistribution) Consonants() []rune {
	return slices.Clone(ld.consonants)
}

// WordScore returns the score of a word: the sum of its letter values times
// its length, plus BingoBonus if the word is as long as the full hand.
func (ld *LetterDistribution) WordScore(word string, handSize int) int {
	total := 0
	n := 0
	for _, r := range word {
		if !ld.Has(r) {
			log.Debug().Str("word", word).Str("letter", string(r)).Msg("letter-not-in-distribution")
		}
		total += ld.Score(r)
		n++
	}
	total *= n
	if n > 0 && n == handSize {
		total += BingoBonus
	}
	return total
}
