package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/domino14/wordgame/cache"
	"github.com/domino14/wordgame/config"
)

var ErrEmptyWordList = errors.New("word list has no words")

type Lexicon interface {
	Name() string
	HasWord(word string) bool
}

// AcceptAll accepts any non-empty word. It is handy for tests that only
// care about letter availability.
type AcceptAll struct{}

func (lex AcceptAll) Name() string {
	return "AcceptAll"
}

func (lex AcceptAll) HasWord(word string) bool {
	return word != ""
}

// WordList is a set of lowercase words.
type WordList struct {
	name  string
	words map[string]struct{}
}

// NewWordList builds a word list from words, lowercasing each one.
func NewWordList(name string, words []string) *WordList {
	lower := cases.Lower(language.Und)
	wl := &WordList{name: name, words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		wl.words[lower.String(w)] = struct{}{}
	}
	return wl
}

// ScanWordList reads one word per line. Surrounding whitespace is trimmed,
// blank lines are skipped and every word is lowercased.
func ScanWordList(name string, r io.Reader) (*WordList, error) {
	lower := cases.Lower(language.Und)
	wl := &WordList{name: name, words: make(map[string]struct{})}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		wl.words[lower.String(w)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(wl.words) == 0 {
		return nil, ErrEmptyWordList
	}
	return wl, nil
}

func (wl *WordList) Name() string {
	return wl.name
}

func (wl *WordList) HasWord(word string) bool {
	_, ok := wl.words[word]
	return ok
}

func (wl *WordList) Size() int {
	return len(wl.words)
}

func loadWordList(cfg *config.Config, key string) (any, error) {
	path := strings.TrimPrefix(key, "wordlist:")
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	wl, err := ScanWordList(path, f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("words", wl.Size()).Msg("loaded-word-list")
	return wl, nil
}

// LoadWordList loads the word list at path, or returns the copy already
// loaded by this process.
func LoadWordList(cfg *config.Config, path string) (*WordList, error) {
	obj, err := cache.Load(cfg, "wordlist:"+path, loadWordList)
	if err != nil {
		return nil, err
	}
	return obj.(*WordList), nil
}
