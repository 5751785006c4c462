package game

import (
	"fmt"

	"github.com/domino14/wordgame/config"
	"github.com/domino14/wordgame/lexicon"
	"github.com/domino14/wordgame/rack"
	"github.com/domino14/wordgame/tilemapping"
)

// GameRules is a simple struct that encapsulates the instantiated objects
// needed to actually play a hand.
type GameRules struct {
	cfg      *config.Config
	dist     *tilemapping.LetterDistribution
	lexicon  lexicon.Lexicon
	handSize int
}

func NewGameRules(cfg *config.Config, dist *tilemapping.LetterDistribution,
	lex lexicon.Lexicon, handSize int) (*GameRules, error) {

	if handSize < 0 {
		return nil, fmt.Errorf("hand size must not be negative, got %d", handSize)
	}
	return &GameRules{
		cfg:      cfg,
		dist:     dist,
		lexicon:  lex,
		handSize: handSize,
	}, nil
}

// NewBasicGameRules builds rules from the configured letter distribution and
// hand size.
func NewBasicGameRules(cfg *config.Config, lex lexicon.Lexicon) (*GameRules, error) {
	dist, err := tilemapping.NamedLetterDistribution(cfg, cfg.GetString(config.ConfigLetterDistribution))
	if err != nil {
		return nil, err
	}
	return NewGameRules(cfg, dist, lex, cfg.GetInt(config.ConfigHandSize))
}

func (g GameRules) Config() *config.Config {
	return g.cfg
}

func (g GameRules) LetterDistribution() *tilemapping.LetterDistribution {
	return g.dist
}

func (g GameRules) Lexicon() lexicon.Lexicon {
	return g.lexicon
}

func (g GameRules) HandSize() int {
	return g.handSize
}

// IsValidWord checks the word against the rules' lexicon and the hand.
func (g GameRules) IsValidWord(word string, hand rack.Hand) bool {
	return IsValidWord(word, hand, g.lexicon)
}

// WordScore scores a word, awarding the bonus if it uses a full hand.
func (g GameRules) WordScore(word string) int {
	return g.dist.WordScore(word, g.handSize)
}

// IsValidWord returns true if word is in the lexicon and the hand holds
// every letter it needs. The hand is not modified.
func IsValidWord(word string, hand rack.Hand, lex lexicon.Lexicon) bool {
	if word == "" || !lex.HasWord(word) {
		return false
	}
	return hand.CanForm(word)
}
