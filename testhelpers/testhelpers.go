package testhelpers

import (
	"io"

	"lukechampine.com/frand"

	"github.com/domino14/wordgame/config"
	"github.com/domino14/wordgame/lexicon"
	"github.com/domino14/wordgame/tilemapping"
)

var DefaultConfig = config.DefaultConfig()

func EnglishDistribution() *tilemapping.LetterDistribution {
	ld, err := tilemapping.EnglishLetterDistribution(DefaultConfig)
	if err != nil {
		panic(err)
	}
	return ld
}

// SmallLexicon is enough of a dictionary for game tests.
func SmallLexicon() *lexicon.WordList {
	return lexicon.NewWordList("small", []string{
		"a", "an", "at", "cab", "evil", "fork", "hello", "it", "live",
		"mill", "quail", "quill", "rapture", "scored", "vile", "was",
		"waybill", "outgnaw", "jukebox", "ex", "axe", "tax", "lax",
	})
}

// SeededRNG returns a deterministic random source.
func SeededRNG(seed byte) *frand.RNG {
	s := make([]byte, 32)
	s[0] = seed
	return frand.NewCustom(s, 1024, 12)
}

// ScriptedPrompter answers prompts from a fixed list of lines and returns
// io.EOF when it runs out.
type ScriptedPrompter struct {
	Lines   []string
	Prompts []string
	// BeforeAnswer, if set, is called with the index of the line about to
	// be returned.
	BeforeAnswer func(i int)

	next    int
	current string
}

func NewScriptedPrompter(lines ...string) *ScriptedPrompter {
	return &ScriptedPrompter{Lines: lines}
}

func (p *ScriptedPrompter) Prompt(prompt string) (string, error) {
	p.Prompts = append(p.Prompts, prompt)
	if p.next >= len(p.Lines) {
		return "", io.EOF
	}
	if p.BeforeAnswer != nil {
		p.BeforeAnswer(p.next)
	}
	line := p.Lines[p.next]
	p.next++
	return line, nil
}

// Readline lets the prompter stand in for a readline instance.
func (p *ScriptedPrompter) Readline() (string, error) {
	return p.Prompt(p.current)
}

func (p *ScriptedPrompter) SetPrompt(prompt string) {
	p.current = prompt
}

func (p *ScriptedPrompter) Close() error { return nil }
