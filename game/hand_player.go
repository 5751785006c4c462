package game

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordgame/rack"
)

// QuitSentinel ends the current hand.
const QuitSentinel = "."

const wordPrompt = `Enter word, or a "." to indicate that you are finished: `

type EndReason int

const (
	EndReasonNone EndReason = iota
	EndReasonExhausted
	EndReasonQuit
	EndReasonTimeout
)

func (r EndReason) String() string {
	switch r {
	case EndReasonExhausted:
		return "exhausted"
	case EndReasonQuit:
		return "quit"
	case EndReasonTimeout:
		return "timeout"
	}
	return "none"
}

type PlayedWord struct {
	Word   string
	Points int
}

// HandResult is the outcome of playing one hand.
type HandResult struct {
	Dealt     rack.Hand
	Remaining rack.Hand
	Words     []PlayedWord
	Score     int
	Reason    EndReason
}

// HandPlayer runs the turn loop for a single hand: read a word, validate
// it, score it and take its letters out of the hand, until the hand is
// empty, the player quits, or the time limit expires.
type HandPlayer struct {
	rules     *GameRules
	in        Prompter
	out       io.Writer
	clock     Clock
	timeLimit time.Duration
	playLog   *PlayLog
}

func NewHandPlayer(rules *GameRules, in Prompter, out io.Writer) *HandPlayer {
	return &HandPlayer{
		rules: rules,
		in:    in,
		out:   out,
		clock: RealClock,
	}
}

func (p *HandPlayer) SetClock(c Clock) {
	p.clock = c
}

// SetTimeLimit sets the time allowed for each hand. 0 turns the timer off.
func (p *HandPlayer) SetTimeLimit(d time.Duration) {
	p.timeLimit = d
}

func (p *HandPlayer) TimeLimit() time.Duration {
	return p.timeLimit
}

func (p *HandPlayer) SetPlayLog(l *PlayLog) {
	p.playLog = l
}

func (p *HandPlayer) showMessage(msg string) {
	showMessage(msg, p.out)
}

// Play plays the given hand until it finishes. The hand passed in is not
// modified. If reading input fails or ctx is done, the partial result is
// returned along with the error.
func (p *HandPlayer) Play(ctx context.Context, hand rack.Hand) (*HandResult, error) {
	res := &HandResult{
		Dealt:     hand.Copy(),
		Remaining: hand.Copy(),
	}
	p.playLog.startHand()

	// Set by the timer goroutine, read between turns. Each hand gets its
	// own flag so a late callback from an earlier hand can't end this one.
	expired := &atomic.Bool{}
	if p.timeLimit > 0 {
		limit := p.timeLimit
		t := p.clock.AfterFunc(limit, func() {
			log.Debug().Dur("limit", limit).Msg("hand-timer-expired")
			expired.Store(true)
		})
		defer t.Stop()
		p.showMessage(fmt.Sprintf("You have %v to play this hand.", p.timeLimit))
	}

	if res.Remaining.Len() == 0 {
		return p.finish(res, EndReasonExhausted), nil
	}

	for {
		if expired.Load() {
			return p.finish(res, EndReasonTimeout), nil
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
		p.showMessage("Current hand: " + res.Remaining.String())
		line, err := p.in.Prompt(wordPrompt)
		if err != nil {
			return res, err
		}
		if expired.Load() {
			// The read can't be interrupted, so whatever came in after the
			// deadline is dropped without penalty.
			return p.finish(res, EndReasonTimeout), nil
		}
		word := strings.ToLower(strings.TrimSpace(line))
		if word == QuitSentinel {
			return p.finish(res, EndReasonQuit), nil
		}
		if !p.rules.IsValidWord(word, res.Remaining) {
			p.showMessage("Invalid word, please try again.")
			continue
		}

		pts := p.rules.WordScore(word)
		res.Score += pts
		res.Words = append(res.Words, PlayedWord{Word: word, Points: pts})
		res.Remaining = res.Remaining.Update(word)
		p.showMessage(fmt.Sprintf("%q earned %d points. Total: %d points", word, pts, res.Score))
		p.playLog.write(LogEvent{
			Dealt:     res.Dealt.String(),
			Word:      word,
			Points:    pts,
			Score:     res.Score,
			Remaining: res.Remaining.String(),
		})

		if res.Remaining.Len() == 0 {
			return p.finish(res, EndReasonExhausted), nil
		}
	}
}

func (p *HandPlayer) finish(res *HandResult, reason EndReason) *HandResult {
	res.Reason = reason
	switch reason {
	case EndReasonExhausted:
		p.showMessage(fmt.Sprintf("Ran out of letters. Total score: %d points.", res.Score))
	case EndReasonQuit:
		p.showMessage(fmt.Sprintf("Goodbye! Total score: %d points.", res.Score))
	case EndReasonTimeout:
		p.showMessage(fmt.Sprintf("Time's up! Total score: %d points.", res.Score))
	}
	p.playLog.write(LogEvent{
		Dealt:     res.Dealt.String(),
		Score:     res.Score,
		Remaining: res.Remaining.String(),
		End:       reason.String(),
	})
	log.Debug().Int("score", res.Score).Stringer("reason", reason).
		Int("words", len(res.Words)).Msg("hand-finished")
	return res
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}
