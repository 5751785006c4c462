package game

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordgame/config"
	"github.com/domino14/wordgame/rack"
	"github.com/domino14/wordgame/stats"
)

const (
	timerQuestion = "Do you want to play with a time limit? (y/n): "
	timerLength   = "How long? Enter seconds, or a duration like 1m30s: "
)

// Session keeps what carries over between hands: the last hand dealt, so it
// can be replayed, and the running score.
type Session struct {
	rules  *GameRules
	player *HandPlayer
	in     Prompter
	out    io.Writer
	src    rack.Intner

	lastHand rack.Hand
	scores   stats.ScoreStats

	timerDecided bool
}

// NewSession creates a session. If the config has a time limit, the player
// is never asked about one.
func NewSession(rules *GameRules, in Prompter, out io.Writer) *Session {
	s := &Session{
		rules:  rules,
		player: NewHandPlayer(rules, in, out),
		in:     in,
		out:    out,
	}
	if cfg := rules.Config(); cfg != nil {
		d, err := cfg.TimeLimit()
		if err != nil {
			log.Warn().Err(err).Msg("ignoring-time-limit")
		} else if d > 0 {
			s.player.SetTimeLimit(d)
			s.timerDecided = true
		}
	}
	return s
}

func (s *Session) HandPlayer() *HandPlayer {
	return s.player
}

// SetRandSource sets where dealt letters come from. nil means
// rack.DefaultSource.
func (s *Session) SetRandSource(src rack.Intner) {
	s.src = src
}

// LastHand returns the hand as it was last dealt, or nil if no hand was
// dealt yet.
func (s *Session) LastHand() rack.Hand {
	if s.lastHand == nil {
		return nil
	}
	return s.lastHand.Copy()
}

func (s *Session) TotalScore() int {
	return s.scores.Total()
}

func (s *Session) HandsPlayed() int {
	return s.scores.Hands()
}

// NewHand deals a fresh hand and plays it.
func (s *Session) NewHand(ctx context.Context) (*HandResult, error) {
	if err := s.decideTimer(); err != nil {
		return nil, err
	}
	s.lastHand = rack.Deal(s.rules.HandSize(), s.rules.LetterDistribution(), s.src)
	return s.play(ctx, s.lastHand)
}

// Replay plays the last dealt hand again from the start. With no hand
// dealt yet it tells the player so and does nothing else.
func (s *Session) Replay(ctx context.Context) (*HandResult, error) {
	if s.lastHand == nil {
		showMessage("You have not played a hand yet. Please play a new hand first!", s.out)
		return nil, nil
	}
	if err := s.decideTimer(); err != nil {
		return nil, err
	}
	return s.play(ctx, s.lastHand)
}

func (s *Session) play(ctx context.Context, hand rack.Hand) (*HandResult, error) {
	res, err := s.player.Play(ctx, hand)
	if err != nil {
		return res, err
	}
	s.scores.Push(res.Score)
	log.Debug().Int("hands", s.scores.Hands()).Int("total", s.scores.Total()).Msg("session-score")
	return res, nil
}

// Summary describes the session so far.
func (s *Session) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Your final score from playing %d hand(s) is %d.",
		s.scores.Hands(), s.scores.Total())
	if s.scores.Hands() > 0 {
		fmt.Fprintf(&sb, " Best hand: %d. Average: %.1f", s.scores.Best(), s.scores.Mean())
		if s.scores.Hands() > 1 {
			fmt.Fprintf(&sb, " ± %.1f (95%%)", s.scores.ConfidenceHalfWidth(95))
		}
		sb.WriteString(".")
	}
	return sb.String()
}

// decideTimer asks, once per session, whether hands should be timed.
func (s *Session) decideTimer() error {
	if s.timerDecided {
		return nil
	}
	for {
		ans, err := s.in.Prompt(timerQuestion)
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(ans)) {
		case "y", "yes":
			d, err := s.askTimerLength()
			if err != nil {
				return err
			}
			s.player.SetTimeLimit(d)
		case "n", "no":
			s.player.SetTimeLimit(0)
		default:
			showMessage("Please answer y or n.", s.out)
			continue
		}
		s.timerDecided = true
		return nil
	}
}

func (s *Session) askTimerLength() (time.Duration, error) {
	for {
		ans, err := s.in.Prompt(timerLength)
		if err != nil {
			return 0, err
		}
		d, err := parseTimeLimit(ans)
		if err != nil {
			showMessage("Error: "+err.Error(), s.out)
			continue
		}
		return d, nil
	}
}

func parseTimeLimit(s string) (time.Duration, error) {
	d, err := config.ParseTimeLimit(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("time limit must be positive")
	}
	return d, nil
}
