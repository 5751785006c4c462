package game

import (
	"io"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// LogEvent is a struct meant for serializing to the play log, for debug
// purposes. One is written for every accepted word and one when a hand
// ends.
type LogEvent struct {
	Hand      int    `yaml:"hand"`
	Dealt     string `yaml:"dealt"`
	Word      string `yaml:"word,omitempty"`
	Points    int    `yaml:"points,omitempty"`
	Score     int    `yaml:"score"`
	Remaining string `yaml:"remaining"`
	End       string `yaml:"end,omitempty"`
}

// PlayLog appends yaml documents to a stream. A nil *PlayLog discards
// everything.
type PlayLog struct {
	w       io.Writer
	handNum int
}

func NewPlayLog(w io.Writer) *PlayLog {
	return &PlayLog{w: w}
}

func (l *PlayLog) startHand() int {
	if l == nil {
		return 0
	}
	l.handNum++
	return l.handNum
}

func (l *PlayLog) write(evt LogEvent) {
	if l == nil {
		return
	}
	evt.Hand = l.handNum
	out, err := yaml.Marshal([]LogEvent{evt})
	if err != nil {
		log.Error().Err(err).Msg("marshalling play log")
		return
	}
	if _, err := l.w.Write(out); err != nil {
		log.Error().Err(err).Msg("writing play log")
	}
}
