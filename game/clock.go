package game

import "time"

// Timer is the handle returned by Clock.AfterFunc. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock schedules callbacks with the time package.
var RealClock Clock = realClock{}

// Prompter shows a prompt and blocks until the player enters a line.
type Prompter interface {
	Prompt(prompt string) (string, error)
}
