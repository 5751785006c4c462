package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordgame/config"
	"github.com/domino14/wordgame/game"
)

const sessionPrompt = "Enter n to deal a new hand, r to replay the last hand, or e to end game: "

var (
	errNoData = errors.New("no data in line")
)

// lineReader is the part of *readline.Instance the shell needs.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

type shellcmd struct {
	cmd  string
	args []string
}

type ShellController struct {
	l   lineReader
	out io.Writer
	cfg *config.Config

	session     *game.Session
	playLogFile *os.File
	cleanupOnce sync.Once
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController sets up a readline console and a game session on top
// of it.
func NewShellController(cfg *config.Config, rules *game.GameRules) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          sessionPrompt,
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "e",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc := newShellController(cfg, rules, l, l.Stderr())

	if path := cfg.GetString(config.ConfigPlayLog); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			l.Close()
			return nil, err
		}
		sc.playLogFile = f
		sc.session.HandPlayer().SetPlayLog(game.NewPlayLog(f))
		log.Info().Str("path", path).Msg("writing play log")
	}
	return sc, nil
}

func newShellController(cfg *config.Config, rules *game.GameRules, l lineReader, out io.Writer) *ShellController {
	sc := &ShellController{l: l, out: out, cfg: cfg}
	l.SetPrompt(sessionPrompt)
	sc.session = game.NewSession(rules, sc, out)
	return sc
}

func (sc *ShellController) Session() *game.Session {
	return sc.session
}

// Prompt reads a single line with a one-off prompt. It lets the hand player
// share the shell's readline instance.
func (sc *ShellController) Prompt(prompt string) (string, error) {
	sc.l.SetPrompt(prompt)
	defer sc.l.SetPrompt(sessionPrompt)
	return sc.l.Readline()
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := &shellcmd{cmd: fields[0]}
	if len(fields) > 1 {
		cmd.args = fields[1:]
	}
	return cmd, nil
}

// Execute runs one session-level command. It returns true once the player
// has asked to end the game.
func (sc *ShellController) Execute(ctx context.Context, line string) (bool, error) {
	cmd, err := extractFields(line)
	if err == errNoData {
		return false, nil
	} else if err != nil {
		sc.showError(err)
		return false, nil
	}
	if len(cmd.args) > 0 && cmd.cmd != "help" {
		sc.showMessage("Invalid command.")
		return false, nil
	}
	switch cmd.cmd {
	case "n":
		_, err = sc.session.NewHand(ctx)
	case "r":
		_, err = sc.session.Replay(ctx)
	case "e":
		sc.showMessage(sc.session.Summary())
		return true, nil
	case "help":
		if len(cmd.args) == 0 {
			usage(sc.out)
		} else {
			usageTopic(sc.out, cmd.args[0])
		}
	default:
		sc.showMessage("Invalid command.")
	}
	return false, err
}

func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt)
}

// Loop reads commands until the player exits, input ends, or ctx is done.
func (sc *ShellController) Loop(ctx context.Context) error {
	sc.showMessage(`Welcome! Type "help" for a list of commands.`)
	for {
		if ctx.Err() != nil {
			sc.showMessage(sc.session.Summary())
			return nil
		}
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) != 0 {
				continue
			}
			sc.showMessage(sc.session.Summary())
			return nil
		} else if err == io.EOF {
			sc.showMessage(sc.session.Summary())
			return nil
		} else if err != nil {
			return err
		}

		done, err := sc.Execute(ctx, strings.TrimSpace(line))
		if err != nil {
			if isEndOfInput(err) || errors.Is(err, context.Canceled) {
				sc.showMessage(sc.session.Summary())
				return nil
			}
			return err
		}
		if done {
			return nil
		}
	}
}

// Cleanup closes the console and the play log. It is safe to call more
// than once, and from another goroutine to unblock a pending read.
func (sc *ShellController) Cleanup() {
	sc.cleanupOnce.Do(func() {
		sc.l.Close()
		if sc.playLogFile != nil {
			if err := sc.playLogFile.Close(); err != nil {
				log.Error().Err(err).Msg("closing play log")
			}
		}
	})
}
