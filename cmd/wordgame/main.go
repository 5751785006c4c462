package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/wordgame/config"
	"github.com/domino14/wordgame/game"
	"github.com/domino14/wordgame/lexicon"
	"github.com/domino14/wordgame/shell"
)

var (
	GitVersion string
)

//go:embed banner.txt
var banner string

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

func main() {
	// Relative data paths fall back to the directory of the executable.
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)
	fmt.Println(banner)
	fmt.Println(GitVersion)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))
	cfg.AdjustRelativePaths(exPath)
	log.Info().Interface("config", cfg.SanitizedSettings()).Msg("loaded config")

	wordListPath := cfg.GetString(config.ConfigWordListPath)
	log.Info().Str("path", wordListPath).Msg("loading word list")
	wl, err := lexicon.LoadWordList(cfg, wordListPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load word list")
	}
	log.Info().Int("words", wl.Size()).Msg("word list loaded")

	rules, err := game.NewBasicGameRules(cfg, wl)
	if err != nil {
		log.Fatal().Err(err).Msg("could not set up game rules")
	}

	sc, err := shell.NewShellController(cfg, rules)
	if err != nil {
		log.Fatal().Err(err).Msg("could not start console")
	}
	defer sc.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		return sc.Loop(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		// Unblocks a pending read if we got here through a signal.
		sc.Cleanup()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("game loop exited with error")
		os.Exit(1)
	}
	log.Info().Msg("goodbye")
}
