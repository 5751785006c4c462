package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigWordListPath       = "word-list-path"
	ConfigLetterDistribution = "letter-distribution"
	ConfigHandSize           = "hand-size"
	ConfigTimeLimit          = "time-limit"
	ConfigPlayLog            = "play-log"
	ConfigHistoryFile        = "history-file"
	ConfigDebug              = "debug"
	ConfigFile               = "config"
)

const (
	defaultWordListPath       = "./data/words.txt"
	defaultLetterDistribution = "english"
	defaultHandSize           = 7
	defaultHistoryFile        = "/tmp/wordgame_readline.tmp"
)

// Config wraps a viper instance. Values come, in order of precedence, from
// command-line flags, WORDGAME_* environment variables, an optional yaml
// config file, and the defaults below.
type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config that only holds default values. It is
// mostly useful for tests.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigWordListPath, defaultWordListPath)
	c.SetDefault(ConfigLetterDistribution, defaultLetterDistribution)
	c.SetDefault(ConfigHandSize, defaultHandSize)
	c.SetDefault(ConfigTimeLimit, "0")
	c.SetDefault(ConfigPlayLog, "")
	c.SetDefault(ConfigHistoryFile, defaultHistoryFile)
	c.SetDefault(ConfigDebug, false)
}

func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("wordgame", pflag.ContinueOnError)
	fs.String(ConfigWordListPath, defaultWordListPath, "path to the word list, one word per line")
	fs.String(ConfigLetterDistribution, defaultLetterDistribution, "letter value table to score with")
	fs.Int(ConfigHandSize, defaultHandSize, "number of letters dealt per hand")
	fs.String(ConfigTimeLimit, "0", "time limit per hand, in seconds or as a duration like 1m30s; if 0 the game asks once per session")
	fs.String(ConfigPlayLog, "", "if set, append a yaml log of every play to this file")
	fs.String(ConfigHistoryFile, defaultHistoryFile, "readline history file")
	fs.Bool(ConfigDebug, false, "turn on debug logging")
	fs.String(ConfigFile, "", "optional yaml config file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("wordgame")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	cfgFile, err := fs.GetString(ConfigFile)
	if err != nil {
		return err
	}
	if cfgFile != "" {
		c.SetConfigFile(cfgFile)
	} else {
		c.SetConfigName("config")
		c.SetConfigType("yaml")
		c.AddConfigPath(".")
	}
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return err
		}
	}
	if _, err := c.TimeLimit(); err != nil {
		return err
	}
	return nil
}

// ParseTimeLimit reads a bare number as seconds and anything else as a
// duration such as "1m30s".
func ParseTimeLimit(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number of seconds or a duration", s)
	}
	return d, nil
}

// TimeLimit returns the configured time limit per hand. 0 means none is
// set.
func (c *Config) TimeLimit() (time.Duration, error) {
	s := strings.TrimSpace(c.GetString(ConfigTimeLimit))
	if s == "" {
		return 0, nil
	}
	d, err := ParseTimeLimit(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ConfigTimeLimit, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", ConfigTimeLimit)
	}
	return d, nil
}

// AdjustRelativePaths resolves the word list path against basedir (normally
// the directory of the executable) when it cannot be found relative to the
// working directory.
func (c *Config) AdjustRelativePaths(basedir string) {
	p := c.GetString(ConfigWordListPath)
	if p == "" || filepath.IsAbs(p) {
		return
	}
	if _, err := os.Stat(p); err == nil {
		return
	}
	c.Set(ConfigWordListPath, filepath.Join(basedir, p))
}

// SanitizedSettings returns the settings for logging at startup.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
