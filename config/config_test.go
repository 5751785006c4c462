package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))

	is.Equal(cfg.GetString(ConfigWordListPath), "./data/words.txt")
	is.Equal(cfg.GetString(ConfigLetterDistribution), "english")
	is.Equal(cfg.GetInt(ConfigHandSize), 7)
	d, err := cfg.TimeLimit()
	is.NoErr(err)
	is.Equal(d, time.Duration(0))
	is.True(!cfg.GetBool(ConfigDebug))
}

func TestFlagsOverrideEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("WORDGAME_HAND_SIZE", "9")
	t.Setenv("WORDGAME_TIME_LIMIT", "45s")

	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--hand-size", "10", "--debug"}))

	is.Equal(cfg.GetInt(ConfigHandSize), 10)
	d, err := cfg.TimeLimit()
	is.NoErr(err)
	is.Equal(d, 45*time.Second)
	is.True(cfg.GetBool(ConfigDebug))
}

func TestConfigFile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "wordgame.yaml")
	is.NoErr(os.WriteFile(path, []byte("hand-size: 8\nplay-log: /tmp/plays.yaml\n"), 0o644))

	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--config", path}))
	is.Equal(cfg.GetInt(ConfigHandSize), 8)
	is.Equal(cfg.GetString(ConfigPlayLog), "/tmp/plays.yaml")
}

func TestMissingExplicitConfigFile(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
	is.True(err != nil)
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.Set(ConfigWordListPath, "./does-not-exist/words.txt")
	cfg.AdjustRelativePaths("/opt/wordgame")
	is.Equal(cfg.GetString(ConfigWordListPath), "/opt/wordgame/does-not-exist/words.txt")

	cfg.Set(ConfigWordListPath, "/abs/words.txt")
	cfg.AdjustRelativePaths("/opt/wordgame")
	is.Equal(cfg.GetString(ConfigWordListPath), "/abs/words.txt")
}

func TestTimeLimitBareNumberIsSeconds(t *testing.T) {
	is := is.New(t)

	t.Run("flag", func(t *testing.T) {
		is := is.New(t)
		cfg := &Config{}
		is.NoErr(cfg.Load([]string{"--time-limit", "30"}))
		d, err := cfg.TimeLimit()
		is.NoErr(err)
		is.Equal(d, 30*time.Second)
	})

	t.Run("env", func(t *testing.T) {
		is := is.New(t)
		t.Setenv("WORDGAME_TIME_LIMIT", "30")
		cfg := &Config{}
		is.NoErr(cfg.Load(nil))
		d, err := cfg.TimeLimit()
		is.NoErr(err)
		is.Equal(d, 30*time.Second)
	})

	t.Run("file", func(t *testing.T) {
		is := is.New(t)
		path := filepath.Join(t.TempDir(), "wordgame.yaml")
		is.NoErr(os.WriteFile(path, []byte("time-limit: 30\n"), 0o644))
		cfg := &Config{}
		is.NoErr(cfg.Load([]string{"--config", path}))
		d, err := cfg.TimeLimit()
		is.NoErr(err)
		is.Equal(d, 30*time.Second)
	})

	cfg := DefaultConfig()
	cfg.Set(ConfigTimeLimit, 30)
	d, err := cfg.TimeLimit()
	is.NoErr(err)
	is.Equal(d, 30*time.Second)

	cfg.Set(ConfigTimeLimit, "1m30s")
	d, err = cfg.TimeLimit()
	is.NoErr(err)
	is.Equal(d, 90*time.Second)
}

func TestBadTimeLimit(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.True(cfg.Load([]string{"--time-limit", "soon"}) != nil)
	is.True(cfg.Load([]string{"--time-limit", "-5"}) != nil)
}
