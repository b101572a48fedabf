package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/folio/internal/navigator"
)

const (
	appName     = "folio"
	envPrefix   = "FOLIO_"
	logFileName = "folio.log"
)

// Presentation modes.
const (
	ModeFlip   = "flip"
	ModeScroll = "scroll"
)

// Fullscreen strategies.
const (
	FullscreenAuto      = "auto"
	FullscreenAltScreen = "altscreen"
	FullscreenZen       = "zen"
)

// Icon sets.
const (
	IconsUnicode = "unicode"
	IconsASCII   = "ascii"
	IconsNerd    = "nerd"
)

// Defaults applied when a key is missing or out of range.
const (
	DefaultSwipeThreshold        = 60
	DefaultScrollOffset          = 3
	DefaultRevealRatio           = 0.85
	DefaultHeaderScrollThreshold = 2
	DefaultWrapWidth             = 80
	minWrapWidth                 = 20
)

var (
	errConfigRead = errors.New("failed to read config")
	errLoggerInit = errors.New("failed to initialize logger")
)

type Config struct {
	DefaultMode           string  `koanf:"default_mode"`            // "flip" or "scroll"
	TransitionMS          int     `koanf:"transition_ms"`           // page transition lock, in milliseconds
	SwipeThreshold        int     `koanf:"swipe_threshold"`         // minimum horizontal drag, in cells
	ScrollOffset          int     `koanf:"scroll_offset"`           // lines below the top used to pick the active section
	RevealRatio           float64 `koanf:"reveal_ratio"`            // fraction of the viewport a section must enter to reveal
	HeaderScrollThreshold int     `koanf:"header_scroll_threshold"` // lines scrolled before the header compacts
	WrapWidth             int     `koanf:"wrap_width"`
	Fullscreen            string  `koanf:"fullscreen"` // "auto", "altscreen", or "zen"
	Watch                 *bool   `koanf:"watch"`      // reload the issue when it changes (default: true)
	LogLevel              string  `koanf:"log_level"`
	Icons                 string  `koanf:"icons"` // "unicode", "ascii", or "nerd"
}

// Load reads the config files and FOLIO_ environment overrides. explicit,
// when set, is loaded last among the files and must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Join(fmt.Errorf("%s: %w", path, err), errConfigRead)
			}
		}
	}

	if explicit != "" {
		path := expandPath(explicit)
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Join(fmt.Errorf("%s: %w", path, err), errConfigRead)
		}
	}

	// FOLIO_TRANSITION_MS -> transition_ms
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Join(err, errConfigRead)
	}

	cfg.DefaultMode = strings.ToLower(strings.TrimSpace(cfg.DefaultMode))
	cfg.Fullscreen = strings.ToLower(strings.TrimSpace(cfg.Fullscreen))

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/folio/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./folio.toml (pwd, highest priority)
		"folio.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	return expandPath(strings.TrimSpace(path))
}

// Mode returns the start-up presentation mode.
func (c *Config) Mode() string {
	if c.DefaultMode == ModeScroll {
		return ModeScroll
	}
	return ModeFlip
}

// Transition returns the page transition lock duration.
func (c *Config) Transition() time.Duration {
	if c.TransitionMS <= 0 {
		return navigator.DefaultTransition
	}
	return time.Duration(c.TransitionMS) * time.Millisecond
}

// Swipe returns the horizontal drag distance that counts as a swipe.
func (c *Config) Swipe() int {
	if c.SwipeThreshold <= 0 {
		return DefaultSwipeThreshold
	}
	return c.SwipeThreshold
}

// Offset returns the probe offset used to pick the active section.
func (c *Config) Offset() int {
	if c.ScrollOffset <= 0 {
		return DefaultScrollOffset
	}
	return c.ScrollOffset
}

// Reveal returns the viewport fraction at which sections are revealed.
func (c *Config) Reveal() float64 {
	if c.RevealRatio <= 0 || c.RevealRatio > 1 {
		return DefaultRevealRatio
	}
	return c.RevealRatio
}

// HeaderThreshold returns the scroll distance past which the header compacts.
func (c *Config) HeaderThreshold() int {
	if c.HeaderScrollThreshold <= 0 {
		return DefaultHeaderScrollThreshold
	}
	return c.HeaderScrollThreshold
}

// Wrap returns the body wrap width.
func (c *Config) Wrap() int {
	if c.WrapWidth <= 0 {
		return DefaultWrapWidth
	}
	return max(c.WrapWidth, minWrapWidth)
}

// FullscreenMode returns the fullscreen strategy.
func (c *Config) FullscreenMode() string {
	switch c.Fullscreen {
	case FullscreenAltScreen, FullscreenZen:
		return c.Fullscreen
	}
	return FullscreenAuto
}

// WatchEnabled reports whether the issue file is watched for changes.
func (c *Config) WatchEnabled() bool {
	return c.Watch == nil || *c.Watch
}

// IconStyle returns the glyph set for dots, controls and cards.
func (c *Config) IconStyle() string {
	switch s := strings.ToLower(c.Icons); s {
	case IconsASCII, IconsNerd:
		return s
	}
	return IconsUnicode
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// LoggerInit points the default slog logger at a file in the XDG state
// directory. The returned closer closes the log file.
func LoggerInit(level slog.Level) (io.Closer, error) {
	logPath, err := xdg.StateFile(filepath.Join(appName, logFileName))
	if err != nil {
		return nil, errors.Join(err, errLoggerInit)
	}
	return loggerInitAt(logPath, level)
}

func loggerInitAt(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(logPath)
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
