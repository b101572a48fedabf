//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"

	"github.com/llehouerou/folio/internal/navigator"
)

// isolate points XDG config lookups and the working directory at temp dirs
// so that the user's own configuration does not leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/issues",
			expected: filepath.Join(home, "issues"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/issues/2025/spring.md",
			expected: filepath.Join(home, "issues", "2025", "spring.md"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/srv/issues",
			expected: "/srv/issues",
		},
		{
			name:     "relative path unchanged",
			input:    "issues/spring.md",
			expected: "issues/spring.md",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestExpandPath_TrimsInput(t *testing.T) {
	if got := ExpandPath("  /a/b.pdf \n"); got != "/a/b.pdf" {
		t.Errorf("ExpandPath = %q, want /a/b.pdf", got)
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}
	if !strings.HasSuffix(paths[0], filepath.Join("folio", "config.toml")) {
		t.Errorf("first config path = %q, want XDG folio/config.toml", paths[0])
	}
	if paths[1] != "folio.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "folio.toml")
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.Mode(); got != ModeFlip {
		t.Errorf("Mode() = %q, want %q", got, ModeFlip)
	}
	if got := cfg.Transition(); got != 450*time.Millisecond {
		t.Errorf("Transition() = %v, want 450ms", got)
	}
	if got := cfg.Swipe(); got != 60 {
		t.Errorf("Swipe() = %d, want 60", got)
	}
	if got := cfg.Offset(); got != 3 {
		t.Errorf("Offset() = %d, want 3", got)
	}
	if got := cfg.Reveal(); got != 0.85 {
		t.Errorf("Reveal() = %v, want 0.85", got)
	}
	if got := cfg.HeaderThreshold(); got != 2 {
		t.Errorf("HeaderThreshold() = %d, want 2", got)
	}
	if got := cfg.Wrap(); got != 80 {
		t.Errorf("Wrap() = %d, want 80", got)
	}
	if got := cfg.FullscreenMode(); got != FullscreenAuto {
		t.Errorf("FullscreenMode() = %q, want %q", got, FullscreenAuto)
	}
	if !cfg.WatchEnabled() {
		t.Error("WatchEnabled() should default to true")
	}
	if got := cfg.IconStyle(); got != IconsUnicode {
		t.Errorf("IconStyle() = %q, want %q", got, IconsUnicode)
	}
	if got := cfg.Level(); got != slog.LevelInfo {
		t.Errorf("Level() = %v, want info", got)
	}
}

func TestGetters_InvalidValues(t *testing.T) {
	off := false
	cfg := &Config{
		DefaultMode:           "sideways",
		TransitionMS:          -5,
		SwipeThreshold:        -1,
		ScrollOffset:          -2,
		RevealRatio:           1.5,
		HeaderScrollThreshold: -1,
		WrapWidth:             5,
		Fullscreen:            "cinema",
		Watch:                 &off,
		LogLevel:              "loud",
		Icons:                 "ASCII",
	}

	if got := cfg.Mode(); got != ModeFlip {
		t.Errorf("Mode() = %q, want %q", got, ModeFlip)
	}
	if got := cfg.Transition(); got != navigator.DefaultTransition {
		t.Errorf("Transition() = %v, want default", got)
	}
	if got := cfg.Swipe(); got != DefaultSwipeThreshold {
		t.Errorf("Swipe() = %d, want default", got)
	}
	if got := cfg.Offset(); got != DefaultScrollOffset {
		t.Errorf("Offset() = %d, want default", got)
	}
	if got := cfg.Reveal(); got != DefaultRevealRatio {
		t.Errorf("Reveal() = %v, want default", got)
	}
	if got := cfg.HeaderThreshold(); got != DefaultHeaderScrollThreshold {
		t.Errorf("HeaderThreshold() = %d, want default", got)
	}
	if got := cfg.Wrap(); got != minWrapWidth {
		t.Errorf("Wrap() = %d, want %d", got, minWrapWidth)
	}
	if got := cfg.FullscreenMode(); got != FullscreenAuto {
		t.Errorf("FullscreenMode() = %q, want %q", got, FullscreenAuto)
	}
	if cfg.WatchEnabled() {
		t.Error("WatchEnabled() should honor false")
	}
	if got := cfg.IconStyle(); got != IconsASCII {
		t.Errorf("IconStyle() = %q, want %q (case-insensitive)", got, IconsASCII)
	}
	if got := cfg.Level(); got != slog.LevelInfo {
		t.Errorf("Level() = %v, want info fallback", got)
	}
}

func TestLoad_NoFiles(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mode() != ModeFlip {
		t.Errorf("Mode() = %q, want flip", cfg.Mode())
	}
}

func TestLoad_LocalFile(t *testing.T) {
	isolate(t)

	content := `
default_mode = "Scroll"
transition_ms = 300
swipe_threshold = 40
reveal_ratio = 0.5
fullscreen = "zen"
watch = false
log_level = "debug"
`
	if err := os.WriteFile("folio.toml", []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Mode() != ModeScroll {
		t.Errorf("Mode() = %q, want scroll", cfg.Mode())
	}
	if cfg.Transition() != 300*time.Millisecond {
		t.Errorf("Transition() = %v, want 300ms", cfg.Transition())
	}
	if cfg.Swipe() != 40 {
		t.Errorf("Swipe() = %d, want 40", cfg.Swipe())
	}
	if cfg.Reveal() != 0.5 {
		t.Errorf("Reveal() = %v, want 0.5", cfg.Reveal())
	}
	if cfg.FullscreenMode() != FullscreenZen {
		t.Errorf("FullscreenMode() = %q, want zen", cfg.FullscreenMode())
	}
	if cfg.WatchEnabled() {
		t.Error("WatchEnabled() = true, want false")
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestLoad_PriorityOrder(t *testing.T) {
	isolate(t)

	xdgPath := filepath.Join(xdg.ConfigHome, "folio", "config.toml")
	if err := os.MkdirAll(filepath.Dir(xdgPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(xdgPath, []byte("wrap_width = 60\nswipe_threshold = 10\ntransition_ms = 100\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("folio.toml", []byte("swipe_threshold = 20\ntransition_ms = 200\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	explicit := filepath.Join(t.TempDir(), "extra.toml")
	if err := os.WriteFile(explicit, []byte("transition_ms = 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOLIO_SCROLL_OFFSET", "7")

	cfg, err := Load(explicit)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Wrap() != 60 {
		t.Errorf("Wrap() = %d, want 60 from XDG file", cfg.Wrap())
	}
	if cfg.Swipe() != 20 {
		t.Errorf("Swipe() = %d, want 20 from local file", cfg.Swipe())
	}
	if cfg.Transition() != 300*time.Millisecond {
		t.Errorf("Transition() = %v, want 300ms from explicit file", cfg.Transition())
	}
	if cfg.Offset() != 7 {
		t.Errorf("Offset() = %d, want 7 from env", cfg.Offset())
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)

	if err := os.WriteFile("folio.toml", []byte(`default_mode = "flip"`), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOLIO_DEFAULT_MODE", "scroll")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mode() != ModeScroll {
		t.Errorf("Mode() = %q, want scroll", cfg.Mode())
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	isolate(t)

	if err := os.WriteFile("folio.toml", []byte("invalid = [[["), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	_, err := Load("")
	if err == nil {
		t.Fatal("Load() expected error for invalid TOML, got nil")
	}
	if !errors.Is(err, errConfigRead) {
		t.Errorf("Load() error = %v, want errConfigRead", err)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errConfigRead) {
		t.Errorf("Load() error = %v, want errConfigRead", err)
	}
}

func TestLoggerInitAt(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logPath := filepath.Join(t.TempDir(), "folio.log")
	closer, err := loggerInitAt(logPath, slog.LevelInfo)
	if err != nil {
		t.Fatalf("loggerInitAt() error = %v", err)
	}

	slog.Debug("hidden")
	slog.Info("ready", slog.String("issue", "spring.md"))
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "msg=ready") || !strings.Contains(out, "issue=spring.md") {
		t.Errorf("log output missing entry: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry should be filtered: %q", out)
	}
}

func TestLoggerInitAt_BadPath(t *testing.T) {
	_, err := loggerInitAt(filepath.Join(t.TempDir(), "missing", "dir", "x.log"), slog.LevelInfo)
	if !errors.Is(err, errLoggerInit) {
		t.Errorf("error = %v, want errLoggerInit", err)
	}
}
