package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_LogsErrorBeforeClosingLog(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateDir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	err := run(&cobra.Command{}, []string{filepath.Join(t.TempDir(), "missing.md")})
	require.ErrorIs(t, err, errApp)

	data, err := os.ReadFile(filepath.Join(stateDir, "folio", "folio.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Exited with error")
	assert.Contains(t, string(data), "no such file")
}
