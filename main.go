package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/folio/internal/app"
	"github.com/llehouerou/folio/internal/config"
	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/icons"
	"github.com/llehouerou/folio/internal/issue"
	"github.com/llehouerou/folio/internal/state"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()

	cfgFile  string
	pageFlag int
	modeFlag string

	rootCmd = &cobra.Command{
		Use:   "folio issue.md[#page]",
		Short: "Read Markdown issues page by page",
		Long:  `folio - a terminal reader for magazine-style Markdown issues`,
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.Flags().IntVar(&pageFlag, "page", 0, "Page to open (1-based)")
	rootCmd.Flags().StringVar(&modeFlag, "mode", "", `Start in "flip" or "scroll" mode`)
	rootCmd.AddCommand(versionCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("folio - terminal issue reader\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)     //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)      //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)        //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion) //nolint:forbidigo
}

func run(cmd *cobra.Command, args []string) (err error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return errors.Join(errApp, err)
	}
	switch modeFlag {
	case "":
	case config.ModeFlip, config.ModeScroll:
		cfg.DefaultMode = modeFlag
	default:
		return fmt.Errorf("%w: unknown mode %q", errApp, modeFlag)
	}

	logFile, err := config.LoggerInit(cfg.Level())
	if err != nil {
		return errors.Join(err, errApp)
	}
	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)
	// runs before the log file is closed
	defer func() {
		if err != nil {
			slog.Error("Exited with error", slog.String("error", err.Error()))
		}
	}()

	slog.Info("Starting folio", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("go", BuildGoVersion))

	icons.Init(cfg.IconStyle())
	zone.NewGlobal()

	path, fragment := issue.SplitFragment(args[0])
	if abs, errAbs := filepath.Abs(path); errAbs == nil {
		path = abs
	}
	iss, err := issue.Load(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.Format(errmsg.OpIssueLoad, err), errApp)
	}

	initial := pageFlag
	if fragment != "" {
		n, ok := iss.PageNumber(fragment)
		if !ok {
			return fmt.Errorf("%w: no page with id %q", errApp, fragment)
		}
		initial = n
	}

	st, err := state.Open()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.Format(errmsg.OpStateOpen, err), errApp)
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("Error closing state", slog.String("error", err.Error()))
		}
	}()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	altScreen := isatty.IsTerminal(os.Stdout.Fd()) && cfg.FullscreenMode() != config.FullscreenZen
	opts := []app.Option{app.WithAltScreen(altScreen)}

	tasks, ctx := errgroup.WithContext(ctx)
	if cfg.WatchEnabled() {
		reloads := make(chan issue.Reload)
		opts = append(opts, app.WithReloads(reloads))
		tasks.Go(func() error {
			return issue.Watch(ctx, path, reloads)
		})
	}

	model, err := app.New(cfg, iss, st, initial, opts...)
	if err != nil {
		cancel()
		return errors.Join(errApp, err, tasks.Wait())
	}

	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithMouseCellMotion())
	tasks.Go(func() error {
		defer cancel()
		slog.Info("Ready", slog.String("issue", path), slog.Int("pages", iss.Len()),
			slog.String("mode", cfg.Mode()), slog.Bool("altscreen", altScreen))
		// killed by the watcher failing: report the watcher error instead
		if _, err := program.Run(); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	})

	if err := tasks.Wait(); err != nil {
		return errors.Join(errApp, err)
	}
	return nil
}
