package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// levelRouter is a slog.Handler that routes INFO/WARN to stdout and ERROR+ to stderr.
type levelRouter struct {
	stdout slog.Handler
	stderr slog.Handler
}

func (lr *levelRouter) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (lr *levelRouter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return lr.stderr.Handle(ctx, r)
	}
	return lr.stdout.Handle(ctx, r)
}

func (lr *levelRouter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithAttrs(attrs),
		stderr: lr.stderr.WithAttrs(attrs),
	}
}

func (lr *levelRouter) WithGroup(name string) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithGroup(name),
		stderr: lr.stderr.WithGroup(name),
	}
}

// setupLogger configures structured logging. INFO/WARN go to stdout, ERROR goes
// to stderr. If logPath is non-empty, all levels are also written to that file.
// Returns a cleanup function that closes the log file (if opened).
func setupLogger(stdout, stderr io.Writer, logPath string) (func(), error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	cleanup := func() {}

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		cleanup = func() { f.Close() }
		stdout = io.MultiWriter(stdout, f)
		stderr = io.MultiWriter(stderr, f)
	}

	handler := &levelRouter{
		stdout: slog.NewTextHandler(stdout, opts),
		stderr: slog.NewTextHandler(stderr, opts),
	}
	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}

// app carries state shared by all commands once flags are parsed.
type app struct {
	configFile string
	cfg        *config
	closeLog   func()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "omara",
		Short: "omara keeps track of what is in your wardrobe",
		Long: `omara is a wardrobe inventory server: clothing items, their categories,
storage locations and tags, behind a JSON HTTP API backed by SQLite.

Without a subcommand it runs "serve".`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.closeLog != nil {
				a.closeLog()
			}
		},
		RunE: a.runServe,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: omara.yaml in . or the user config dir)")
	flags.StringP(keyDB, "d", "", "SQLite database path (default: <user config dir>/omara/omara.sqlite3)")
	flags.StringP(keyAddr, "a", defaultAddr, "listen address")
	flags.StringP(keyLog, "l", "", "log file path (default: stdout/stderr only)")

	root.AddCommand(newServeCmd(a), newInitCmd(a), newPasswdCmd(a))
	return root
}

// setup loads configuration and installs the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Root(), a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	closeLog, err := setupLogger(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	a.closeLog = closeLog
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
