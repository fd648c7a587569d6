// Package cli provides the command-line interface for the sokoban tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sokoban/internal/config"
	"svw.info/sokoban/internal/infrastructure/storage"
	"svw.info/sokoban/internal/ports"
	"svw.info/sokoban/internal/usecase"
	"svw.info/sokoban/internal/validator"
)

// Version is set at build time.
var Version = "0.1.0"

type configKey struct{}
type loggerKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "sokoban",
		Short: "Sokoban level checker",
		Long: `sokoban validates Sokoban levels, renders them in the terminal,
keeps a level library on disk or in SQLite and serves it over HTTP.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, used, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if used != "" {
				logger.Debug("using config file", "path", used)
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./sokoban.yaml)")
	pf.String("data-dir", "", "directory for stored levels")
	pf.String("storage", "", "level storage backend (fs|sqlite)")
	pf.String("sqlite-path", "", "SQLite database path (default: <data-dir>/levels.db)")
	pf.String("addr", "", "HTTP listen address for serve")
	pf.String("log-level", "", "debug|info|warn|error")
	pf.String("color", "", "colored output (auto|always|never)")
	pf.Int("workers", 0, "levels checked in parallel")

	_ = rootCmd.RegisterFlagCompletionFunc("storage", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"fs", "sqlite"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newLevelsCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		DataDir:  config.DefaultDataDir,
		Storage:  config.DefaultStorage,
		Addr:     config.DefaultAddr,
		LogLevel: config.DefaultLogLevel,
		Color:    config.DefaultColor,
		Workers:  config.DefaultWorkers,
	}
}

func getLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// openStorage returns the configured level store and its closer.
func openStorage(cfg *config.Config) (ports.Storage, func() error, error) {
	switch cfg.Storage {
	case "sqlite":
		if err := os.MkdirAll(cfg.DataDir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		st, err := storage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	default:
		return storage.NewFS(cfg.DataDir), func() error { return nil }, nil
	}
}

// newService wires the use cases; withStorage opens the level store too.
func newService(ctx context.Context, withStorage bool) (*usecase.Service, func() error, error) {
	cfg := getConfig(ctx)
	logger := getLogger(ctx)
	if !withStorage {
		return usecase.NewService(validator.New(), nil, logger), func() error { return nil }, nil
	}
	st, closeFn, err := openStorage(cfg)
	if err != nil {
		return nil, nil, err
	}
	return usecase.NewService(validator.New(), st, logger), closeFn, nil
}
