// Command quasar is a minimal full-text search engine: documents go in, an
// inverted index is built with term-frequency postings, and free-text queries
// come back ranked. Subcommands cover one-shot CLI use, an interactive REPL,
// and an HTTP API with a small web front end.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/quasar-search/quasar"
)

const defaultConfigPath = "quasar.yaml"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "quasar",
		Short:         "Minimal term-frequency search engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath, cmd.Root().PersistentFlags().Changed("config"))
			if err != nil {
				return err
			}
			setupLogger(cfg.Logging)
			cmd.SetContext(withConfig(cmd.Context(), cfg))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "Path to YAML config file")

	cmd.AddCommand(
		newAddCmd(),
		newSearchCmd(),
		newStatsCmd(),
		newInteractiveCmd(),
		newServeCmd(),
		newSeedCmd(),
	)
	return cmd
}

func setupLogger(cfg LoggingConfig) {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newEngine builds the engine on the configured storage backend and loads
// persisted state. Corrupt state fails here rather than starting empty.
func newEngine(cfg Config) (*quasar.Engine, error) {
	var storage quasar.Storage
	switch cfg.Storage {
	case "mysql":
		db, err := quasar.NewDBClient(quasar.NewDBConfig(
			cfg.MySQL.User, cfg.MySQL.Password, cfg.MySQL.Addr, cfg.MySQL.Port, cfg.MySQL.DB,
		))
		if err != nil {
			return nil, fmt.Errorf("connect mysql: %w", err)
		}
		storage = quasar.NewStorageRdbImpl(db)
	default:
		s, err := quasar.NewStorageJSONImpl(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		storage = s
	}
	return quasar.NewEngine(storage, quasar.NewStandardAnalyzer())
}
