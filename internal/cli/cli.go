package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kulevich/minsk-afisha/internal/config"
	"github.com/kulevich/minsk-afisha/internal/event"
	"github.com/kulevich/minsk-afisha/internal/logger"
	"github.com/kulevich/minsk-afisha/internal/sheet"
	"github.com/kulevich/minsk-afisha/internal/storage"
)

const (
	ExitSuccess   = 0
	ExitError     = 1
	ExitNewEvents = 2
)

var (
	flagConfig  string
	flagFormat  string
	flagVerbose bool
	flagOffline bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "afisha",
		Short: "Browse Minsk culture events from the public dataset",
		Long: `A CLI for the Minsk culture-events dataset.
Fetches the event table once per run and lets you search, filter by date,
category and price, page through the list, browse the map clusters, and
check for newly-added events.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format := OutputFormat(flagFormat)
			if format != FormatText && format != FormatJSON {
				return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
			}
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "afisha.yaml", "Config file path")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "Use the last fetched snapshot instead of the network")

	cmd.AddCommand(
		newListCmd(),
		newMapCmd(),
		newCalendarCmd(),
		newCheckCmd(),
		newICSCmd(),
		newServeCmd(),
	)

	return cmd
}

// loadEvents fetches and normalizes the collection, or loads the snapshot
// in offline mode. One fetch per run, no retry.
func loadEvents(cfg *config.Config, now time.Time) ([]event.Event, error) {
	if flagOffline {
		store, err := storage.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing storage: %w", err)
		}
		snapshot, err := store.LoadSnapshot()
		if err != nil {
			return nil, fmt.Errorf("loading snapshot: %w", err)
		}
		logger.Debug("loaded snapshot", logger.Fields{"count": len(snapshot.Events), "fetched_at": snapshot.FetchedAt})
		return snapshot.Events, nil
	}

	var table *sheet.Table
	var err error
	switch cfg.Source {
	case config.SourcePublished:
		table, err = sheet.NewPublishedClient(cfg.PublishedURL).FetchTable()
	default:
		table, err = sheet.NewClient(cfg.SpreadsheetID, cfg.Range, cfg.APIKey).FetchTable()
	}
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}

	events, err := sheet.Normalize(table, now)
	if err != nil {
		return nil, err
	}
	logger.Debug("normalized events", logger.Fields{"rows": len(table.Rows), "events": len(events)})
	return events, nil
}

// loadConfig reads the configured file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
