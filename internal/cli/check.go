package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kulevich/minsk-afisha/internal/event"
	"github.com/kulevich/minsk-afisha/internal/storage"
)

var flagRefresh bool

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report events added since the last check",
		Long: `Fetches the current dataset, diffs it against the stored snapshot, and
reports newly-added events. The snapshot is updated afterwards. Exits with
code 2 when new events were found.`,
		RunE: runCheck,
	}

	cmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Refresh the snapshot without reporting new events")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagOffline {
		return fmt.Errorf("check needs the network; --offline would diff the snapshot against itself")
	}

	now := time.Now()
	events, err := loadEvents(cfg, now)
	if err != nil {
		return err
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	previous, err := store.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	added := event.Diff(previous.Events, events)

	if err := store.SaveSnapshot(events, now); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	if flagRefresh {
		fmt.Println("Snapshot refreshed successfully.")
		return nil
	}

	if err := WriteNewEvents(os.Stdout, added, OutputFormat(flagFormat)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if len(added) > 0 {
		os.Exit(ExitNewEvents)
	}
	return nil
}
