package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kulevich/minsk-afisha/internal/ics"
)

var (
	flagICSID  int
	flagICSOut string
)

func newICSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export one event as an iCalendar file",
		RunE:  runICS,
	}

	cmd.Flags().IntVar(&flagICSID, "id", 0, "Event ID from the current fetch (required)")
	cmd.Flags().StringVar(&flagICSOut, "out", "", "Output file, default stdout")
	cmd.MarkFlagRequired("id")

	return cmd
}

func runICS(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	now := time.Now()
	events, err := loadEvents(cfg, now)
	if err != nil {
		return err
	}

	for _, e := range events {
		if e.ID != flagICSID {
			continue
		}
		body := ics.Generate(e, now)
		if flagICSOut == "" {
			fmt.Print(body)
			return nil
		}
		if err := os.WriteFile(flagICSOut, []byte(body), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", flagICSOut, err)
		}
		fmt.Printf("Wrote %s\n", flagICSOut)
		return nil
	}

	return fmt.Errorf("event not found: %d", flagICSID)
}
