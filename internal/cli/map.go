package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kulevich/minsk-afisha/internal/event"
	"github.com/kulevich/minsk-afisha/internal/geo"
	"github.com/kulevich/minsk-afisha/internal/sheet"
)

var flagMapDate string

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Show map marker clusters for one day",
		Long: `Groups the day's events by exact coordinate, the way the map view
places its markers. Events without usable coordinates are excluded.
Defaults to today when --date is not given.`,
		RunE: runMap,
	}

	cmd.Flags().StringVar(&flagMapDate, "date", "", "Date to show (YYYY-MM-DD), default today")

	return cmd
}

func runMap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	now := time.Now()
	events, err := loadEvents(cfg, now)
	if err != nil {
		return err
	}

	today := now.Format(event.ISODate)
	visible := geo.ForDate(sheet.MapEvents(events), flagMapDate, today)
	clusters := geo.Group(visible)

	date := flagMapDate
	if date == "" {
		date = today
	}

	return WriteClusters(os.Stdout, date, clusters, OutputFormat(flagFormat))
}
