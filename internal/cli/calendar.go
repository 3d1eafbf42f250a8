package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kulevich/minsk-afisha/internal/calendar"
	"github.com/kulevich/minsk-afisha/internal/filter"
)

var (
	flagCalMonth    string
	flagCalSelected string
)

func newCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the date-picker month with availability",
		Long: `Renders the date-picker grid for one month. Days carrying events that
are not in the past are marked available; the rest are disabled.`,
		RunE: runCalendar,
	}

	cmd.Flags().StringVar(&flagCalMonth, "month", "", "Month to show (YYYY-MM), default current")
	cmd.Flags().StringVar(&flagCalSelected, "selected", "", "Selected date (YYYY-MM-DD)")

	return cmd
}

func runCalendar(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	now := time.Now()
	events, err := loadEvents(cfg, now)
	if err != nil {
		return err
	}

	state := filter.NewState()
	state.SetDate(flagCalSelected)
	widget := calendar.New(state, filter.Dates(events), now)

	if m, err := time.Parse("2006-01", flagCalMonth); err == nil {
		for widget.CurrentMonth().Before(m) {
			widget.NextMonth()
		}
		for widget.CurrentMonth().After(m) {
			widget.PrevMonth()
		}
	}

	return WriteCalendar(os.Stdout, widget, OutputFormat(flagFormat))
}
