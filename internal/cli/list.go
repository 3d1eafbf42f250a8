package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kulevich/minsk-afisha/internal/event"
	"github.com/kulevich/minsk-afisha/internal/filter"
	"github.com/kulevich/minsk-afisha/internal/view"
)

var (
	flagSearch   string
	flagDate     string
	flagCategory string
	flagPrice    string
	flagPage     int
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List upcoming events, filtered and paginated",
		RunE:  runList,
	}

	cmd.Flags().StringVar(&flagSearch, "search", "", "Title substring, case-insensitive")
	cmd.Flags().StringVar(&flagDate, "date", "", "Exact date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flagCategory, "category", "", "Category, case-insensitive")
	cmd.Flags().StringVar(&flagPrice, "price", "all", "Price bucket: all, free, unspecified, 0-9, 10-19, 20-29, 30-39, 40+")
	cmd.Flags().IntVar(&flagPage, "page", 1, "Page number")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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
	state.SetSearchTerm(flagSearch)
	state.SetDate(flagDate)
	state.SetCategory(flagCategory)
	state.SetPriceRange(filter.PriceRange(flagPrice))

	today := now.Format(event.ISODate)
	sorted := view.SortByDate(state.Apply(events, today))

	state.SetPage(flagPage, view.TotalPages(len(sorted)))
	page := view.Paginate(sorted, state.CurrentPage)

	return WriteEventList(os.Stdout, page, OutputFormat(flagFormat))
}
