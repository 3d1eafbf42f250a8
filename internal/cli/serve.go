package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/kulevich/minsk-afisha/internal/logger"
	"github.com/kulevich/minsk-afisha/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the list, map and calendar views as a JSON API",
		Long: `Fetches the dataset once at startup and serves the derived views over
HTTP. The collection is held in memory for the lifetime of the process;
restart to refetch.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	events, err := loadEvents(cfg, time.Now())
	if err != nil {
		return err
	}

	srv := server.New(events, time.Now)
	logger.Info("listening", logger.Fields{"addr": cfg.Listen, "events": len(events)})

	if err := http.ListenAndServe(cfg.Listen, srv.Handler()); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
