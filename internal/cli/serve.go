package cli

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the conversion HTTP API",
	Long: `Run a small HTTP API exposing the converter.

Endpoints:
  POST /api/convert  {"text": "...", "fps": 24}  ->  {"srt": "...", "fps": 24}
  GET  /api/rates    recognized frame rates
  GET  /api/health

Errors come back as 400 with a machine-readable kind (empty_input,
malformed_timecode, no_timecodes_found) and, for malformed timecodes, the
offending source line number.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Server.Addr
	}

	router := api.NewRouter(cfg, logger)

	logger.Infow("Starting server",
		"addr", addr,
		"default_fps", cfg.DefaultFPS,
	)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Infow("Shutting down")
		os.Exit(0)
	}()

	if err := http.ListenAndServe(addr, router); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
