package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adamspd/medstudy/handlers"
	"github.com/adamspd/medstudy/sessions"
	"github.com/adamspd/medstudy/utils"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local study API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = cfg.Addr
		}
		ttl := cfg.SessionTTL
		if ttl <= 0 {
			ttl = 12 * time.Hour
		}
		origins := cfg.AllowedOrigins
		if len(origins) == 0 {
			origins = []string{"*"}
		}

		utils.LogStartup("Initializing database connection...")
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		runs := sessions.NewStore(ttl)
		defer runs.Close()

		utils.LogStartup("Setting up API routes...")
		server := &http.Server{
			Addr:         addr,
			Handler:      handlers.NewRouter(store, runs, origins),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			utils.LogStartup("Server ready to accept connections at http://%s", addr)
			errCh <- server.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		utils.LogShutdown("Received shutdown signal, stopping server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			utils.LogError("Error during shutdown: %v", err)
			return err
		}
		utils.LogShutdown("Server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $MEDSTUDY_ADDR or 127.0.0.1:8043)")
}
