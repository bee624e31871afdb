package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/renthub/backend/internal/api"
	"github.com/wonny/renthub/backend/internal/api/handlers"
	"github.com/wonny/renthub/backend/internal/store"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the REST API server",
	Long: `Starts the RentHub REST API server.

Endpoints:
  GET   /health                      - Health check
  GET   /api/activities              - List activities by status
  POST  /api/activities/generate     - Trigger one engine run
  PATCH /api/activities/{id}/status  - Update activity workflow state
  GET   /api/leases                  - List leases
  GET   /api/leases/{id}/activities  - Activities generated from a lease

Example:
  go run ./cmd/renthub api
  go run ./cmd/renthub api --port 8090`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== RentHub API Server ===")

	rt, err := initRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	if apiPort != "" {
		rt.cfg.Port = apiPort
	}

	log := rt.log
	log.WithFields(map[string]interface{}{
		"port": rt.cfg.Port,
		"env":  rt.cfg.Env,
	}).Info("Initializing API server")

	// Wire the engine and handlers
	engine := buildEngine(rt)
	activityRepo := store.NewActivityRepository(rt.db.Pool)
	leaseRepo := store.NewLeaseRepository(rt.db.Pool)

	activityHandler := handlers.NewActivityHandler(engine, activityRepo, log)
	leaseHandler := handlers.NewLeaseHandler(leaseRepo, log)

	router := api.NewRouter(activityHandler, leaseHandler, log)
	server := api.New(rt.cfg, log, router)

	// Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\nServer running on http://localhost:%s\n", rt.cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
