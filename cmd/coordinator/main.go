// Command coordinator runs the mrword coordinator process: the worker
// gRPC dispatch surface, the operator HTTP/JSON surface, and the
// liveness sweeper (spec.md §4, §6).
package main

import (
	"context"
	"fmt"
	"net"
	gohttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	apihttp "github.com/flowstack/mrword/internal/api/http"
	"github.com/flowstack/mrword/internal/config"
	"github.com/flowstack/mrword/internal/coordinator"
	"github.com/flowstack/mrword/internal/logger"
	"github.com/flowstack/mrword/internal/persistence"
	"github.com/flowstack/mrword/internal/rpc"
	"github.com/flowstack/mrword/internal/rpc/jobspb"
)

var rootCmd = &cobra.Command{
	Use:   "coordinator",
	Short: "mrword distributed word-count coordinator",
}

func main() {
	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the coordinator's gRPC and HTTP servers",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.New("mrword-coordinator")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	var sink coordinator.Sink
	if cfg.PersistenceDSN != "" {
		sqliteSink, err := persistence.Open(cfg.PersistenceDSN)
		if err != nil {
			log.Error().Err(err).Msg("persistence sink unavailable; continuing without persistence")
		} else {
			defer sqliteSink.Close()
			sink = sqliteSink
		}
	}

	deadThreshold := time.Duration(cfg.DeadThresholdSeconds) * time.Second
	coord := coordinator.New(coordinator.RealClock{}, sink, deadThreshold, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	coord.StartSweeper(ctx, time.Duration(cfg.SweepIntervalSeconds)*time.Second)

	grpcServer, grpcListener, err := startGRPCServer(cfg, coord, log)
	if err != nil {
		log.Error().Err(err).Msg("gRPC server failed to start")
		return err
	}

	origins, credentials := cfg.CORSOriginList()
	activeThreshold := time.Duration(cfg.ActiveThresholdSeconds) * time.Second
	router := apihttp.NewRouter(coord, origins, credentials, activeThreshold)
	httpServer := &gohttp.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := httpServer.ListenAndServe(); err != nil && err != gohttp.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	go func() {
		log.Info().Int("port", cfg.GRPCPort).Msg("gRPC server starting")
		if err := grpcServer.Serve(grpcListener); err != nil {
			log.Fatal().Err(err).Msg("gRPC server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	cancel()
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server forced to shutdown")
		return err
	}
	log.Info().Msg("shutdown complete")
	return nil
}

func startGRPCServer(cfg *config.Config, coord *coordinator.Coordinator, log zerolog.Logger) (*grpc.Server, net.Listener, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("listen on %s: %w", cfg.GRPCAddr(), err)
	}

	server := grpc.NewServer()
	jobspb.RegisterJobDispatchServer(server, rpc.NewServer(coord, log))
	return server, listener, nil
}
