package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/andrescamacho/galaxy-routing-go/internal/adapters/grpc"
	"github.com/andrescamacho/galaxy-routing-go/internal/adapters/metrics"
	"github.com/andrescamacho/galaxy-routing-go/internal/adapters/persistence"
	"github.com/andrescamacho/galaxy-routing-go/internal/adapters/routing"
	"github.com/andrescamacho/galaxy-routing-go/internal/adapters/snapshotfile"
	"github.com/andrescamacho/galaxy-routing-go/internal/application/common"
	"github.com/andrescamacho/galaxy-routing-go/internal/application/mediator"
	"github.com/andrescamacho/galaxy-routing-go/internal/application/routing/queries"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	domainRouting "github.com/andrescamacho/galaxy-routing-go/internal/domain/routing"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
	"github.com/andrescamacho/galaxy-routing-go/internal/infrastructure/config"
	"github.com/andrescamacho/galaxy-routing-go/internal/infrastructure/database"
	"github.com/andrescamacho/galaxy-routing-go/internal/infrastructure/pidfile"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "", "Path to config file")
	snapshotPath := flag.String("snapshot", "", "Serve snapshot files from this file or directory instead of the database")
	flag.Parse()

	fmt.Println("Galaxy Routing Daemon v0.1.0")
	fmt.Println("============================")

	// Load configuration
	fmt.Println("Loading configuration...")
	cfg := config.MustLoadConfig(*configPath)

	// Acquire PID file lock to prevent multiple instances
	fmt.Printf("Acquiring PID file lock: %s\n", cfg.Daemon.PIDFile)
	pf := pidfile.New(cfg.Daemon.PIDFile)
	if err := pf.Acquire(); err != nil {
		log.Fatalf("Failed to acquire PID file lock: %v", err)
	}
	defer func() {
		if err := pf.Release(); err != nil {
			log.Printf("Warning: failed to release PID file: %v", err)
		}
	}()
	fmt.Println("PID file lock acquired")

	if err := run(cfg, *snapshotPath); err != nil {
		log.Printf("Fatal error: %v", err)
		_ = pf.Release()
		os.Exit(1)
	}
}

func run(cfg *config.Config, snapshotPath string) error {
	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}

	// 1. Snapshot source
	var snapshots galaxy.SnapshotRepository
	if snapshotPath != "" {
		fmt.Printf("Serving snapshots from %s\n", snapshotPath)
		snapshots = snapshotfile.NewRepository(snapshotPath, cfg.Galaxy.Constants())
	} else {
		fmt.Printf("Connecting to %s database...\n", cfg.Database.Type)
		db, err := database.NewConnection(&cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close(db)
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		fmt.Println("Database connected")
		snapshots = persistence.NewGormSnapshotRepository(db)
	}

	// 2. Metrics
	var commandMetrics *metrics.CommandMetricsCollector
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()

		routingCollector := metrics.NewRoutingMetricsCollector()
		if err := routingCollector.Register(); err != nil {
			return fmt.Errorf("failed to register routing metrics: %w", err)
		}
		metrics.SetGlobalRoutingCollector(routingCollector)

		commandMetrics = metrics.NewCommandMetricsCollector()
		if err := commandMetrics.Register(); err != nil {
			return fmt.Errorf("failed to register command metrics: %w", err)
		}
		fmt.Println("Metrics collection enabled")
	}

	// 3. Mediator and handlers
	mode, err := domainRouting.ParseSearchMode(cfg.Routing.Mode)
	if err != nil {
		return err
	}
	med := mediator.NewMediator()
	med.RegisterMiddleware(metrics.PrometheusMiddleware(commandMetrics))
	if err := queries.RegisterHandlers(med, snapshots, mode, shared.RealClock{}); err != nil {
		return err
	}
	fmt.Printf("Routing handlers registered (default mode: %s)\n", mode)

	// 4. gRPC server
	server := grpc.NewRoutingServer(routing.NewLocalRoutePlanner(med), grpc.ServerOptions{
		RateLimit:      cfg.Daemon.RateLimit.Requests,
		Burst:          cfg.Daemon.RateLimit.Burst,
		RequestTimeout: cfg.Routing.RequestTimeout,
		Logger:         logger,
	})
	grpcListener, err := net.Listen("tcp", cfg.Daemon.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Daemon.Address, err)
	}

	// 5. HTTP side port
	var ready atomic.Bool
	httpServer := &http.Server{
		Addr:              cfg.Metrics.Address(),
		Handler:           metrics.NewRouter(cfg.Metrics.Path, cfg.Metrics.HealthPath, ready.Load),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fmt.Printf("Routing service listening on %s\n", grpcListener.Addr())
		return server.Serve(grpcListener)
	})

	g.Go(func() error {
		fmt.Printf("HTTP side port listening on %s\n", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		ready.Store(false)
		fmt.Println("\nShutdown signal received, stopping daemon...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Daemon.ShutdownTimeout)
		defer cancel()

		stopped := make(chan struct{})
		go func() {
			server.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			fmt.Println("Graceful stop timed out, closing connections")
			server.Stop()
		}

		return httpServer.Shutdown(shutdownCtx)
	})

	ready.Store(true)
	logger.Log("INFO", "[Daemon] routing daemon started", map[string]interface{}{
		"grpc_address": cfg.Daemon.Address,
		"http_address": httpServer.Addr,
		"mode":         string(mode),
	})

	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Println("Daemon stopped")
	return nil
}

func newLogger(cfg config.LoggingConfig) (common.Logger, error) {
	var out io.Writer
	switch cfg.Output {
	case "stderr":
		out = os.Stderr
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
	default:
		out = os.Stdout
	}
	return common.NewStdLogger(out, cfg.Level, cfg.Format)
}
