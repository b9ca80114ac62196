package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sporelab/fungal-evolution/internal/adapters/metrics"
	"github.com/sporelab/fungal-evolution/internal/adapters/persistence"
	"github.com/sporelab/fungal-evolution/internal/application/common"
	"github.com/sporelab/fungal-evolution/internal/application/engine"
	"github.com/sporelab/fungal-evolution/internal/domain/mission"
	"github.com/sporelab/fungal-evolution/internal/domain/shared"
	"github.com/sporelab/fungal-evolution/internal/infrastructure/config"
	"github.com/sporelab/fungal-evolution/internal/infrastructure/database"
	"github.com/sporelab/fungal-evolution/internal/infrastructure/pidfile"
)

func main() {
	forceFlag := flag.Bool("force", false, "Kill any existing daemon and start a new one")
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	fmt.Println("Fungal Evolution Daemon v0.1.0")
	fmt.Println("==============================")

	fmt.Println("Loading configuration...")
	cfg := config.MustLoadConfig(*configFlag)

	fmt.Printf("Acquiring PID file lock: %s\n", cfg.Daemon.PIDFile)
	pf := pidfile.New(cfg.Daemon.PIDFile)

	if err := pf.Acquire(); err != nil {
		if *forceFlag {
			fmt.Println("Force mode enabled - attempting to kill existing daemon...")
			if killErr := pf.KillExisting(); killErr != nil {
				log.Fatalf("Failed to kill existing daemon: %v", killErr)
			}
			if err := pf.Acquire(); err != nil {
				log.Fatalf("Failed to acquire PID file lock after killing existing daemon: %v", err)
			}
		} else {
			log.Fatalf("Failed to acquire PID file lock: %v\nUse --force to kill the existing daemon", err)
		}
	}
	defer func() {
		if err := pf.Release(); err != nil {
			log.Printf("Warning: failed to release PID file: %v", err)
		}
	}()
	fmt.Println("PID file lock acquired")

	if err := run(cfg); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	// 1. Database
	fmt.Printf("Connecting to %s database...\n", cfg.Database.Type)
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)
	fmt.Println("Database connected")

	// 2. Repositories and logging
	clock := shared.NewRealClock()
	saveRepo := persistence.NewGormSaveRepository(db)

	var logger common.GameLogger = &common.ConsoleLogger{}
	if cfg.Logging.Journal {
		logger = persistence.NewGormJournalRepository(db, clock)
	}

	// 3. Load the save and reconcile offline progress before going live
	state := engine.LoadState(context.Background(), saveRepo, clock, logger)
	eng := engine.New(state, clock, nil, logger)
	fmt.Println("Engine initialized")

	// 4. Drivers
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = common.WithLogger(ctx, logger)

	var wg sync.WaitGroup

	tick := engine.NewTickDriver(eng, clock, cfg.Daemon.TickInterval)
	poller := engine.NewMissionPoller(eng, mission.NewResolver(nil), clock, cfg.Daemon.MissionPollInterval)
	saver := engine.NewAutosaver(eng, saveRepo, cfg.Daemon.AutosaveInterval)

	wg.Add(3)
	go func() { defer wg.Done(); tick.Run(ctx) }()
	go func() { defer wg.Done(); poller.Run(ctx) }()
	go func() { defer wg.Done(); saver.Run(ctx) }()
	fmt.Printf("Drivers running (tick %s, mission poll %s, autosave %s)\n",
		cfg.Daemon.TickInterval, cfg.Daemon.MissionPollInterval, cfg.Daemon.AutosaveInterval)

	// 5. Optional autoclicker bot
	if cfg.Bot.Enabled {
		bot := engine.NewAutoclicker(eng, cfg.Bot.ClicksPerSecond, cfg.Bot.BuyUpgrades)
		wg.Add(1)
		go func() { defer wg.Done(); bot.Run(ctx) }()
		fmt.Printf("Autoclicker bot running at %.1f clicks/s\n", cfg.Bot.ClicksPerSecond)
	}

	// 6. Optional metrics endpoint
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		collector := metrics.NewEngineMetricsCollector(eng, cfg.Metrics.CollectInterval)
		if err := collector.Register(registry); err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		wg.Add(1)
		go func() { defer wg.Done(); collector.Run(ctx) }()

		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler(registry))
		server := &http.Server{Addr: cfg.Metrics.Address, Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("Warning: metrics server failed: %v", err)
			}
		}()
		go func() {
			<-ctx.Done()
			_ = server.Close()
		}()
		fmt.Printf("Metrics served at http://%s/metrics\n", cfg.Metrics.Address)
	}

	fmt.Println("Daemon ready. Press Ctrl+C to stop.")
	<-ctx.Done()
	fmt.Println("\nShutting down...")
	wg.Wait()

	// The autosaver wrote a final snapshot on shutdown; nothing else to flush
	fmt.Println("Goodbye")
	return nil
}
