package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/spacewar/pkg/api"
	"github.com/cbodonnell/spacewar/pkg/config"
	"github.com/cbodonnell/spacewar/pkg/game"
	"github.com/cbodonnell/spacewar/pkg/log"
	"github.com/cbodonnell/spacewar/pkg/network"
	"github.com/cbodonnell/spacewar/pkg/sector"
	"github.com/cbodonnell/spacewar/pkg/stats"
	"github.com/cbodonnell/spacewar/pkg/version"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := config.LoadEnvFiles(); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
	cfg, err := config.LoadServerConfig(os.Args[0], os.Args[1:])
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, parsedLogLevel)
	if cfg.LogFile != "" {
		logger = log.NewFileLogger(cfg.LogFile, parsedLogLevel)
	}
	log.SetDefaultLogger(logger)
	defer log.Sync()
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting spacewar server version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := sector.NewSector(sector.NewSectorOptions{
		MaxX: int32(cfg.MaxX),
		MaxY: int32(cfg.MaxY),
	})
	s.PopulateObstacles(cfg.Obstacles, rand.New(rand.NewSource(time.Now().UnixNano())))
	log.Info("Sector is %dx%d with %d obstacles", cfg.MaxX, cfg.MaxY, cfg.Obstacles)

	counters := &stats.Counters{}

	networkManager := network.NewNetworkManager(network.NewNetworkManagerOptions{
		Port:   cfg.Port,
		Sector: s,
		Stats:  counters,
	})
	if err := networkManager.Listen(); err != nil {
		log.Fatal("Failed to bind port %d: %v", cfg.Port, err)
	}

	scheduler, err := game.NewTorpedoScheduler(game.NewTorpedoSchedulerOptions{
		Sector:      s,
		Broadcaster: networkManager.Broadcaster,
		Stats:       counters,
	})
	if err != nil {
		log.Fatal("Failed to create torpedo scheduler: %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return networkManager.Serve(gctx)
	})
	g.Go(func() error {
		return scheduler.Start(gctx)
	})

	if cfg.HTTPPort != 0 {
		apiServer := api.NewAPIServer(api.NewAPIServerOptions{
			Port:   cfg.HTTPPort,
			Sector: s,
			Stats:  counters,
		})
		g.Go(apiServer.Start)
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return apiServer.Stop(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("Server stopped with error: %v", err)
		log.Sync()
		os.Exit(1)
	}
	log.Info("Server stopped")
}
