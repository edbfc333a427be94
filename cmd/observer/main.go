package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/spacewar/pkg/log"
	"github.com/cbodonnell/spacewar/pkg/observer"
	"github.com/cbodonnell/spacewar/pkg/snapshot"
	"github.com/cbodonnell/spacewar/pkg/version"
)

func main() {
	url := flag.String("url", "ws://localhost:8080/sector/stream", "Sector stream URL")
	logLevel := flag.String("log-level", "info", "Log level")
	every := flag.Duration("every", time.Second, "Minimum time between two logged frames")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	log.SetDefaultLogger(log.New(os.Stdout, parsedLogLevel))
	defer log.Sync()

	log.Info("Starting spacewar observer version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	o := observer.NewObserver(observer.NewObserverOptions{URL: *url})
	var last time.Time
	err = o.Watch(ctx, func(frame *snapshot.Frame) {
		for _, ship := range frame.Spacecraft {
			log.Trace("Ship %s at (%d, %d) heading %d", ship.ID, ship.X, ship.Y, ship.Heading)
		}
		if time.Since(last) < *every {
			return
		}
		last = time.Now()
		log.Info("Frame %d: %d ships, %d torpedoes, %d obstacles",
			frame.Timestamp, len(frame.Spacecraft), len(frame.Torpedoes), len(frame.Obstacles))
	})
	if err != nil {
		log.Fatal("Observer stopped with error: %v", err)
	}
	log.Info("Observer stopped")
}
