package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/spacewar/pkg/client/bot"
	"github.com/cbodonnell/spacewar/pkg/client/network"
	"github.com/cbodonnell/spacewar/pkg/game/constants"
	"github.com/cbodonnell/spacewar/pkg/log"
	"github.com/cbodonnell/spacewar/pkg/version"
)

func main() {
	serverAddr := flag.String("server", fmt.Sprintf("%s:%d", network.DefaultServerHostname, network.DefaultServerPort), "Server address (host:port)")
	logLevel := flag.String("log-level", "info", "Log level")
	maxX := flag.Int("max-x", int(constants.DefaultMaxX), "Width of the sector")
	maxY := flag.Int("max-y", int(constants.DefaultMaxY), "Height of the sector")
	fireEvery := flag.Int("fire-every", bot.DefaultFireEvery, "Frames between torpedo launches, negative to never fire")
	duration := flag.Duration("duration", 0, "How long to play, zero to play until interrupted")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	log.SetDefaultLogger(log.New(os.Stdout, parsedLogLevel))
	defer log.Sync()

	log.Info("Starting spacewar client version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	client := network.NewClient(network.NewClientOptions{
		ServerAddr: *serverAddr,
	})
	connectCtx, cancelConnect := context.WithTimeout(ctx, 5*time.Second)
	err = client.Connect(connectCtx)
	cancelConnect()
	if err != nil {
		log.Fatal("Failed to connect to %s: %v", *serverAddr, err)
	}
	defer client.Close()

	// the bot exits before the readers stop
	readCtx, stopReading := context.WithCancel(context.Background())
	defer stopReading()
	client.Start(readCtx)

	b := bot.NewBot(bot.NewBotOptions{
		Player:    client,
		MaxX:      int32(*maxX),
		MaxY:      int32(*maxY),
		FireEvery: *fireEvery,
	})
	if err := b.Run(ctx); err != nil {
		log.Error("Client stopped with error: %v", err)
		return
	}
	log.Info("Client stopped")
}
