package bot

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/cbodonnell/spacewar/pkg/game/constants"
	"github.com/cbodonnell/spacewar/pkg/game/types"
	"github.com/cbodonnell/spacewar/pkg/kinematic"
	"github.com/cbodonnell/spacewar/pkg/log"
	"github.com/cbodonnell/spacewar/pkg/messages"
	"github.com/cbodonnell/spacewar/pkg/queue"
)

const (
	// DefaultFrameInterval is how often the bot reports its position
	DefaultFrameInterval = 50 * time.Millisecond
	// DefaultFireEvery is the number of frames between two launches
	DefaultFireEvery = 20
	// ExitTimeout bounds the exit request sent on shutdown
	ExitTimeout = 2 * time.Second

	maxSpawnAttempts = 100
)

// Player is the network side of a bot.
type Player interface {
	Identity() types.ClientIdentity
	Obstacles() []types.Obstacle
	Events() queue.Queue
	Join(x, y, heading int32) error
	UpdateShip(x, y, heading int32) error
	LaunchTorpedo(ctx context.Context, x, y, heading int32) error
	Exit(ctx context.Context) error
}

// Bot flies a ship, fires torpedoes and rejoins after being destroyed.
type Bot struct {
	player        Player
	pilot         *Pilot
	rng           *rand.Rand
	frameInterval time.Duration
	fireEvery     int

	frame  int
	alive  bool
	deaths int
	others map[types.ClientIdentity]struct{}
}

type NewBotOptions struct {
	Player        Player
	MaxX          int32
	MaxY          int32
	FrameInterval time.Duration
	// FireEvery is the number of frames between launches; negative disables firing
	FireEvery int
	Rand      *rand.Rand
}

func NewBot(opts NewBotOptions) *Bot {
	frameInterval := opts.FrameInterval
	if frameInterval == 0 {
		frameInterval = DefaultFrameInterval
	}
	fireEvery := opts.FireEvery
	if fireEvery == 0 {
		fireEvery = DefaultFireEvery
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Bot{
		player: opts.Player,
		pilot: NewPilot(NewPilotOptions{
			MaxX:      opts.MaxX,
			MaxY:      opts.MaxY,
			Obstacles: opts.Player.Obstacles(),
		}),
		rng:           rng,
		frameInterval: frameInterval,
		fireEvery:     fireEvery,
		others:        make(map[types.ClientIdentity]struct{}),
	}
}

// Run flies until ctx is cancelled, then sends an exit request.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.spawn(); err != nil {
		return err
	}

	ticker := time.NewTicker(b.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			exitCtx, cancel := context.WithTimeout(context.Background(), ExitTimeout)
			defer cancel()
			if err := b.player.Exit(exitCtx); err != nil {
				return fmt.Errorf("failed to exit: %v", err)
			}
			log.Info("Left the sector after %d deaths", b.deaths)
			return nil
		case <-ticker.C:
			if err := b.step(ctx); err != nil {
				log.Error("Failed to run frame: %v", err)
			}
		}
	}
}

// Deaths returns how many times the ship was destroyed.
func (b *Bot) Deaths() int {
	return b.deaths
}

// Others returns the number of other ships the bot has heard from.
func (b *Bot) Others() int {
	return len(b.others)
}

func (b *Bot) step(ctx context.Context) error {
	b.handleEvents()
	if !b.alive {
		return b.spawn()
	}

	b.pilot.Step()
	if err := b.player.UpdateShip(b.pilot.X, b.pilot.Y, b.pilot.Heading); err != nil {
		return err
	}

	b.frame++
	if b.fireEvery > 0 && b.frame%b.fireEvery == 0 {
		// launch clear of our own ship so the first tick cannot hit it
		v := kinematic.Displacement(b.pilot.Heading, float64(2*constants.CollisionRadius))
		if err := b.player.LaunchTorpedo(ctx, b.pilot.X+v.X, b.pilot.Y+v.Y, b.pilot.Heading); err != nil {
			return err
		}
		log.Debug("Launched torpedo at heading %d", b.pilot.Heading)
	}
	return nil
}

// spawn joins at a random free position.
func (b *Bot) spawn() error {
	for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
		x := b.rng.Int31n(b.pilot.maxX + 1)
		y := b.rng.Int31n(b.pilot.maxY + 1)
		b.pilot.Place(x, y, b.rng.Int31n(4)*90)
		if b.pilot.Free(x, y) {
			break
		}
	}
	if err := b.player.Join(b.pilot.X, b.pilot.Y, b.pilot.Heading); err != nil {
		return fmt.Errorf("failed to join: %v", err)
	}
	b.alive = true
	log.Info("Joined at (%d, %d) heading %d", b.pilot.X, b.pilot.Y, b.pilot.Heading)
	return nil
}

func (b *Bot) handleEvents() {
	self := b.player.Identity()
	for _, event := range b.player.Events().ReadAllMessages() {
		switch e := event.(type) {
		case *messages.Datagram:
			if _, ok := b.others[e.Sender]; !ok && e.Sender != self && e.OpCode != messages.OpCodeUpdateTorpedo {
				b.others[e.Sender] = struct{}{}
				log.Info("Ship %s is in the sector", e.Sender)
			}
		case types.Entity:
			if e.Kind != types.EntityKindShip {
				continue
			}
			if e.ID == self {
				b.alive = false
				b.deaths++
				log.Info("Destroyed, rejoining")
				continue
			}
			delete(b.others, e.ID)
			log.Info("Ship %s was removed", e.ID)
		default:
			log.Warn("Unknown event type: %T", event)
		}
	}
}
