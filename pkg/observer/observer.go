package observer

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/spacewar/pkg/log"
	"github.com/cbodonnell/spacewar/pkg/snapshot"
	"nhooyr.io/websocket"
)

// ReadLimit is the largest stream frame accepted.
const ReadLimit = 1 << 20

// FrameHandler is called for every decoded frame.
type FrameHandler func(frame *snapshot.Frame)

// Observer follows the sector snapshot stream of a server.
type Observer struct {
	url string
}

type NewObserverOptions struct {
	// URL of the stream, e.g. ws://localhost:8080/sector/stream
	URL string
}

func NewObserver(opts NewObserverOptions) *Observer {
	return &Observer{
		url: opts.URL,
	}
}

// Watch calls handle for every frame until ctx is cancelled or the server
// goes away. A normal close or a server shutdown returns nil.
func (o *Observer) Watch(ctx context.Context, handle FrameHandler) error {
	conn, _, err := websocket.Dial(ctx, o.url, nil)
	if err != nil {
		return fmt.Errorf("failed to dial %s: %v", o.url, err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")
	conn.SetReadLimit(ReadLimit)

	for {
		msgType, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				log.Info("Stream closed by server: %v", err)
				return nil
			}
			return fmt.Errorf("failed to read frame: %v", err)
		}
		if msgType != websocket.MessageBinary {
			log.Warn("Ignoring %s message", msgType)
			continue
		}

		frame, err := snapshot.Deserialize(data)
		if err != nil {
			log.Error("Failed to deserialize frame: %v", err)
			continue
		}
		handle(frame)
	}
}

// ErrNoFrame is returned by First when the stream ends before a frame arrives.
var ErrNoFrame = errors.New("stream ended without a frame")

// First returns the first frame of the stream.
func (o *Observer) First(ctx context.Context) (*snapshot.Frame, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var first *snapshot.Frame
	err := o.Watch(ctx, func(frame *snapshot.Frame) {
		if first == nil {
			first = frame
			cancel()
		}
	})
	if err != nil {
		return nil, err
	}
	if first == nil {
		return nil, ErrNoFrame
	}
	return first, nil
}
