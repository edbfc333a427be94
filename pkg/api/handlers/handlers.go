package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cbodonnell/spacewar/pkg/log"
	"github.com/cbodonnell/spacewar/pkg/sector"
	"github.com/cbodonnell/spacewar/pkg/snapshot"
	"github.com/cbodonnell/spacewar/pkg/stats"
	"github.com/gorilla/websocket"
)

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	}
}

// HandleGetSector returns a JSON snapshot of the sector.
func HandleGetSector(s *sector.Sector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.Snapshot())
	}
}

func HandleGetStats(counters *stats.Counters) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, counters.Snapshot())
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleSectorStream upgrades to a websocket and sends a compressed snapshot
// frame every interval until the peer goes away or ctx is done.
func HandleSectorStream(ctx context.Context, s *sector.Sector, interval time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("Failed to upgrade to WebSocket: %v", err)
			return
		}
		defer conn.Close()
		log.Debug("New observer connection from %s", conn.RemoteAddr().String())

		// observers never send anything; reading only detects the close
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
						log.Debug("Observer %s went away: %v", conn.RemoteAddr().String(), err)
					}
					return
				}
			}
		}()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			frame := &snapshot.Frame{
				Timestamp: time.Now().UnixMilli(),
				Snapshot:  s.Snapshot(),
			}
			b, err := snapshot.Serialize(frame)
			if err != nil {
				log.Error("Failed to serialize snapshot: %v", err)
				return
			}
			if err := conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
				log.Debug("Failed to write snapshot to %s: %v", conn.RemoteAddr().String(), err)
				return
			}

			select {
			case <-ctx.Done():
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
				return
			case <-closed:
				return
			case <-ticker.C:
			}
		}
	}
}
