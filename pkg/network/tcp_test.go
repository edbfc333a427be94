package network

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReliableServer_admit(t *testing.T) {
	tests := []struct {
		name      string
		cancelled bool
		want      bool
		wantOpen  bool
	}{
		{name: "running", cancelled: false, want: true, wantOpen: true},
		{name: "shutting down", cancelled: true, want: false, wantOpen: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewReliableServer(NewReliableServerOptions{})
			server, client := net.Pipe()
			defer server.Close()
			defer client.Close()

			ctx, cancel := context.WithCancel(context.Background())
			if tt.cancelled {
				cancel()
			} else {
				defer cancel()
			}

			assert.Equal(t, tt.want, s.admit(ctx, server))

			s.pendingLock.Lock()
			_, tracked := s.pending[server]
			s.pendingLock.Unlock()
			assert.Equal(t, tt.wantOpen, tracked)

			require.NoError(t, client.SetReadDeadline(time.Now().Add(50*time.Millisecond)))
			_, err := client.Read(make([]byte, 1))
			if tt.wantOpen {
				var netErr net.Error
				require.ErrorAs(t, err, &netErr)
				assert.True(t, netErr.Timeout(), "an admitted connection stays open")
			} else {
				assert.ErrorIs(t, err, io.EOF, "a connection accepted during shutdown is closed")
			}
		})
	}
}
