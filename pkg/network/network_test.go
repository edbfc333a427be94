package network

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/cbodonnell/spacewar/pkg/game/types"
	"github.com/cbodonnell/spacewar/pkg/messages"
	"github.com/cbodonnell/spacewar/pkg/sector"
	"github.com/cbodonnell/spacewar/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventually = 2 * time.Second

type testServer struct {
	manager *NetworkManager
	sector  *sector.Sector
	stats   *stats.Counters
	addr    string
	done    chan error
	cancel  context.CancelFunc
}

func startTestServer(t *testing.T, obstacles ...types.Obstacle) *testServer {
	t.Helper()
	s := sector.NewSector(sector.NewSectorOptions{MaxX: 1024, MaxY: 768})
	for _, o := range obstacles {
		s.AddObstacle(o)
	}
	counters := &stats.Counters{}
	manager := NewNetworkManager(NewNetworkManagerOptions{Sector: s, Stats: counters})
	require.NoError(t, manager.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	ts := &testServer{
		manager: manager,
		sector:  s,
		stats:   counters,
		addr:    fmt.Sprintf("127.0.0.1:%d", manager.Port()),
		done:    make(chan error, 1),
		cancel:  cancel,
	}
	go func() {
		ts.done <- manager.Serve(ctx)
	}()
	t.Cleanup(ts.stop)
	return ts
}

func (ts *testServer) stop() {
	ts.cancel()
	<-ts.done
	ts.done <- nil
}

type testClient struct {
	udp *net.UDPConn
	id  types.ClientIdentity
}

func newTestClient(t *testing.T) *testClient {
	udp := listenLoopbackUDP(t)
	return &testClient{udp: udp, id: udpIdentity(udp)}
}

func (c *testClient) request(t *testing.T, ts *testServer, req *messages.Request) net.Conn {
	t.Helper()
	req.Port = c.id.Port
	conn, err := net.Dial("tcp4", ts.addr)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	_, err = conn.Write(messages.SerializeRequest(req))
	require.NoError(t, err)
	return conn
}

func (c *testClient) register(t *testing.T, ts *testServer) (net.Conn, []types.Obstacle) {
	t.Helper()
	conn := c.request(t, ts, &messages.Request{OpCode: messages.OpCodeRegister})
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(eventually)))
	obstacles, err := messages.ReadObstacles(conn)
	require.NoError(t, err)
	require.NoError(t, conn.SetReadDeadline(time.Time{}))
	return conn, obstacles
}

func (c *testClient) send(t *testing.T, ts *testServer, op messages.OpCode, x, y, heading int32) {
	t.Helper()
	server, err := net.ResolveUDPAddr("udp4", ts.addr)
	require.NoError(t, err)
	payload := messages.SerializeDatagram(&messages.Datagram{
		Sender:  c.id,
		OpCode:  op,
		X:       x,
		Y:       y,
		Heading: heading,
	})
	_, err = c.udp.WriteToUDP(payload, server)
	require.NoError(t, err)
}

func TestRegister_repliesWithObstacles(t *testing.T) {
	obstacles := []types.Obstacle{{X: 10, Y: 20}, {X: 30, Y: 40}, {X: 50, Y: 60}}
	ts := startTestServer(t, obstacles...)
	c := newTestClient(t)

	_, got := c.register(t, ts)
	assert.Equal(t, obstacles, got)
	assert.True(t, ts.manager.Registry.HasPeer(c.id))
	assert.Eventually(t, func() bool {
		return len(ts.manager.Registry.Records()) == 1
	}, eventually, 10*time.Millisecond)
}

func TestUpdateShip_forwardedAndApplied(t *testing.T) {
	ts := startTestServer(t)
	a, b := newTestClient(t), newTestClient(t)
	a.register(t, ts)
	b.register(t, ts)

	a.send(t, ts, messages.OpCodeJoin, 100, 200, 45)

	got, err := readDatagram(t, b.udp, eventually)
	require.NoError(t, err)
	d, err := messages.DeserializeDatagram(got)
	require.NoError(t, err)
	assert.Equal(t, a.id, d.Sender)
	assert.Equal(t, messages.OpCodeJoin, d.OpCode)

	assert.Eventually(t, func() bool {
		ship, ok := ts.sector.Spacecraft(a.id)
		return ok && ship.X == 100 && ship.Y == 200 && ship.Heading == 45
	}, eventually, 10*time.Millisecond)

	_, err = readDatagram(t, a.udp, 100*time.Millisecond)
	assert.Error(t, err, "sender must not receive its own update")
}

func TestUpdateShip_collisionPushesRemovals(t *testing.T) {
	ts := startTestServer(t)
	a, b := newTestClient(t), newTestClient(t)
	connA, _ := a.register(t, ts)
	b.register(t, ts)

	a.send(t, ts, messages.OpCodeUpdateShip, 100, 100, 0)
	assert.Eventually(t, func() bool {
		_, ok := ts.sector.Spacecraft(a.id)
		return ok
	}, eventually, 10*time.Millisecond)
	b.send(t, ts, messages.OpCodeUpdateShip, 103, 104, 0)

	require.NoError(t, connA.SetReadDeadline(time.Now().Add(eventually)))
	first, err := messages.ReadRemoval(connA)
	require.NoError(t, err)
	second, err := messages.ReadRemoval(connA)
	require.NoError(t, err)
	assert.ElementsMatch(t, []types.Entity{
		{ID: a.id, Kind: types.EntityKindShip},
		{ID: b.id, Kind: types.EntityKindShip},
	}, []types.Entity{first, second})
	assert.Empty(t, ts.sector.SnapshotSpacecraft())
}

func TestBestEffort_drops(t *testing.T) {
	ts := startTestServer(t)
	a, b := newTestClient(t), newTestClient(t)
	b.register(t, ts)

	server, err := net.ResolveUDPAddr("udp4", ts.addr)
	require.NoError(t, err)

	a.send(t, ts, messages.OpCode(42), 1, 2, 3)
	_, err = a.udp.WriteToUDP([]byte{1, 2, 3}, server)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return ts.stats.Snapshot().DatagramsDropped == 2
	}, eventually, 10*time.Millisecond)
	_, err = readDatagram(t, b.udp, 100*time.Millisecond)
	assert.Error(t, err, "dropped datagrams must not be forwarded")
	assert.Empty(t, ts.sector.SnapshotSpacecraft())
}

func TestUpdateTorpedo_forwardedOnly(t *testing.T) {
	ts := startTestServer(t)
	a, b := newTestClient(t), newTestClient(t)
	b.register(t, ts)

	a.send(t, ts, messages.OpCodeUpdateTorpedo, 5, 5, 90)

	_, err := readDatagram(t, b.udp, eventually)
	require.NoError(t, err)
	assert.Empty(t, ts.sector.SnapshotTorpedoes())
	assert.Empty(t, ts.sector.SnapshotSpacecraft())
}

func TestLaunchTorpedo(t *testing.T) {
	ts := startTestServer(t)
	a := newTestClient(t)

	conn := a.request(t, ts, &messages.Request{
		OpCode:  messages.OpCodeLaunchTorpedo,
		X:       300,
		Y:       300,
		Heading: 90,
	})

	assert.Eventually(t, func() bool {
		return len(ts.sector.SnapshotTorpedoes()) == 1
	}, eventually, 10*time.Millisecond)
	torpedo := ts.sector.SnapshotTorpedoes()[0]
	assert.Equal(t, a.id, torpedo.Owner)
	assert.Equal(t, int32(300), torpedo.X)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(eventually)))
	_, err := conn.Read(make([]byte, 1))
	assert.Error(t, err, "launch connection must be closed by the server")
	assert.Empty(t, ts.manager.Registry.Records())
}

func TestExit(t *testing.T) {
	ts := startTestServer(t)
	a, b := newTestClient(t), newTestClient(t)
	a.register(t, ts)
	connB, _ := b.register(t, ts)

	a.send(t, ts, messages.OpCodeJoin, 500, 500, 0)
	assert.Eventually(t, func() bool {
		_, ok := ts.sector.Spacecraft(a.id)
		return ok
	}, eventually, 10*time.Millisecond)

	a.request(t, ts, &messages.Request{OpCode: messages.OpCodeExit})

	require.NoError(t, connB.SetReadDeadline(time.Now().Add(eventually)))
	removal, err := messages.ReadRemoval(connB)
	require.NoError(t, err)
	assert.Equal(t, types.Entity{ID: a.id, Kind: types.EntityKindShip}, removal)

	assert.False(t, ts.manager.Registry.HasPeer(a.id))
	assert.True(t, ts.manager.Registry.HasPeer(b.id))
	_, ok := ts.sector.Spacecraft(a.id)
	assert.False(t, ok)
	// the exiting client's own connection is still retained
	assert.Len(t, ts.manager.Registry.Records(), 2)
}

func TestUnknownRequest_closesWithoutMutation(t *testing.T) {
	ts := startTestServer(t)
	conn, err := net.Dial("tcp4", ts.addr)
	require.NoError(t, err)
	defer conn.Close()
	_, err = conn.Write([]byte{0, 0, 0, 9, 0, 0, 0, 1})
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(eventually)))
	_, err = conn.Read(make([]byte, 1))
	assert.Error(t, err)
	assert.Empty(t, ts.manager.Registry.Peers())
	assert.Empty(t, ts.manager.Registry.Records())
}

func TestServe_shutdown(t *testing.T) {
	ts := startTestServer(t)
	c := newTestClient(t)
	conn, _ := c.register(t, ts)

	// an idle connection that never sends a request must not block shutdown
	idle, err := net.Dial("tcp4", ts.addr)
	require.NoError(t, err)
	defer idle.Close()

	ts.cancel()
	select {
	case err := <-ts.done:
		assert.NoError(t, err)
		ts.done <- nil
	case <-time.After(eventually):
		t.Fatal("server did not stop")
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(eventually)))
	_, err = conn.Read(make([]byte, 1))
	assert.Error(t, err, "retained connections must be closed on shutdown")
}
