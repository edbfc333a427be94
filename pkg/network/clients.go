package network

import (
	"fmt"
	"net"
	"sync"

	"github.com/cbodonnell/spacewar/pkg/game/types"
	"github.com/google/uuid"
)

// ConnectionRecord is a reliable connection kept open after registration so
// that removal notices can be pushed to the client.
type ConnectionRecord struct {
	ID       uuid.UUID
	Identity types.ClientIdentity
	Conn     net.Conn
}

// ConnectionRegistry holds the datagram peers and the retained reliable
// connections. Each collection has its own lock and no lock is ever held
// while writing to the network.
type ConnectionRegistry struct {
	peers       map[types.ClientIdentity]struct{}
	peersLock   sync.RWMutex
	records     map[uuid.UUID]*ConnectionRecord
	recordsLock sync.RWMutex
}

// NewConnectionRegistry creates an empty ConnectionRegistry
func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{
		peers:   make(map[types.ClientIdentity]struct{}),
		records: make(map[uuid.UUID]*ConnectionRecord),
	}
}

// AddPeer adds a datagram peer. Adding a known peer is a no-op.
func (r *ConnectionRegistry) AddPeer(id types.ClientIdentity) {
	r.peersLock.Lock()
	defer r.peersLock.Unlock()
	r.peers[id] = struct{}{}
}

// RemovePeer removes a datagram peer and reports whether it was known.
func (r *ConnectionRegistry) RemovePeer(id types.ClientIdentity) bool {
	r.peersLock.Lock()
	defer r.peersLock.Unlock()
	if _, ok := r.peers[id]; !ok {
		return false
	}
	delete(r.peers, id)
	return true
}

// HasPeer reports whether id is a known datagram peer.
func (r *ConnectionRegistry) HasPeer(id types.ClientIdentity) bool {
	r.peersLock.RLock()
	defer r.peersLock.RUnlock()
	_, ok := r.peers[id]
	return ok
}

// Peers returns a copy of the datagram peers.
func (r *ConnectionRegistry) Peers() []types.ClientIdentity {
	r.peersLock.RLock()
	defer r.peersLock.RUnlock()
	peers := make([]types.ClientIdentity, 0, len(r.peers))
	for id := range r.peers {
		peers = append(peers, id)
	}
	return peers
}

// AddRecord retains conn for identity and returns the new record.
func (r *ConnectionRegistry) AddRecord(id types.ClientIdentity, conn net.Conn) (*ConnectionRecord, error) {
	r.recordsLock.Lock()
	defer r.recordsLock.Unlock()

	recordID, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate record id: %v", err)
	}
	record := &ConnectionRecord{
		ID:       recordID,
		Identity: id,
		Conn:     conn,
	}
	r.records[recordID] = record
	return record, nil
}

// RemoveRecord removes a record and reports whether it was present. The
// connection is not closed.
func (r *ConnectionRegistry) RemoveRecord(id uuid.UUID) bool {
	r.recordsLock.Lock()
	defer r.recordsLock.Unlock()
	if _, ok := r.records[id]; !ok {
		return false
	}
	delete(r.records, id)
	return true
}

// Records returns a copy of the retained connections.
func (r *ConnectionRegistry) Records() []ConnectionRecord {
	r.recordsLock.RLock()
	defer r.recordsLock.RUnlock()
	records := make([]ConnectionRecord, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, *record)
	}
	return records
}

// CloseAll closes and removes every retained connection.
func (r *ConnectionRegistry) CloseAll() {
	r.recordsLock.Lock()
	records := r.records
	r.records = make(map[uuid.UUID]*ConnectionRecord)
	r.recordsLock.Unlock()

	for _, record := range records {
		record.Conn.Close()
	}
}
