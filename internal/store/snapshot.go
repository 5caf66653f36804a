package store

import (
	"context"

	"github.com/wbrmagalhaes/jackut-api/internal/domain"
	"github.com/wbrmagalhaes/jackut-api/internal/social"
)

// Snapshot is the full in-memory state of the system: accounts, relation
// sets, direct-message queues and communities. The interaction service hands
// one to the Snapshotter after every successful mutation.
type Snapshot struct {
	Accounts    map[string]*domain.Account       `json:"accounts"`
	Relations   map[string]*social.RelationState `json:"relations"`
	Mailboxes   map[string][]domain.Message      `json:"mailboxes"`
	Communities *social.CommunitySnapshot        `json:"communities"`
}

// Snapshotter persists and restores full-state snapshots. Implementations own
// durability; the caller treats a Save failure as log-and-continue because the
// in-memory mutation has already committed.
type Snapshotter interface {
	// Save persists the given snapshot, replacing any previous one.
	Save(ctx context.Context, snap *Snapshot) error

	// Load returns the most recently saved snapshot.
	// Returns ErrSnapshotNotFound when nothing has been persisted yet.
	Load(ctx context.Context) (*Snapshot, error)
}

// NopSnapshotter is a Snapshotter that persists nothing. Used when the server
// runs without a durability backend, and in tests.
type NopSnapshotter struct{}

// Save implements Snapshotter by discarding the snapshot.
func (NopSnapshotter) Save(ctx context.Context, snap *Snapshot) error { return nil }

// Load implements Snapshotter; there is never a snapshot to load.
func (NopSnapshotter) Load(ctx context.Context) (*Snapshot, error) {
	return nil, ErrSnapshotNotFound
}
