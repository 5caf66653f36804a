package social

import (
	"slices"

	"github.com/wbrmagalhaes/jackut-api/internal/domain"
)

// Mailboxes holds the per-account direct-message queues. Delivery appends,
// consumption is destructive and strictly FIFO, and purging matches messages
// by the sender identity they carry rather than by rendered text.
type Mailboxes struct {
	queues map[string][]domain.Message
}

// NewMailboxes creates an empty mailbox set.
func NewMailboxes() *Mailboxes {
	return &Mailboxes{queues: make(map[string][]domain.Message)}
}

// Deliver appends msg to the recipient's queue.
func (m *Mailboxes) Deliver(recipient string, msg domain.Message) {
	m.queues[recipient] = append(m.queues[recipient], msg)
}

// Consume removes and returns the oldest message in owner's queue.
// Returns ErrNoMessages when the queue is empty.
func (m *Mailboxes) Consume(owner string) (domain.Message, error) {
	queue := m.queues[owner]
	if len(queue) == 0 {
		return domain.Message{}, ErrNoMessages
	}

	msg := queue[0]
	m.queues[owner] = queue[1:]
	return msg, nil
}

// Len returns the number of queued messages for owner.
func (m *Mailboxes) Len(owner string) int {
	return len(m.queues[owner])
}

// PurgeFrom drops every message in owner's queue authored by sender.
// Used on account removal so a deleted sender's undelivered messages vanish.
func (m *Mailboxes) PurgeFrom(owner, sender string) {
	queue, ok := m.queues[owner]
	if !ok {
		return
	}
	m.queues[owner] = slices.DeleteFunc(queue, func(msg domain.Message) bool {
		return msg.Sender == sender
	})
}

// RemoveAccount discards owner's queue entirely.
func (m *Mailboxes) RemoveAccount(owner string) {
	delete(m.queues, owner)
}

// Snapshot returns all queues keyed by owner, sharing no memory with the set.
func (m *Mailboxes) Snapshot() map[string][]domain.Message {
	out := make(map[string][]domain.Message, len(m.queues))
	for owner, queue := range m.queues {
		out[owner] = slices.Clone(queue)
	}
	return out
}

// Restore replaces all queues with the given snapshot.
func (m *Mailboxes) Restore(queues map[string][]domain.Message) {
	m.queues = make(map[string][]domain.Message, len(queues))
	for owner, queue := range queues {
		m.queues[owner] = slices.Clone(queue)
	}
}

// Reset discards every queue.
func (m *Mailboxes) Reset() {
	m.queues = make(map[string][]domain.Message)
}
