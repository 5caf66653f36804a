package domain

import "fmt"

// Message is a single queued message. The sender identity travels with the
// message so that a removed sender's undelivered messages can be purged by
// identity rather than by matching the rendered text.
type Message struct {
	Sender string `json:"sender"`
	Body   string `json:"body"`
}

// NewMessage creates a Message from the given sender and body.
func NewMessage(sender, body string) Message {
	return Message{Sender: sender, Body: body}
}

// Render returns the human-facing text of the message. The prefix convention
// is wire-compatible with the original Jackut clients and must not change.
func (m Message) Render() string {
	return fmt.Sprintf("Mensagem de %s: %s", m.Sender, m.Body)
}
