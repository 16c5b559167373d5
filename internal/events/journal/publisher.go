package journal

import (
	"encoding/json"
	"time"

	"github.com/sheikh-saqib/interest-ledger/internal/interfaces"
	"github.com/sheikh-saqib/interest-ledger/internal/logger"
)

// Message is one published event as it was encoded at publish time.
type Message struct {
	Topic       string
	Value       []byte
	PublishedAt time.Time
}

// Publisher keeps an in-process journal of domain events for the life of
// the run and mirrors each one to the debug log.
type Publisher struct {
	messages []Message
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.messages = append(p.messages, Message{
		Topic:       topic,
		Value:       data,
		PublishedAt: time.Now(),
	})
	logger.Debug("event published", logger.Fields{
		"topic": topic,
		"event": json.RawMessage(data),
	})
	return nil
}

// Messages returns a copy of everything published so far, oldest first.
func (p *Publisher) Messages() []Message {
	out := make([]Message, len(p.messages))
	copy(out, p.messages)
	return out
}

// Topic returns the messages published on a single topic.
func (p *Publisher) Topic(topic string) []Message {
	var out []Message
	for _, m := range p.messages {
		if m.Topic == topic {
			out = append(out, m)
		}
	}
	return out
}

var _ interfaces.EventPublisher = (*Publisher)(nil)
