package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	interfaces "github.com/sheikh-saqib/lender-tracker/internal/interfaces"
)

// batchTimeout bounds how long a single event waits for a batch to fill.
// Events are published one at a time, so kafka-go's 1s default would stall
// every add.
const batchTimeout = 10 * time.Millisecond

type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher returns a publisher writing to the given brokers. The topic is
// chosen per message, so the writer itself is not bound to one.
func NewPublisher(brokers []string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: batchTimeout,
			WriteTimeout: 5 * time.Second,
		},
	}
}

func (p *Publisher) Publish(topic string, event any) error {
	msg, err := newMessage(topic, event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(context.Background(), msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// keyed is implemented by events that carry their own id.
type keyed interface {
	Key() string
}

func newMessage(topic string, event any) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}

	msg := kafka.Message{
		Topic: topic,
		Value: data,
	}
	if k, ok := event.(keyed); ok {
		msg.Key = []byte(k.Key())
	}
	return msg, nil
}

var _ interfaces.EventPublisher = (*Publisher)(nil)
