package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"crm-hub-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// ChangeHandler processes one table change notification.
type ChangeHandler func(ctx context.Context, change events.ChangeEvent) error

// Subscriber handles listening for events from NATS.
type Subscriber struct {
	nc *nats.Conn
	js jetstream.JetStream
}

// NewSubscriber creates a new NATS subscriber.
func NewSubscriber(url string) (*Subscriber, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Subscriber{nc: nc, js: js}, nil
}

// SubscribeChanges registers a handler for change notifications on one table.
// It uses a persistent consumer (Durable) to ensure no messages are lost.
func (s *Subscriber) SubscribeChanges(table string, durableName string, handler ChangeHandler) error {
	ctx := context.Background()
	subject := fmt.Sprintf("events.changes.%s", table)

	consumer, err := s.js.CreateOrUpdateConsumer(ctx, "EVENTS", jetstream.ConsumerConfig{
		Durable:       durableName,
		FilterSubject: subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	_, err = consumer.Consume(func(msg jetstream.Msg) {
		var change events.ChangeEvent
		if err := json.Unmarshal(msg.Data(), &change); err != nil {
			log.Printf("Error unmarshalling change event: %v", err)
			msg.Nak()
			return
		}

		if err := handler(context.Background(), change); err != nil {
			log.Printf("Handler failed for change on %s: %v", change.Table, err)
			msg.Nak() // Retry
			return
		}

		msg.Ack()
	})

	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	log.Printf("Subscribed to %s with durable %s", subject, durableName)
	return nil
}

// Close closes the connection.
func (s *Subscriber) Close() {
	if s.nc != nil {
		s.nc.Close()
	}
}
