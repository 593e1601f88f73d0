package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Queue names for booking lifecycle events.
const (
	CreatedQueueName = "booking.created"
	DeletedQueueName = "booking.deleted"
)

// Publisher publishes booking events to RabbitMQ.  Publishing is
// best-effort: errors are logged and returned so callers can ignore them
// without interrupting the request flow.  A Publisher with an empty URL is
// disabled and publishes nothing.
type Publisher struct {
	url string
}

func NewPublisher(url string) *Publisher { return &Publisher{url: url} }

// PublishBookingCreated publishes a BookingCreatedEvent to the
// booking.created queue.
func (p *Publisher) PublishBookingCreated(ctx context.Context, ev BookingCreatedEvent) error {
	return p.publish(ctx, CreatedQueueName, ev)
}

// PublishBookingDeleted publishes a BookingDeletedEvent to the
// booking.deleted queue.
func (p *Publisher) PublishBookingDeleted(ctx context.Context, ev BookingDeletedEvent) error {
	return p.publish(ctx, DeletedQueueName, ev)
}

// publish dials the broker, declares the durable queue and publishes a
// persistent JSON message.  A connection per publish keeps the publisher
// stateless; booking mutations are far too infrequent for pooling to
// matter here.
func (p *Publisher) publish(ctx context.Context, queueName string, payload any) error {
	if p == nil || p.url == "" {
		return nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
