package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"catalog/internal/models"

	"github.com/sirupsen/logrus"
	amqp "github.com/streadway/amqp"
)

// ProductEventsQueue receives every product mutation event.
const ProductEventsQueue = "product_events"

// channel is the subset of *amqp.Channel the client uses.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel channel
	mu      sync.Mutex // serializes publishes on the shared channel
	logger  logrus.FieldLogger
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the product events queue.
func NewClient(cfg Config, logger logrus.FieldLogger) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	client, err := newClient(ch, logger)
	if err != nil {
		conn.Close()
		return nil, err
	}
	client.conn = conn

	logger.WithField("queue", ProductEventsQueue).Info("RabbitMQ client connected")
	return client, nil
}

func newClient(ch channel, logger logrus.FieldLogger) (*Client, error) {
	if err := declareQueue(ch); err != nil {
		ch.Close()
		return nil, err
	}
	return &Client{channel: ch, logger: logger}, nil
}

func declareQueue(ch channel) error {
	_, err := ch.QueueDeclare(
		ProductEventsQueue, // name
		true,               // durable
		false,              // delete when unused
		false,              // exclusive
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s: %w", ProductEventsQueue, err)
	}
	return nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishProductEvent publishes event as persistent JSON to the product events queue.
func (c *Client) PublishProductEvent(event models.ProductEvent) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal product event: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	err = c.channel.Publish(
		"",                 // default exchange
		ProductEventsQueue, // routing key: the queue name
		false,              // mandatory
		false,              // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         string(event.Type),
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"event":      event.Type,
		"product_id": event.Product.ID,
	}).Debug("Published product event")
	return nil
}

// ConsumeProductEvents delivers queued events to handle until ctx is done.
// Messages that cannot be decoded are dropped; handler failures are requeued.
func (c *Client) ConsumeProductEvents(ctx context.Context, handle func(models.ProductEvent) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		ProductEventsQueue, // queue
		"",                 // consumer tag
		false,              // auto-ack
		false,              // exclusive
		false,              // no-local
		false,              // no-wait
		nil,                // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, open := <-msgs:
				if !open {
					return
				}
				c.handleDelivery(msg, handle)
			}
		}
	}()
	return nil
}

func (c *Client) handleDelivery(msg amqp.Delivery, handle func(models.ProductEvent) error) {
	entry := c.logger.WithField("delivery_tag", msg.DeliveryTag)

	var event models.ProductEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		entry.WithError(err).Warn("Dropping undecodable product event")
		if nackErr := msg.Nack(false, false); nackErr != nil {
			entry.WithError(nackErr).Error("Error nacking message")
		}
		return
	}

	if err := handle(event); err != nil {
		entry.WithError(err).Warn("Error processing product event, requeueing")
		if nackErr := msg.Nack(false, true); nackErr != nil {
			entry.WithError(nackErr).Error("Error nacking message")
		}
		return
	}
	if ackErr := msg.Ack(false); ackErr != nil {
		entry.WithError(ackErr).Error("Error acking message")
	}
}

// AuditLogger returns a handler that logs each event it receives.
func AuditLogger(logger logrus.FieldLogger) func(models.ProductEvent) error {
	return func(event models.ProductEvent) error {
		logger.WithFields(logrus.Fields{
			"event":       event.Type,
			"product_id":  event.Product.ID,
			"occurred_at": event.OccurredAt.Format(time.RFC3339Nano),
		}).Info("Product event received")
		return nil
	}
}
