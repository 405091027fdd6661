package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	return &Consumer{conn: conn, channel: ch}, nil
}

// ConsumeViewEvents delivers decoded view events to handler until ctx
// is done. A handler error leaves the message unacked for redelivery.
func (c *Consumer) ConsumeViewEvents(ctx context.Context, handler func(context.Context, *ViewEvent) error) error {
	deliveries, err := c.channel.Consume(
		ViewEventQueue,
		"view-counter",
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			var event ViewEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				logrus.Errorf("dropping malformed view event: %v", err)
				d.Nack(false, false)
				continue
			}
			if err := handler(ctx, &event); err != nil {
				logrus.Errorf("view event handling failed for video %d: %v", event.VideoID, err)
				d.Nack(false, true)
				continue
			}
			d.Ack(false)
		}
	}
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
