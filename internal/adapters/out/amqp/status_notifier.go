// Package amqp publishes order status change notifications to RabbitMQ.
// Downstream consumers (customer notifications, reporting) subscribe to the
// fanout exchange; the core never waits for them.
package amqp

import (
	"context"
	"encoding/json"
	"time"

	"autoservice/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const statusExchange = "order_status_fanout"

// StatusNotifier publishes OrderStatusChanged events to a fanout exchange.
type StatusNotifier struct {
	channel *amqp.Channel
}

// NewStatusNotifier declares the status exchange on the given channel and
// returns a notifier publishing to it.
func NewStatusNotifier(channel *amqp.Channel) (*StatusNotifier, error) {
	err := channel.ExchangeDeclare(
		statusExchange, // name
		"fanout",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return nil, err
	}

	return &StatusNotifier{channel: channel}, nil
}

// PublishStatusChanged publishes one committed status change as a
// persistent JSON message.
func (n *StatusNotifier) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return n.channel.PublishWithContext(ctx,
		statusExchange, // exchange
		"",             // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		})
}
