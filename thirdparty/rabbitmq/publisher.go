package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	propertyEventsExchange = "property_events_exchange"
	propertyDeletedQueue   = "property_deleted_queue"
	propertyDeletedKey     = "property.deleted"
)

type PropertyDeletedMessage struct {
	PropertyID uint64    `json:"property_id"`
	OwnerID    uint64    `json:"owner_id"`
	DeletedBy  uint64    `json:"deleted_by"`
	DeletedAt  time.Time `json:"deleted_at"`
}

// EventPublisher is what the application layer needs from the broker.
type EventPublisher interface {
	PublishPropertyDeleted(msg PropertyDeletedMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// declareTopology is shared by publisher and consumer so either may start first.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		propertyEventsExchange, // name
		"direct",               // type
		true,                   // durable
		false,                  // auto-delete
		false,                  // internal
		false,                  // no-wait
		nil,                    // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		propertyDeletedQueue, // name
		true,                 // durable
		false,                // auto-delete
		false,                // exclusive
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		propertyDeletedQueue,   // queue name
		propertyDeletedKey,     // routing key
		propertyEventsExchange, // exchange
		false,                  // no-wait
		nil,                    // arguments
	)
}

func (p *Publisher) PublishPropertyDeleted(msg PropertyDeletedMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		propertyEventsExchange, // exchange
		propertyDeletedKey,     // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.DeletedAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
