package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/stockland/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var errMalformedMessage = errors.New("malformed message")

type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	apiURL     string
	apiKey     string
	httpClient *http.Client
	retryDelay time.Duration
}

const defaultRetryDelay = 5 * time.Second

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
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

	return &Consumer{
		conn:       conn,
		channel:    channel,
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		retryDelay: defaultRetryDelay,
	}, nil
}

// Start consumes property-deleted events until ctx is done or the channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		propertyDeletedQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				c.settle(ctx, msg, c.handle(ctx, msg.Body))
			}
		}
	}()

	return nil
}

// settle acks or requeues msg depending on the outcome of handle. A requeue
// waits retryDelay first, so with QoS 1 a failing API is not hammered.
func (c *Consumer) settle(ctx context.Context, msg amqp091.Delivery, err error) {
	switch {
	case errors.Is(err, errMalformedMessage):
		logger.Error("[Consumer] drop message", zap.String("error", err.Error()))
		_ = msg.Ack(false)
	case err != nil:
		logger.Error("[Consumer] purge favorites failed, requeue",
			zap.String("error", err.Error()),
			zap.Duration("retry_delay", c.retryDelay),
			zap.Bool("redelivered", msg.Redelivered),
		)
		timer := time.NewTimer(c.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
		_ = msg.Nack(false, true)
	default:
		_ = msg.Ack(false)
	}
}

func (c *Consumer) handle(ctx context.Context, body []byte) error {
	var event PropertyDeletedMessage
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%w: %v", errMalformedMessage, err)
	}
	if event.PropertyID == 0 {
		return fmt.Errorf("%w: missing property_id", errMalformedMessage)
	}

	if err := c.callPurgeFavoritesAPI(ctx, event.PropertyID); err != nil {
		return err
	}

	logger.Info("[Consumer] favorites purged", zap.Uint64("property_id", event.PropertyID))
	return nil
}

func (c *Consumer) callPurgeFavoritesAPI(ctx context.Context, propertyID uint64) error {
	url := fmt.Sprintf("%s/internal/v1/property/%d/favorites/purge", c.apiURL, propertyID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	// Add authorization header using the API key (internal service key)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "property-events-consumer")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	// 4xx will not succeed on retry, only server errors are requeued
	if resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
	if resp.StatusCode >= 300 {
		logger.Warn("[Consumer] purge rejected", zap.Uint64("property_id", propertyID), zap.Int("status", resp.StatusCode))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
