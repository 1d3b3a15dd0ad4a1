package rabbitmq

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumer_Handle(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		status        int
		wantCalled    bool
		wantErr       bool
		wantMalformed bool
	}{
		{
			name:       "success: purge endpoint called",
			body:       `{"property_id":42,"owner_id":1,"deleted_by":1}`,
			status:     http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "success: client error is not retried",
			body:       `{"property_id":42}`,
			status:     http.StatusBadRequest,
			wantCalled: true,
		},
		{
			name:       "error: server error is retried",
			body:       `{"property_id":42}`,
			status:     http.StatusInternalServerError,
			wantCalled: true,
			wantErr:    true,
		},
		{
			name:          "error: invalid json",
			body:          `{"property_id":`,
			wantErr:       true,
			wantMalformed: true,
		},
		{
			name:          "error: missing property id",
			body:          `{}`,
			wantErr:       true,
			wantMalformed: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			called := false
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/internal/v1/property/42/favorites/purge", r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := &Consumer{apiURL: srv.URL, apiKey: "secret", httpClient: srv.Client()}

			err := c.handle(context.Background(), []byte(tt.body))
			assert.Equal(t, tt.wantCalled, called)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMalformed, errors.Is(err, errMalformedMessage))
		})
	}
}

type recordingAcker struct {
	acked    bool
	requeued bool
	at       time.Time
}

func (a *recordingAcker) Ack(tag uint64, multiple bool) error {
	a.acked = true
	a.at = time.Now()
	return nil
}

func (a *recordingAcker) Nack(tag uint64, multiple, requeue bool) error {
	a.requeued = requeue
	a.at = time.Now()
	return nil
}

func (a *recordingAcker) Reject(tag uint64, requeue bool) error {
	a.requeued = requeue
	a.at = time.Now()
	return nil
}

func TestConsumer_Settle(t *testing.T) {
	const delay = 50 * time.Millisecond

	tests := []struct {
		name         string
		err          error
		wantAcked    bool
		wantRequeued bool
		wantWait     bool
	}{
		{
			name:      "success: acked right away",
			wantAcked: true,
		},
		{
			name:      "malformed: acked and dropped",
			err:       errors.Join(errMalformedMessage, errors.New("bad json")),
			wantAcked: true,
		},
		{
			name:         "failure: requeued after the retry delay",
			err:          errors.New("API returned status 503"),
			wantRequeued: true,
			wantWait:     true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			acker := &recordingAcker{}
			c := &Consumer{retryDelay: delay}

			start := time.Now()
			c.settle(context.Background(), amqp091.Delivery{Acknowledger: acker, DeliveryTag: 1}, tt.err)

			assert.Equal(t, tt.wantAcked, acker.acked)
			assert.Equal(t, tt.wantRequeued, acker.requeued)
			if tt.wantWait {
				assert.GreaterOrEqual(t, acker.at.Sub(start), delay)
			} else {
				assert.Less(t, acker.at.Sub(start), delay)
			}
		})
	}

	t.Run("cancelled context requeues without waiting", func(t *testing.T) {
		acker := &recordingAcker{}
		c := &Consumer{retryDelay: time.Hour}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c.settle(ctx, amqp091.Delivery{Acknowledger: acker, DeliveryTag: 1}, errors.New("API returned status 500"))
		assert.True(t, acker.requeued)
	})
}
