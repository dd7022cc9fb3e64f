package rabbitmq

import (
	"context"
	"fmt"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/elevatescholar/scholarship-api/internal/contracts/event"
)

func TestNewPublisher_EmptyURL(t *testing.T) {
	_, err := NewPublisher("", "")
	assert.Error(t, err)
}

func TestPublishEvent_RejectsMissingKeys(t *testing.T) {
	p := &Publisher{exchange: DefaultExchange}
	ctx := context.Background()

	assert.EqualError(t, p.PublishEvent(ctx, "", "id-1", []byte("{}")), "missing routingKey")
	assert.EqualError(t, p.PublishEvent(ctx, event.RoutingPaymentConfirmed, " ", []byte("{}")), "missing messageID")
}

func TestPublisher_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	ctx := context.Background()

	rabbitC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3-management",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForLog("Server startup complete").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rabbitC.Terminate(ctx) })

	host, err := rabbitC.Host(ctx)
	require.NoError(t, err)
	port, err := rabbitC.MappedPort(ctx, "5672")
	require.NoError(t, err)
	url := fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())

	p, err := NewPublisher(url, "test.scholarship.events")
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	require.NoError(t, p.Ping(ctx))

	conn, err := amqp.Dial(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	ch, err := conn.Channel()
	require.NoError(t, err)
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, "payment.#", "test.scholarship.events", false, nil))
	msgs, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	require.NoError(t, err)

	t.Run("routed", func(t *testing.T) {
		require.NoError(t, p.PublishEvent(ctx, event.RoutingPaymentConfirmed, "msg-1", []byte(`{"ok":true}`)))
		select {
		case d := <-msgs:
			assert.Equal(t, "msg-1", d.MessageId)
			assert.JSONEq(t, `{"ok":true}`, string(d.Body))
		case <-time.After(5 * time.Second):
			t.Fatal("message not delivered")
		}
	})

	t.Run("unroutable", func(t *testing.T) {
		err := p.PublishEvent(ctx, "nobody.listens", "msg-2", []byte(`{}`))
		if err != nil {
			assert.Contains(t, err.Error(), "unroutable")
		}
	})
}
