package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockConnection struct {
	mock.Mock
}

func (m *MockConnection) Channel() (Channel, error) {
	args := m.Called()
	var ch Channel
	if v := args.Get(0); v != nil {
		ch = v.(Channel)
	}
	return ch, args.Error(1)
}

func (m *MockConnection) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockConnection) IsClosed() bool {
	args := m.Called()
	return args.Bool(0)
}

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) ExchangeDeclare(
	name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table,
) error {
	callArgs := m.Called(name, kind, durable, autoDelete, internal, noWait, args)
	return callArgs.Error(0)
}

func (m *MockChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *MockChannel) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestPublishStatusChanged_PublishesFanoutEvent(t *testing.T) {
	placedAt := time.Date(2025, 6, 12, 18, 30, 0, 0, time.UTC)
	testOrder := pickupOrder(t, placedAt)

	channel := new(MockChannel)
	channel.On("ExchangeDeclare", "order_status_fanout", "fanout", true, false, false, false,
		amqp.Table(nil)).Return(nil)

	var published amqp.Publishing
	channel.On("Publish", "order_status_fanout", "", false, false, mock.AnythingOfType("amqp091.Publishing")).
		Run(func(args mock.Arguments) {
			published = args.Get(4).(amqp.Publishing)
		}).
		Return(nil)
	channel.On("Close").Return(nil)

	conn := new(MockConnection)
	conn.On("Channel").Return(channel, nil)

	err := NewPublisher(conn).PublishStatusChanged(context.Background(), testOrder)
	require.NoError(t, err)

	var msg StatusChangedMessage
	require.NoError(t, json.Unmarshal(published.Body, &msg))
	assert.Equal(t, testOrder.ID().String(), msg.OrderID)
	assert.Equal(t, "burger-palace", msg.ShopID)
	assert.Equal(t, "received", msg.Status)
	assert.Equal(t, "pending", msg.PaymentStatus)
	assert.Equal(t, "pickup", msg.DeliveryType)
	assert.Equal(t, "9.00", msg.Total)
	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, uint8(amqp.Persistent), published.DeliveryMode)

	conn.AssertExpectations(t)
	channel.AssertExpectations(t)
}

func TestPublishStatusChanged_ChannelError_ReturnsError(t *testing.T) {
	placedAt := time.Date(2025, 6, 12, 18, 30, 0, 0, time.UTC)
	testOrder := pickupOrder(t, placedAt)

	conn := new(MockConnection)
	conn.On("Channel").Return(nil, assert.AnError)

	err := NewPublisher(conn).PublishStatusChanged(context.Background(), testOrder)
	require.Error(t, err)

	conn.AssertExpectations(t)
}

func pickupOrder(t *testing.T, placedAt time.Time) *order.Order {
	t.Helper()

	line, err := order.NewItem(
		kernel.NewUUID(),
		"Fries",
		decimal.NewFromFloat(4.50),
		decimal.NewFromFloat(4.50),
		2,
		nil,
		"",
	)
	require.NoError(t, err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		"burger-palace",
		"Alex Wong",
		"+15550100",
		"",
		"",
		order.Pickup,
		[]order.Item{line},
		decimal.Zero,
		order.Cash,
		"",
		placedAt,
	)
	require.NoError(t, err)
	return testOrder
}
