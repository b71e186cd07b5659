package pubsub

import (
	"encoding/json"
	"testing"

	"commerce/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderMessage(t *testing.T) {
	event := &service.OrderEvent{
		Type:          service.EventOrderPlaced,
		OrderID:       "order-1",
		OrderNumber:   "ORD-20240101-AAAA0001",
		Status:        "pending",
		PaymentStatus: "pending",
		Total:         "60.79",
	}

	msg, err := newOrderMessage(event)
	require.NoError(t, err)

	assert.Equal(t, "order-1", msg.orderingKey)
	assert.Equal(t, map[string]string{
		"event_type":     service.EventOrderPlaced,
		"order_id":       "order-1",
		"order_number":   "ORD-20240101-AAAA0001",
		"status":         "pending",
		"payment_status": "pending",
	}, msg.attributes)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(msg.data, &decoded))
	assert.Equal(t, "60.79", decoded.Total)

	event.RequestID = "req-9"
	msg, err = newOrderMessage(event)
	require.NoError(t, err)
	assert.Equal(t, "req-9", msg.attributes["request_id"])

	_, err = newOrderMessage(nil)
	assert.Error(t, err)
}
