package pubsub

import (
	"encoding/json"

	"commerce/internal/domain/service"
	"commerce/internal/errors"
)

// orderMessage is the broker-neutral form of an order event. Subscribers
// filter on the attributes and receive the JSON event as data.
type orderMessage struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func newOrderMessage(event *service.OrderEvent) (*orderMessage, error) {
	if event == nil {
		return nil, errors.New("order event is nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s event", event.Type)
	}

	attributes := map[string]string{
		"event_type":     event.Type,
		"order_id":       event.OrderID,
		"order_number":   event.OrderNumber,
		"status":         event.Status,
		"payment_status": event.PaymentStatus,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	// Events of one order are delivered in commit order.
	return &orderMessage{data: data, attributes: attributes, orderingKey: event.OrderID}, nil
}

func eventLogAttrs(event *service.OrderEvent) []any {
	return []any{
		"event_type", event.Type,
		"order_number", event.OrderNumber,
	}
}
