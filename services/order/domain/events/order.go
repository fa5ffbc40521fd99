package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/carbuilder/services/order/domain/models"
)

// Topics published by the order bounded context.
const (
	TopicOrderPlaced    = "order.placed"
	TopicOrderFulfilled = "order.fulfilled"
)

// eventVersion is the schema version; increment on breaking changes.
const eventVersion = 1

// OrderPlacedEvent is published after a new order is stored.
type OrderPlacedEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	Version      int       `json:"version"`
	OrderID      int       `json:"order_id"`
	PaintID      int       `json:"paint_id"`
	InteriorID   int       `json:"interior_id"`
	TechnologyID int       `json:"technology_id"`
	WheelID      int       `json:"wheel_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NewOrderPlacedEvent builds the event for a freshly inserted order.
func NewOrderPlacedEvent(o models.Order) OrderPlacedEvent {
	return OrderPlacedEvent{
		EventID:      uuid.New(),
		Version:      eventVersion,
		OrderID:      o.ID,
		PaintID:      o.PaintID,
		InteriorID:   o.InteriorID,
		TechnologyID: o.TechnologyID,
		WheelID:      o.WheelID,
		OccurredAt:   o.CreatedAt,
	}
}

// OrderFulfilledEvent is published when an order's completion flag flips to true.
type OrderFulfilledEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	OrderID    int       `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewOrderFulfilledEvent builds the event for an order fulfilled at now.
func NewOrderFulfilledEvent(o models.Order, now time.Time) OrderFulfilledEvent {
	return OrderFulfilledEvent{
		EventID:    uuid.New(),
		Version:    eventVersion,
		OrderID:    o.ID,
		OccurredAt: now,
	}
}
