// Package subscribers holds in-process consumers of order events.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/carbuilder/pkg/app"
	"github.com/ghuser/carbuilder/pkg/logger"
	domainevents "github.com/ghuser/carbuilder/services/order/domain/events"
)

// Topics consumed by Register.
var Topics = []string{domainevents.TopicOrderPlaced, domainevents.TopicOrderFulfilled}

// Register subscribes the order audit log to every order topic.
// Subscriptions end when ctx is cancelled or the bus is closed.
func Register(ctx context.Context, a *app.Application) error {
	handlers := map[string]func(context.Context, *message.Message) error{
		domainevents.TopicOrderPlaced:    handleOrderPlaced(a.Logger),
		domainevents.TopicOrderFulfilled: handleOrderFulfilled(a.Logger),
	}

	for _, topic := range Topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handlers[topic])
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
		go func() {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
	}

	a.Logger.Info("event subscribers registered", "topics", Topics)
	return nil
}

func handleOrderPlaced(log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt domainevents.OrderPlacedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode order.placed: %w", err)
		}
		log.InfoContext(ctx, "audit: order placed",
			"event_id", evt.EventID,
			"order_id", evt.OrderID,
			"paint_id", evt.PaintID,
			"interior_id", evt.InteriorID,
			"technology_id", evt.TechnologyID,
			"wheel_id", evt.WheelID,
		)
		return nil
	}
}

func handleOrderFulfilled(log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt domainevents.OrderFulfilledEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode order.fulfilled: %w", err)
		}
		log.InfoContext(ctx, "audit: order fulfilled",
			"event_id", evt.EventID,
			"order_id", evt.OrderID,
		)
		return nil
	}
}
