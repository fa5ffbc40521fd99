package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/carbuilder/services/order/domain/events"
	"github.com/ghuser/carbuilder/services/order/domain/models"
)

func TestNewOrderPlacedEvent(t *testing.T) {
	created := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	o := models.Order{
		ID:        7,
		CreatedAt: created,
		Selection: models.Selection{PaintID: 3, InteriorID: 4, TechnologyID: 2, WheelID: 1},
	}

	evt := events.NewOrderPlacedEvent(o)

	if evt.EventID == uuid.Nil {
		t.Fatal("expected non-nil EventID")
	}
	if evt.Version != 1 {
		t.Errorf("Version: got %d, want 1", evt.Version)
	}
	if evt.OrderID != 7 || evt.PaintID != 3 || evt.InteriorID != 4 || evt.TechnologyID != 2 || evt.WheelID != 1 {
		t.Errorf("unexpected ids: %+v", evt)
	}
	if !evt.OccurredAt.Equal(created) {
		t.Errorf("OccurredAt: got %v, want %v", evt.OccurredAt, created)
	}
}

func TestOrderPlacedEvent_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(events.NewOrderPlacedEvent(models.Order{ID: 1}))
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "order_id", "paint_id", "interior_id", "technology_id", "wheel_id", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestNewOrderFulfilledEvent(t *testing.T) {
	now := time.Now().UTC()
	a := events.NewOrderFulfilledEvent(models.Order{ID: 5}, now)
	b := events.NewOrderFulfilledEvent(models.Order{ID: 5}, now)

	if a.OrderID != 5 || !a.OccurredAt.Equal(now) {
		t.Errorf("unexpected event: %+v", a)
	}
	if a.EventID == b.EventID {
		t.Error("expected unique event ids")
	}
}

func TestTopics(t *testing.T) {
	if events.TopicOrderPlaced != "order.placed" {
		t.Errorf("unexpected topic %q", events.TopicOrderPlaced)
	}
	if events.TopicOrderFulfilled != "order.fulfilled" {
		t.Errorf("unexpected topic %q", events.TopicOrderFulfilled)
	}
}
