package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/carbuilder/pkg/cache"
	"github.com/ghuser/carbuilder/pkg/logger"
	catalogsvcs "github.com/ghuser/carbuilder/services/catalog/application/services"
	catalogmemory "github.com/ghuser/carbuilder/services/catalog/infrastructure/persistence/memory"
	orderdomain "github.com/ghuser/carbuilder/services/order/domain"
	domainevents "github.com/ghuser/carbuilder/services/order/domain/events"
	"github.com/ghuser/carbuilder/services/order/domain/models"
	"github.com/ghuser/carbuilder/services/order/infrastructure/adapter"
	ordermemory "github.com/ghuser/carbuilder/services/order/infrastructure/persistence/memory"
)

type recordingPublisher struct {
	mu    sync.Mutex
	sent  map[string][]*message.Message
	fails error
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, msgs ...*message.Message) error {
	if p.fails != nil {
		return p.fails
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sent == nil {
		p.sent = make(map[string][]*message.Message)
	}
	p.sent[topic] = append(p.sent[topic], msgs...)
	return nil
}

func (p *recordingPublisher) count(topic string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sent[topic])
}

// memoryIdempotency mimics cache.IdempotencyStore without Redis.
type memoryIdempotency struct {
	mu      sync.Mutex
	records map[string]cache.IdempotencyRecord
	err     error
}

func newMemoryIdempotency() *memoryIdempotency {
	return &memoryIdempotency{records: make(map[string]cache.IdempotencyRecord)}
}

func (m *memoryIdempotency) Reserve(_ context.Context, key string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[key]; ok {
		return false, nil
	}
	m.records[key] = cache.IdempotencyRecord{Pending: true}
	return true, nil
}

func (m *memoryIdempotency) Lookup(_ context.Context, key string) (cache.IdempotencyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[key]
	if !ok {
		return cache.IdempotencyRecord{}, redis.Nil
	}
	return rec, nil
}

func (m *memoryIdempotency) Complete(_ context.Context, key string, orderID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = cache.IdempotencyRecord{OrderID: orderID}
	return nil
}

func (m *memoryIdempotency) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}

func newTestService(opts ...Option) (*OrderService, *ordermemory.OrderRepository) {
	repo := ordermemory.NewOrderRepository()
	catalog := adapter.NewCatalogReader(catalogsvcs.NewCatalogService(catalogmemory.NewCatalogRepository()))
	return NewOrderService(repo, catalog, logger.NewNop(), opts...), repo
}

var validSel = models.Selection{PaintID: 3, InteriorID: 4, TechnologyID: 2, WheelID: 1}

func TestCreate_AssemblesAndStores(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc, repo := newTestService(WithPublisher(pub))

	res, err := svc.Create(ctx, validSel, "")
	require.NoError(t, err)
	assert.False(t, res.Replayed)

	d := res.Order
	assert.Equal(t, 1, d.ID)
	assert.False(t, d.Complete)
	assert.False(t, d.CreatedAt.IsZero())
	assert.Equal(t, "Firebrick Red", d.PaintColor.Color)
	assert.Equal(t, "Black Leather", d.Interior.Material)
	assert.Equal(t, "17-inch Pair Radial", d.Wheels.Style)
	assert.Equal(t, "2550", d.Total().String())

	stored, found, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, validSel, stored.Selection)

	require.Equal(t, 1, pub.count(domainevents.TopicOrderPlaced))
	var evt domainevents.OrderPlacedEvent
	require.NoError(t, json.Unmarshal(pub.sent[domainevents.TopicOrderPlaced][0].Payload, &evt))
	assert.Equal(t, 1, evt.OrderID)
	assert.Equal(t, 3, evt.PaintID)
}

func TestCreate_InvalidReferencesStoreNothing(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc, repo := newTestService(WithPublisher(pub))

	bad := validSel
	bad.PaintID = 9999
	bad.TechnologyID = 0
	_, err := svc.Create(ctx, bad, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, orderdomain.ErrReferenceNotFound)
	fields := orderdomain.ReferenceFields(err)
	assert.Contains(t, fields, orderdomain.FieldPaintID)
	assert.Contains(t, fields, orderdomain.FieldTechnologyID)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Zero(t, pub.count(domainevents.TopicOrderPlaced))
}

func TestCreate_PublishFailureDoesNotFailRequest(t *testing.T) {
	svc, _ := newTestService(WithPublisher(&recordingPublisher{fails: errors.New("bus closed")}))
	res, err := svc.Create(context.Background(), validSel, "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Order.ID)
}

func TestCreate_IdempotencyKeyReplays(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc, repo := newTestService(WithPublisher(pub), WithIdempotencyStore(newMemoryIdempotency()))

	first, err := svc.Create(ctx, validSel, "abc")
	require.NoError(t, err)
	assert.False(t, first.Replayed)

	second, err := svc.Create(ctx, validSel, "abc")
	require.NoError(t, err)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.Order.ID, second.Order.ID)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, 1, pub.count(domainevents.TopicOrderPlaced))

	other, err := svc.Create(ctx, validSel, "def")
	require.NoError(t, err)
	assert.Equal(t, 2, other.Order.ID)
}

func TestCreate_IdempotencyKeyInFlight(t *testing.T) {
	store := newMemoryIdempotency()
	store.records["abc"] = cache.IdempotencyRecord{Pending: true}
	svc, _ := newTestService(WithIdempotencyStore(store))

	_, err := svc.Create(context.Background(), validSel, "abc")
	assert.ErrorIs(t, err, orderdomain.ErrIdempotencyKeyInFlight)
}

func TestCreate_IdempotencyKeyReleasedOnInvalidOrder(t *testing.T) {
	ctx := context.Background()
	store := newMemoryIdempotency()
	svc, _ := newTestService(WithIdempotencyStore(store))

	bad := validSel
	bad.WheelID = 50
	_, err := svc.Create(ctx, bad, "abc")
	require.ErrorIs(t, err, orderdomain.ErrReferenceNotFound)
	assert.NotContains(t, store.records, "abc")

	res, err := svc.Create(ctx, validSel, "abc")
	require.NoError(t, err)
	assert.False(t, res.Replayed)
}

func TestCreate_IdempotencyKeyForUnknownOrderCreatesFresh(t *testing.T) {
	store := newMemoryIdempotency()
	store.records["abc"] = cache.IdempotencyRecord{OrderID: 41}
	svc, _ := newTestService(WithIdempotencyStore(store))

	res, err := svc.Create(context.Background(), validSel, "abc")
	require.NoError(t, err)
	assert.False(t, res.Replayed)
	assert.Equal(t, 1, res.Order.ID)
	assert.Equal(t, cache.IdempotencyRecord{OrderID: 1}, store.records["abc"])
}

func TestCreate_IdempotencyStoreError(t *testing.T) {
	store := newMemoryIdempotency()
	store.err = errors.New("connection refused")
	svc, repo := newTestService(WithIdempotencyStore(store))

	_, err := svc.Create(context.Background(), validSel, "abc")
	require.Error(t, err)

	all, _ := repo.All(context.Background())
	assert.Empty(t, all)
}

func TestCreate_KeyIgnoredWithoutStore(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	a, err := svc.Create(ctx, validSel, "abc")
	require.NoError(t, err)
	b, err := svc.Create(ctx, validSel, "abc")
	require.NoError(t, err)
	assert.NotEqual(t, a.Order.ID, b.Order.ID)
}

func TestList_FiltersCompleteAndPaint(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	red := validSel
	blue := validSel
	blue.PaintID = 2
	for _, sel := range []models.Selection{red, blue, red} {
		_, err := svc.Create(ctx, sel, "")
		require.NoError(t, err)
	}
	_, err := svc.Fulfill(ctx, 3)
	require.NoError(t, err)

	res, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, res.Orders, 2)
	assert.Equal(t, 1, res.Orders[0].ID)
	assert.Equal(t, 2, res.Orders[1].ID)
	assert.Empty(t, res.Unresolved)

	paint := 3
	res, err = svc.List(ctx, &paint)
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, 1, res.Orders[0].ID)

	unknown := 77
	res, err = svc.List(ctx, &unknown)
	require.NoError(t, err)
	assert.Empty(t, res.Orders)
	assert.NotNil(t, res.Orders)
}

func TestList_SkipsOrdersWithDanglingReferences(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	_, err := svc.Create(ctx, validSel, "")
	require.NoError(t, err)
	dangling := validSel
	dangling.InteriorID = 12
	_, err = repo.Insert(ctx, models.NewOrder(dangling))
	require.NoError(t, err)

	res, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, 1, res.Orders[0].ID)
	assert.Equal(t, []int{2}, res.Unresolved)
}

func TestFulfill(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc, _ := newTestService(WithPublisher(pub))

	_, err := svc.Create(ctx, validSel, "")
	require.NoError(t, err)

	o, err := svc.Fulfill(ctx, 1)
	require.NoError(t, err)
	assert.True(t, o.Complete)
	assert.Equal(t, validSel, o.Selection)

	o, err = svc.Fulfill(ctx, 1)
	require.NoError(t, err)
	assert.True(t, o.Complete)
	assert.Equal(t, 1, pub.count(domainevents.TopicOrderFulfilled), "only the first fulfill publishes")
}

func TestFulfill_UnknownOrder(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Fulfill(context.Background(), 7)
	assert.ErrorIs(t, err, orderdomain.ErrOrderNotFound)
}
