package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/foodbot/internal/domain"
	"github.com/Gunvolt24/foodbot/internal/ports"
	"github.com/Gunvolt24/foodbot/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу ports.StatusCache.
var _ ports.StatusCache = (*LRUCacheTTL)(nil)

type entry struct {
	orderID   int64
	status    domain.OrderStatus
	expiresAt time.Time // нулевое значение — без истечения
}

// LRUCacheTTL — последние прочитанные статусы заказов.
// Срок жизни фиксирован от момента Set и чтением не продлевается;
// при переполнении вытесняется давно не использованная запись. ttl <= 0 — без истечения.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	ll    *list.List // front — самые свежие по использованию
	index map[int64]*list.Element
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		index:    make(map[int64]*list.Element),
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, orderID int64) (domain.OrderStatus, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[orderID]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return "", false
	}
	ent := elem.Value.(*entry)
	if ent.expired(c.now()) {
		c.drop(elem, "expired")
		return "", false
	}

	c.ll.MoveToFront(elem)
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return ent.status, true
}

// Set — сохранить статус и начать отсчёт TTL заново.
// Пустой статус не кэшируется (это «заказа нет», а не статус).
func (c *LRUCacheTTL) Set(_ context.Context, orderID int64, status domain.OrderStatus) error {
	if status == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = now.Add(c.ttl)
	}

	if elem, ok := c.index[orderID]; ok {
		ent := elem.Value.(*entry)
		ent.status, ent.expiresAt = status, expiresAt
		c.ll.MoveToFront(elem)
		return nil
	}

	c.index[orderID] = c.ll.PushFront(&entry{orderID: orderID, status: status, expiresAt: expiresAt})
	c.shrink(now)
	return nil
}

func (c *LRUCacheTTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// shrink — убирает истёкшие записи с хвоста, затем вытесняет LRU сверх capacity.
func (c *LRUCacheTTL) shrink(now time.Time) {
	for back := c.ll.Back(); back != nil && back.Value.(*entry).expired(now); back = c.ll.Back() {
		c.drop(back, "expired")
	}
	for c.ll.Len() > c.capacity {
		c.drop(c.ll.Back(), "evicted")
	}
	metrics.CacheSize.Set(float64(c.ll.Len()))
}

// drop — удалить запись под мьютексом с учётом причины в метриках.
func (c *LRUCacheTTL) drop(elem *list.Element, reason string) {
	delete(c.index, elem.Value.(*entry).orderID)
	c.ll.Remove(elem)
	metrics.CacheOps.WithLabelValues(reason).Inc()
	metrics.CacheSize.Set(float64(c.ll.Len()))
}
