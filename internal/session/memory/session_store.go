package memory

import (
	"context"
	"sync"

	"github.com/Gunvolt24/foodbot/internal/domain"
	"github.com/Gunvolt24/foodbot/internal/ports"
	"github.com/Gunvolt24/foodbot/pkg/metrics"
)

// Проверка, что SessionStore удовлетворяет интерфейсу ports.SessionStore.
var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore — незавершённые заказы в памяти процесса.
// Записи живут до оформления заказа или перезапуска процесса (без TTL).
// Все операции выполняются под одним мьютексом: внутри нет I/O,
// поэтому read-modify-write над одной сессией не может перемешаться.
type SessionStore struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func NewSessionStore() *SessionStore {
	return &SessionStore{orders: make(map[string]*domain.Order)}
}

func (s *SessionStore) Merge(_ context.Context, sessionID string, items *domain.Order) *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[sessionID]
	if !ok {
		order = domain.NewOrder()
		s.orders[sessionID] = order
		s.reportSize()
	}
	order.Merge(items)
	return order.Clone()
}

func (s *SessionStore) Update(_ context.Context, sessionID string, fn func(order *domain.Order)) (*domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[sessionID]
	if !ok {
		return nil, false
	}
	fn(order)
	return order.Clone(), true
}

func (s *SessionStore) Take(_ context.Context, sessionID string) (*domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[sessionID]
	if !ok {
		return nil, false
	}
	delete(s.orders, sessionID)
	s.reportSize()
	return order, true
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// reportSize — вызывать под s.mu.
func (s *SessionStore) reportSize() {
	metrics.SessionsInProgress.Set(float64(len(s.orders)))
}
