package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/Gunvolt24/foodbot/internal/domain"
)

func order(pairs ...any) *domain.Order {
	o := domain.NewOrder()
	for i := 0; i+1 < len(pairs); i += 2 {
		o.Set(pairs[i].(string), pairs[i+1].(int))
	}
	return o
}

func TestMerge_CreatesAndOverwrites(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()

	got := s.Merge(ctx, "s1", order("pizza", 2, "coke", 1))
	if got.Summary() != "2 pizza, 1 coke" {
		t.Fatalf("first merge: got %q", got.Summary())
	}

	got = s.Merge(ctx, "s1", order("pizza", 5))
	if got.Summary() != "5 pizza, 1 coke" {
		t.Fatalf("second merge: got %q", got.Summary())
	}
	if s.Len() != 1 {
		t.Fatalf("want 1 session, got %d", s.Len())
	}
}

// peek — копия заказа сессии без изменений.
func peek(s *SessionStore, sessionID string) (*domain.Order, bool) {
	return s.Update(context.Background(), sessionID, func(*domain.Order) {})
}

func TestMergeAndUpdate_ReturnCopies(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()

	o1 := s.Merge(ctx, "s1", order("samosa", 3))
	o1.Set("samosa", 100)

	o2, ok := peek(s, "s1")
	if !ok {
		t.Fatalf("expected order for s1")
	}
	o2.Set("samosa", 200)

	o3, _ := peek(s, "s1")
	if q, _ := o3.Quantity("samosa"); q != 3 {
		t.Fatalf("store must hand out copies, got qty=%d", q)
	}
}

// Входной заказ Merge не становится частью хранилища.
func TestMerge_DoesNotRetainInput(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()

	in := order("dosa", 1)
	s.Merge(ctx, "s1", in)
	in.Set("dosa", 9)

	got, _ := peek(s, "s1")
	if q, _ := got.Quantity("dosa"); q != 1 {
		t.Fatalf("input order leaked into store, qty=%d", q)
	}
}

func TestUpdate_MissingSession(t *testing.T) {
	s := NewSessionStore()
	called := false

	_, ok := s.Update(context.Background(), "nope", func(*domain.Order) { called = true })
	if ok || called {
		t.Fatalf("fn must not run for unknown session (ok=%v called=%v)", ok, called)
	}
}

func TestUpdate_KeepsEmptiedOrder(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()
	s.Merge(ctx, "s1", order("lassi", 1))

	got, ok := s.Update(ctx, "s1", func(o *domain.Order) { o.Remove("lassi") })
	if !ok || !got.IsEmpty() {
		t.Fatalf("want empty order, got ok=%v order=%q", ok, got.Summary())
	}
	if _, ok := peek(s, "s1"); !ok {
		t.Fatalf("emptied order must stay until completion")
	}
}

func TestTake_RemovesEntry(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()
	s.Merge(ctx, "s1", order("dosa", 2))

	got, ok := s.Take(ctx, "s1")
	if !ok || got.Summary() != "2 dosa" {
		t.Fatalf("take: ok=%v order=%v", ok, got)
	}
	if _, ok := s.Take(ctx, "s1"); ok {
		t.Fatalf("second take must miss")
	}
	if s.Len() != 0 {
		t.Fatalf("want 0 sessions, got %d", s.Len())
	}
}

// Параллельные Merge в одну сессию не теряют записи.
func TestMerge_ConcurrentSameSession(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Merge(ctx, "shared", order(fmt.Sprintf("item-%d", i), i+1))
		}(i)
	}
	wg.Wait()

	got, ok := peek(s, "shared")
	if !ok || got.Len() != n {
		t.Fatalf("want %d items, got ok=%v len=%d", n, ok, got.Len())
	}
}
