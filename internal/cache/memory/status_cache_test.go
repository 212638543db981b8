package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Gunvolt24/foodbot/internal/domain"
)

func TestSetGet_HitMiss(t *testing.T) {
	c := NewLRUCacheTTL(2, 5*time.Minute)
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, 1); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	_ = c.Set(ctx, 1, domain.StatusInProgress)
	got, ok := c.Get(ctx, 1)
	if !ok || got != domain.StatusInProgress {
		t.Fatalf("expected hit for 1, got %q ok=%v", got, ok)
	}
}

func TestSet_OverwritesStatus(t *testing.T) {
	c := NewLRUCacheTTL(2, 0)
	ctx := context.Background()

	_ = c.Set(ctx, 42, domain.StatusInProgress)
	_ = c.Set(ctx, 42, "delivered")

	got, ok := c.Get(ctx, 42)
	if !ok || got != "delivered" {
		t.Fatalf("want delivered, got %q ok=%v", got, ok)
	}
	if c.Len() != 1 {
		t.Fatalf("overwrite must not add entries, len=%d", c.Len())
	}
}

func TestSet_EmptyStatusIgnored(t *testing.T) {
	c := NewLRUCacheTTL(2, 0)
	ctx := context.Background()

	_ = c.Set(ctx, 7, "")
	if _, ok := c.Get(ctx, 7); ok {
		t.Fatalf("empty status must not be cached")
	}
}

func TestTTL_Expiry(t *testing.T) {
	c := NewLRUCacheTTL(2, 100*time.Millisecond)
	ctx := context.Background()

	_ = c.Set(ctx, 5, domain.StatusInProgress)
	if _, ok := c.Get(ctx, 5); !ok {
		t.Fatalf("expected hit right after Set")
	}
	time.Sleep(150 * time.Millisecond)
	if _, ok := c.Get(ctx, 5); ok {
		t.Fatalf("expected miss after TTL expires")
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCacheTTL(2, 0) // 0 = без TTL
	ctx := context.Background()

	_ = c.Set(ctx, 1, "a")
	_ = c.Set(ctx, 2, "b")
	// 1 делаем «свежим»
	if _, ok := c.Get(ctx, 1); !ok {
		t.Fatalf("expected hit for 1")
	}
	// Добавляем 3 — вытеснит 2 (самый старый)
	_ = c.Set(ctx, 3, "c")

	if _, ok := c.Get(ctx, 2); ok {
		t.Fatalf("expected 2 to be evicted")
	}
	if _, ok := c.Get(ctx, 1); !ok || c.ll.Len() != 2 {
		t.Fatalf("expected 1 & 3 to stay in cache")
	}
}

// Чтение не продлевает срок: запись истекает через ttl после Set.
func TestTTL_ReadDoesNotExtend(t *testing.T) {
	c := NewLRUCacheTTL(2, time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	_ = c.Set(ctx, 9, domain.StatusInProgress)
	for i := 0; i < 5; i++ {
		now = now.Add(50 * time.Second)
		_, ok := c.Get(ctx, 9)
		if i == 0 && !ok {
			t.Fatalf("expected hit within ttl")
		}
		if i > 0 && ok {
			t.Fatalf("read %d: entry must expire %s after Set", i, time.Minute)
		}
	}
}

// Повторный Set начинает отсчёт заново.
func TestTTL_SetRestartsExpiry(t *testing.T) {
	c := NewLRUCacheTTL(2, time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	_ = c.Set(ctx, 9, domain.StatusInProgress)
	now = now.Add(50 * time.Second)
	_ = c.Set(ctx, 9, "delivered")
	now = now.Add(50 * time.Second)

	if got, ok := c.Get(ctx, 9); !ok || got != "delivered" {
		t.Fatalf("want delivered after re-Set, got %q ok=%v", got, ok)
	}
}
