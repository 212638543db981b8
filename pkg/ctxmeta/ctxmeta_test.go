package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/foodbot/pkg/ctxmeta"
)

type accessor struct {
	name string
	put  func(context.Context, string) context.Context
	get  func(context.Context) (string, bool)
}

var accessors = []accessor{
	{"request_id", ctxmeta.WithRequestID, ctxmeta.RequestIDFromContext},
	{"session_id", ctxmeta.WithSessionID, ctxmeta.SessionIDFromContext},
}

func TestPutAndGet(t *testing.T) {
	for _, a := range accessors {
		t.Run(a.name, func(t *testing.T) {
			parent := context.Background()
			ctx := a.put(parent, "v-1")

			if got, ok := a.get(ctx); !ok || got != "v-1" {
				t.Fatalf("want v-1, got %q ok=%v", got, ok)
			}
			if _, ok := a.get(parent); ok {
				t.Fatalf("parent context must stay empty")
			}
		})
	}
}

func TestEmptyValue_NoChange(t *testing.T) {
	for _, a := range accessors {
		t.Run(a.name, func(t *testing.T) {
			parent := context.Background()
			if ctx := a.put(parent, ""); ctx != parent {
				t.Fatalf("empty value must return the same ctx")
			}
		})
	}
}

func TestNilContext(t *testing.T) {
	var nilCtx context.Context
	for _, a := range accessors {
		t.Run(a.name, func(t *testing.T) {
			if ctx := a.put(nilCtx, "v"); ctx != nil {
				t.Fatalf("put on nil ctx must return nil")
			}
			if v, ok := a.get(nilCtx); ok || v != "" {
				t.Fatalf("get on nil ctx must be empty, got %q", v)
			}
		})
	}
}

func TestKeysDoNotCollide(t *testing.T) {
	ctx := ctxmeta.WithRequestID(context.Background(), "req-1")
	ctx = ctxmeta.WithSessionID(ctx, "sess-42")

	if rid, _ := ctxmeta.RequestIDFromContext(ctx); rid != "req-1" {
		t.Fatalf("request_id lost: %q", rid)
	}
	if sid, _ := ctxmeta.SessionIDFromContext(ctx); sid != "sess-42" {
		t.Fatalf("session_id lost: %q", sid)
	}

	// чужой ключ с тем же именем не распознаётся
	type foreignKey string
	ctx = context.WithValue(context.Background(), foreignKey("request_id"), "foreign")
	if _, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		t.Fatalf("foreign key must not be recognized")
	}
}
