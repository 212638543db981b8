package domain

import "testing"

func TestSessionIDFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"projects/p/agent/sessions/abc-123/contexts/ongoing-order", "abc-123"},
		{"projects/p/locations/global/agent/environments/e/users/-/sessions/s9/contexts/x", "s9"},
		{"projects/p/agent/sessions/only-session", "only-session"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SessionIDFromPath(tt.path); got != tt.want {
			t.Fatalf("SessionIDFromPath(%q)=%q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestWebhookRequest_SessionID(t *testing.T) {
	withContext := WebhookRequest{
		Session: "projects/p/agent/sessions/from-session",
		QueryResult: QueryResult{OutputContexts: []OutputContext{
			{Name: "projects/p/agent/sessions/from-context/contexts/ongoing-order"},
		}},
	}
	if got := withContext.SessionID(); got != "from-context" {
		t.Fatalf("got %q", got)
	}

	noContexts := WebhookRequest{Session: "projects/p/agent/sessions/from-session"}
	if got := noContexts.SessionID(); got != "from-session" {
		t.Fatalf("got %q", got)
	}
}
