package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/foodbot/internal/domain"
)

func TestValidateRequestFromJSON_OK_IgnoresUnknownFields(t *testing.T) {
	req, err := ValidateRequestFromJSON(context.Background(), NewRequestValidator(),
		[]byte(webhookJSON(domain.DisplayNameAddToOrder, ctxName)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.SessionID() != "sess-1" {
		t.Fatalf("want session sess-1, got %q", req.SessionID())
	}
	if _, ok := req.QueryResult.Parameters["food-item"]; !ok {
		t.Fatalf("parameters must be decoded: %+v", req.QueryResult.Parameters)
	}
}

func TestValidateRequestFromJSON_BrokenJSON(t *testing.T) {
	_, err := ValidateRequestFromJSON(context.Background(), NewRequestValidator(), []byte("{"))
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("want ErrInvalidRequest, got %v", err)
	}
}

func TestValidateRequestFromJSON_TrailingData(t *testing.T) {
	raw := webhookJSON(domain.DisplayNameAddToOrder, ctxName) + " {}"
	_, err := ValidateRequestFromJSON(context.Background(), NewRequestValidator(), []byte(raw))
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("want ErrInvalidRequest for trailing data, got %v", err)
	}
}

func TestStatusUpdateFromJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"ok", `{"order_id": 42, "status": "delivered"}`, false},
		{"unknown_field", `{"order_id": 42, "status": "delivered", "eta": "5m"}`, true},
		{"missing_status", `{"order_id": 42}`, true},
		{"string_id", `{"order_id": "42", "status": "delivered"}`, true},
		{"trailing", `{"order_id": 42, "status": "delivered"} {}`, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			upd, err := StatusUpdateFromJSON(context.Background(), NewRequestValidator(), []byte(tt.raw))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStatusUpdate) {
					t.Fatalf("want ErrInvalidStatusUpdate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if upd.OrderID != 42 || upd.Status != "delivered" {
				t.Fatalf("unexpected update: %+v", upd)
			}
		})
	}
}
