package ports

import (
	"context"

	"github.com/Gunvolt24/foodbot/internal/domain"
)

type RequestValidator interface {
	Validate(ctx context.Context, req *domain.WebhookRequest) error
}

type StatusUpdateValidator interface {
	ValidateStatusUpdate(ctx context.Context, upd *domain.StatusUpdate) error
}
