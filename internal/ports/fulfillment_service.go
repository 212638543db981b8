package ports

import (
	"context"

	"github.com/Gunvolt24/foodbot/internal/domain"
)

// FulfillmentService — то, что нужно HTTP-слою от прикладного слоя.
type FulfillmentService interface {
	// Fulfill — обработать запрос вебхука и вернуть fulfillment-текст.
	Fulfill(ctx context.Context, req *domain.WebhookRequest) (string, error)
	GetOrder(ctx context.Context, orderID int64) (*domain.PlacedOrder, error)
	Menu(ctx context.Context, limit, offset int) ([]domain.FoodItem, error)
}
