package ports

import (
	"context"

	"github.com/Gunvolt24/foodbot/internal/domain"
)

// OrderWriter — запись оформляемого заказа; живёт в рамках одной транзакции.
type OrderWriter interface {
	NextOrderID(ctx context.Context) (int64, error)
	InsertOrderItem(ctx context.Context, foodItem string, quantity int, orderID int64) error
	InsertOrderTracking(ctx context.Context, orderID int64, status domain.OrderStatus) error
}

type OrderRepository interface {
	// InTx — выполнить fn в транзакции: ошибка fn откатывает все вставки.
	InTx(ctx context.Context, fn func(w OrderWriter) error) error

	TotalOrderPrice(ctx context.Context, orderID int64) (float64, error)
	// OrderStatus — статус заказа; ("", nil), если заказа нет.
	OrderStatus(ctx context.Context, orderID int64) (domain.OrderStatus, error)
	// UpdateOrderStatus — false, если строки трекинга для заказа нет.
	UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (bool, error)
	// GetOrder — (nil, nil), если заказа нет.
	GetOrder(ctx context.Context, orderID int64) (*domain.PlacedOrder, error)
	Menu(ctx context.Context, limit, offset int) ([]domain.FoodItem, error)
}
