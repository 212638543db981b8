package ports

import (
	"context"

	"github.com/Gunvolt24/foodbot/internal/domain"
)

// SessionStore — хранилище незавершённых заказов по id сессии.
// Каждая операция атомарна относительно других операций над той же сессией;
// наружу отдаются только копии заказов.
type SessionStore interface {
	// Merge — влить позиции в заказ сессии (создаёт заказ при отсутствии), вернуть копию результата.
	Merge(ctx context.Context, sessionID string, items *domain.Order) *domain.Order

	// Update — изменить заказ под блокировкой; fn не вызывается, если заказа нет.
	// Возвращает копию заказа после fn и признак наличия.
	Update(ctx context.Context, sessionID string, fn func(order *domain.Order)) (*domain.Order, bool)

	// Take — атомарно извлечь и удалить заказ сессии.
	Take(ctx context.Context, sessionID string) (*domain.Order, bool)

	// Len — число сессий с незавершённым заказом.
	Len() int
}
