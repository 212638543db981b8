package ports

import (
	"context"

	"github.com/Gunvolt24/foodbot/internal/domain"
)

// StatusCache — последние прочитанные из БД статусы заказов. Источником истины не является:
// track-order читает его, только когда БД недоступна.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1).
type StatusCache interface {
	// Get — статус по id заказа; (status, true) при попадании, ("", false) при промахе/истечении.
	Get(ctx context.Context, orderID int64) (domain.OrderStatus, bool)

	// Set — сохранить/обновить статус.
	Set(ctx context.Context, orderID int64, status domain.OrderStatus) error
}
