package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/foodbot/internal/domain"
	"github.com/Gunvolt24/foodbot/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var (
	_ ports.OrderRepository = (*OrderRepository)(nil)
	_ ports.OrderWriter     = (*txWriter)(nil)
)

// OrderRepository — реализация репозитория заказов на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository - конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// InTx — выполняет fn в транзакции; commit, только если fn вернула nil.
// Ошибка отката (кроме уже закрытой транзакции) присоединяется к ошибке fn/commit.
func (r *OrderRepository) InTx(ctx context.Context, fn func(w ports.OrderWriter) error) (err error) {
	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		rbErr := transaction.Rollback(ctx)
		if err != nil && rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
	}()

	if err := fn(&txWriter{tx: transaction}); err != nil {
		return err
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// txWriter — операции записи заказа поверх открытой транзакции.
type txWriter struct {
	tx pgx.Tx
}

// NextOrderID — следующий id заказа из последовательности.
func (w *txWriter) NextOrderID(ctx context.Context) (int64, error) {
	var id int64
	if err := w.tx.QueryRow(ctx, `SELECT nextval('order_id_seq')`).Scan(&id); err != nil {
		return 0, fmt.Errorf("nextval: %w", err)
	}
	return id, nil
}

// InsertOrderItem — строка заказа; цена берётся из меню на момент вставки.
// Блюда нет в меню → domain.ErrUnknownFoodItem.
func (w *txWriter) InsertOrderItem(ctx context.Context, foodItem string, quantity int, orderID int64) error {
	tag, err := w.tx.Exec(ctx, `
		INSERT INTO orders (order_id, item_id, quantity, total_price)
		SELECT $1::bigint, item_id, $2::int, price * $2::int
		FROM food_items
		WHERE lower(name) = lower($3)
	`, orderID, quantity, foodItem)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %q", domain.ErrUnknownFoodItem, foodItem)
	}
	return nil
}

// InsertOrderTracking — начальная строка трекинга заказа.
func (w *txWriter) InsertOrderTracking(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	if _, err := w.tx.Exec(ctx, `
		INSERT INTO order_tracking (order_id, status) VALUES ($1, $2)
	`, orderID, string(status)); err != nil {
		return fmt.Errorf("insert order tracking: %w", err)
	}
	return nil
}

// TotalOrderPrice — сумма строк заказа (0 для заказа без строк).
func (r *OrderRepository) TotalOrderPrice(ctx context.Context, orderID int64) (float64, error) {
	var total float64
	if err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_price), 0)::float8 FROM orders WHERE order_id = $1
	`, orderID).Scan(&total); err != nil {
		return 0, fmt.Errorf("select total: %w", err)
	}
	return total, nil
}

// OrderStatus — статус заказа; ("", nil), если строки трекинга нет.
func (r *OrderRepository) OrderStatus(ctx context.Context, orderID int64) (domain.OrderStatus, error) {
	var status string
	err := r.pool.QueryRow(ctx, `
		SELECT status FROM order_tracking WHERE order_id = $1
	`, orderID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("select status: %w", err)
	}
	return domain.OrderStatus(status), nil
}

// UpdateOrderStatus — смена статуса; false, если заказа нет.
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE order_tracking SET status = $2, updated_at = now() WHERE order_id = $1
	`, orderID, string(status))
	if err != nil {
		return false, fmt.Errorf("update status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetOrder — оформленный заказ со строками. Если не нашли, возвращает (nil, nil).
func (r *OrderRepository) GetOrder(ctx context.Context, orderID int64) (*domain.PlacedOrder, error) {
	order := &domain.PlacedOrder{OrderID: orderID}

	var status string
	err := r.pool.QueryRow(ctx, `
		SELECT status FROM order_tracking WHERE order_id = $1
	`, orderID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select tracking: %w", err)
	}
	order.Status = domain.OrderStatus(status)

	rows, err := r.pool.Query(ctx, `
		SELECT f.name, o.quantity, o.total_price::float8
		FROM orders o
		JOIN food_items f ON f.item_id = o.item_id
		WHERE o.order_id = $1
		ORDER BY o.item_id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.PlacedItem
		if err := rows.Scan(&item.FoodItem, &item.Quantity, &item.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		order.Total += item.TotalPrice
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("items rows: %w", err)
	}
	return order, nil
}

// Menu — страница меню по item_id.
func (r *OrderRepository) Menu(ctx context.Context, limit, offset int) ([]domain.FoodItem, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT item_id, name, price::float8
		FROM food_items
		ORDER BY item_id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select menu: %w", err)
	}
	defer rows.Close()

	items := make([]domain.FoodItem, 0, limit)
	for rows.Next() {
		var item domain.FoodItem
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Price); err != nil {
			return nil, fmt.Errorf("scan food item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("menu rows: %w", err)
	}
	return items, nil
}
