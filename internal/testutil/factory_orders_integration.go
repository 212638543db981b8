//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/Gunvolt24/foodbot/internal/domain"
	"github.com/Gunvolt24/foodbot/internal/ports"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Блюда из сидов миграции с ценами.
var MenuPrices = map[string]float64{
	"Pav Bhaji":         6,
	"Chole Bhature":     7,
	"Pizza":             8,
	"Mango Lassi":       5,
	"Masala Dosa":       6,
	"Vegetable Biryani": 9,
	"Vada Pav":          4,
	"Rava Dosa":         7,
	"Samosa":            5,
}

// MakeOrder — незавершённый заказ из блюд меню (по умолчанию 2 Pizza, 1 Samosa).
func MakeOrder(opts ...func(*domain.Order)) *domain.Order {
	o := domain.NewOrder()
	o.Set("Pizza", 2)
	o.Set("Samosa", 1)
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// WithItem — добавить/переопределить позицию.
func WithItem(name string, qty int) func(*domain.Order) {
	return func(o *domain.Order) { o.Set(name, qty) }
}

// Total — ожидаемая сумма заказа по ценам меню.
func Total(o *domain.Order) float64 {
	var total float64
	for _, line := range o.Lines() {
		total += MenuPrices[line.FoodItem] * float64(line.Quantity)
	}
	return total
}

// PlaceOrder — оформить заказ напрямую через репозиторий (как это делает usecase).
func PlaceOrder(ctx context.Context, repo ports.OrderRepository, o *domain.Order) (int64, error) {
	var orderID int64
	err := repo.InTx(ctx, func(w ports.OrderWriter) error {
		id, err := w.NextOrderID(ctx)
		if err != nil {
			return err
		}
		for _, line := range o.Lines() {
			if err := w.InsertOrderItem(ctx, line.FoodItem, line.Quantity, id); err != nil {
				return fmt.Errorf("insert %q: %w", line.FoodItem, err)
			}
		}
		if err := w.InsertOrderTracking(ctx, id, domain.StatusInProgress); err != nil {
			return err
		}
		orderID = id
		return nil
	})
	return orderID, err
}
