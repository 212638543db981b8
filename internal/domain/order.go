package domain

import (
	"strconv"
	"strings"
)

// Order — незавершённый заказ сессии: название блюда → количество.
// Блюда сравниваются без учёта регистра и пробелов по краям, как и в меню БД;
// в ответах показывается написание из первого добавления.
// Порядок — порядок первого добавления (перезапись не двигает позицию, удаление убирает ключ).
type Order struct {
	keys  []string          // нормализованные имена
	names map[string]string // ключ → отображаемое имя
	items map[string]int
}

// NewOrder — пустой заказ.
func NewOrder() *Order {
	return &Order{names: make(map[string]string), items: make(map[string]int)}
}

// itemKey — ключ блюда: "  Pizza " и "pizza" — одна позиция.
func itemKey(item string) string {
	return strings.ToLower(strings.TrimSpace(item))
}

// OrderFromPairs — собирает заказ из параллельных списков блюд и количеств.
// Повтор блюда внутри одного запроса — побеждает последнее значение.
// Длины списков проверяет вызывающая сторона.
func OrderFromPairs(foodItems []string, quantities []int) *Order {
	order := NewOrder()
	for i, item := range foodItems {
		order.Set(item, quantities[i])
	}
	return order
}

// Set — установить количество (перезапись без смены позиции и написания).
func (o *Order) Set(item string, quantity int) {
	if o.items == nil {
		o.items = make(map[string]int)
		o.names = make(map[string]string)
	}
	key := itemKey(item)
	if _, ok := o.items[key]; !ok {
		o.keys = append(o.keys, key)
		o.names[key] = strings.TrimSpace(item)
	}
	o.items[key] = quantity
}

// Merge — покомпонентная перезапись: общие блюда получают новое количество,
// новые блюда добавляются в конец.
func (o *Order) Merge(other *Order) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		o.Set(other.names[key], other.items[key])
	}
}

// Remove — удалить блюдо; false, если его не было.
func (o *Order) Remove(item string) bool {
	key := itemKey(item)
	if _, ok := o.items[key]; !ok {
		return false
	}
	delete(o.items, key)
	delete(o.names, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// Quantity — количество блюда и признак наличия.
func (o *Order) Quantity(item string) (int, bool) {
	q, ok := o.items[itemKey(item)]
	return q, ok
}

func (o *Order) Len() int { return len(o.keys) }

func (o *Order) IsEmpty() bool { return len(o.keys) == 0 }

// Lines — позиции заказа в порядке добавления.
func (o *Order) Lines() []OrderLine {
	lines := make([]OrderLine, 0, len(o.keys))
	for _, k := range o.keys {
		lines = append(lines, OrderLine{FoodItem: o.names[k], Quantity: o.items[k]})
	}
	return lines
}

// Clone — глубокая копия, чтобы внешние изменения не затрагивали хранилище.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := &Order{
		keys:  append([]string(nil), o.keys...),
		names: make(map[string]string, len(o.names)),
		items: make(map[string]int, len(o.items)),
	}
	for k, v := range o.items {
		clone.items[k] = v
		clone.names[k] = o.names[k]
	}
	return clone
}

// Summary — человекочитаемый список: "2 pizza, 1 coke".
func (o *Order) Summary() string {
	parts := make([]string, 0, len(o.keys))
	for _, k := range o.keys {
		parts = append(parts, strconv.Itoa(o.items[k])+" "+o.names[k])
	}
	return strings.Join(parts, ", ")
}

// OrderLine — одна позиция заказа.
type OrderLine struct {
	FoodItem string `json:"food_item"`
	Quantity int    `json:"quantity"`
}
