package domain

// OrderStatus — свободная строка статуса из order_tracking.
type OrderStatus string

// StatusInProgress — статус, который получает заказ при оформлении.
const StatusInProgress OrderStatus = "in progress"

// PlacedOrder — сохранённый заказ (строки orders + order_tracking).
type PlacedOrder struct {
	OrderID int64        `json:"order_id"`
	Status  OrderStatus  `json:"status"`
	Total   float64      `json:"total"`
	Items   []PlacedItem `json:"items"`
}

// PlacedItem — строка orders с ценой на момент оформления.
type PlacedItem struct {
	FoodItem   string  `json:"food_item"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

// FoodItem — позиция меню.
type FoodItem struct {
	ItemID int64   `json:"item_id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// StatusUpdate — сообщение об изменении статуса заказа (Kafka).
type StatusUpdate struct {
	OrderID int64       `json:"order_id"`
	Status  OrderStatus `json:"status"`
}
