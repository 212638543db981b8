package usecase

// Тексты ответов бота (fulfillment text).
const (
	msgClarifyItems = "Sorry I didn't understand. Can you please specify food items and quantities clearly?"
	msgOrderSoFar   = "You have ordered %s so far. Do you need anything else?"

	msgRemoveNoOrder  = "Sorry! I'm having a trouble finding your order. Please place a new order"
	msgRemoved        = "Removed %s from your order!"
	msgNotInOrder     = "Your current order does not have %s"
	msgOrderEmpty     = "Your order is empty!"
	msgNowYouHave     = "Now you have %s in your order"
	msgNothingRemoved = "Sorry I didn't understand. Which food items would you like to remove?"

	msgCompleteNoOrder    = "Sorry! I'm having trouble finding your order. Can you place a new order?"
	msgBackendError       = "Sorry, I couldn't process your order due to a backend error. Please place a new order"
	msgOrderPlaced        = "We have placed your order. Your order id is %d. Your order total is %.2f. You can pay at the time of delivery!"
	msgOrderPlacedNoTotal = "We have placed your order. Your order id is %d. You can pay at the time of delivery!"

	msgTrackStatus   = "Your order with id %d is %s"
	msgTrackNotFound = "No order found with order id %d"
)

// listSeparator — разделитель перечислений в ответах.
const listSeparator = ", "
