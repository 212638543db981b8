package domain

import "fmt"

// Intent — распознанный NLU-сервисом интент, который умеет обрабатывать бот.
type Intent int

const (
	IntentAddToOrder Intent = iota + 1
	IntentRemoveFromOrder
	IntentCompleteOrder
	IntentTrackOrder
)

// Отображаемые имена интентов в агенте NLU.
const (
	DisplayNameAddToOrder      = "order.add - context: ongoing-order"
	DisplayNameRemoveFromOrder = "order.remove - context: ongoing-order"
	DisplayNameCompleteOrder   = "order.complete - context: ongoing-order"
	DisplayNameTrackOrder      = "track.order - context: ongoing-tracking"
)

// ParseIntent — точное сопоставление отображаемого имени с интентом.
func ParseIntent(displayName string) (Intent, error) {
	switch displayName {
	case DisplayNameAddToOrder:
		return IntentAddToOrder, nil
	case DisplayNameRemoveFromOrder:
		return IntentRemoveFromOrder, nil
	case DisplayNameCompleteOrder:
		return IntentCompleteOrder, nil
	case DisplayNameTrackOrder:
		return IntentTrackOrder, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownIntent, displayName)
	}
}

// String — короткое имя для логов и меток метрик.
func (i Intent) String() string {
	switch i {
	case IntentAddToOrder:
		return "add_to_order"
	case IntentRemoveFromOrder:
		return "remove_from_order"
	case IntentCompleteOrder:
		return "complete_order"
	case IntentTrackOrder:
		return "track_order"
	default:
		return "unknown"
	}
}
