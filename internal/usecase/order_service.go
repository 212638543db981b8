package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/foodbot/internal/domain"
	"github.com/Gunvolt24/foodbot/internal/ports"
	"github.com/Gunvolt24/foodbot/pkg/ctxmeta"
	"github.com/Gunvolt24/foodbot/pkg/metrics"
	"github.com/Gunvolt24/foodbot/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// Проверка, что OrderService удовлетворяет интерфейсу HTTP-слоя.
var _ ports.FulfillmentService = (*OrderService)(nil)

// OrderService — прикладная логика бота (без знаний о транспорте):
// разбор интента, машина состояний незавершённого заказа и оформление.
type OrderService struct {
	sessions  ports.SessionStore     // незавершённые заказы по сессиям
	repo      ports.OrderRepository  // хранилище оформленных заказов
	cache     ports.StatusCache      // кэш статусов для track-order
	log       ports.Logger           // логгер
	validator ports.RequestValidator // валидатор конверта запроса
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	sessions ports.SessionStore,
	repo ports.OrderRepository,
	cache ports.StatusCache,
	log ports.Logger,
	validator ports.RequestValidator,
) *OrderService {
	return &OrderService{
		sessions:  sessions,
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
	}
}

// Fulfill — точка входа вебхука:
//  1. валидация конверта (интент, контекст сессии);
//  2. интент по точному имени → domain.Intent (иначе domain.ErrUnknownIntent);
//  3. разбор параметров и вызов обработчика.
//
// Ошибки пользовательского ввода и отказ хранилища при оформлении — это текст ответа,
// а не error. Ошибка возвращается только для некорректного запроса или сбоя чтения.
func (s *OrderService) Fulfill(ctx context.Context, req *domain.WebhookRequest) (string, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		s.log.Warnf(ctx, "invalid webhook request err=%v", err)
		metrics.IntentsHandled.WithLabelValues("unknown", "rejected").Inc()
		return "", err
	}

	intent, err := domain.ParseIntent(req.QueryResult.Intent.DisplayName)
	if err != nil {
		s.log.Warnf(ctx, "unsupported intent err=%v", err)
		metrics.IntentsHandled.WithLabelValues("unknown", "rejected").Inc()
		return "", err
	}

	sessionID := req.SessionID()
	ctx = ctxmeta.WithSessionID(ctx, sessionID)

	ctx, span := telemetry.StartSpan(ctx, "intent."+intent.String(),
		attribute.String("session.id", sessionID))
	start := time.Now()
	text, err := s.dispatch(ctx, intent, req.QueryResult.Parameters, sessionID)
	telemetry.EndSpan(span, err)
	switch {
	case err == nil:
		metrics.IntentsHandled.WithLabelValues(intent.String(), "ok").Inc()
	case errors.Is(err, domain.ErrMalformedRequest):
		s.log.Warnf(ctx, "malformed parameters intent=%s err=%v", intent, err)
		metrics.IntentsHandled.WithLabelValues(intent.String(), "rejected").Inc()
	default:
		s.log.Errorf(ctx, "intent failed intent=%s err=%v", intent, err)
		metrics.IntentsHandled.WithLabelValues(intent.String(), "error").Inc()
	}
	s.log.Infof(ctx, "intent handled intent=%s took=%s", intent, time.Since(start))
	return text, err
}

// dispatch — исчерпывающий switch по интентам.
func (s *OrderService) dispatch(ctx context.Context, intent domain.Intent, params map[string]any, sessionID string) (string, error) {
	switch intent {
	case domain.IntentAddToOrder:
		items, err := stringList(params, paramFoodItem)
		if err != nil {
			return "", err
		}
		quantities, err := intList(params, paramNumber)
		if errors.Is(err, errNotWholeNumber) {
			s.log.Infof(ctx, "add rejected: %v", err)
			return msgClarifyItems, nil
		}
		if err != nil {
			return "", err
		}
		return s.AddToOrder(ctx, sessionID, items, quantities), nil

	case domain.IntentRemoveFromOrder:
		items, err := stringList(params, paramFoodItem)
		if err != nil {
			return "", err
		}
		return s.RemoveFromOrder(ctx, sessionID, items), nil

	case domain.IntentCompleteOrder:
		return s.CompleteOrder(ctx, sessionID), nil

	case domain.IntentTrackOrder:
		orderID, err := orderIDParam(params)
		if err != nil {
			return "", err
		}
		return s.TrackOrder(ctx, orderID)
	}
	return "", fmt.Errorf("%w: %s", domain.ErrUnknownIntent, intent)
}

// AddToOrder — влить позиции в заказ сессии.
// Разная длина списков, пустой список или количество меньше 1 — просьба уточнить,
// состояние не меняется.
func (s *OrderService) AddToOrder(ctx context.Context, sessionID string, foodItems []string, quantities []int) string {
	if len(foodItems) != len(quantities) || len(foodItems) == 0 {
		s.log.Infof(ctx, "add rejected: items=%d quantities=%d", len(foodItems), len(quantities))
		return msgClarifyItems
	}
	for i, q := range quantities {
		if q < 1 {
			s.log.Infof(ctx, "add rejected: item=%q quantity=%d", foodItems[i], q)
			return msgClarifyItems
		}
	}

	order := s.sessions.Merge(ctx, sessionID, domain.OrderFromPairs(foodItems, quantities))
	s.log.Infof(ctx, "order updated items=%d", order.Len())
	return fmt.Sprintf(msgOrderSoFar, order.Summary())
}

// RemoveFromOrder — удалить позиции из заказа сессии.
// Сообщения об удалённых и отсутствующих позициях объединяются.
func (s *OrderService) RemoveFromOrder(ctx context.Context, sessionID string, foodItems []string) string {
	var removed, notFound []string
	order, ok := s.sessions.Update(ctx, sessionID, func(order *domain.Order) {
		for _, item := range foodItems {
			if order.Remove(item) {
				removed = append(removed, item)
			} else {
				notFound = append(notFound, item)
			}
		}
	})
	if !ok {
		s.log.Infof(ctx, "remove: no order in progress")
		return msgRemoveNoOrder
	}

	parts := make([]string, 0, 3)
	if len(removed) > 0 {
		parts = append(parts, fmt.Sprintf(msgRemoved, strings.Join(removed, listSeparator)))
	}
	if len(notFound) > 0 {
		parts = append(parts, fmt.Sprintf(msgNotInOrder, strings.Join(notFound, listSeparator)))
	}
	if len(parts) == 0 {
		parts = append(parts, msgNothingRemoved)
	}
	if order.IsEmpty() {
		parts = append(parts, msgOrderEmpty)
	} else {
		parts = append(parts, fmt.Sprintf(msgNowYouHave, order.Summary()))
	}

	s.log.Infof(ctx, "order items removed=%d not_found=%d left=%d", len(removed), len(notFound), order.Len())
	return strings.Join(parts, " ")
}

// CompleteOrder — оформить заказ сессии.
// Заказ извлекается из хранилища сессий до записи в БД: после вызова
// сессия не имеет незавершённого заказа при любом исходе.
func (s *OrderService) CompleteOrder(ctx context.Context, sessionID string) string {
	order, ok := s.sessions.Take(ctx, sessionID)
	if !ok || order.IsEmpty() {
		s.log.Infof(ctx, "complete: no order in progress (found=%v)", ok)
		return msgCompleteNoOrder
	}

	start := time.Now()
	orderID, err := s.saveOrder(ctx, order)
	if err != nil {
		s.log.Errorf(ctx, "save order failed items=%d err=%v", order.Len(), err)
		metrics.OrdersFailed.Inc()
		return msgBackendError
	}
	metrics.OrdersPlaced.Inc()
	s.log.Infof(ctx, "order placed order_id=%d items=%d took=%s", orderID, order.Len(), time.Since(start))

	total, err := s.repo.TotalOrderPrice(ctx, orderID)
	if err != nil {
		s.log.Warnf(ctx, "total price failed order_id=%d err=%v", orderID, err)
		return fmt.Sprintf(msgOrderPlacedNoTotal, orderID)
	}
	return fmt.Sprintf(msgOrderPlaced, orderID, total)
}

// saveOrder — id заказа, строки заказа и трекинг в одной транзакции.
func (s *OrderService) saveOrder(ctx context.Context, order *domain.Order) (orderID int64, err error) {
	ctx, span := telemetry.StartSpan(ctx, "order.save", attribute.Int("order.items", order.Len()))
	defer func() { telemetry.EndSpan(span, err) }()

	err = s.repo.InTx(ctx, func(w ports.OrderWriter) error {
		id, err := w.NextOrderID(ctx)
		if err != nil {
			return fmt.Errorf("next order id: %w", err)
		}
		for _, line := range order.Lines() {
			if err := w.InsertOrderItem(ctx, line.FoodItem, line.Quantity, id); err != nil {
				return fmt.Errorf("insert item %q: %w", line.FoodItem, err)
			}
		}
		if err := w.InsertOrderTracking(ctx, id, domain.StatusInProgress); err != nil {
			return fmt.Errorf("insert tracking: %w", err)
		}
		orderID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// TrackOrder — статус оформленного заказа по его id. Источник истины — БД;
// последний прочитанный статус кэшируется и отдаётся, только если БД недоступна.
func (s *OrderService) TrackOrder(ctx context.Context, orderID int64) (string, error) {
	status, err := s.repo.OrderStatus(ctx, orderID)
	if err != nil {
		if cached, found := s.cache.Get(ctx, orderID); found {
			s.log.Warnf(ctx, "order status from cache order_id=%d err=%v", orderID, err)
			return fmt.Sprintf(msgTrackStatus, orderID, cached), nil
		}
		return "", fmt.Errorf("order status: %w", err)
	}
	if status == "" {
		return fmt.Sprintf(msgTrackNotFound, orderID), nil
	}

	if setErr := s.cache.Set(ctx, orderID, status); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed order_id=%d err=%v", orderID, setErr)
	}
	return fmt.Sprintf(msgTrackStatus, orderID, status), nil
}

// GetOrder — оформленный заказ; (nil, nil), если его нет.
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*domain.PlacedOrder, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetOrder failed order_id=%d err=%v", orderID, err)
		return nil, err
	}
	return order, nil
}

// Menu — проксирование в репозиторий (пагинация уже валидирована на верхнем уровне).
func (s *OrderService) Menu(ctx context.Context, limit, offset int) ([]domain.FoodItem, error) {
	return s.repo.Menu(ctx, limit, offset)
}
