package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/foodbot/internal/domain"
	"github.com/Gunvolt24/foodbot/internal/ports"
	"github.com/Gunvolt24/foodbot/pkg/telemetry"
	"github.com/Gunvolt24/foodbot/pkg/validate"
	"go.opentelemetry.io/otel/attribute"
)

// StatusService — применение обновлений статуса из брокера.
type StatusService struct {
	repo      ports.OrderRepository
	cache     ports.StatusCache
	log       ports.Logger
	validator ports.StatusUpdateValidator
}

func NewStatusService(
	repo ports.OrderRepository,
	cache ports.StatusCache,
	log ports.Logger,
	validator ports.StatusUpdateValidator,
) *StatusService {
	return &StatusService{repo: repo, cache: cache, log: log, validator: validator}
}

// ApplyStatusFromMessage — разбор сообщения, обновление order_tracking и кэша.
// Невалидное сообщение → validate.ErrInvalidStatusUpdate, неизвестный заказ → domain.ErrOrderNotFound.
func (s *StatusService) ApplyStatusFromMessage(ctx context.Context, raw []byte) error {
	upd, err := validate.StatusUpdateFromJSON(ctx, s.validator, raw)
	if err != nil {
		return err
	}
	return s.ApplyStatus(ctx, upd)
}

// ApplyStatus — обновить статус уже провалидированного сообщения.
func (s *StatusService) ApplyStatus(ctx context.Context, upd *domain.StatusUpdate) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "order.status.apply",
		attribute.Int64("order.id", upd.OrderID), attribute.String("order.status", string(upd.Status)))
	defer func() { telemetry.EndSpan(span, err) }()

	found, err := s.repo.UpdateOrderStatus(ctx, upd.OrderID, upd.Status)
	if err != nil {
		return fmt.Errorf("update status order_id=%d: %w", upd.OrderID, err)
	}
	if !found {
		return fmt.Errorf("%w: order_id=%d", domain.ErrOrderNotFound, upd.OrderID)
	}

	if err := s.cache.Set(ctx, upd.OrderID, upd.Status); err != nil {
		s.log.Warnf(ctx, "cache.Set failed order_id=%d err=%v", upd.OrderID, err)
	}
	s.log.Infof(ctx, "order status updated order_id=%d status=%s", upd.OrderID, upd.Status)
	return nil
}
