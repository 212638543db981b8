package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/foodbot/internal/domain"
	"github.com/Gunvolt24/foodbot/internal/ports"
)

// Проверка, что RequestValidator удовлетворяет интерфейсам валидаторов.
var (
	_ ports.RequestValidator      = (*RequestValidator)(nil)
	_ ports.StatusUpdateValidator = (*RequestValidator)(nil)
)

// ErrInvalidRequest — базовая (sentinel error) ошибка валидации запроса вебхука.
var ErrInvalidRequest = errors.New("webhook request validation failed")

// ErrInvalidStatusUpdate — базовая ошибка валидации сообщения о статусе.
var ErrInvalidStatusUpdate = errors.New("status update validation failed")

// maxStatusLen — ограничение колонки order_tracking.status.
const maxStatusLen = 255

// RequestValidator — проверка «конверта» запроса: интент и контекст сессии.
// Параметры интентов разбирает прикладной слой.
type RequestValidator struct{}

func NewRequestValidator() *RequestValidator { return &RequestValidator{} }

// Validate — возвращает ErrInvalidRequest (с обёрнутой причиной) при любой проблеме.
func (v *RequestValidator) Validate(_ context.Context, req *domain.WebhookRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}
	if strings.TrimSpace(req.QueryResult.Intent.DisplayName) == "" {
		return fmt.Errorf("%w: queryResult.intent.displayName is required", ErrInvalidRequest)
	}
	if len(req.QueryResult.OutputContexts) == 0 && req.Session == "" {
		return fmt.Errorf("%w: queryResult.outputContexts is empty", ErrInvalidRequest)
	}
	if len(req.QueryResult.OutputContexts) > 0 && req.QueryResult.OutputContexts[0].Name == "" {
		return fmt.Errorf("%w: queryResult.outputContexts[0].name is required", ErrInvalidRequest)
	}
	if req.SessionID() == "" {
		return fmt.Errorf("%w: session id is empty", ErrInvalidRequest)
	}
	return nil
}

// ValidateStatusUpdate — проверка сообщения об изменении статуса заказа.
func (v *RequestValidator) ValidateStatusUpdate(_ context.Context, upd *domain.StatusUpdate) error {
	if upd == nil {
		return fmt.Errorf("%w: message is nil", ErrInvalidStatusUpdate)
	}
	if upd.OrderID <= 0 {
		return fmt.Errorf("%w: order_id must be positive", ErrInvalidStatusUpdate)
	}
	status := strings.TrimSpace(string(upd.Status))
	if status == "" {
		return fmt.Errorf("%w: status is required", ErrInvalidStatusUpdate)
	}
	if len(status) > maxStatusLen {
		return fmt.Errorf("%w: status is longer than %d bytes", ErrInvalidStatusUpdate, maxStatusLen)
	}
	return nil
}
