package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/foodbot/internal/domain"
	"github.com/Gunvolt24/foodbot/internal/ports"
)

// ValidateRequestFromJSON — разбор и валидация запроса вебхука.
// Неизвестные поля допустимы: NLU-сервис присылает намного больше, чем нам нужно.
func ValidateRequestFromJSON(ctx context.Context, validator ports.RequestValidator, raw []byte) (*domain.WebhookRequest, error) {
	var req domain.WebhookRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidRequest, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidRequest)
	}
	if err := validator.Validate(ctx, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// StatusUpdateFromJSON — строгий разбор сообщения о статусе (DisallowUnknownFields)
// с последующей валидацией.
func StatusUpdateFromJSON(ctx context.Context, validator ports.StatusUpdateValidator, raw []byte) (*domain.StatusUpdate, error) {
	var upd domain.StatusUpdate
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&upd); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidStatusUpdate, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidStatusUpdate)
	}
	if err := validator.ValidateStatusUpdate(ctx, &upd); err != nil {
		return nil, err
	}
	return &upd, nil
}
