// Пакет ctxmeta — метаданные запроса в context.Context: request_id, session_id диалога
// и trace/span id активного спана. HTTP-слой, консьюмер и логгер зависят только от него.
package ctxmeta

import "context"

type ctxKey int

const (
	keyRequestID ctxKey = iota
	keySessionID
)

func with(ctx context.Context, key ctxKey, value string) context.Context {
	if ctx == nil || value == "" {
		return ctx
	}
	return context.WithValue(ctx, key, value)
}

// пустое значение считается отсутствующим
func value(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(key).(string)
	return v, ok && v != ""
}

// WithRequestID — request_id HTTP-запроса или "topic/partition/offset" сообщения Kafka.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return with(ctx, keyRequestID, requestID)
}

func RequestIDFromContext(ctx context.Context) (string, bool) { return value(ctx, keyRequestID) }

// WithSessionID — идентификатор диалоговой сессии из вебхука.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return with(ctx, keySessionID, sessionID)
}

func SessionIDFromContext(ctx context.Context) (string, bool) { return value(ctx, keySessionID) }
