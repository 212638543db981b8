package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// TraceIDs — идентификаторы активного спана в hex-виде для логов.
type TraceIDs struct {
	TraceID string
	SpanID  string
}

// TraceFromContext — trace/span id активного спана; false, если спана нет
// (трейсинг выключен или запрос не сэмплирован провайдером без записи).
func TraceFromContext(ctx context.Context) (TraceIDs, bool) {
	if ctx == nil {
		return TraceIDs{}, false
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return TraceIDs{}, false
	}
	return TraceIDs{TraceID: sc.TraceID().String(), SpanID: sc.SpanID().String()}, true
}
