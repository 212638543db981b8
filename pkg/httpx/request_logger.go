package httpx

import (
	"net/http"
	"time"

	"github.com/Gunvolt24/foodbot/internal/ports"
	"github.com/Gunvolt24/foodbot/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// quietPaths — служебные эндпоинты, которые не пишем в лог.
var quietPaths = map[string]struct{}{
	"/metrics": {},
	"/ping":    {},
}

// RequestLogger — строка лога на каждый запрос; уровень зависит от статуса ответа
// (5xx: error, 4xx: warn). request_id/trace_id логгер берёт из контекста сам.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if _, quiet := quietPaths[route]; quiet {
			return
		}
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		ids, _ := ctxmeta.TraceFromContext(ctx)
		status := c.Writer.Status()

		logf := log.Infof
		switch {
		case status >= http.StatusInternalServerError:
			logf = log.Errorf
		case status >= http.StatusBadRequest:
			logf = log.Warnf
		}
		logf(ctx, "request span=%s method=%s path=%s status=%d ip=%s duration=%s size=%d",
			ids.SpanID, c.Request.Method, route, status, c.ClientIP(), time.Since(start), c.Writer.Size())
	}
}
