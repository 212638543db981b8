package httpx

import (
	"github.com/Gunvolt24/foodbot/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID — заголовок сквозного id запроса.
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLen — длиннее не принимаем: значение уходит в логи как есть.
const maxRequestIDLen = 128

// RequestIDMiddleware — берёт X-Request-ID клиента (если он приемлем) или генерирует UUID,
// кладёт его в контекст запроса и возвращает в ответе.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)
		c.Request = c.Request.WithContext(ctxmeta.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// validRequestID — непустой печатный ASCII без пробелов, не длиннее maxRequestIDLen.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
