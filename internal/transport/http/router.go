package rest

import (
	"net/http"

	"github.com/Gunvolt24/foodbot/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter — gin-роутер: вебхук NLU-сервиса, JSON API заказов и служебные эндпоинты.
// otelServiceName != "" включает otelgin; непустой webhookAuth закрывает вебхук basic auth.
func NewRouter(h *Handler, otelServiceName string, webhookAuth gin.Accounts) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// вебхук: корень, как в консоли агента, и явный /webhook
	webhook := r.Group("/")
	if len(webhookAuth) > 0 {
		webhook.Use(gin.BasicAuth(webhookAuth))
	}
	webhook.POST("/", h.fulfill)
	webhook.POST("/webhook", h.fulfill)

	r.GET("/order/:id", h.getOrderByID)
	r.GET("/menu", h.menu)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}
