package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Gunvolt24/foodbot/internal/domain"
	"github.com/Gunvolt24/foodbot/internal/ports"
	"github.com/Gunvolt24/foodbot/pkg/httpx"
	"github.com/Gunvolt24/foodbot/pkg/validate"
	"github.com/gin-gonic/gin"
)

const (
	defaultMenuLimit = 20
	maxMenuLimit     = 100
)

// Handler — HTTP-обработчики поверх прикладного сервиса.
type Handler struct {
	service    ports.FulfillmentService
	log        ports.Logger
	reqTimeout time.Duration
}

// NewHandler — reqTimeout <= 0 означает таймаут по умолчанию (3s).
func NewHandler(service ports.FulfillmentService, log ports.Logger, reqTimeout time.Duration) *Handler {
	if reqTimeout <= 0 {
		reqTimeout = 3 * time.Second
	}
	return &Handler{service: service, log: log, reqTimeout: reqTimeout}
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.reqTimeout)
}

// fulfill — POST / : запрос вебхука → {"fulfillmentText": ...}.
func (h *Handler) fulfill(c *gin.Context) {
	var req domain.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf(c.Request.Context(), "bad webhook body err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	text, err := h.service.Fulfill(ctx, &req)
	if err != nil {
		if isClientError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf(ctx, "Fulfill failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, domain.WebhookResponse{FulfillmentText: text})
}

// isClientError — ошибки запроса, а не сервера: неизвестный интент, кривые параметры, конверт.
func isClientError(err error) bool {
	return errors.Is(err, domain.ErrUnknownIntent) ||
		errors.Is(err, domain.ErrMalformedRequest) ||
		errors.Is(err, validate.ErrInvalidRequest)
}

func (h *Handler) getOrderByID(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.service.GetOrder(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "GetOrder failed id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) menu(c *gin.Context) {
	page, err := httpx.ParsePage(c, defaultMenuLimit, maxMenuLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	items, err := h.service.Menu(ctx, page.Limit, page.Offset)
	if err != nil {
		h.log.Errorf(ctx, "Menu failed limit=%d offset=%d err=%v", page.Limit, page.Offset, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}
