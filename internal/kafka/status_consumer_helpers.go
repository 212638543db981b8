package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/foodbot/internal/domain"
	"github.com/Gunvolt24/foodbot/pkg/ctxmeta"
	"github.com/Gunvolt24/foodbot/pkg/metrics"
	"github.com/Gunvolt24/foodbot/pkg/validate"
	"github.com/segmentio/kafka-go"
)

// outcome — что делать с оффсетом после обработки сообщения.
type outcome int

const (
	outcomeApplied outcome = iota // статус записан, коммит
	outcomeSkipped                // повтор не поможет, коммит
	outcomeRetry                  // временная ошибка, повтор того же сообщения
)

// classify — ошибки данных пропускаем, всё остальное считаем временным.
func classify(err error) outcome {
	switch {
	case err == nil:
		return outcomeApplied
	case errors.Is(err, validate.ErrInvalidStatusUpdate), errors.Is(err, domain.ErrOrderNotFound):
		return outcomeSkipped
	default:
		return outcomeRetry
	}
}

// process — применяет одно сообщение под processTimeout.
// В контекст кладётся request_id вида topic/partition/offset для сквозных логов.
func (c *StatusConsumer) process(ctx context.Context, topic string, msg *kafka.Message) outcome {
	msgCtx := ctxmeta.WithRequestID(ctx, fmt.Sprintf("%s/%d/%d", topic, msg.Partition, msg.Offset))
	msgCtx, cancel := context.WithTimeout(msgCtx, c.processTimeout)
	defer cancel()

	err := c.service.ApplyStatusFromMessage(msgCtx, msg.Value)
	result := classify(err)
	switch result {
	case outcomeApplied:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
	case outcomeSkipped:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(msgCtx, "status message skipped key=%s err=%v", msg.Key, err)
	case outcomeRetry:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(msgCtx, "status message failed key=%s err=%v", msg.Key, err)
	}
	return result
}

// commit — ошибка коммита не фатальна: сообщение придёт ещё раз, а запись статуса идемпотентна.
func (c *StatusConsumer) commit(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed partition=%d offset=%d err=%v", msg.Partition, msg.Offset, err)
	}
}

// sleepCtx — false, если ctx отменили раньше.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
