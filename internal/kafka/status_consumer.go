package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/foodbot/internal/ports"
	"github.com/Gunvolt24/foodbot/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.MessageConsumer = (*StatusConsumer)(nil)

// reader — то, что консьюмеру нужно от kafka.Reader (подменяется моком в тестах).
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// statusUpdater — разбор сообщения о статусе и запись в order_tracking.
type statusUpdater interface {
	ApplyStatusFromMessage(ctx context.Context, raw []byte) error
}

// StatusConsumer — читает топик статусов заказов и применяет их к БД и кэшу.
// Оффсет коммитится вручную: at-least-once.
type StatusConsumer struct {
	reader         reader
	service        statusUpdater
	log            ports.Logger
	backoff        *backoff
	processTimeout time.Duration
	closeOnce      sync.Once
}

// NewStatusConsumer — создаёт kafka.Reader по конфигу; пустые таймауты заменяются значениями по умолчанию.
func NewStatusConsumer(cfg ConsumerConfig, service statusUpdater, log ports.Logger) (*StatusConsumer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newStatusConsumer(kafka.NewReader(cfg.ReaderConfig()), service, log, cfg), nil
}

func newStatusConsumer(r reader, service statusUpdater, log ports.Logger, cfg ConsumerConfig) *StatusConsumer {
	return &StatusConsumer{
		reader:         r,
		service:        service,
		log:            log,
		backoff:        newBackoff(cfg.RetryInitial, cfg.RetryMax),
		processTimeout: cfg.ProcessTimeout,
	}
}

// Run — цикл чтения до отмены ctx.
//   - ошибка FetchMessage: экспоненциальная пауза с джиттером и повтор;
//   - сообщение применено, невалидно или про неизвестный заказ: коммит;
//   - временная ошибка БД: то же сообщение повторяется с паузой, следующее не читается.
//
// FetchMessage в группе двигает позицию чтения независимо от коммита, поэтому
// пропущенное сообщение потерялось бы после коммита следующего.
func (c *StatusConsumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "status consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			delay := c.backoff.next()
			c.log.Warnf(ctx, "fetch failed err=%v retry_in=%s", err, delay)
			if !sleepCtx(ctx, delay) {
				return ctx.Err()
			}
			continue
		}
		c.backoff.reset()
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if err := c.deliver(ctx, rc.Topic, &msg); err != nil {
			return err
		}
	}
}

// deliver — обрабатывает сообщение, пока оно не будет применено или пропущено, затем коммитит.
// Ошибку возвращает только при отмене ctx (без коммита: сообщение получит следующий владелец партиции).
func (c *StatusConsumer) deliver(ctx context.Context, topic string, msg *kafka.Message) error {
	defer c.backoff.reset()

	for attempt := 1; ; attempt++ {
		if c.process(ctx, topic, msg) != outcomeRetry {
			c.commit(ctx, msg)
			return nil
		}
		delay := c.backoff.next()
		c.log.Warnf(ctx, "status message retry partition=%d offset=%d attempt=%d retry_in=%s",
			msg.Partition, msg.Offset, attempt, delay)
		if !sleepCtx(ctx, delay) {
			return ctx.Err()
		}
	}
}

// Close — закрывает reader; повторные вызовы ничего не делают.
func (c *StatusConsumer) Close() (err error) {
	c.closeOnce.Do(func() { err = c.reader.Close() })
	return err
}
