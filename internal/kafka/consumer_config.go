package kafka

import (
	"errors"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// ErrInvalidConfig — не хватает брокеров, топика или группы.
var ErrInvalidConfig = errors.New("invalid kafka consumer config")

// Значения по умолчанию для пустых таймаутов.
const (
	defaultProcessTimeout = 5 * time.Second
	defaultRetryInitial   = time.Second
	defaultRetryMax       = 30 * time.Second
)

// ConsumerConfig — параметры консьюмера статусов заказов.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // "first" или "last" (по умолчанию)

	ProcessTimeout time.Duration // на одно сообщение
	RetryInitial   time.Duration // первая пауза после ошибки чтения или обработки
	RetryMax       time.Duration // потолок паузы
}

func (c ConsumerConfig) withDefaults() ConsumerConfig {
	if c.ProcessTimeout <= 0 {
		c.ProcessTimeout = defaultProcessTimeout
	}
	if c.RetryInitial <= 0 {
		c.RetryInitial = defaultRetryInitial
	}
	if c.RetryMax <= 0 {
		c.RetryMax = defaultRetryMax
	}
	return c
}

// Validate — без группы нет ручного коммита, без топика и брокеров нечего читать.
func (c ConsumerConfig) Validate() error {
	switch {
	case len(c.Brokers) == 0:
		return errors.Join(ErrInvalidConfig, errors.New("brokers are empty"))
	case strings.TrimSpace(c.Topic) == "":
		return errors.Join(ErrInvalidConfig, errors.New("topic is empty"))
	case strings.TrimSpace(c.GroupID) == "":
		return errors.Join(ErrInvalidConfig, errors.New("group id is empty"))
	}
	return nil
}

// ReaderConfig — kafka.ReaderConfig в режиме consumer group с ручным коммитом (CommitInterval=0).
func (c ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	offset := kafka.LastOffset
	if strings.EqualFold(strings.TrimSpace(c.StartOffset), "first") {
		offset = kafka.FirstOffset
	}
	return kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		StartOffset:    offset,
		CommitInterval: 0,
	}
}
