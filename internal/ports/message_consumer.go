package ports

import "context"

// MessageConsumer — фоновый потребитель сообщений (останавливается по отмене ctx).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
