package ports

import "context"

// Logger — логгер usecase/транспорта/консьюмера. Сообщения в формате "event key=value",
// поля request_id/trace_id реализация берёт из ctx.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
