package book_session

import (
	"context"

	bookSession "github.com/m04kA/EDU-SchedulingService/internal/usecase/book_session"
)

type BookSessionUseCase interface {
	Execute(ctx context.Context, req *bookSession.Request) (*bookSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
