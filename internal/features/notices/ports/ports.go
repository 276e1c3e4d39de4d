package ports

import (
	"context"

	"courier-console/internal/features/notices/domain"
)

// NoticeService defines the primary port for session notices.
type NoticeService interface {
	Publish(ctx context.Context, sid, title, message string, noticeType domain.NoticeType) error
	List(ctx context.Context, sid string) ([]domain.Notice, error)
	Dismiss(ctx context.Context, sid string) error
}

// NoticeRepository defines the secondary port for notice storage.
type NoticeRepository interface {
	// Push appends notice to the session's queue atomically, dropping the oldest beyond domain.MaxQueued.
	Push(ctx context.Context, sid string, notice domain.Notice) error
	Get(ctx context.Context, sid string) ([]domain.Notice, error)
	Delete(ctx context.Context, sid string) error
}
