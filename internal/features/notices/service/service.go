package service

import (
	"context"
	"fmt"
	"time"

	"courier-console/internal/core/logger"
	"courier-console/internal/features/notices/domain"
	"courier-console/internal/features/notices/ports"

	"go.uber.org/zap"
)

// NoticeServiceImpl implements ports.NoticeService.
type NoticeServiceImpl struct {
	repo     ports.NoticeRepository
	duration time.Duration
}

// NewNoticeService creates a new NoticeServiceImpl. duration is how long each toast is shown.
func NewNoticeService(repo ports.NoticeRepository, duration time.Duration) *NoticeServiceImpl {
	return &NoticeServiceImpl{
		repo:     repo,
		duration: duration,
	}
}

// Publish queues a notice for the session.
func (s *NoticeServiceImpl) Publish(ctx context.Context, sid, title, message string, noticeType domain.NoticeType) error {
	notice, err := domain.NewNotice(title, message, noticeType, s.duration)
	if err != nil {
		return err
	}

	if err := s.repo.Push(ctx, sid, *notice); err != nil {
		return fmt.Errorf("service: failed to save notice: %w", err)
	}

	return nil
}

// List returns the session's queued notices, oldest first.
func (s *NoticeServiceImpl) List(ctx context.Context, sid string) ([]domain.Notice, error) {
	notices, err := s.repo.Get(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get notices: %w", err)
	}

	return notices, nil
}

// Dismiss clears the session's notices.
func (s *NoticeServiceImpl) Dismiss(ctx context.Context, sid string) error {
	if err := s.repo.Delete(ctx, sid); err != nil {
		return fmt.Errorf("service: failed to dismiss notices: %w", err)
	}

	return nil
}

// Success publishes a SUCCESS notice. Storage failures are logged, not returned:
// a lost toast must not fail the action it reports on.
func (s *NoticeServiceImpl) Success(ctx context.Context, sid, title, message string) {
	s.publishQuietly(ctx, sid, title, message, domain.NoticeTypeSuccess)
}

// Failure publishes an ERROR notice.
func (s *NoticeServiceImpl) Failure(ctx context.Context, sid, title, message string) {
	s.publishQuietly(ctx, sid, title, message, domain.NoticeTypeError)
}

func (s *NoticeServiceImpl) publishQuietly(ctx context.Context, sid, title, message string, noticeType domain.NoticeType) {
	if sid == "" {
		return
	}
	if err := s.Publish(ctx, sid, title, message, noticeType); err != nil {
		logger.Get().Warn("Failed to publish notice",
			zap.String("title", title),
			zap.Error(err),
		)
	}
}
