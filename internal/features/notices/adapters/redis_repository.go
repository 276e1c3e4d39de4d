package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"courier-console/internal/core/cache"
	"courier-console/internal/features/notices/domain"
)

const noticeKeyPrefix = "notice"

// RedisNoticeRepository implements ports.NoticeRepository using the cache adaptation.
type RedisNoticeRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisNoticeRepository creates a new RedisNoticeRepository. Queues expire after ttl.
func NewRedisNoticeRepository(c cache.Cache, ttl time.Duration) *RedisNoticeRepository {
	return &RedisNoticeRepository{
		cache: c,
		ttl:   ttl,
	}
}

func noticeKey(sid string) string {
	return noticeKeyPrefix + ":" + sid
}

// Push appends notice to the session's queue and resets its expiry. Concurrent
// pushes for one session never overwrite each other.
func (r *RedisNoticeRepository) Push(ctx context.Context, sid string, notice domain.Notice) error {
	data, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to marshal notice: %w", err)
	}

	if err := r.cache.Push(ctx, noticeKey(sid), data, domain.MaxQueued, r.ttl); err != nil {
		return fmt.Errorf("failed to save notice to cache: %w", err)
	}

	return nil
}

// Get retrieves the session's notice queue, oldest first. A missing queue is empty.
func (r *RedisNoticeRepository) Get(ctx context.Context, sid string) ([]domain.Notice, error) {
	entries, err := r.cache.Range(ctx, noticeKey(sid))
	if err != nil {
		return nil, fmt.Errorf("failed to get notices from cache: %w", err)
	}

	notices := make([]domain.Notice, 0, len(entries))
	for _, data := range entries {
		var n domain.Notice
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notice: %w", err)
		}
		notices = append(notices, n)
	}

	return notices, nil
}

// Delete removes the session's notice queue.
func (r *RedisNoticeRepository) Delete(ctx context.Context, sid string) error {
	if err := r.cache.Delete(ctx, noticeKey(sid)); err != nil {
		return fmt.Errorf("failed to delete notices from cache: %w", err)
	}
	return nil
}
