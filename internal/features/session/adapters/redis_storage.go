package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier-console/internal/core/cache"
	"courier-console/internal/features/session/domain"
)

const (
	fieldAccessToken  = "accessToken"
	fieldRefreshToken = "refreshToken"
	fieldUser         = "user"
	fieldRole         = "role"
)

// RedisSessionStorage implements ports.Storage on top of the cache.
// Each session occupies four keys: <prefix>:<sid>:{accessToken,refreshToken,user,role}.
type RedisSessionStorage struct {
	cache  cache.Cache
	prefix string
	ttl    time.Duration
}

// NewRedisSessionStorage creates a new RedisSessionStorage.
func NewRedisSessionStorage(c cache.Cache, prefix string, ttl time.Duration) *RedisSessionStorage {
	return &RedisSessionStorage{
		cache:  c,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *RedisSessionStorage) key(sid, field string) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, sid, field)
}

// Save writes the record atomically. Absent fields are removed.
func (r *RedisSessionStorage) Save(ctx context.Context, sid string, rec domain.Record) error {
	entries := make(map[string][]byte, 4)
	var absent []string

	put := func(field string, value []byte) {
		if len(value) == 0 {
			absent = append(absent, r.key(sid, field))
			return
		}
		entries[r.key(sid, field)] = value
	}
	put(fieldAccessToken, []byte(rec.AccessToken))
	put(fieldRefreshToken, []byte(rec.RefreshToken))
	put(fieldUser, rec.User)
	put(fieldRole, rec.Role)

	if len(entries) > 0 {
		if err := r.cache.SetMany(ctx, entries, r.ttl); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
	}
	if len(absent) > 0 {
		if err := r.cache.Delete(ctx, absent...); err != nil {
			return fmt.Errorf("failed to drop stale session keys: %w", err)
		}
	}
	return nil
}

// Load reads whatever keys exist. A missing session yields an empty record.
func (r *RedisSessionStorage) Load(ctx context.Context, sid string) (domain.Record, error) {
	var rec domain.Record

	get := func(field string) ([]byte, error) {
		data, err := r.cache.Get(ctx, r.key(sid, field))
		if errors.Is(err, cache.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load session %s: %w", field, err)
		}
		return data, nil
	}

	accessToken, err := get(fieldAccessToken)
	if err != nil {
		return rec, err
	}
	refresh, err := get(fieldRefreshToken)
	if err != nil {
		return rec, err
	}
	if rec.User, err = get(fieldUser); err != nil {
		return rec, err
	}
	if rec.Role, err = get(fieldRole); err != nil {
		return rec, err
	}
	rec.AccessToken = string(accessToken)
	rec.RefreshToken = string(refresh)

	return rec, nil
}

// Clear removes all four keys.
func (r *RedisSessionStorage) Clear(ctx context.Context, sid string) error {
	err := r.cache.Delete(ctx,
		r.key(sid, fieldAccessToken),
		r.key(sid, fieldRefreshToken),
		r.key(sid, fieldUser),
		r.key(sid, fieldRole),
	)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
