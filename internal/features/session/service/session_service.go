package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"courier-console/internal/core/logger"
	access "courier-console/internal/features/access/domain"
	"courier-console/internal/features/session/domain"
	"courier-console/internal/features/session/ports"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionServiceImpl implements ports.SessionService. Live stores are kept in an
// in-memory registry keyed by session id; Redis is the durable mirror used to
// rehydrate a session after a restart or registry eviction.
type SessionServiceImpl struct {
	storage  ports.Storage
	auth     ports.AuthProvider
	registry *cache.Cache[string, *domain.Store]
	ttl      time.Duration

	// restoreMu serializes registry misses so one sid is rehydrated once.
	restoreMu sync.Mutex
}

// NewSessionService creates a new SessionServiceImpl.
func NewSessionService(storage ports.Storage, auth ports.AuthProvider, ttl time.Duration) *SessionServiceImpl {
	return &SessionServiceImpl{
		storage:  storage,
		auth:     auth,
		registry: cache.New[string, *domain.Store](),
		ttl:      ttl,
	}
}

// Resolve returns the session for sid, rehydrating it from storage when needed.
// Unknown or empty ids resolve to an unauthenticated session.
func (s *SessionServiceImpl) Resolve(ctx context.Context, sid string) domain.Session {
	store := s.lookup(ctx, sid)
	if store == nil {
		return domain.Session{}
	}
	return store.Snapshot()
}

// Login authenticates with the backend and opens a new session. The durable copy is
// written before the session becomes visible; if that write fails the session is discarded.
func (s *SessionServiceImpl) Login(ctx context.Context, email, password string) (string, domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", domain.Session{}, domain.ErrMissingLogin
	}

	creds, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return "", domain.Session{}, err
	}

	user, role := creds.User.Split()
	store := domain.NewStore()
	if err := store.SetCredentials(user, role, creds.AccessToken, creds.RefreshToken); err != nil {
		return "", domain.Session{}, err
	}

	sid := uuid.NewString()
	snapshot := store.Snapshot()
	if err := s.persist(ctx, sid, snapshot); err != nil {
		store.Logout()
		return "", domain.Session{}, fmt.Errorf("service: failed to persist session: %w", err)
	}

	s.registry.Set(sid, store, cache.WithExpiration(s.ttl))
	logger.Get().Info("Session opened",
		zap.String("user_id", user.ID),
		zap.String("role", string(snapshot.RoleName())),
	)

	return sid, snapshot, nil
}

// Logout clears the durable copy first, then the in-memory session.
func (s *SessionServiceImpl) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}

	err := s.storage.Clear(ctx, sid)

	if store, ok := s.registry.Get(sid); ok {
		store.Logout()
	}
	s.registry.Delete(sid)

	if err != nil {
		return fmt.Errorf("service: failed to clear session: %w", err)
	}
	return nil
}

// SetRole replaces the session's role and persists it. On a storage failure the
// previous role is put back.
func (s *SessionServiceImpl) SetRole(ctx context.Context, sid string, role *access.Role) (domain.Session, error) {
	store := s.lookup(ctx, sid)
	if store == nil || !store.Snapshot().IsAuthenticated {
		return domain.Session{}, domain.ErrNotAuthenticated
	}

	previous := store.Snapshot().Role
	store.SetRole(role)

	snapshot := store.Snapshot()
	if err := s.persist(ctx, sid, snapshot); err != nil {
		store.SetRole(previous)
		return store.Snapshot(), fmt.Errorf("service: failed to persist role: %w", err)
	}

	return snapshot, nil
}

// RefreshRole re-reads the profile from the backend and adopts its role.
func (s *SessionServiceImpl) RefreshRole(ctx context.Context, sid string) (domain.Session, error) {
	current := s.Resolve(ctx, sid)
	if !current.IsAuthenticated {
		return domain.Session{}, domain.ErrNotAuthenticated
	}

	profile, err := s.auth.Profile(ctx, current.AccessToken)
	if err != nil {
		return current, err
	}

	_, role := profile.Split()
	return s.SetRole(ctx, sid, role)
}

func (s *SessionServiceImpl) persist(ctx context.Context, sid string, snapshot domain.Session) error {
	rec, err := domain.EncodeRecord(snapshot)
	if err != nil {
		return err
	}
	return s.storage.Save(ctx, sid, rec)
}

func (s *SessionServiceImpl) lookup(ctx context.Context, sid string) *domain.Store {
	if sid == "" {
		return nil
	}
	if store, ok := s.registry.Get(sid); ok {
		return store
	}

	s.restoreMu.Lock()
	defer s.restoreMu.Unlock()

	if store, ok := s.registry.Get(sid); ok {
		return store
	}

	store := s.restore(ctx, sid)
	if store != nil {
		s.registry.Set(sid, store, cache.WithExpiration(s.ttl))
	}
	return store
}

// restore rebuilds a store from durable storage. Malformed data is purged and the
// caller sees no session; a malformed role falls back to the role embedded in the user.
func (s *SessionServiceImpl) restore(ctx context.Context, sid string) *domain.Store {
	log := logger.Get().With(zap.String("sid", sid))

	rec, err := s.storage.Load(ctx, sid)
	if err != nil {
		log.Warn("Failed to load persisted session", zap.Error(err))
		return nil
	}
	if rec.IsEmpty() {
		return nil
	}

	var userRec domain.UserRecord
	if len(rec.User) == 0 || json.Unmarshal(rec.User, &userRec) != nil || userRec.ID == "" {
		log.Warn("Discarding persisted session with malformed user")
		s.purge(ctx, sid)
		return nil
	}
	user, embedded := userRec.Split()

	role := embedded
	if len(rec.Role) > 0 {
		var stored access.Role
		if err := json.Unmarshal(rec.Role, &stored); err != nil || stored.Name == "" {
			log.Warn("Persisted role is malformed, using the role embedded in the user")
		} else {
			role = &stored
		}
	}

	store := domain.NewStore()
	store.Hydrate(user, role, rec.AccessToken, rec.RefreshToken)
	if !store.Snapshot().IsAuthenticated {
		log.Warn("Discarding persisted session without access token")
		s.purge(ctx, sid)
		return nil
	}

	log.Debug("Session rehydrated", zap.String("role", string(store.Snapshot().RoleName())))
	return store
}

func (s *SessionServiceImpl) purge(ctx context.Context, sid string) {
	if err := s.storage.Clear(ctx, sid); err != nil {
		logger.Get().Error("Failed to purge persisted session", zap.String("sid", sid), zap.Error(err))
	}
}
