package domain

import (
	"encoding/json"
	"sync"
	"testing"

	access "courier-console/internal/features/access/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hrRole() *access.Role {
	return &access.Role{Name: access.RoleHRManager}
}

func TestStore_SetCredentials(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store := NewStore()
		err := store.SetCredentials(&User{ID: "u1"}, hrRole(), "access", "refresh")
		require.NoError(t, err)

		s := store.Snapshot()
		assert.True(t, s.IsAuthenticated)
		assert.Equal(t, "u1", s.User.ID)
		assert.Equal(t, access.RoleHRManager, s.RoleName())
		assert.Equal(t, "access", s.AccessToken)
		assert.Equal(t, "refresh", s.RefreshToken)
	})

	t.Run("MissingUser", func(t *testing.T) {
		store := NewStore()
		err := store.SetCredentials(nil, hrRole(), "access", "refresh")
		assert.ErrorIs(t, err, ErrIncompleteCredentials)
		assert.False(t, store.Snapshot().IsAuthenticated)
	})

	t.Run("MissingToken", func(t *testing.T) {
		store := NewStore()
		err := store.SetCredentials(&User{ID: "u1"}, hrRole(), "", "refresh")
		assert.ErrorIs(t, err, ErrIncompleteCredentials)
	})
}

func TestStore_SetRoleKeepsCredentials(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.SetCredentials(&User{ID: "u1"}, hrRole(), "access", "refresh"))

	store.SetRole(&access.Role{Name: access.RoleFinanceManager})

	s := store.Snapshot()
	assert.Equal(t, access.RoleFinanceManager, s.RoleName())
	assert.Equal(t, "access", s.AccessToken)
	assert.True(t, s.IsAuthenticated)
}

func TestStore_Logout(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.SetCredentials(&User{ID: "u1"}, hrRole(), "access", "refresh"))

	store.Logout()

	s := store.Snapshot()
	assert.False(t, s.IsAuthenticated)
	assert.Nil(t, s.User)
	assert.Nil(t, s.Role)
	assert.Empty(t, s.AccessToken)
	assert.Empty(t, s.RefreshToken)
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.SetCredentials(&User{ID: "u1"}, hrRole(), "access", ""))

	s := store.Snapshot()
	s.User.ID = "mutated"
	s.Role.Name = access.RoleSuperAdmin

	again := store.Snapshot()
	assert.Equal(t, "u1", again.User.ID)
	assert.Equal(t, access.RoleHRManager, again.RoleName())
}

func TestStore_ConcurrentReadersSeeWholeSessions(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.SetCredentials(&User{ID: "u1"}, hrRole(), "access", "refresh")
			store.Logout()
		}()
		go func() {
			defer wg.Done()
			s := store.Snapshot()
			if s.IsAuthenticated {
				assert.NotNil(t, s.User)
				assert.NotEmpty(t, s.AccessToken)
			} else {
				assert.Nil(t, s.User)
			}
		}()
	}
	wg.Wait()
}

func TestUserRecord_Split(t *testing.T) {
	var rec UserRecord
	err := json.Unmarshal([]byte(`{"id":"u1","email":"a@b.c","role":{"name":"HR_MANAGER","description":"HR"}}`), &rec)
	require.NoError(t, err)

	user, role := rec.Split()
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "a@b.c", user.Email)
	require.NotNil(t, role)
	assert.Equal(t, access.RoleHRManager, role.Name)

	t.Run("EmptyRoleNameIsNoRole", func(t *testing.T) {
		_, role := UserRecord{User: User{ID: "u2"}, Role: &access.Role{}}.Split()
		assert.Nil(t, role)
	})
}

func TestEncodeRecord(t *testing.T) {
	rec, err := EncodeRecord(Session{
		User:         &User{ID: "u1"},
		Role:         hrRole(),
		AccessToken:  "access",
		RefreshToken: "refresh",
	})
	require.NoError(t, err)

	assert.Equal(t, "access", rec.AccessToken)
	assert.JSONEq(t, `{"id":"u1","role":{"name":"HR_MANAGER"}}`, string(rec.User))
	assert.JSONEq(t, `{"name":"HR_MANAGER"}`, string(rec.Role))

	t.Run("NoRole", func(t *testing.T) {
		rec, err := EncodeRecord(Session{User: &User{ID: "u1"}, AccessToken: "a"})
		require.NoError(t, err)
		assert.Empty(t, rec.Role)
		assert.False(t, rec.IsEmpty())
	})
}
