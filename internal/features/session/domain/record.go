package domain

import (
	"encoding/json"
	"fmt"
)

// Record is the durable form of a session: the four persisted keys as raw values.
// An empty field means the key is absent.
type Record struct {
	AccessToken  string
	RefreshToken string
	User         []byte
	Role         []byte
}

// IsEmpty reports whether no key was persisted.
func (r Record) IsEmpty() bool {
	return r.AccessToken == "" && r.RefreshToken == "" && len(r.User) == 0 && len(r.Role) == 0
}

// EncodeRecord serializes a session for durable storage. The user is written with the
// current role embedded so a rehydration can fall back to it.
func EncodeRecord(s Session) (Record, error) {
	rec := Record{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
	}

	if s.User != nil {
		data, err := json.Marshal(UserRecord{User: *s.User, Role: s.Role})
		if err != nil {
			return Record{}, fmt.Errorf("failed to encode user: %w", err)
		}
		rec.User = data
	}

	if s.Role != nil {
		data, err := json.Marshal(s.Role)
		if err != nil {
			return Record{}, fmt.Errorf("failed to encode role: %w", err)
		}
		rec.Role = data
	}

	return rec, nil
}
