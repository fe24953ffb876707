// Package memory keeps users and notes in process memory. It satisfies the
// same repository contracts as the PostgreSQL implementation and is meant for
// local runs and tests; nothing survives a restart.
package memory

import (
	"sync"
	"time"

	"notekeeper/internal/domain/entity"
)

// Store is a thread-safe in-memory database shared by the user and note repositories.
type Store struct {
	mu sync.RWMutex

	users       map[int64]*entity.User
	userByEmail map[string]int64
	notes       map[int64]*entity.Note

	lastUserID int64
	lastNoteID int64

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:       make(map[int64]*entity.User),
		userByEmail: make(map[string]int64),
		notes:       make(map[int64]*entity.Note),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func copyUser(u *entity.User) *entity.User {
	c := *u

	return &c
}

func copyNote(n *entity.Note) *entity.Note {
	c := *n

	return &c
}
