package memory

import (
	"context"

	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/domain/repository"
)

type userRepository struct {
	store *Store
}

// NewUserRepository returns a UserRepository backed by the store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

// Create checks and claims the email under one lock.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.userByEmail[user.Email]; taken {
		return domainerrors.ErrConflict.WrapMessage("email already registered")
	}

	s.lastUserID++
	now := s.now()

	user.ID = s.lastUserID
	user.CreatedAt = now
	user.UpdatedAt = now

	s.users[user.ID] = copyUser(user)
	s.userByEmail[user.Email] = user.ID

	return nil
}

func (repo *userRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return copyUser(user), nil
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userByEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return copyUser(s.users[id]), nil
}
