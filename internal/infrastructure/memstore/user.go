package memstore

import (
	"context"

	"travelblog-backend/internal/domains/user"
)

// userRepository adapts the store to the user domain contract.
type userRepository struct {
	s *Store
}

// UserRepository returns the in-memory user store.
func (s *Store) UserRepository() user.Repository {
	return &userRepository{s: s}
}

func (r *userRepository) GetByID(_ context.Context, id int) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}

	return &u, nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}

	return nil, user.ErrUserNotFound
}

func (r *userRepository) Create(_ context.Context, u *user.User) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return nil, user.ErrDuplicateUsername
		}
	}

	created := user.User{
		ID:       r.s.nextUserID,
		Username: u.Username,
		Password: u.Password,
	}
	r.s.nextUserID++
	r.s.users[created.ID] = created

	return &created, nil
}
