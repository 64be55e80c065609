package store

import (
	"context"
	"sync"
	"time"

	"github.com/smartinvest/apiserver/types"
)

// MemoryUserRepository keeps users in a process-lifetime map, the default
// credential store: nothing persists across restarts. Access is guarded by
// a mutex so one server process can serve concurrent sessions.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[string]types.User
	nextID int
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:  make(map[string]types.User),
		nextID: 1,
	}
}

func (r *MemoryUserRepository) GetByUsername(_ context.Context, username string) (types.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return types.User{}, ErrNotFound
	}
	return user, nil
}

func (r *MemoryUserRepository) Create(_ context.Context, user types.User) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return types.User{}, ErrDuplicate
	}

	now := time.Now()
	user.ID = r.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	r.nextID++
	r.users[user.Username] = user
	return user, nil
}
