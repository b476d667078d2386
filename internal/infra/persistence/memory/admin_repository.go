// Package memory keeps operator accounts in process memory, seeded from
// configuration. Password hashes only; plaintext never reaches this store.
package memory

import (
	"context"
	"sync"

	dom "example.com/admin-console/internal/domain/admin"
)

type AdminRepository struct {
	mu     sync.RWMutex
	admins map[string]dom.Admin
	nextID int64
}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{admins: make(map[string]dom.Admin), nextID: 1}
}

// Add registers an operator. An existing username is replaced.
func (r *AdminRepository) Add(a dom.Admin) dom.Admin {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.admins[a.Username]; ok {
		a.ID = existing.ID
	} else if a.ID == 0 {
		a.ID = r.nextID
		r.nextID++
	}
	if a.RoleCode == "" {
		a.RoleCode = dom.RoleCodeAdmin
	}
	r.admins[a.Username] = a
	return a
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*dom.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.admins[username]
	if !ok {
		return nil, dom.ErrAdminNotFound
	}
	return &a, nil
}

func (r *AdminRepository) Ping(ctx context.Context) error { return nil }
