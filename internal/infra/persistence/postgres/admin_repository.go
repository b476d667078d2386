package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	dom "example.com/admin-console/internal/domain/admin"
)

type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// Connect opens a pool and verifies the server answers.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*dom.Admin, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT id, username, name, password_hash, role_code
        FROM admin_users
        WHERE username = $1 AND is_active
    `, username)

	var a dom.Admin
	var roleCode string
	if err := row.Scan(&a.ID, &a.Username, &a.Name, &a.PasswordHash, &roleCode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dom.ErrAdminNotFound
		}
		return nil, err
	}
	role, err := dom.ParseRoleCode(roleCode)
	if err != nil {
		return nil, err
	}
	a.RoleCode = role
	return &a, nil
}

func (r *AdminRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
