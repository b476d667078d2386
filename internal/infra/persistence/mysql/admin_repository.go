package mysql

import (
	"context"
	"database/sql"
	"errors"

	dom "example.com/admin-console/internal/domain/admin"
)

type AdminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*dom.Admin, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, username, name, password_hash, role_code
        FROM admin_users
        WHERE username = ? AND is_active = 1
    `, username)

	var a dom.Admin
	var roleCode string
	if err := row.Scan(&a.ID, &a.Username, &a.Name, &a.PasswordHash, &roleCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
	return r.db.PingContext(ctx)
}
