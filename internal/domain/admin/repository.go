package admin

import "context"

// Repository looks up console operators. It is the credential authority the
// login flow delegates to.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	Ping(ctx context.Context) error
}
