package order

import "context"

// Repository is the external orders API.
type Repository interface {
	List(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}
