package product

import "context"

// Repository is the external catalog API.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, f Fields, image *Attachment) error
	Update(ctx context.Context, id string, f Fields, image *Attachment) error
	Delete(ctx context.Context, id string) error
}
