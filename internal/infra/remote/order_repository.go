package remote

import (
	"context"
	"net/http"

	dom "example.com/admin-console/internal/domain/order"
)

type OrderRepository struct {
	client *Client
}

func NewOrderRepository(client *Client) *OrderRepository {
	return &OrderRepository{client: client}
}

func (r *OrderRepository) List(ctx context.Context) ([]dom.Order, error) {
	var dtos []orderDTO
	if err := r.client.do(ctx, http.MethodGet, r.client.endpoint("api", "orders", "all"), "", nil, &dtos); err != nil {
		return nil, err
	}
	orders := make([]dom.Order, 0, len(dtos))
	for _, d := range dtos {
		orders = append(orders, d.toDomain())
	}
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	err := r.client.doJSON(ctx, http.MethodPatch, r.client.endpoint("api", "orders", id, "status"), map[string]string{"status": status})
	return notFound(err, dom.ErrOrderNotFound)
}
