package order

import (
	"context"
	"log/slog"
	"strings"

	domorder "example.com/admin-console/internal/domain/order"
	"example.com/admin-console/internal/usecase/resource"
)

type Service struct {
	repo  domorder.Repository
	coord *resource.Coordinator[domorder.Order]
}

func NewService(repo domorder.Repository, logger *slog.Logger) *Service {
	cache := resource.NewCache("orders", repo.List)
	return &Service{
		repo:  repo,
		coord: resource.NewCoordinator(cache, logger),
	}
}

func (s *Service) Load(ctx context.Context) ([]domorder.Order, error) {
	return s.coord.Cache().Load(ctx)
}

func (s *Service) Current() []domorder.Order {
	return s.coord.Cache().Current()
}

func (s *Service) Snapshot() resource.Snapshot[domorder.Order] {
	return s.coord.Cache().Snapshot()
}

// Clear drops the cached collection. Loads still in flight are discarded.
func (s *Service) Clear() {
	s.coord.Cache().Clear()
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status string) error {
	status = strings.TrimSpace(status)
	return s.coord.Apply(ctx, resource.Mutation{
		Kind: resource.KindUpdate,
		ID:   id,
		Validate: func() error {
			if strings.TrimSpace(id) == "" {
				return &resource.ValidationError{Field: "id", Reason: "is required"}
			}
			if status == "" {
				return &resource.ValidationError{Field: "status", Err: domorder.ErrInvalidStatus}
			}
			return nil
		},
		Remote: func(ctx context.Context) error {
			return s.repo.UpdateStatus(ctx, id, status)
		},
	})
}

func (s *Service) MarkDelivered(ctx context.Context, id string) error {
	return s.UpdateStatus(ctx, id, domorder.StatusDelivered)
}
