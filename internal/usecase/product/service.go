package product

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	dom "example.com/admin-console/internal/domain/product"
	"example.com/admin-console/internal/usecase/resource"
)

type Service struct {
	repo      dom.Repository
	coord     *resource.Coordinator[dom.Product]
	validator *validator.Validate
}

func NewService(repo dom.Repository, logger *slog.Logger) *Service {
	cache := resource.NewCache("products", repo.List)
	return &Service{
		repo:      repo,
		coord:     resource.NewCoordinator(cache, logger),
		validator: newValidator(),
	}
}

type CreateInput struct {
	Name        string          `validate:"required"`
	Price       decimal.Decimal `validate:"gte=0"`
	Stock       int64           `validate:"gte=0"`
	Description string
	// Image is mandatory for new products; the HTTP boundary enforces it.
	Image *dom.Attachment
}

type UpdateInput struct {
	ID     string `validate:"required"`
	Fields dom.Fields
	Image  *dom.Attachment
}

func (s *Service) Load(ctx context.Context) ([]dom.Product, error) {
	return s.coord.Cache().Load(ctx)
}

func (s *Service) Current() []dom.Product {
	return s.coord.Cache().Current()
}

func (s *Service) Snapshot() resource.Snapshot[dom.Product] {
	return s.coord.Cache().Snapshot()
}

// Clear drops the cached collection. Loads still in flight are discarded.
func (s *Service) Clear() {
	s.coord.Cache().Clear()
}

func (s *Service) Create(ctx context.Context, in CreateInput) error {
	fields := dom.Fields{
		Name:        &in.Name,
		Price:       &in.Price,
		Stock:       &in.Stock,
		Description: &in.Description,
	}
	return s.coord.Apply(ctx, resource.Mutation{
		Kind:     resource.KindCreate,
		Validate: func() error { return s.validate(in) },
		Remote: func(ctx context.Context) error {
			return s.repo.Create(ctx, fields, in.Image)
		},
	})
}

func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	return s.coord.Apply(ctx, resource.Mutation{
		Kind:     resource.KindUpdate,
		ID:       in.ID,
		Validate: func() error { return s.validate(in) },
		Remote: func(ctx context.Context) error {
			return s.repo.Update(ctx, in.ID, in.Fields, in.Image)
		},
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.coord.Apply(ctx, resource.Mutation{
		Kind: resource.KindDelete,
		ID:   id,
		Validate: func() error {
			if strings.TrimSpace(id) == "" {
				return &resource.ValidationError{Field: "id", Reason: "is required"}
			}
			return nil
		},
		Remote: func(ctx context.Context) error {
			return s.repo.Delete(ctx, id)
		},
	})
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

var fieldErrors = map[string]error{
	"price": dom.ErrInvalidPrice,
	"stock": dom.ErrInvalidStock,
}

func (s *Service) validate(in any) error {
	err := s.validator.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &resource.ValidationError{Err: err}
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	return &resource.ValidationError{
		Field:  field,
		Reason: reasonFor(fe),
		Err:    fieldErrors[field],
	}
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be >= " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
