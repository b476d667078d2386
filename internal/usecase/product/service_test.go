package product

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	dom "example.com/admin-console/internal/domain/product"
	"example.com/admin-console/internal/usecase/resource"
)

type mockProductRepository struct {
	products  []dom.Product
	nextID    int
	calls     []string
	lastImage *dom.Attachment
	createErr error
	updateErr error
	listErr   error
}

func newMockProductRepository(products ...dom.Product) *mockProductRepository {
	return &mockProductRepository{products: products, nextID: len(products) + 1}
}

func (m *mockProductRepository) List(ctx context.Context) ([]dom.Product, error) {
	m.calls = append(m.calls, "list")
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]dom.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *mockProductRepository) Create(ctx context.Context, f dom.Fields, image *dom.Attachment) error {
	m.calls = append(m.calls, "create")
	if m.createErr != nil {
		return m.createErr
	}
	m.lastImage = image
	p := dom.Product{ID: fmt.Sprintf("p%d", m.nextID), Name: *f.Name, Price: *f.Price, Stock: *f.Stock}
	m.nextID++
	m.products = append(m.products, p)
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, id string, f dom.Fields, image *dom.Attachment) error {
	m.calls = append(m.calls, "update")
	if m.updateErr != nil {
		return m.updateErr
	}
	for i := range m.products {
		if m.products[i].ID != id {
			continue
		}
		if f.Name != nil {
			m.products[i].Name = *f.Name
		}
		if f.Price != nil {
			m.products[i].Price = *f.Price
		}
		if f.Stock != nil {
			m.products[i].Stock = *f.Stock
		}
		m.lastImage = image
		return nil
	}
	return &resource.RemoteError{StatusCode: 404, Message: "Product not found"}
}

func (m *mockProductRepository) Delete(ctx context.Context, id string) error {
	m.calls = append(m.calls, "delete")
	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return &resource.RemoteError{StatusCode: 404, Message: "Product not found"}
}

func ptr[T any](v T) *T { return &v }

func TestCreate_NegativePriceRejectedWithoutNetworkCall(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo, nil)

	err := svc.Create(context.Background(), CreateInput{
		Name:  "Widget",
		Price: decimal.NewFromFloat(-0.01),
		Stock: 3,
	})

	var ve *resource.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "price", ve.Field)
	require.ErrorIs(t, err, dom.ErrInvalidPrice)
	require.Empty(t, repo.calls)
}

func TestCreate_NegativeStockRejectedWithoutNetworkCall(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo, nil)

	err := svc.Create(context.Background(), CreateInput{
		Name:  "Widget",
		Price: decimal.NewFromInt(10),
		Stock: -1,
	})

	require.ErrorIs(t, err, dom.ErrInvalidStock)
	require.Empty(t, repo.calls)
}

func TestCreate_MissingNameRejected(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo, nil)

	err := svc.Create(context.Background(), CreateInput{Price: decimal.NewFromInt(1)})

	var ve *resource.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "name", ve.Field)
	require.Empty(t, repo.calls)
}

func TestCreate_ZeroPriceAndStockAccepted(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo, nil)

	err := svc.Create(context.Background(), CreateInput{Name: "Free sample", Image: &dom.Attachment{Filename: "a.png"}})

	require.NoError(t, err)
	require.Equal(t, []string{"create", "list"}, repo.calls)
	require.NotNil(t, repo.lastImage)
	require.Len(t, svc.Current(), 1)
}

func TestCreate_CacheMatchesRemoteAfterSuccess(t *testing.T) {
	repo := newMockProductRepository(dom.Product{ID: "p1", Name: "Old", Stock: 2})
	svc := NewService(repo, nil)
	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	err = svc.Create(context.Background(), CreateInput{Name: "New", Price: decimal.NewFromInt(5), Stock: 9})
	require.NoError(t, err)

	remote, _ := repo.List(context.Background())
	require.Equal(t, remote, svc.Current())
}

func TestUpdate_NegativeValuesRejected(t *testing.T) {
	tests := []struct {
		name   string
		fields dom.Fields
		want   error
	}{
		{"price", dom.Fields{Price: ptr(decimal.NewFromInt(-3))}, dom.ErrInvalidPrice},
		{"stock", dom.Fields{Stock: ptr(int64(-1))}, dom.ErrInvalidStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockProductRepository(dom.Product{ID: "p1", Name: "Widget"})
			svc := NewService(repo, nil)

			err := svc.Update(context.Background(), UpdateInput{ID: "p1", Fields: tt.fields})

			require.ErrorIs(t, err, tt.want)
			require.Empty(t, repo.calls)
		})
	}
}

func TestUpdate_PartialFieldsReloadCache(t *testing.T) {
	repo := newMockProductRepository(dom.Product{ID: "p1", Name: "Widget", Price: decimal.NewFromInt(10), Stock: 4})
	svc := NewService(repo, nil)

	err := svc.Update(context.Background(), UpdateInput{ID: "p1", Fields: dom.Fields{Stock: ptr(int64(0))}})

	require.NoError(t, err)
	require.Equal(t, []string{"update", "list"}, repo.calls)
	current := svc.Current()
	require.Len(t, current, 1)
	require.Equal(t, int64(0), current[0].Stock)
	require.True(t, decimal.NewFromInt(10).Equal(current[0].Price))
}

func TestUpdate_RemoteFailureSurfacesMutationError(t *testing.T) {
	repo := newMockProductRepository(dom.Product{ID: "p1", Name: "Widget"})
	repo.updateErr = &resource.RemoteError{StatusCode: 500, Message: "Image upload failed"}
	svc := NewService(repo, nil)

	err := svc.Update(context.Background(), UpdateInput{ID: "p1", Fields: dom.Fields{Name: ptr("Gadget")}})

	var me *resource.MutationError
	require.ErrorAs(t, err, &me)
	require.Equal(t, resource.KindUpdate, me.Kind)
	require.Equal(t, "Image upload failed", resource.UserMessage(err))
	require.Equal(t, []string{"update"}, repo.calls)
}

func TestDelete_AlreadyRemovedSurfacesMutationError(t *testing.T) {
	repo := newMockProductRepository(dom.Product{ID: "p1", Name: "Widget"})
	svc := NewService(repo, nil)
	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "p1"))
	require.Empty(t, svc.Current())
	version := svc.Snapshot().Version

	err = svc.Delete(context.Background(), "p1")

	var me *resource.MutationError
	require.ErrorAs(t, err, &me)
	require.Equal(t, resource.KindDelete, me.Kind)
	require.Equal(t, "p1", me.ID)
	require.Equal(t, version, svc.Snapshot().Version)
}

func TestDelete_EmptyIDRejected(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo, nil)

	err := svc.Delete(context.Background(), " ")

	var ve *resource.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Empty(t, repo.calls)
}

func TestLoad_FailureKeepsPreviousProducts(t *testing.T) {
	repo := newMockProductRepository(dom.Product{ID: "p1", Name: "Widget"})
	svc := NewService(repo, nil)
	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	repo.listErr = fmt.Errorf("dial tcp: connection refused")
	_, err = svc.Load(context.Background())

	var fe *resource.FetchError
	require.ErrorAs(t, err, &fe)
	require.Len(t, svc.Current(), 1)
}

func TestClear_DropsCachedProducts(t *testing.T) {
	repo := newMockProductRepository(dom.Product{ID: "p1", Name: "Widget"})
	svc := NewService(repo, nil)
	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	svc.Clear()

	require.Empty(t, svc.Current())
	require.False(t, svc.Snapshot().Loaded)
}
