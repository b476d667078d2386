package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domadmin "example.com/admin-console/internal/domain/admin"
	domorder "example.com/admin-console/internal/domain/order"
	domproduct "example.com/admin-console/internal/domain/product"
	authuc "example.com/admin-console/internal/usecase/auth"
	orderuc "example.com/admin-console/internal/usecase/order"
	productuc "example.com/admin-console/internal/usecase/product"
	"example.com/admin-console/internal/usecase/resource"
	"example.com/admin-console/internal/usecase/view"
)

// Pinger reports whether the admin account store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type API struct {
	authSvc    *authuc.Service
	productSvc *productuc.Service
	orderSvc   *orderuc.Service
	tokenSvc   authuc.TokenService
	store      Pinger
	validator  *validator.Validate
	assetBase  string
	location   *time.Location
}

type Dependencies struct {
	AuthService    *authuc.Service
	ProductService *productuc.Service
	OrderService   *orderuc.Service
	TokenService   authuc.TokenService
	AdminStore     Pinger
	AssetBaseURL   string
	Location       *time.Location
}

func NewAPI(deps Dependencies) *API {
	loc := deps.Location
	if loc == nil {
		loc = time.Local
	}
	return &API{
		authSvc:    deps.AuthService,
		productSvc: deps.ProductService,
		orderSvc:   deps.OrderService,
		tokenSvc:   deps.TokenService,
		store:      deps.AdminStore,
		validator:  newRequestValidator(),
		assetBase:  deps.AssetBaseURL,
		location:   loc,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain", "multipart/form-data", "application/x-www-form-urlencoded"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/store", a.handleStoreHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", a.handleLogin)

		r.Group(func(pr chi.Router) {
			pr.Use(a.authMiddleware)
			pr.Post("/auth/logout", a.handleLogout)
			pr.Get("/dashboard", a.handleDashboard)
			pr.Get("/products", a.handleListProducts)
			pr.Get("/orders", a.handleListOrders)
			pr.Get("/analytics", a.handleAnalytics)

			pr.Group(func(mr chi.Router) {
				mr.Use(a.requireRole(domadmin.RoleCode.CanMutate))
				mr.Post("/products", a.handleCreateProduct)
				mr.Patch("/products/{id}", a.handleUpdateProduct)
				mr.Delete("/products/{id}", a.handleDeleteProduct)
				mr.Patch("/orders/{id}/status", a.handleUpdateOrderStatus)
				mr.Post("/orders/{id}/deliver", a.handleMarkDelivered)
			})
		})
	})

	return r
}

func (a *API) handleStoreHealth(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := a.store.Ping(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// newRequestValidator reports fields by their JSON names.
func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate returns the decoder error for a malformed body and a
// *resource.ValidationError for a well-formed body that breaks a rule.
func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	err := a.validator.Struct(dst)
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		reason := "failed " + fe.Tag()
		if fe.Tag() == "required" {
			reason = "is required"
		}
		return &resource.ValidationError{Field: fe.Field(), Reason: reason, Err: err}
	}
	return err
}

func respondRequestError(w http.ResponseWriter, err error) {
	var validationErr *resource.ValidationError
	if errors.As(err, &validationErr) {
		handleDomainError(w, err)
		return
	}
	respondError(w, http.StatusBadRequest, err)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func snapshotMeta[T any](s resource.Snapshot[T]) map[string]any {
	meta := map[string]any{
		"loaded":  s.Loaded,
		"version": s.Version,
	}
	if !s.FetchedAt.IsZero() {
		meta["fetched_at"] = s.FetchedAt
	}
	if s.Err != nil {
		meta["error"] = s.Err.Error()
		if msg := resource.UserMessage(s.Err); msg != "" {
			meta["message"] = msg
		}
	}
	return meta
}

func mapAdmin(a *domadmin.Admin) map[string]any {
	return map[string]any{
		"id":        a.ID,
		"username":  a.Username,
		"name":      a.Name,
		"role_code": a.RoleCode,
	}
}

var bucketNames = map[domproduct.StockBucket]string{
	domproduct.BucketOutOfStock: "out_of_stock",
	domproduct.BucketLimited:    "limited",
	domproduct.BucketOther:      "other",
}

func (a *API) mapProduct(p domproduct.Product) map[string]any {
	return map[string]any{
		"id":                  p.ID,
		"name":                p.Name,
		"description":         p.Description,
		"description_preview": view.DescriptionPreview(p.Description),
		"price":               p.Price.String(),
		"price_display":       "₹" + p.Price.String(),
		"stock":               p.Stock,
		"stock_bucket":        bucketNames[p.Bucket()],
		"image_url":           view.ImageURL(p.ImageURL, a.assetBase),
	}
}

func (a *API) mapProducts(products []domproduct.Product) []map[string]any {
	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, a.mapProduct(p))
	}
	return resp
}

func mapOrderRow(row view.OrderRow) map[string]any {
	items := make([]map[string]any, 0, len(row.Order.Items))
	for _, item := range row.Order.Items {
		items = append(items, map[string]any{
			"name":     item.Name,
			"quantity": item.Quantity,
		})
	}

	resp := map[string]any{
		"id":             row.Order.ID,
		"customer_name":  row.Order.CustomerName,
		"customer_phone": row.Order.CustomerPhone,
		"address":        row.Address,
		"gps_location":   row.GPS,
		"items":          items,
		"total":          row.Order.Total.StringFixed(2),
		"total_display":  row.Total,
		"payment_method": row.Order.PaymentMethod,
		"status":         row.Status,
		"delivered":      row.Delivered,
		"dispatch":       row.Dispatch,
		"placed_at":      row.PlacedAt,
	}
	if !row.Order.CreatedAt.IsZero() {
		resp["created_at"] = row.Order.CreatedAt
	}
	return resp
}

func handleDomainError(w http.ResponseWriter, err error) {
	var (
		validationErr *resource.ValidationError
		mutationErr   *resource.MutationError
		fetchErr      *resource.FetchError
	)
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   err.Error(),
			Details: map[string]string{"field": validationErr.Field},
		})
	case errors.As(err, &mutationErr):
		status := http.StatusBadGateway
		if errors.Is(err, domproduct.ErrProductNotFound) ||
			errors.Is(err, domorder.ErrOrderNotFound) ||
			resource.StatusCode(err) == http.StatusNotFound {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{
			Error: err.Error(),
			Details: map[string]string{
				"kind":    string(mutationErr.Kind),
				"id":      mutationErr.ID,
				"message": resource.UserMessage(err),
			},
		})
	case errors.As(err, &fetchErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:   err.Error(),
			Details: map[string]string{"message": resource.UserMessage(err)},
		})
	case errors.Is(err, domadmin.ErrUnauthorized),
		errors.Is(err, domadmin.ErrInvalidCredential):
		respondError(w, http.StatusUnauthorized, domadmin.ErrInvalidCredential)
	case errors.Is(err, domproduct.ErrImageRequired),
		errors.Is(err, domproduct.ErrInvalidPrice),
		errors.Is(err, domproduct.ErrInvalidStock),
		errors.Is(err, domorder.ErrInvalidStatus):
		respondError(w, http.StatusUnprocessableEntity, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
