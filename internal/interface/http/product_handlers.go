package http

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	domproduct "example.com/admin-console/internal/domain/product"
	productuc "example.com/admin-console/internal/usecase/product"
	"example.com/admin-console/internal/usecase/resource"
	"example.com/admin-console/internal/usecase/view"
)

const maxUploadBytes = 10 << 20

func (a *API) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if _, err := a.productSvc.Load(r.Context()); err != nil {
		handleDomainError(w, err)
		return
	}

	snap := a.productSvc.Snapshot()
	pv := view.Products(snap.Items, view.Filter{Search: r.URL.Query().Get("q")})
	writeJSON(w, http.StatusOK, map[string]any{
		"data":   a.mapProducts(pv.Items),
		"counts": pv.Counts,
		"meta":   snapshotMeta(snap),
	})
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	if _, err := a.productSvc.Load(r.Context()); err != nil {
		handleDomainError(w, err)
		return
	}
	a.writeProducts(w, http.StatusOK)
}

// writeProducts answers with the cached collection, which is the newest
// successful list result.
func (a *API) writeProducts(w http.ResponseWriter, status int) {
	snap := a.productSvc.Snapshot()
	writeJSON(w, status, map[string]any{
		"data": a.mapProducts(snap.Items),
		"meta": snapshotMeta(snap),
	})
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	form, err := parseProductForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if form.image == nil {
		handleDomainError(w, &resource.ValidationError{Field: "image", Err: domproduct.ErrImageRequired})
		return
	}

	in := productuc.CreateInput{Image: form.image}
	in.Name, _ = form.lookup("name")
	in.Description, _ = form.lookup("description")
	if raw, ok := form.lookup("price"); ok {
		if in.Price, err = parsePrice(raw); err != nil {
			handleDomainError(w, err)
			return
		}
	}
	if raw, ok := form.lookup("stock"); ok {
		if in.Stock, err = parseStock(raw); err != nil {
			handleDomainError(w, err)
			return
		}
	}

	if err := a.productSvc.Create(r.Context(), in); err != nil {
		handleDomainError(w, err)
		return
	}
	a.writeProducts(w, http.StatusCreated)
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	form, err := parseProductForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	in := productuc.UpdateInput{ID: chi.URLParam(r, "id"), Image: form.image}
	if v, ok := form.lookup("name"); ok {
		in.Fields.Name = &v
	}
	if v, ok := form.lookup("description"); ok {
		in.Fields.Description = &v
	}
	if raw, ok := form.lookup("price"); ok {
		price, err := parsePrice(raw)
		if err != nil {
			handleDomainError(w, err)
			return
		}
		in.Fields.Price = &price
	}
	if raw, ok := form.lookup("stock"); ok {
		stock, err := parseStock(raw)
		if err != nil {
			handleDomainError(w, err)
			return
		}
		in.Fields.Stock = &stock
	}

	if err := a.productSvc.Update(r.Context(), in); err != nil {
		handleDomainError(w, err)
		return
	}
	a.writeProducts(w, http.StatusOK)
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := a.productSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	a.writeProducts(w, http.StatusOK)
}

type productForm struct {
	values url.Values
	image  *domproduct.Attachment
}

// parseProductForm accepts multipart bodies (with an optional "image" file)
// and plain url-encoded forms.
func parseProductForm(r *http.Request) (*productForm, error) {
	err := r.ParseMultipartForm(maxUploadBytes)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}
	if err != nil {
		return nil, err
	}

	form := &productForm{values: r.PostForm}
	if r.MultipartForm == nil {
		return form, nil
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return form, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	form.image = &domproduct.Attachment{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
	return form, nil
}

func (f *productForm) lookup(key string) (string, bool) {
	vs, ok := f.values[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return strings.TrimSpace(vs[0]), true
}

func parsePrice(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &resource.ValidationError{Field: "price", Err: domproduct.ErrInvalidPrice}
	}
	return d, nil
}

// parseStock treats an empty value as zero, matching the edit form which
// always sends the field.
func parseStock(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &resource.ValidationError{Field: "stock", Err: domproduct.ErrInvalidStock}
	}
	return n, nil
}
