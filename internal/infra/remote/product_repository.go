package remote

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	dom "example.com/admin-console/internal/domain/product"
)

type ProductRepository struct {
	client *Client
}

func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{client: client}
}

func (r *ProductRepository) List(ctx context.Context) ([]dom.Product, error) {
	var dtos []productDTO
	if err := r.client.do(ctx, http.MethodGet, r.client.endpoint("api", "products"), "", nil, &dtos); err != nil {
		return nil, err
	}
	products := make([]dom.Product, 0, len(dtos))
	for _, d := range dtos {
		products = append(products, d.toDomain())
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, f dom.Fields, image *dom.Attachment) error {
	body, contentType, err := encodeProductForm(f, image)
	if err != nil {
		return err
	}
	return r.client.do(ctx, http.MethodPost, r.client.endpoint("api", "products"), contentType, body, nil)
}

func (r *ProductRepository) Update(ctx context.Context, id string, f dom.Fields, image *dom.Attachment) error {
	body, contentType, err := encodeProductForm(f, image)
	if err != nil {
		return err
	}
	err = r.client.do(ctx, http.MethodPatch, r.client.endpoint("api", "products", id), contentType, body, nil)
	return notFound(err, dom.ErrProductNotFound)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	err := r.client.do(ctx, http.MethodDelete, r.client.endpoint("api", "products", id), "", nil, nil)
	return notFound(err, dom.ErrProductNotFound)
}

// encodeProductForm writes the fields that are set, plus the image, as one
// multipart body.
func encodeProductForm(f dom.Fields, image *dom.Attachment) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	var fields [][2]string
	if f.Name != nil {
		fields = append(fields, [2]string{"name", *f.Name})
	}
	if f.Price != nil {
		fields = append(fields, [2]string{"price", f.Price.String()})
	}
	if f.Stock != nil {
		fields = append(fields, [2]string{"stock", strconv.FormatInt(*f.Stock, 10)})
	}
	if f.Description != nil {
		fields = append(fields, [2]string{"description", *f.Description})
	}
	for _, kv := range fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", err
		}
	}

	if image != nil {
		if err := writeImage(w, image); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeImage(w *multipart.Writer, image *dom.Attachment) error {
	filename := image.Filename
	if filename == "" {
		filename = "image"
	}
	contentType := image.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(image.Data)
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(image.Data)
	return err
}
