package remote

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	domorder "example.com/admin-console/internal/domain/order"
	domproduct "example.com/admin-console/internal/domain/product"
)

// looseString accepts a JSON string and treats any other type as empty.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		*s = ""
		return nil
	}
	*s = looseString(v)
	return nil
}

// looseInt accepts a number or a numeric string. Fractions are truncated.
type looseInt int64

func (n *looseInt) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*n = 0
		return nil
	}
	if i, err := strconv.ParseInt(string(b), 10, 64); err == nil {
		*n = looseInt(i)
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = looseInt(f)
	return nil
}

// looseTime parses RFC 3339 timestamps and leaves anything else zero.
type looseTime time.Time

func (t *looseTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*t = looseTime{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		*t = looseTime{}
		return nil
	}
	*t = looseTime(parsed)
	return nil
}

type productDTO struct {
	MongoID     string          `json:"_id"`
	ID          string          `json:"id"`
	Name        looseString     `json:"name"`
	Description looseString     `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       looseInt        `json:"stock"`
	ImageURL    looseString     `json:"imageUrl"`
}

func (d productDTO) toDomain() domproduct.Product {
	id := d.MongoID
	if id == "" {
		id = d.ID
	}
	return domproduct.Product{
		ID:          id,
		Name:        string(d.Name),
		Description: string(d.Description),
		Price:       d.Price,
		Stock:       int64(d.Stock),
		ImageURL:    string(d.ImageURL),
	}
}

type orderItemDTO struct {
	Name     looseString `json:"name"`
	Quantity looseInt    `json:"quantity"`
}

// dispatchDTO decodes dispatchDetails, which is either an object or a string.
type dispatchDTO struct {
	value domorder.Dispatch
}

func (d *dispatchDTO) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	switch {
	case len(trimmed) == 0 || string(trimmed) == "null":
		d.value = domorder.Dispatch{}
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		d.value = domorder.TextDispatch(s)
	case trimmed[0] == '{':
		var obj struct {
			Date   looseString `json:"date"`
			Time   looseString `json:"time"`
			Status looseString `json:"status"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		d.value = domorder.StructuredDispatch(string(obj.Date), string(obj.Time), string(obj.Status))
	default:
		d.value = domorder.Dispatch{}
	}
	return nil
}

type orderDTO struct {
	MongoID         string          `json:"_id"`
	ID              string          `json:"id"`
	CustomerName    looseString     `json:"customerName"`
	CustomerPhone   looseString     `json:"customerPhone"`
	Address         looseString     `json:"address"`
	GPSLocation     looseString     `json:"gpsLocation"`
	Items           []orderItemDTO  `json:"items"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethod   looseString     `json:"paymentMethod"`
	Status          looseString     `json:"status"`
	DispatchDetails dispatchDTO     `json:"dispatchDetails"`
	CreatedAt       looseTime       `json:"createdAt"`
}

func (d orderDTO) toDomain() domorder.Order {
	id := d.MongoID
	if id == "" {
		id = d.ID
	}
	items := make([]domorder.Item, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, domorder.Item{Name: string(it.Name), Quantity: int64(it.Quantity)})
	}
	return domorder.Order{
		ID:            id,
		CustomerName:  string(d.CustomerName),
		CustomerPhone: string(d.CustomerPhone),
		Address:       string(d.Address),
		GPSLocation:   string(d.GPSLocation),
		Items:         items,
		Total:         d.Total,
		PaymentMethod: string(d.PaymentMethod),
		Status:        string(d.Status),
		Dispatch:      d.DispatchDetails.value,
		CreatedAt:     time.Time(d.CreatedAt),
	}
}
