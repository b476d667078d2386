package product

import "github.com/shopspring/decimal"

type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int64
	ImageURL    string
}

// Fields is a partial set of product attributes. Nil means "not sent".
type Fields struct {
	Name        *string
	Price       *decimal.Decimal `validate:"omitempty,gte=0"`
	Stock       *int64           `validate:"omitempty,gte=0"`
	Description *string
}

// Attachment is an image sent alongside a create or update.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// StockBucket groups products for the dashboard summary.
type StockBucket int

const (
	BucketOutOfStock StockBucket = iota
	BucketLimited
	BucketOther
)

// LimitedStockMax is the highest stock still counted as limited.
const LimitedStockMax = 5

func (p Product) Bucket() StockBucket {
	switch {
	case p.Stock <= 0:
		return BucketOutOfStock
	case p.Stock <= LimitedStockMax:
		return BucketLimited
	default:
		return BucketOther
	}
}
