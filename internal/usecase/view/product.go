// Package view derives read-only projections of cached collections for the
// console screens. Nothing here mutates its input.
package view

import (
	"strings"
	"unicode/utf8"

	domproduct "example.com/admin-console/internal/domain/product"
)

// DescriptionPreviewLen is how many characters of a description the product
// list shows before the ellipsis.
const DescriptionPreviewLen = 60

type Filter struct {
	Search string
}

// StockCounts summarizes the whole collection, ignoring any search filter.
type StockCounts struct {
	All        int `json:"all"`
	OutOfStock int `json:"out_of_stock"`
	Limited    int `json:"limited"`
	Other      int `json:"other"`
}

type ProductView struct {
	Items  []domproduct.Product
	Counts StockCounts
}

// Products filters by a case-insensitive substring of the name, keeping
// collection order.
func Products(collection []domproduct.Product, f Filter) ProductView {
	needle := strings.ToLower(f.Search)
	items := make([]domproduct.Product, 0, len(collection))
	for _, p := range collection {
		if needle == "" || strings.Contains(strings.ToLower(p.Name), needle) {
			items = append(items, p)
		}
	}
	return ProductView{Items: items, Counts: CountStock(collection)}
}

func CountStock(collection []domproduct.Product) StockCounts {
	counts := StockCounts{All: len(collection)}
	for _, p := range collection {
		switch p.Bucket() {
		case domproduct.BucketOutOfStock:
			counts.OutOfStock++
		case domproduct.BucketLimited:
			counts.Limited++
		default:
			counts.Other++
		}
	}
	return counts
}

// ImageURL makes relative image paths absolute against the asset host.
func ImageURL(raw, assetBase string) string {
	if raw == "" || strings.HasPrefix(raw, "http") {
		return raw
	}
	return strings.TrimRight(assetBase, "/") + "/" + strings.TrimLeft(raw, "/")
}

// DescriptionPreview shortens a description for table display.
func DescriptionPreview(desc string) string {
	if desc == "" {
		return ""
	}
	if utf8.RuneCountInString(desc) <= DescriptionPreviewLen {
		return desc + "..."
	}
	return string([]rune(desc)[:DescriptionPreviewLen]) + "..."
}
