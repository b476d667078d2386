package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrImageRequired   = errors.New("product image is required")
	ErrInvalidPrice    = errors.New("price must be a non-negative number")
	ErrInvalidStock    = errors.New("stock must be a non-negative integer")
)
