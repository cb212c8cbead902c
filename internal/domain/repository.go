package domain

import "context"

// FoodDataClient defines the interface for the read-only upstream food
// database. Every method issues exactly one outbound call.
type FoodDataClient interface {
	ProductByBarcode(ctx context.Context, barcode string) (*ProductLookup, error)
	SearchProducts(ctx context.Context, terms string, pageSize int) (*ProductList, error)
	ProductsByCategory(ctx context.Context, slug string) (*ProductList, error)
	ProductsByBrand(ctx context.Context, slug string) (*ProductList, error)
}
