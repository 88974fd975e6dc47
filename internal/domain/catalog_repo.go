package domain

import "context"

type CatalogRepository interface {
	// Read path. onlyActive=false is the admin view.
	ListCategories(ctx context.Context, onlyActive bool) ([]*Category, error)
	ListProducts(ctx context.Context, categoryID int64, onlyActive bool) ([]*Product, error)
	GetProduct(ctx context.Context, productID int64) (*Product, error)

	// ListPricedProducts projects active products for one location with
	// price overrides and stock caps applied. locationID 0 means the plain
	// catalog with base prices.
	ListPricedProducts(ctx context.Context, locationID, categoryID int64) ([]*PricedProduct, error)

	ListCities(ctx context.Context, onlyActive bool) ([]*City, error)
	ListLocations(ctx context.Context, cityID int64, onlyActive bool) ([]*Location, error)
	GetLocation(ctx context.Context, locationID int64) (*Location, error)

	// Admin mutations. "Delete" flips is_active, rows stay.
	CreateCategory(ctx context.Context, c *Category) error
	UpdateCategory(ctx context.Context, c *Category) error
	DeactivateCategory(ctx context.Context, categoryID int64) error

	CreateProduct(ctx context.Context, p *Product) error
	UpdateProduct(ctx context.Context, p *Product) error
	DeactivateProduct(ctx context.Context, productID int64) error

	CreateCity(ctx context.Context, c *City) error
	CreateLocation(ctx context.Context, l *Location) error
	UpdateLocation(ctx context.Context, l *Location) error
	DeactivateLocation(ctx context.Context, locationID int64) error

	UpsertLocationProduct(ctx context.Context, lp *LocationProduct) error
}
