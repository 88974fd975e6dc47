package usecase

import (
	"context"
	"strings"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
)

type CatalogUsecase interface {
	ListCategories(ctx context.Context, includeInactive bool) ([]*domain.Category, error)
	ListProducts(ctx context.Context, categoryID int64, includeInactive bool) ([]*domain.Product, error)
	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)
	ListMenu(ctx context.Context, locationID, categoryID int64) ([]*domain.PricedProduct, error)

	ListCities(ctx context.Context, includeInactive bool) ([]*domain.City, error)
	ListLocations(ctx context.Context, cityID int64, includeInactive bool) ([]*domain.Location, error)
	GetLocation(ctx context.Context, locationID int64) (*domain.Location, error)

	CreateCategory(ctx context.Context, c *domain.Category) error
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, categoryID int64) error

	CreateProduct(ctx context.Context, p *domain.Product) error
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, productID int64) error

	CreateCity(ctx context.Context, c *domain.City) error
	CreateLocation(ctx context.Context, l *domain.Location) error
	UpdateLocation(ctx context.Context, l *domain.Location) error
	DeleteLocation(ctx context.Context, locationID int64) error

	SetLocationProduct(ctx context.Context, lp *domain.LocationProduct) error
}

type DefaultCatalogUsecase struct {
	catalogRepo domain.CatalogRepository
}

func NewDefaultCatalogUsecase(catalogRepo domain.CatalogRepository) *DefaultCatalogUsecase {
	return &DefaultCatalogUsecase{catalogRepo: catalogRepo}
}

func (uc *DefaultCatalogUsecase) ListCategories(ctx context.Context, includeInactive bool) ([]*domain.Category, error) {
	return uc.catalogRepo.ListCategories(ctx, !includeInactive)
}

func (uc *DefaultCatalogUsecase) ListProducts(ctx context.Context, categoryID int64, includeInactive bool) ([]*domain.Product, error) {
	return uc.catalogRepo.ListProducts(ctx, categoryID, !includeInactive)
}

func (uc *DefaultCatalogUsecase) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	return uc.catalogRepo.GetProduct(ctx, productID)
}

// ListMenu returns the customer-facing menu for one location, with price
// overrides and stock caps applied. locationID 0 is the plain catalog.
func (uc *DefaultCatalogUsecase) ListMenu(ctx context.Context, locationID, categoryID int64) ([]*domain.PricedProduct, error) {
	if locationID != 0 {
		location, err := uc.catalogRepo.GetLocation(ctx, locationID)
		if err != nil {
			return nil, err
		}
		if !location.IsActive {
			return nil, domain.ErrLocationNotFound
		}
	}
	return uc.catalogRepo.ListPricedProducts(ctx, locationID, categoryID)
}

func (uc *DefaultCatalogUsecase) ListCities(ctx context.Context, includeInactive bool) ([]*domain.City, error) {
	return uc.catalogRepo.ListCities(ctx, !includeInactive)
}

func (uc *DefaultCatalogUsecase) ListLocations(ctx context.Context, cityID int64, includeInactive bool) ([]*domain.Location, error) {
	return uc.catalogRepo.ListLocations(ctx, cityID, !includeInactive)
}

func (uc *DefaultCatalogUsecase) GetLocation(ctx context.Context, locationID int64) (*domain.Location, error) {
	return uc.catalogRepo.GetLocation(ctx, locationID)
}

func (uc *DefaultCatalogUsecase) CreateCategory(ctx context.Context, c *domain.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return uc.catalogRepo.CreateCategory(ctx, c)
}

func (uc *DefaultCatalogUsecase) UpdateCategory(ctx context.Context, c *domain.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return uc.catalogRepo.UpdateCategory(ctx, c)
}

func (uc *DefaultCatalogUsecase) DeleteCategory(ctx context.Context, categoryID int64) error {
	return uc.catalogRepo.DeactivateCategory(ctx, categoryID)
}

func (uc *DefaultCatalogUsecase) CreateProduct(ctx context.Context, p *domain.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	return uc.catalogRepo.CreateProduct(ctx, p)
}

func (uc *DefaultCatalogUsecase) UpdateProduct(ctx context.Context, p *domain.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	return uc.catalogRepo.UpdateProduct(ctx, p)
}

func (uc *DefaultCatalogUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	return uc.catalogRepo.DeactivateProduct(ctx, productID)
}

func (uc *DefaultCatalogUsecase) CreateCity(ctx context.Context, c *domain.City) error {
	if strings.TrimSpace(c.Name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return uc.catalogRepo.CreateCity(ctx, c)
}

func (uc *DefaultCatalogUsecase) CreateLocation(ctx context.Context, l *domain.Location) error {
	if strings.TrimSpace(l.Name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if l.CityID <= 0 {
		return &domain.ValidationError{Field: "city_id", Reason: "must be positive"}
	}
	return uc.catalogRepo.CreateLocation(ctx, l)
}

func (uc *DefaultCatalogUsecase) UpdateLocation(ctx context.Context, l *domain.Location) error {
	if strings.TrimSpace(l.Name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return uc.catalogRepo.UpdateLocation(ctx, l)
}

func (uc *DefaultCatalogUsecase) DeleteLocation(ctx context.Context, locationID int64) error {
	return uc.catalogRepo.DeactivateLocation(ctx, locationID)
}

func (uc *DefaultCatalogUsecase) SetLocationProduct(ctx context.Context, lp *domain.LocationProduct) error {
	if lp.LocationID <= 0 || lp.ProductID <= 0 {
		return &domain.ValidationError{Field: "location_id", Reason: "location and product ids must be positive"}
	}
	if lp.PriceOverride != nil && *lp.PriceOverride < 0 {
		return &domain.ValidationError{Field: "price_override", Reason: "must not be negative"}
	}
	if _, err := uc.catalogRepo.GetProduct(ctx, lp.ProductID); err != nil {
		return err
	}
	if _, err := uc.catalogRepo.GetLocation(ctx, lp.LocationID); err != nil {
		return err
	}
	return uc.catalogRepo.UpsertLocationProduct(ctx, lp)
}

func validateProduct(p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.CategoryID <= 0 {
		return &domain.ValidationError{Field: "category_id", Reason: "must be positive"}
	}
	if p.BasePrice < 0 {
		return &domain.ValidationError{Field: "base_price", Reason: "must not be negative"}
	}
	return nil
}
