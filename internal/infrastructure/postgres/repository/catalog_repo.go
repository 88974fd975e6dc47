package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres/mappers"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultCatalogRepository struct {
	DB *gorm.DB
}

func NewDefaultCatalogRepository(db *gorm.DB) *DefaultCatalogRepository {
	return &DefaultCatalogRepository{DB: db}
}

func (r *DefaultCatalogRepository) ListCategories(ctx context.Context, onlyActive bool) ([]*domain.Category, error) {
	var rows []models.CategoryModel
	q := r.DB.WithContext(ctx).Order("sort_order")
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*domain.Category, len(rows))
	for i := range rows {
		out[i] = mappers.ToDomainCategory(&rows[i])
	}
	return out, nil
}

func (r *DefaultCatalogRepository) ListProducts(ctx context.Context, categoryID int64, onlyActive bool) ([]*domain.Product, error) {
	var rows []models.ProductModel
	q := r.DB.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("sort_order")
		}).
		Order("category_id, sort_order")
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*domain.Product, len(rows))
	for i := range rows {
		out[i] = mappers.ToDomainProduct(&rows[i])
	}
	return out, nil
}

func (r *DefaultCatalogRepository) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	var m models.ProductModel
	err := r.DB.WithContext(ctx).
		Preload("Options").
		First(&m, "id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProduct(&m), nil
}

// ListPricedProducts joins location_products so a location's price override
// and stock cap ride along with each active product. With locationID 0 the
// plain catalog is returned at base prices.
func (r *DefaultCatalogRepository) ListPricedProducts(ctx context.Context, locationID, categoryID int64) ([]*domain.PricedProduct, error) {
	products, err := r.ListProducts(ctx, categoryID, true)
	if err != nil {
		return nil, err
	}

	overrides := map[int64]*domain.LocationProduct{}
	if locationID != 0 {
		var rows []models.LocationProductModel
		err := r.DB.WithContext(ctx).
			Where("location_id = ?", locationID).
			Find(&rows).Error
		if err != nil {
			return nil, err
		}
		for i := range rows {
			overrides[rows[i].ProductID] = mappers.ToDomainLocationProduct(&rows[i])
		}
	}

	out := make([]*domain.PricedProduct, 0, len(products))
	for _, p := range products {
		lp := overrides[p.ID]
		if lp != nil && !lp.IsAvailable {
			continue
		}
		priced := &domain.PricedProduct{
			Product: *p,
			Price:   domain.EffectivePrice(*p, lp),
		}
		if lp != nil {
			priced.StockQuantity = lp.StockQuantity
		}
		out = append(out, priced)
	}
	return out, nil
}

func (r *DefaultCatalogRepository) ListCities(ctx context.Context, onlyActive bool) ([]*domain.City, error) {
	var rows []models.CityModel
	q := r.DB.WithContext(ctx).Order("name")
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*domain.City, len(rows))
	for i := range rows {
		out[i] = mappers.ToDomainCity(&rows[i])
	}
	return out, nil
}

func (r *DefaultCatalogRepository) ListLocations(ctx context.Context, cityID int64, onlyActive bool) ([]*domain.Location, error) {
	var rows []models.LocationModel
	q := r.DB.WithContext(ctx).Preload("City").Order("name")
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	if cityID != 0 {
		q = q.Where("city_id = ?", cityID)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*domain.Location, len(rows))
	for i := range rows {
		out[i] = mappers.ToDomainLocation(&rows[i])
	}
	return out, nil
}

func (r *DefaultCatalogRepository) GetLocation(ctx context.Context, locationID int64) (*domain.Location, error) {
	var m models.LocationModel
	err := r.DB.WithContext(ctx).Preload("City").First(&m, "id = ?", locationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, err
	}
	return mappers.ToDomainLocation(&m), nil
}

func (r *DefaultCatalogRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	m := mappers.ToGORMCategory(c)
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	return nil
}

func (r *DefaultCatalogRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	res := r.DB.WithContext(ctx).
		Model(&models.CategoryModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":        c.Name,
			"description": c.Description,
			"sort_order":  c.SortOrder,
			"is_active":   c.IsActive,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *DefaultCatalogRepository) DeactivateCategory(ctx context.Context, categoryID int64) error {
	return r.deactivate(ctx, &models.CategoryModel{}, categoryID, domain.ErrCategoryNotFound)
}

func (r *DefaultCatalogRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	m := mappers.ToGORMProduct(p)
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *DefaultCatalogRepository) UpdateProduct(ctx context.Context, p *domain.Product) error {
	updates := map[string]interface{}{
		"category_id": p.CategoryID,
		"name":        p.Name,
		"description": p.Description,
		"base_price":  p.BasePrice,
		"sort_order":  p.SortOrder,
		"is_active":   p.IsActive,
		"updated_at":  time.Now(),
	}
	if p.ImageURL != "" {
		updates["image_url"] = p.ImageURL
	}

	res := r.DB.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ?", p.ID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *DefaultCatalogRepository) DeactivateProduct(ctx context.Context, productID int64) error {
	return r.deactivate(ctx, &models.ProductModel{}, productID, domain.ErrProductNotFound)
}

func (r *DefaultCatalogRepository) CreateCity(ctx context.Context, c *domain.City) error {
	m := &models.CityModel{Name: c.Name, IsActive: c.IsActive}
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	return nil
}

func (r *DefaultCatalogRepository) CreateLocation(ctx context.Context, l *domain.Location) error {
	m := mappers.ToGORMLocation(l)
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	l.ID = m.ID
	l.CreatedAt = m.CreatedAt
	return nil
}

func (r *DefaultCatalogRepository) UpdateLocation(ctx context.Context, l *domain.Location) error {
	res := r.DB.WithContext(ctx).
		Model(&models.LocationModel{}).
		Where("id = ?", l.ID).
		Updates(map[string]interface{}{
			"city_id":       l.CityID,
			"name":          l.Name,
			"address":       l.Address,
			"working_hours": l.WorkingHours,
			"is_active":     l.IsActive,
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrLocationNotFound
	}
	return nil
}

func (r *DefaultCatalogRepository) DeactivateLocation(ctx context.Context, locationID int64) error {
	return r.deactivate(ctx, &models.LocationModel{}, locationID, domain.ErrLocationNotFound)
}

func (r *DefaultCatalogRepository) UpsertLocationProduct(ctx context.Context, lp *domain.LocationProduct) error {
	m := &models.LocationProductModel{
		LocationID:    lp.LocationID,
		ProductID:     lp.ProductID,
		PriceOverride: lp.PriceOverride,
		IsAvailable:   lp.IsAvailable,
		StockQuantity: lp.StockQuantity,
		SortOrder:     lp.SortOrder,
	}

	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "location_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"price_override", "is_available", "stock_quantity", "sort_order", "updated_at",
			}),
		}).
		Create(m).Error
}

func (r *DefaultCatalogRepository) deactivate(ctx context.Context, model interface{}, id int64, notFound error) error {
	res := r.DB.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound
	}
	return nil
}
