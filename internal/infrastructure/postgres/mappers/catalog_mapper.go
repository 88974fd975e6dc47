package mappers

import (
	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres/models"
)

func ToGORMCategory(c *domain.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

func ToDomainCategory(m *models.CategoryModel) *domain.Category {
	return &domain.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		SortOrder:   m.SortOrder,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}

func ToGORMProduct(p *domain.Product) *models.ProductModel {
	m := &models.ProductModel{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		BasePrice:   p.BasePrice,
		ImageURL:    p.ImageURL,
		SortOrder:   p.SortOrder,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	m.Options = make([]models.ProductOptionModel, len(p.Options))
	for i, opt := range p.Options {
		m.Options[i] = models.ProductOptionModel{
			ID:          opt.ID,
			ProductID:   opt.ProductID,
			OptionName:  opt.OptionName,
			OptionValue: opt.OptionValue,
			PriceDelta:  opt.PriceDelta,
			SortOrder:   opt.SortOrder,
			IsActive:    opt.IsActive,
		}
	}

	return m
}

func ToDomainProduct(m *models.ProductModel) *domain.Product {
	p := &domain.Product{
		ID:          m.ID,
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Description: m.Description,
		BasePrice:   m.BasePrice,
		ImageURL:    m.ImageURL,
		SortOrder:   m.SortOrder,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	p.Options = make([]domain.ProductOption, len(m.Options))
	for i, opt := range m.Options {
		p.Options[i] = domain.ProductOption{
			ID:          opt.ID,
			ProductID:   opt.ProductID,
			OptionName:  opt.OptionName,
			OptionValue: opt.OptionValue,
			PriceDelta:  opt.PriceDelta,
			SortOrder:   opt.SortOrder,
			IsActive:    opt.IsActive,
		}
	}

	return p
}

func ToDomainCity(m *models.CityModel) *domain.City {
	return &domain.City{
		ID:        m.ID,
		Name:      m.Name,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func ToGORMLocation(l *domain.Location) *models.LocationModel {
	return &models.LocationModel{
		ID:           l.ID,
		CityID:       l.CityID,
		Name:         l.Name,
		Address:      l.Address,
		WorkingHours: l.WorkingHours,
		IsActive:     l.IsActive,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func ToDomainLocation(m *models.LocationModel) *domain.Location {
	l := &domain.Location{
		ID:           m.ID,
		CityID:       m.CityID,
		Name:         m.Name,
		Address:      m.Address,
		WorkingHours: m.WorkingHours,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	if m.City != nil {
		l.CityName = m.City.Name
	}

	return l
}

func ToDomainLocationProduct(m *models.LocationProductModel) *domain.LocationProduct {
	return &domain.LocationProduct{
		ID:            m.ID,
		LocationID:    m.LocationID,
		ProductID:     m.ProductID,
		PriceOverride: m.PriceOverride,
		IsAvailable:   m.IsAvailable,
		StockQuantity: m.StockQuantity,
		SortOrder:     m.SortOrder,
	}
}
