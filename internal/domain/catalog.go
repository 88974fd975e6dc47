package domain

import "time"

// Catalog reference data. Nothing here is physically deleted: admin
// operations flip is_active instead.

type Category struct {
	ID          int64
	Name        string
	Description string
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
}

type Product struct {
	ID          int64
	CategoryID  int64
	Name        string
	Description string
	BasePrice   float64
	ImageURL    string
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Options []ProductOption
}

type ProductOption struct {
	ID          int64
	ProductID   int64
	OptionName  string // "size", "extras"
	OptionValue string
	PriceDelta  float64
	SortOrder   int
	IsActive    bool
}

type City struct {
	ID        int64
	Name      string
	IsActive  bool
	CreatedAt time.Time
}

type Location struct {
	ID           int64
	CityID       int64
	Name         string
	Address      string
	WorkingHours string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	CityName string
}

// LocationProduct overrides a product's price and availability at one pickup
// location. A missing row means "catalog default, unlimited".
type LocationProduct struct {
	ID            int64
	LocationID    int64
	ProductID     int64
	PriceOverride *float64
	IsAvailable   bool
	StockQuantity *int
	SortOrder     int
}

// PricedProduct is a catalog projection with the per-location override
// already applied.
type PricedProduct struct {
	Product
	Price         float64
	StockQuantity *int
}

// EffectivePrice resolves the price a product sells for at a location.
func EffectivePrice(p Product, lp *LocationProduct) float64 {
	if lp != nil && lp.PriceOverride != nil {
		return *lp.PriceOverride
	}
	return p.BasePrice
}
