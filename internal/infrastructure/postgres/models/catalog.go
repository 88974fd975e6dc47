package models

import "time"

type CategoryModel struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	SortOrder   int    `gorm:"not null;default:0"`
	IsActive    bool   `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
}

func (CategoryModel) TableName() string { return "categories" }

type ProductModel struct {
	ID          int64   `gorm:"primaryKey"`
	CategoryID  int64   `gorm:"not null;index"`
	Name        string  `gorm:"size:255;not null"`
	Description string  `gorm:"type:text"`
	BasePrice   float64 `gorm:"type:numeric(10,2);not null"`
	ImageURL    string  `gorm:"size:500"`
	SortOrder   int     `gorm:"not null;default:0"`
	IsActive    bool    `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Options []ProductOptionModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ProductModel) TableName() string { return "products" }

type ProductOptionModel struct {
	ID          int64   `gorm:"primaryKey"`
	ProductID   int64   `gorm:"not null;index"`
	OptionName  string  `gorm:"size:100;not null"`
	OptionValue string  `gorm:"size:100;not null"`
	PriceDelta  float64 `gorm:"type:numeric(10,2);not null;default:0"`
	SortOrder   int     `gorm:"not null;default:0"`
	IsActive    bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

func (ProductOptionModel) TableName() string { return "product_options" }

type CityModel struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;uniqueIndex"`
	IsActive  bool   `gorm:"not null;default:true;index"`
	CreatedAt time.Time
}

func (CityModel) TableName() string { return "cities" }

type LocationModel struct {
	ID           int64  `gorm:"primaryKey"`
	CityID       int64  `gorm:"not null;index"`
	Name         string `gorm:"size:255;not null"`
	Address      string `gorm:"type:text;not null"`
	WorkingHours string `gorm:"size:100"`
	IsActive     bool   `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	City *CityModel `gorm:"foreignKey:CityID"`
}

func (LocationModel) TableName() string { return "locations" }

type LocationProductModel struct {
	ID            int64    `gorm:"primaryKey"`
	LocationID    int64    `gorm:"not null;index;uniqueIndex:uq_location_product"`
	ProductID     int64    `gorm:"not null;index;uniqueIndex:uq_location_product"`
	PriceOverride *float64 `gorm:"type:numeric(10,2)"`
	IsAvailable   bool     `gorm:"not null;default:true;index"`
	StockQuantity *int
	SortOrder     int `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (LocationProductModel) TableName() string { return "location_products" }
