package models

import (
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
)

type OrderModel struct {
	ID         int64 `gorm:"primaryKey"`
	UserID     int64 `gorm:"not null;index"`
	LocationID int64 `gorm:"not null;index"`

	OrderCode   string             `gorm:"size:6;not null;uniqueIndex"`
	TotalAmount float64            `gorm:"type:numeric(10,2);not null"`
	Currency    string             `gorm:"size:3;not null;default:UAH"`
	Status      domain.OrderStatus `gorm:"size:20;not null;index;default:pending"`

	ReceiptImageURL    string  `gorm:"size:500"`
	ReceiptAmount      float64 `gorm:"type:numeric(10,2)"`
	ReceiptHash        string  `gorm:"size:64;index"`
	ReceiptValidatedAt *time.Time
	ValidationVerdict  string `gorm:"type:jsonb"`

	ConfirmedByUserID  *int64
	ConfirmedAt        *time.Time
	CancellationReason string `gorm:"type:text"`

	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	CompletedAt *time.Time

	Items    []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	User     *UserModel       `gorm:"foreignKey:UserID"`
	Location *LocationModel   `gorm:"foreignKey:LocationID"`
}

func (OrderModel) TableName() string { return "orders" }

type OrderItemModel struct {
	ID        int64 `gorm:"primaryKey"`
	OrderID   int64 `gorm:"not null;index"`
	ProductID int64 `gorm:"not null;index"`

	Quantity        int     `gorm:"not null"`
	UnitPrice       float64 `gorm:"type:numeric(10,2);not null"`
	SelectedOptions string  `gorm:"type:jsonb"`
	OptionsPrice    float64 `gorm:"type:numeric(10,2);not null;default:0"`
	TotalPrice      float64 `gorm:"type:numeric(10,2);not null"`

	CreatedAt time.Time
}

func (OrderItemModel) TableName() string { return "order_items" }

type ReceiptHashModel struct {
	ID        int64  `gorm:"primaryKey"`
	ImageHash string `gorm:"size:64;not null;uniqueIndex"`
	OrderID   int64  `gorm:"not null"`
	CreatedAt time.Time
}

func (ReceiptHashModel) TableName() string { return "receipts_hash" }
