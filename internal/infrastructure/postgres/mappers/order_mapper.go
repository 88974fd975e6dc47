package mappers

import (
	"encoding/json"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres/models"
)

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	m := &models.OrderModel{
		ID:                 order.ID,
		UserID:             order.UserID,
		LocationID:         order.LocationID,
		OrderCode:          order.OrderCode,
		TotalAmount:        order.TotalAmount,
		Currency:           order.Currency,
		Status:             order.Status,
		ReceiptImageURL:    order.ReceiptImageURL,
		ReceiptAmount:      order.ReceiptAmount,
		ReceiptHash:        order.ReceiptHash,
		ReceiptValidatedAt: order.ReceiptValidatedAt,
		ValidationVerdict:  order.ValidationVerdict,
		ConfirmedByUserID:  order.ConfirmedByUserID,
		ConfirmedAt:        order.ConfirmedAt,
		CancellationReason: order.CancellationReason,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
		CompletedAt:        order.CompletedAt,
	}

	m.Items = make([]models.OrderItemModel, len(order.Items))
	for i, item := range order.Items {
		m.Items[i] = *ToGORMOrderItem(&item)
	}

	return m
}

func ToGORMOrderItem(item *domain.OrderItem) *models.OrderItemModel {
	var options string
	if len(item.SelectedOptions) > 0 {
		if raw, err := json.Marshal(item.SelectedOptions); err == nil {
			options = string(raw)
		}
	}

	return &models.OrderItemModel{
		ID:              item.ID,
		OrderID:         item.OrderID,
		ProductID:       item.ProductID,
		Quantity:        item.Quantity,
		UnitPrice:       item.UnitPrice,
		SelectedOptions: options,
		OptionsPrice:    item.OptionsPrice,
		TotalPrice:      item.TotalPrice,
		CreatedAt:       item.CreatedAt,
	}
}

func ToDomainOrder(m *models.OrderModel) *domain.Order {
	order := &domain.Order{
		ID:                 m.ID,
		UserID:             m.UserID,
		LocationID:         m.LocationID,
		OrderCode:          m.OrderCode,
		TotalAmount:        m.TotalAmount,
		Currency:           m.Currency,
		Status:             m.Status,
		ReceiptImageURL:    m.ReceiptImageURL,
		ReceiptAmount:      m.ReceiptAmount,
		ReceiptHash:        m.ReceiptHash,
		ReceiptValidatedAt: m.ReceiptValidatedAt,
		ValidationVerdict:  m.ValidationVerdict,
		ConfirmedByUserID:  m.ConfirmedByUserID,
		ConfirmedAt:        m.ConfirmedAt,
		CancellationReason: m.CancellationReason,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		CompletedAt:        m.CompletedAt,
	}

	order.Items = make([]domain.OrderItem, len(m.Items))
	for i, item := range m.Items {
		order.Items[i] = *ToDomainOrderItem(&item)
	}

	if m.User != nil {
		order.User = ToDomainUser(m.User)
	}
	if m.Location != nil {
		order.Location = ToDomainLocation(m.Location)
	}

	return order
}

func ToDomainOrderItem(m *models.OrderItemModel) *domain.OrderItem {
	item := &domain.OrderItem{
		ID:           m.ID,
		OrderID:      m.OrderID,
		ProductID:    m.ProductID,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		OptionsPrice: m.OptionsPrice,
		TotalPrice:   m.TotalPrice,
		CreatedAt:    m.CreatedAt,
	}

	if m.SelectedOptions != "" {
		_ = json.Unmarshal([]byte(m.SelectedOptions), &item.SelectedOptions)
	}

	return item
}

func ToDomainReceiptHash(m *models.ReceiptHashModel) *domain.ReceiptHashEntry {
	return &domain.ReceiptHashEntry{
		ID:        m.ID,
		ImageHash: m.ImageHash,
		OrderID:   m.OrderID,
		CreatedAt: m.CreatedAt,
	}
}
