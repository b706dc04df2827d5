package entity

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusReturned       OrderStatus = "returned"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusOutForDelivery, OrderStatusDelivered,
		OrderStatusCancelled, OrderStatusReturned:
		return true
	}
	return false
}

// Terminal statuses admit no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled || s == OrderStatusReturned
}

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodOnline PaymentMethod = "online"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type OrderStatusHistory struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Comment   string      `json:"comment,omitempty"`
}

// OrderItem holds a snapshot of the product at checkout time. Later catalog
// edits must not alter historical orders.
type OrderItem struct {
	ID        string  `json:"-" gorm:"primaryKey"`
	OrderID   string  `json:"-" gorm:"index;not null"`
	ProductID string  `json:"productId" gorm:"index;not null"`
	Product   Product `json:"product" gorm:"serializer:json"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Price     int64   `json:"price" gorm:"not null"`
}

type Order struct {
	ID                string               `json:"id" gorm:"primaryKey"`
	OrderNumber       string               `json:"orderNumber" gorm:"uniqueIndex;not null"`
	UserID            string               `json:"userId" gorm:"index;not null"`
	Items             []OrderItem          `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Status            OrderStatus          `json:"status" gorm:"index;not null"`
	StatusHistory     []OrderStatusHistory `json:"statusHistory" gorm:"serializer:json"`
	ShippingAddress   Address              `json:"shippingAddress" gorm:"serializer:json"`
	PaymentMethod     PaymentMethod        `json:"paymentMethod"`
	PaymentStatus     PaymentStatus        `json:"paymentStatus"`
	Subtotal          int64                `json:"subtotal"`
	ShippingCost      int64                `json:"shippingCost"`
	Discount          int64                `json:"discount"`
	Total             int64                `json:"total"`
	PromoCode         string               `json:"promoCode,omitempty"`
	Notes             string               `json:"notes,omitempty"`
	TrackingNumber    string               `json:"trackingNumber,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
	EstimatedDelivery *time.Time           `json:"estimatedDelivery,omitempty"`
}

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

type PromoCode struct {
	Code         string       `json:"code" gorm:"primaryKey"`
	Discount     int64        `json:"discount" gorm:"not null"`
	DiscountType DiscountType `json:"discountType" gorm:"not null"`
	IsActive     bool         `json:"isActive" gorm:"default:true"`
}
