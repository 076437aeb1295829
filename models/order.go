package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses
const (
	OrderStatusPending = "pending"
	OrderStatusReady   = "ready"
	OrderStatusPaid    = "paid"
)

type Order struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	TableID    uint            `gorm:"not null;index" json:"table_id"`
	Table      Table           `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"table"`
	Status     string          `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_price"`
	CreatedAt  time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
	OrderItems []OrderItem     `gorm:"foreignKey:OrderID" json:"order_items"`
}

// IsValidOrderStatus reports whether s is one of the known order statuses.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusReady, OrderStatusPaid:
		return true
	}
	return false
}
