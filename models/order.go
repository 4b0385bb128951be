package models

import "time"

// Order is append-only: one row per product line at the moment of
// checkout, written only by the order-placement pipeline. No update path
// exists after creation. The unit price is not snapshotted here;
// historical totals are recomputed from the product's current price.
type Order struct {
	OrderID   uint      `gorm:"primaryKey;autoIncrement" json:"orderId"`
	OrderDate time.Time `gorm:"not null;index" json:"orderDate"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	ProductID uint      `gorm:"not null" json:"productId"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`

	User    *User    `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID;references:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

func (Order) TableName() string { return "orders" }
