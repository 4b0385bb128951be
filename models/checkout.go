package models

// CheckoutItem is a staged cart line. At most one row exists per
// (user, product): adding the same product again merges into the
// existing row's quantity. Rows are deleted when the user removes them
// or when the checkout pipeline consumes the cart.
type CheckoutItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_checkout_user_product" json:"userId"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_checkout_user_product" json:"productId"`
	Quantity  int  `gorm:"not null;default:1" json:"quantity"`

	User    *User    `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID;references:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

func (CheckoutItem) TableName() string { return "checkout" }
