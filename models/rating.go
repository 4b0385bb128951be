package models

import "time"

// Rating is a product review tied to the specific order being reviewed.
// The composite unique index enforces at most one review per
// (user, product, order) triple.
type Rating struct {
	RatingID   uint   `gorm:"primaryKey;autoIncrement" json:"ratingId"`
	Rating     int    `gorm:"not null;check:rating BETWEEN 1 AND 5" json:"rating"`
	UserReview string `gorm:"type:text;not null" json:"userReview"`

	UserID    uint `gorm:"not null;uniqueIndex:idx_rating_user_product_order" json:"userId"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_rating_user_product_order" json:"productId"`
	OrderID   uint `gorm:"not null;uniqueIndex:idx_rating_user_product_order" json:"orderId"`

	User    *User    `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID;references:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Order   *Order   `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Rating) TableName() string { return "ratings" }
