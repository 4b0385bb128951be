package models

// Favorite is a (user, product) toggle pair: presence means favorited.
// Toggling creates or destroys the row, never updates it.
type Favorite struct {
	FavoriteID uint `gorm:"primaryKey;autoIncrement" json:"favoriteId"`
	UserID     uint `gorm:"not null;uniqueIndex:idx_favorite_user_product" json:"userId"`
	ProductID  uint `gorm:"not null;uniqueIndex:idx_favorite_user_product" json:"productId"`

	User    *User    `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID;references:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

func (Favorite) TableName() string { return "favorites" }
