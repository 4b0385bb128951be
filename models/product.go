package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ImageList is persisted as a JSON-encoded text column. The values are
// opaque references (URLs or /uploads/ paths) stored verbatim.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *ImageList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into ImageList", src)
	}
}

type Product struct {
	ProductID    uint            `gorm:"primaryKey;autoIncrement" json:"productId"`
	Title        string          `gorm:"not null" json:"title"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	Brand        string          `gorm:"not null" json:"brand"`
	Type         string          `gorm:"not null" json:"type"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	AvailableQty int             `gorm:"not null;check:available_qty >= 0" json:"availableQty"`
	Images       ImageList       `gorm:"type:text;not null" json:"images"`

	// Owning seller. Stock is only ever decremented by the checkout
	// pipeline; sellers edit it through the catalog update path.
	ProductCreatedBy uint  `gorm:"not null;index" json:"productCreatedBy"`
	Seller           *User `gorm:"foreignKey:ProductCreatedBy;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Product) TableName() string { return "products" }
