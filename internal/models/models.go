package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is a single stock-keeping-unit record. SKU is stored normalized
// (trimmed, uppercased) and is unique across live items.
type Item struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SKU      string    `gorm:"type:text;not null;uniqueIndex:ux_items_sku" json:"sku"`
	Name     string    `gorm:"type:text;not null" json:"name"`
	Quantity int64     `gorm:"not null;default:0" json:"quantity"`
	Price    float64   `gorm:"not null;default:0" json:"price"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Item) TableName() string {
	return "items"
}

// Draft is the pre-coercion form input for add/update. Quantity and Price
// arrive as raw text from the form and are coerced during validation.
type Draft struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
}
