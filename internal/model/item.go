package model

import "github.com/shopspring/decimal"

type Item struct {
	BaseModel
	CategoryID  *string         `db:"category_id" json:"category_id"` // Nullable
	Name        string          `db:"name" json:"name"`
	Description *string         `db:"description" json:"description"`
	Stock       int             `db:"stock" json:"stock"`
	Price       decimal.Decimal `db:"price" json:"price"`
	// CategoryName is filled by the list join, not a column of items.
	CategoryName *string `db:"category_name" json:"category_name"`
}
