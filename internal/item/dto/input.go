package dto

import "github.com/shopspring/decimal"

type CreateItemInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id"`
}

type UpdateItemInput struct {
	ID          string          `json:"-"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id"`
}
