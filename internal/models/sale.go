package models

import "time"

// Sale is a row produced by the external ingestion pipeline. This service
// only ever reads it.
type Sale struct {
	ID            int       `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	TotalAmount   float64   `json:"total_amount"`
	TotalDiscount float64   `json:"total_discount"`
	ServiceTaxFee float64   `json:"service_tax_fee"`
}

// ProductSale is a sale line item. Read-only.
type ProductSale struct {
	SaleID     int     `json:"sale_id"`
	ProductID  int     `json:"product_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}
