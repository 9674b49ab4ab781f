package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Product represents a sellable item. The unit price may arrive as a
// JSON string or number; decimal.Decimal accepts both. A product
// carries either its full batch list, a precomputed batch summary, or
// both; BatchView reconciles the shapes.
type Product struct {
	ProductID        ID              `json:"product_id"`
	Name             string          `json:"name"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	CategoryID       ID              `json:"category_id"`
	CategoryName     string          `json:"category_name"`
	CurrentStock     int             `json:"current_stock"`
	ReorderLevel     int             `json:"reorder_level"`
	IsActive         Flag            `json:"is_active"`
	IsCompanyProduct Flag            `json:"is_company_product"`
	Batches          []Batch         `json:"batches,omitempty"`
	BatchCount       *int            `json:"batch_count,omitempty"`
	NextExpiry       *Date           `json:"next_expiry,omitempty"`
	CreatedAt        *Date           `json:"created_at,omitempty"`
	UpdatedAt        *Date           `json:"updated_at,omitempty"`
}

func (p Product) validate() error {
	if p.ProductID == "" {
		return fmt.Errorf("product: missing product_id: %w", ErrMalformed)
	}
	for _, b := range p.Batches {
		if err := b.validate(); err != nil {
			return err
		}
	}
	return nil
}

// DecodeProduct normalises one raw product payload.
func DecodeProduct(data []byte) (Product, error) {
	var p Product
	if err := json.Unmarshal(data, &p); err != nil {
		return Product{}, fmt.Errorf("product: %w: %v", ErrMalformed, err)
	}
	if err := p.validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// DecodeProducts normalises a raw product list.
func DecodeProducts(data []byte) ([]Product, error) {
	var list []Product
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("products: %w: %v", ErrMalformed, err)
	}
	for _, p := range list {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}
	return list, nil
}
