package domain

import (
	"encoding/json"
	"fmt"
)

// CategoryAll is the sentinel category meaning "no category filter".
// It is not a real row.
const CategoryAll = ID("")

// Category groups products. A product belongs to exactly one category.
type Category struct {
	CategoryID ID     `json:"category_id"`
	Name       string `json:"name"`
}

// Supplier provides product batches.
type Supplier struct {
	SupplierID ID     `json:"supplier_id"`
	Name       string `json:"name"`
}

// DecodeCategories normalises a raw category list.
func DecodeCategories(data []byte) ([]Category, error) {
	var list []Category
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("categories: %w: %v", ErrMalformed, err)
	}
	for _, c := range list {
		if c.CategoryID == CategoryAll {
			return nil, fmt.Errorf("category: missing category_id: %w", ErrMalformed)
		}
	}
	return list, nil
}

// DecodeSuppliers normalises a raw supplier list.
func DecodeSuppliers(data []byte) ([]Supplier, error) {
	var list []Supplier
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("suppliers: %w: %v", ErrMalformed, err)
	}
	for _, s := range list {
		if s.SupplierID == "" {
			return nil, fmt.Errorf("supplier: missing supplier_id: %w", ErrMalformed)
		}
	}
	return list, nil
}
