package domain

import (
	"encoding/json"
	"fmt"
)

// Batch is a dated, quantity-tracked lot of a product. A batch belongs
// to exactly one product; the server owns deletion.
type Batch struct {
	BatchID         ID      `json:"batch_id"`
	ProductID       ID      `json:"product_id"`
	BatchNumber     string  `json:"batch_number"`
	CurrentQuantity int     `json:"current_quantity"`
	ExpiryDate      *Date   `json:"expiry_date,omitempty"`
	SupplierName    *string `json:"supplier_name,omitempty"`
}

func (b Batch) validate() error {
	if b.BatchID == "" {
		return fmt.Errorf("batch: missing batch_id: %w", ErrMalformed)
	}
	return nil
}

// DecodeBatch normalises one raw batch payload.
func DecodeBatch(data []byte) (Batch, error) {
	var b Batch
	if err := json.Unmarshal(data, &b); err != nil {
		return Batch{}, fmt.Errorf("batch: %w: %v", ErrMalformed, err)
	}
	if err := b.validate(); err != nil {
		return Batch{}, err
	}
	return b, nil
}

// DecodeBatches normalises a raw batch list.
func DecodeBatches(data []byte) ([]Batch, error) {
	var list []Batch
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("batches: %w: %v", ErrMalformed, err)
	}
	for _, b := range list {
		if err := b.validate(); err != nil {
			return nil, err
		}
	}
	return list, nil
}
