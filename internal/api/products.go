package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/rooherbals/dms/internal/domain"
	"github.com/rooherbals/dms/internal/query"
)

// ProductForm is the outbound payload for creating or updating a
// product. It is validated client-side before the request goes out.
type ProductForm struct {
	Name             string          `json:"name" validate:"required"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	CategoryID       domain.ID       `json:"category_id" validate:"required"`
	ReorderLevel     int             `json:"reorder_level" validate:"gte=0"`
	IsCompanyProduct bool            `json:"is_company_product"`
}

// BatchForm is the outbound payload for creating or updating a batch.
type BatchForm struct {
	BatchNumber     string       `json:"batch_number" validate:"required"`
	CurrentQuantity int          `json:"current_quantity" validate:"gte=0"`
	ExpiryDate      *domain.Date `json:"expiry_date,omitempty"`
	SupplierName    *string      `json:"supplier_name,omitempty"`
}

// ListProducts fetches products matching p.
func (c *Client) ListProducts(ctx context.Context, p query.Params) ([]domain.Product, error) {
	raw, err := c.get(ctx, "/products", p.Encode())
	if err != nil {
		return nil, err
	}
	return domain.DecodeProducts(raw)
}

// GetProduct fetches one product by identity.
func (c *Client) GetProduct(ctx context.Context, id domain.ID) (domain.Product, error) {
	raw, err := c.get(ctx, "/products/"+string(id), "")
	if err != nil {
		return domain.Product{}, err
	}
	return domain.DecodeProduct(raw)
}

// CreateProduct creates a product and returns the stored record.
func (c *Client) CreateProduct(ctx context.Context, form ProductForm) (domain.Product, error) {
	if err := c.validate.Struct(form); err != nil {
		return domain.Product{}, fmt.Errorf("product form: %w", err)
	}
	raw, err := c.do(ctx, http.MethodPost, "/products", "", form)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.DecodeProduct(raw)
}

// UpdateProduct replaces a product's editable fields.
func (c *Client) UpdateProduct(ctx context.Context, id domain.ID, form ProductForm) (domain.Product, error) {
	if err := c.validate.Struct(form); err != nil {
		return domain.Product{}, fmt.Errorf("product form: %w", err)
	}
	raw, err := c.do(ctx, http.MethodPut, "/products/"+string(id), "", form)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.DecodeProduct(raw)
}

// DeactivateProduct retires a product. The server keeps the row.
func (c *Client) DeactivateProduct(ctx context.Context, id domain.ID) error {
	_, err := c.do(ctx, http.MethodDelete, "/products/"+string(id), "", nil)
	return err
}

// ListCategories fetches all product categories.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	raw, err := c.get(ctx, "/products/categories", "")
	if err != nil {
		return nil, err
	}
	return domain.DecodeCategories(raw)
}

// ListSuppliers fetches all suppliers.
func (c *Client) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	raw, err := c.get(ctx, "/products/suppliers", "")
	if err != nil {
		return nil, err
	}
	return domain.DecodeSuppliers(raw)
}

// ListBatches fetches a product's batches.
func (c *Client) ListBatches(ctx context.Context, productID domain.ID) ([]domain.Batch, error) {
	raw, err := c.get(ctx, "/products/"+string(productID)+"/batches", "")
	if err != nil {
		return nil, err
	}
	return domain.DecodeBatches(raw)
}

// CreateBatch records a new batch under a product.
func (c *Client) CreateBatch(ctx context.Context, productID domain.ID, form BatchForm) (domain.Batch, error) {
	if err := c.validate.Struct(form); err != nil {
		return domain.Batch{}, fmt.Errorf("batch form: %w", err)
	}
	raw, err := c.do(ctx, http.MethodPost, "/products/"+string(productID)+"/batches", "", form)
	if err != nil {
		return domain.Batch{}, err
	}
	return domain.DecodeBatch(raw)
}

// UpdateBatch replaces a batch's editable fields.
func (c *Client) UpdateBatch(ctx context.Context, batchID domain.ID, form BatchForm) (domain.Batch, error) {
	if err := c.validate.Struct(form); err != nil {
		return domain.Batch{}, fmt.Errorf("batch form: %w", err)
	}
	raw, err := c.do(ctx, http.MethodPut, "/batches/"+string(batchID), "", form)
	if err != nil {
		return domain.Batch{}, err
	}
	return domain.DecodeBatch(raw)
}

// ListLowStock fetches products at or below their reorder level.
func (c *Client) ListLowStock(ctx context.Context) ([]domain.Product, error) {
	raw, err := c.get(ctx, "/products/low-stock", "")
	if err != nil {
		return nil, err
	}
	return domain.DecodeProducts(raw)
}
