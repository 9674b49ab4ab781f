package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/rooherbals/dms/internal/domain"
	"github.com/rooherbals/dms/internal/query"
)

// InventoryStats summarises the inventory dashboard counters.
type InventoryStats struct {
	TotalProducts int `json:"total_products"`
	LowStock      int `json:"low_stock"`
	OutOfStock    int `json:"out_of_stock"`
	ExpiringSoon  int `json:"expiring_soon"`
}

// OverviewReport is the inventory overview report payload.
type OverviewReport struct {
	TotalProducts int             `json:"total_products"`
	TotalBatches  int             `json:"total_batches"`
	StockValue    decimal.Decimal `json:"stock_value"`
	LowStock      int             `json:"low_stock"`
	OutOfStock    int             `json:"out_of_stock"`
	ExpiringSoon  int             `json:"expiring_soon"`
}

// QuantityAdjustment changes a batch's on-hand quantity by a signed
// delta. The reason is recorded server-side for the audit trail.
type QuantityAdjustment struct {
	Delta  int    `json:"delta" validate:"required"`
	Reason string `json:"reason" validate:"required"`
}

// ExpiryAdjustment corrects a batch's expiry date.
type ExpiryAdjustment struct {
	ExpiryDate domain.Date `json:"expiry_date" validate:"required"`
}

// ListInventoryItems fetches inventory items matching p.
func (c *Client) ListInventoryItems(ctx context.Context, p query.Params) ([]domain.Product, error) {
	raw, err := c.get(ctx, "/inventory/items", p.Encode())
	if err != nil {
		return nil, err
	}
	return domain.DecodeProducts(raw)
}

// InventoryStats fetches the dashboard counters.
func (c *Client) InventoryStats(ctx context.Context) (InventoryStats, error) {
	raw, err := c.get(ctx, "/inventory/stats", "")
	if err != nil {
		return InventoryStats{}, err
	}
	var stats InventoryStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return InventoryStats{}, fmt.Errorf("inventory stats: %w: %v", domain.ErrMalformed, err)
	}
	return stats, nil
}

// InventoryOverview fetches the overview report.
func (c *Client) InventoryOverview(ctx context.Context) (OverviewReport, error) {
	raw, err := c.get(ctx, "/inventory/reports/overview", "")
	if err != nil {
		return OverviewReport{}, err
	}
	var report OverviewReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return OverviewReport{}, fmt.Errorf("inventory overview: %w: %v", domain.ErrMalformed, err)
	}
	return report, nil
}

// InventoryLowStockReport fetches the low-stock report rows.
func (c *Client) InventoryLowStockReport(ctx context.Context) ([]domain.Product, error) {
	raw, err := c.get(ctx, "/inventory/reports/low-stock", "")
	if err != nil {
		return nil, err
	}
	return domain.DecodeProducts(raw)
}

// AdjustBatchQuantity applies a signed quantity delta to a batch.
func (c *Client) AdjustBatchQuantity(ctx context.Context, batchID domain.ID, adj QuantityAdjustment) (domain.Batch, error) {
	if err := c.validate.Struct(adj); err != nil {
		return domain.Batch{}, fmt.Errorf("quantity adjustment: %w", err)
	}
	raw, err := c.do(ctx, http.MethodPut, "/inventory/batches/"+string(batchID)+"/quantity", "", adj)
	if err != nil {
		return domain.Batch{}, err
	}
	return domain.DecodeBatch(raw)
}

// AdjustBatchExpiry corrects a batch's expiry date.
func (c *Client) AdjustBatchExpiry(ctx context.Context, batchID domain.ID, adj ExpiryAdjustment) (domain.Batch, error) {
	if err := c.validate.Struct(adj); err != nil {
		return domain.Batch{}, fmt.Errorf("expiry adjustment: %w", err)
	}
	raw, err := c.do(ctx, http.MethodPut, "/inventory/batches/"+string(batchID)+"/expiry", "", adj)
	if err != nil {
		return domain.Batch{}, err
	}
	return domain.DecodeBatch(raw)
}
