package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDecodeDriverNumericIdentifier(t *testing.T) {
	raw := []byte(`{"user_id": 42, "username": "kamal", "full_name": "Kamal Perera", "is_active": 1, "current_deliveries": 3}`)

	d, err := DecodeDriver(raw)
	require.NoError(t, err)
	require.Equal(t, ID("42"), d.UserID)
	require.Equal(t, "Kamal Perera", d.FullName)
	require.True(t, bool(d.IsActive))
	require.Equal(t, 3, d.CurrentDeliveries)
}

func TestDecodeDriverOptionalFieldsStayNil(t *testing.T) {
	raw := []byte(`{"user_id": "7", "username": "nimal", "full_name": "Nimal Silva", "email": null, "is_active": false}`)

	d, err := DecodeDriver(raw)
	require.NoError(t, err)
	require.Nil(t, d.Email)
	require.Nil(t, d.Phone)
	require.Nil(t, d.Area)
	require.False(t, bool(d.IsActive))
}

func TestDecodeDriverMissingIdentity(t *testing.T) {
	raw := []byte(`{"username": "ghost", "full_name": "No ID"}`)

	_, err := DecodeDriver(raw)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeDriverUncoercibleIdentity(t *testing.T) {
	raw := []byte(`{"user_id": {"nested": true}, "username": "bad"}`)

	_, err := DecodeDriver(raw)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeProductStringPrice(t *testing.T) {
	raw := []byte(`{"product_id": "P1", "name": "Herbal Shampoo", "unit_price": "450.50", "category_id": 2, "category_name": "Hair Care", "current_stock": 20, "reorder_level": 10}`)

	p, err := DecodeProduct(raw)
	require.NoError(t, err)
	require.True(t, p.UnitPrice.Equal(decimal.RequireFromString("450.50")))
	require.Equal(t, ID("2"), p.CategoryID)
}

func TestDecodeProductNumericPrice(t *testing.T) {
	raw := []byte(`{"product_id": "P1", "name": "Herbal Shampoo", "unit_price": 450.5}`)

	p, err := DecodeProduct(raw)
	require.NoError(t, err)
	require.True(t, p.UnitPrice.Equal(decimal.RequireFromString("450.5")))
}

func TestDateAcceptsBothLayouts(t *testing.T) {
	var bare, stamped Date
	require.NoError(t, bare.UnmarshalJSON([]byte(`"2024-06-30"`)))
	require.NoError(t, stamped.UnmarshalJSON([]byte(`"2024-06-30T00:00:00Z"`)))
	require.Equal(t, bare.Time, stamped.Time)
	require.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), bare.Time)
}

func TestDecodeDriversRejectsPartialLists(t *testing.T) {
	raw := []byte(`[{"user_id": "1", "username": "ok"}, {"username": "broken"}]`)

	_, err := DecodeDrivers(raw)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestBatchViewShapesAgree(t *testing.T) {
	expiry := NewDate(2024, time.July, 1)
	later := NewDate(2024, time.December, 1)
	full := FullBatches([]Batch{
		{BatchID: "B1", CurrentQuantity: 5, ExpiryDate: &later},
		{BatchID: "B2", CurrentQuantity: 2, ExpiryDate: &expiry},
		{BatchID: "B3", CurrentQuantity: 0, ExpiryDate: &Date{}},
	})
	summary := BatchSummary(3, &expiry)

	require.Equal(t, 3, full.Count())
	require.Equal(t, summary.Count(), full.Count())
	require.Equal(t, expiry.Time, full.NextExpiry().Time)
	require.Equal(t, summary.NextExpiry().Time, full.NextExpiry().Time)
}

func TestBatchViewPrefersFullList(t *testing.T) {
	count := 9
	stale := NewDate(2023, time.January, 1)
	expiry := NewDate(2024, time.July, 1)
	p := Product{
		ProductID:  "P1",
		Batches:    []Batch{{BatchID: "B1", CurrentQuantity: 1, ExpiryDate: &expiry}},
		BatchCount: &count,
		NextExpiry: &stale,
	}

	view := p.View()
	require.Equal(t, 1, view.Count())
	require.Equal(t, expiry.Time, view.NextExpiry().Time)
}

func TestBatchViewIgnoresEmptyExpiryDates(t *testing.T) {
	raw := []byte(`{"product_id": "P1", "batches": [{"batch_id": "B1", "current_quantity": 5, "expiry_date": ""}]}`)

	p, err := DecodeProduct(raw)
	require.NoError(t, err)
	require.NotNil(t, p.Batches[0].ExpiryDate)
	require.Nil(t, p.View().NextExpiry())
}

func TestBatchViewEmptyRelationship(t *testing.T) {
	p := Product{ProductID: "P1"}

	view := p.View()
	require.Equal(t, 0, view.Count())
	require.Nil(t, view.NextExpiry())
}
