package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rooherbals/dms/internal/domain"
)

func TestOfProductBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		stock   int
		reorder int
		want    Stock
	}{
		{name: "at reorder level is in stock", stock: 5, reorder: 5, want: InStock},
		{name: "below reorder level is low", stock: 4, reorder: 5, want: LowStock},
		{name: "zero stock is out", stock: 0, reorder: 5, want: OutOfStock},
		{name: "negative stock is out", stock: -1, reorder: 0, want: OutOfStock},
		{name: "zero reorder level never low", stock: 1, reorder: 0, want: InStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := domain.Product{CurrentStock: tc.stock, ReorderLevel: tc.reorder}
			require.Equal(t, tc.want, OfProduct(p))
		})
	}
}

func TestOfExpiryBoundaries(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	date := func(y int, m time.Month, d int) *domain.Date {
		v := domain.NewDate(y, m, d)
		return &v
	}

	cases := []struct {
		name   string
		expiry *domain.Date
		want   Urgency
	}{
		{name: "yesterday is expired", expiry: date(2023, time.December, 31), want: Expired},
		{name: "today is expiring soon", expiry: date(2024, time.January, 1), want: ExpiringSoon},
		{name: "inside window is expiring soon", expiry: date(2024, time.January, 20), want: ExpiringSoon},
		{name: "window edge is normal", expiry: date(2024, time.January, 31), want: Normal},
		{name: "far future is normal", expiry: date(2024, time.March, 1), want: Normal},
		{name: "nil date has no urgency", expiry: nil, want: NoExpiry},
		{name: "zero date has no urgency", expiry: &domain.Date{}, want: NoExpiry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, OfExpiry(tc.expiry, now))
		})
	}
}

func TestOfExpiryIsDeterministic(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	expiry := domain.NewDate(2024, time.January, 10)

	first := OfExpiry(&expiry, now)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, OfExpiry(&expiry, now))
	}
}
