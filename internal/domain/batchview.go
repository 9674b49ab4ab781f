package domain

// BatchView reconciles the two shapes the API uses for a product's
// batch relationship: the full batch list, or a precomputed
// count/next-expiry summary. Call sites read through Count and
// NextExpiry and never branch on the underlying shape.
type BatchView struct {
	batches []Batch
	count   int
	next    *Date
	full    bool
}

// FullBatches builds a view over an explicit batch list.
func FullBatches(batches []Batch) BatchView {
	return BatchView{batches: batches, full: true}
}

// BatchSummary builds a view from server-precomputed summary fields.
func BatchSummary(count int, next *Date) BatchView {
	return BatchView{count: count, next: next}
}

// Count returns the number of batches in the relationship.
func (v BatchView) Count() int {
	if v.full {
		return len(v.batches)
	}
	return v.count
}

// NextExpiry returns the earliest expiry among batches that still hold
// quantity, or nil when none of them carries an expiry date. A zero
// date means "no date recorded" and never wins. For the summary shape
// this is the server-derived value, returned as-is.
func (v BatchView) NextExpiry() *Date {
	if !v.full {
		return v.next
	}
	var min *Date
	for i := range v.batches {
		b := v.batches[i]
		if b.CurrentQuantity <= 0 || b.ExpiryDate == nil || b.ExpiryDate.IsZero() {
			continue
		}
		if min == nil || b.ExpiryDate.Before(min.Time) {
			min = b.ExpiryDate
		}
	}
	return min
}

// View returns the reconciled batch view for the product, preferring
// the full list when both representations are present.
func (p Product) View() BatchView {
	if len(p.Batches) > 0 {
		return FullBatches(p.Batches)
	}
	count := 0
	if p.BatchCount != nil {
		count = *p.BatchCount
	}
	return BatchSummary(count, p.NextExpiry)
}
