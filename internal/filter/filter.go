// Package filter refines fetched record lists client-side, reproducing
// the server's search and status semantics for endpoints that return
// unfiltered data. Filtering is a pure function of the input list and
// the filter state: input order is preserved, the input slice is never
// mutated, and reapplying the same state is a no-op.
package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/rooherbals/dms/internal/domain"
	"github.com/rooherbals/dms/internal/query"
)

// State is the filter configuration applied to a fetched list.
type State struct {
	Query  string
	Status query.Status
}

// field is one searchable value. Numeric fields such as phone numbers
// match verbatim; text fields match case-insensitively via Unicode case
// folding.
type field struct {
	value    string
	verbatim bool
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// matches reports whether any field contains the query. Empty fields
// never match.
func matches(fields []field, q string) bool {
	folded := fold(q)
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if f.verbatim {
			if strings.Contains(f.value, q) {
				return true
			}
			continue
		}
		if strings.Contains(fold(f.value), folded) {
			return true
		}
	}
	return false
}

// keepStatus applies the activity partition. Unrecognised values apply
// no partition, matching the server's behaviour.
func keepStatus(isActive bool, s query.Status) bool {
	switch s {
	case query.StatusActive:
		return isActive
	case query.StatusInactive:
		return !isActive
	default:
		return true
	}
}

// Drivers returns the drivers matching st, in input order. Searchable
// fields are full name and area (folded) and phone (verbatim).
func Drivers(list []domain.Driver, st State) []domain.Driver {
	out := make([]domain.Driver, 0, len(list))
	for _, d := range list {
		if !keepStatus(bool(d.IsActive), st.Status) {
			continue
		}
		if st.Query != "" && !matches(driverFields(d), st.Query) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func driverFields(d domain.Driver) []field {
	fields := []field{{value: d.FullName}}
	if d.Area != nil {
		fields = append(fields, field{value: *d.Area})
	}
	if d.Phone != nil {
		fields = append(fields, field{value: *d.Phone, verbatim: true})
	}
	return fields
}

// Products returns the products matching st, in input order.
// Searchable fields are name and category name.
func Products(list []domain.Product, st State) []domain.Product {
	out := make([]domain.Product, 0, len(list))
	for _, p := range list {
		if !keepStatus(bool(p.IsActive), st.Status) {
			continue
		}
		if st.Query != "" && !matches(productFields(p), st.Query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func productFields(p domain.Product) []field {
	return []field{{value: p.Name}, {value: p.CategoryName}}
}
