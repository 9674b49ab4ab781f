// Package query builds canonical list-request parameters. The output
// order is fixed so identical inputs serialise byte-identically, which
// keeps request descriptors usable as cache keys.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

// Status selects the activity partition of a list request.
type Status string

const (
	// StatusAll applies no activity partition.
	StatusAll Status = "all"
	// StatusActive keeps only active records.
	StatusActive Status = "active"
	// StatusInactive keeps only inactive records.
	StatusInactive Status = "inactive"
)

// Params describes one list request. Zero values mean "no filter" and
// are omitted from the output.
type Params struct {
	Search   string
	Category string
	Status   Status
	Sort     string
	Active   *bool
}

// Pair is one serialised query parameter.
type Pair struct {
	Key   string
	Value string
}

// Build returns the canonical ordered parameter list. Absent options,
// empty strings and the no-filter sentinels are omitted. The receiver
// is never mutated.
func (p Params) Build() []Pair {
	pairs := make([]Pair, 0, 5)
	if p.Search != "" {
		pairs = append(pairs, Pair{Key: "search", Value: p.Search})
	}
	if p.Category != "" {
		pairs = append(pairs, Pair{Key: "category", Value: p.Category})
	}
	if p.Status != "" && p.Status != StatusAll {
		pairs = append(pairs, Pair{Key: "status", Value: string(p.Status)})
	}
	if p.Sort != "" {
		pairs = append(pairs, Pair{Key: "sort", Value: p.Sort})
	}
	if p.Active != nil {
		pairs = append(pairs, Pair{Key: "active", Value: strconv.FormatBool(*p.Active)})
	}
	return pairs
}

// Encode serialises the canonical pairs as a URL query string.
func (p Params) Encode() string {
	pairs := p.Build()
	if len(pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, pair := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pair.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pair.Value))
	}
	return b.String()
}
