// Package domain holds the typed records the DMS API returns and the
// decoding layer that normalises raw JSON into them. The API is loose
// about scalar encodings (numeric identifiers, string prices, integer
// booleans), so the scalar types here absorb that variance at decode
// time; callers only ever see the typed form.
package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// ID is a server-assigned identifier. Endpoints disagree on whether
// identifiers arrive as JSON strings or numbers; both decode to the
// string form. The empty ID is the "no value" sentinel.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("identifier: %w", ErrMalformed)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier %s: %w", string(data), ErrMalformed)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// Flag is a boolean the API may encode as true/false, 0/1 or "0"/"1".
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "null":
		*f = false
	case "true", "1", `"1"`, `"true"`:
		*f = true
	case "false", "0", `"0"`, `"false"`:
		*f = false
	default:
		return fmt.Errorf("flag %s: %w", string(data), ErrMalformed)
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

const dateLayout = "2006-01-02"

// Date is a calendar date. Endpoints emit either bare dates or full
// RFC3339 timestamps; both parse. Nullable fields use *Date.
type Date struct {
	time.Time
}

// NewDate builds a Date truncated to the calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date %s: %w", string(data), ErrMalformed)
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("date %q: %w", s, ErrMalformed)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}
