package domain

import (
	"encoding/json"
	"fmt"
)

// Driver represents a delivery driver account. Contact fields are
// independently nullable; absent and explicit-null both decode to nil.
type Driver struct {
	UserID            ID      `json:"user_id"`
	Username          string  `json:"username"`
	FullName          string  `json:"full_name"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Address           *string `json:"address,omitempty"`
	Area              *string `json:"area,omitempty"`
	IsActive          Flag    `json:"is_active"`
	CurrentDeliveries int     `json:"current_deliveries"`
	CreatedAt         *Date   `json:"created_at,omitempty"`
	UpdatedAt         *Date   `json:"updated_at,omitempty"`
}

func (d Driver) validate() error {
	if d.UserID == "" {
		return fmt.Errorf("driver: missing user_id: %w", ErrMalformed)
	}
	return nil
}

// DecodeDriver normalises one raw driver payload.
func DecodeDriver(data []byte) (Driver, error) {
	var d Driver
	if err := json.Unmarshal(data, &d); err != nil {
		return Driver{}, fmt.Errorf("driver: %w: %v", ErrMalformed, err)
	}
	if err := d.validate(); err != nil {
		return Driver{}, err
	}
	return d, nil
}

// DecodeDrivers normalises a raw driver list. Any malformed element
// fails the whole list; partial results are never returned.
func DecodeDrivers(data []byte) ([]Driver, error) {
	var list []Driver
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("drivers: %w: %v", ErrMalformed, err)
	}
	for _, d := range list {
		if err := d.validate(); err != nil {
			return nil, err
		}
	}
	return list, nil
}
