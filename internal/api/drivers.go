package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rooherbals/dms/internal/domain"
	"github.com/rooherbals/dms/internal/query"
)

// DriverForm is the outbound payload for creating or updating a
// driver account.
type DriverForm struct {
	Username string  `json:"username" validate:"required"`
	FullName string  `json:"full_name" validate:"required"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Area     *string `json:"area,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// ListDrivers fetches drivers matching p.
func (c *Client) ListDrivers(ctx context.Context, p query.Params) ([]domain.Driver, error) {
	raw, err := c.get(ctx, "/drivers", p.Encode())
	if err != nil {
		return nil, err
	}
	return domain.DecodeDrivers(raw)
}

// GetDriver fetches one driver by identity.
func (c *Client) GetDriver(ctx context.Context, id domain.ID) (domain.Driver, error) {
	raw, err := c.get(ctx, "/drivers/"+string(id), "")
	if err != nil {
		return domain.Driver{}, err
	}
	return domain.DecodeDriver(raw)
}

// CreateDriver registers a driver account.
func (c *Client) CreateDriver(ctx context.Context, form DriverForm) (domain.Driver, error) {
	if err := c.validate.Struct(form); err != nil {
		return domain.Driver{}, fmt.Errorf("driver form: %w", err)
	}
	raw, err := c.do(ctx, http.MethodPost, "/drivers", "", form)
	if err != nil {
		return domain.Driver{}, err
	}
	return domain.DecodeDriver(raw)
}

// UpdateDriver replaces a driver's editable fields.
func (c *Client) UpdateDriver(ctx context.Context, id domain.ID, form DriverForm) (domain.Driver, error) {
	if err := c.validate.Struct(form); err != nil {
		return domain.Driver{}, fmt.Errorf("driver form: %w", err)
	}
	raw, err := c.do(ctx, http.MethodPut, "/drivers/"+string(id), "", form)
	if err != nil {
		return domain.Driver{}, err
	}
	return domain.DecodeDriver(raw)
}

// DeactivateDriver retires a driver account.
func (c *Client) DeactivateDriver(ctx context.Context, id domain.ID) error {
	_, err := c.do(ctx, http.MethodDelete, "/drivers/"+string(id), "", nil)
	return err
}
