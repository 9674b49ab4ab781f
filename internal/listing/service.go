// Package listing drives the list screens: it loads records through
// the API facade, refines them client-side, derives presentation
// status and publishes immutable snapshots. Only the most recently
// initiated load may commit, so a slow stale response never overwrites
// a newer one.
package listing

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rooherbals/dms/internal/domain"
	"github.com/rooherbals/dms/internal/filter"
	"github.com/rooherbals/dms/internal/query"
	"github.com/rooherbals/dms/internal/refresh"
	"github.com/rooherbals/dms/internal/status"
)

// API is the slice of the facade the list screens consume.
type API interface {
	ListProducts(ctx context.Context, p query.Params) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListDrivers(ctx context.Context, p query.Params) ([]domain.Driver, error)
}

// StaleObserver counts discarded stale loads. Satisfied by
// observability.Metrics.
type StaleObserver interface {
	ObserveStaleDrop()
}

// ProductRow pairs a product with its derived presentation state.
type ProductRow struct {
	Product domain.Product
	Stock   status.Stock
	Expiry  status.Urgency
}

// ProductSnapshot is the committed state of the product screen.
type ProductSnapshot struct {
	Rows       []ProductRow
	Categories []domain.Category
	Filter     filter.State
	Category   domain.ID
}

// DriverSnapshot is the committed state of the driver screen.
type DriverSnapshot struct {
	Drivers []domain.Driver
	Filter  filter.State
}

// Config tunes the service. Zero values pick sensible defaults.
type Config struct {
	Debounce time.Duration
	Clock    func() time.Time
	Stale    StaleObserver
}

// Service owns the visible state of the driver and product screens.
type Service struct {
	api             API
	logger          *slog.Logger
	clock           func() time.Time
	productDebounce *refresh.Debouncer
	driverDebounce  *refresh.Debouncer
	stale           StaleObserver

	mu            sync.Mutex
	productTicket refresh.Coordinator
	driverTicket  refresh.Coordinator
	products      ProductSnapshot
	drivers       DriverSnapshot
}

// NewService wires the screen service.
func NewService(api API, logger *slog.Logger, cfg Config) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		api:             api,
		logger:          logger,
		clock:           clock,
		productDebounce: refresh.NewDebouncer(cfg.Debounce),
		driverDebounce:  refresh.NewDebouncer(cfg.Debounce),
		stale:           cfg.Stale,
	}
}

// productParams maps the screen filter onto the products wire shape.
// The products endpoint takes an `active` boolean where the drivers
// endpoint takes a `status` partition; both omit their no-filter case.
func productParams(category domain.ID, st filter.State) query.Params {
	params := query.Params{
		Search:   st.Query,
		Category: string(category),
	}
	switch st.Status {
	case query.StatusActive:
		active := true
		params.Active = &active
	case query.StatusInactive:
		active := false
		params.Active = &active
	}
	return params
}

// LoadProducts fetches products and categories together, refines and
// classifies them, and commits the snapshot unless a newer load has
// started since. Either fetch failing is fatal to the load; the prior
// snapshot stays visible.
func (s *Service) LoadProducts(ctx context.Context, category domain.ID, st filter.State) error {
	ticket := s.productTicket.Begin()

	params := productParams(category, st)
	var (
		products   []domain.Product
		categories []domain.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.api.ListProducts(gctx, params)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.api.ListCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("product load failed", slog.Any("error", err))
		return err
	}

	// The server already filters when it can; reapplying the same
	// state here is idempotent and covers endpoints that do not.
	refined := filter.Products(products, st)
	now := s.clock()
	rows := make([]ProductRow, 0, len(refined))
	for _, p := range refined {
		view := p.View()
		rows = append(rows, ProductRow{
			Product: p,
			Stock:   status.OfProduct(p),
			Expiry:  status.OfExpiry(view.NextExpiry(), now),
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.productTicket.Current(ticket) {
		s.dropStale("products")
		return nil
	}
	s.products = ProductSnapshot{
		Rows:       rows,
		Categories: categories,
		Filter:     st,
		Category:   category,
	}
	return nil
}

// LoadDrivers fetches and refines the driver list under the same
// stale-load guard.
func (s *Service) LoadDrivers(ctx context.Context, st filter.State) error {
	ticket := s.driverTicket.Begin()

	params := query.Params{Search: st.Query, Status: st.Status}
	drivers, err := s.api.ListDrivers(ctx, params)
	if err != nil {
		s.logger.Error("driver load failed", slog.Any("error", err))
		return err
	}
	refined := filter.Drivers(drivers, st)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.driverTicket.Current(ticket) {
		s.dropStale("drivers")
		return nil
	}
	s.drivers = DriverSnapshot{Drivers: refined, Filter: st}
	return nil
}

// SearchProducts schedules a debounced product reload for new search
// text. Rapid successive calls collapse into the last one. Each screen
// debounces independently; a driver search never displaces a pending
// product reload.
func (s *Service) SearchProducts(ctx context.Context, category domain.ID, st filter.State) {
	s.productDebounce.Trigger(func() {
		_ = s.LoadProducts(ctx, category, st)
	})
}

// SearchDrivers schedules a debounced driver reload.
func (s *Service) SearchDrivers(ctx context.Context, st filter.State) {
	s.driverDebounce.Trigger(func() {
		_ = s.LoadDrivers(ctx, st)
	})
}

// Products returns the current product snapshot. The snapshot is
// immutable; callers must not modify its slices.
func (s *Service) Products() ProductSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products
}

// Drivers returns the current driver snapshot.
func (s *Service) Drivers() DriverSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drivers
}

// Close cancels any pending debounced reloads.
func (s *Service) Close() {
	s.productDebounce.Stop()
	s.driverDebounce.Stop()
}

func (s *Service) dropStale(screen string) {
	s.logger.Debug("stale load dropped", slog.String("screen", screen))
	if s.stale != nil {
		s.stale.ObserveStaleDrop()
	}
}
