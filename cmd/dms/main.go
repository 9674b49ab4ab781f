// Command dms is a terminal front-end for the RooHerbals DMS API. It
// drives the same load/filter/derive pipeline the mobile screens use
// and prints the resulting rows.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"golang.org/x/time/rate"

	"github.com/rooherbals/dms/internal/api"
	"github.com/rooherbals/dms/internal/app"
	"github.com/rooherbals/dms/internal/domain"
	"github.com/rooherbals/dms/internal/filter"
	"github.com/rooherbals/dms/internal/listing"
	"github.com/rooherbals/dms/internal/observability"
	"github.com/rooherbals/dms/internal/query"
)

const usage = `usage: dms <command> [flags]

commands:
  drivers    list delivery drivers
  products   list products with stock and expiry classification
  inventory  show inventory statistics
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "dms:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg)
	metrics := observability.NewMetrics()
	client := api.New(cfg.APIBaseURL, api.Options{
		HTTPClient: &http.Client{Timeout: cfg.APITimeout},
		Tokens:     api.StaticToken(cfg.APIToken),
		Limiter:    rate.NewLimiter(rate.Limit(cfg.RequestRate), cfg.RequestBurst),
		Logger:     logger,
		Observer:   metrics,
	})
	svc := listing.NewService(client, logger, listing.Config{
		Debounce: cfg.SearchDebounce,
		Stale:    metrics,
	})
	defer svc.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch args[0] {
	case "drivers":
		return runDrivers(ctx, svc, args[1:])
	case "products":
		return runProducts(ctx, svc, args[1:])
	case "inventory":
		return runInventory(ctx, client)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func parseStatus(s string) query.Status {
	switch s {
	case "active":
		return query.StatusActive
	case "inactive":
		return query.StatusInactive
	default:
		return query.StatusAll
	}
}

func runDrivers(ctx context.Context, svc *listing.Service, args []string) error {
	fs := flag.NewFlagSet("drivers", flag.ContinueOnError)
	search := fs.String("search", "", "match name, area or phone")
	statusFlag := fs.String("status", "all", "all, active or inactive")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st := filter.State{Query: *search, Status: parseStatus(*statusFlag)}
	if err := svc.LoadDrivers(ctx, st); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAREA\tPHONE\tACTIVE\tDELIVERIES")
	for _, d := range svc.Drivers().Drivers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%d\n",
			d.UserID, d.FullName, strOrDash(d.Area), strOrDash(d.Phone), bool(d.IsActive), d.CurrentDeliveries)
	}
	return w.Flush()
}

func runProducts(ctx context.Context, svc *listing.Service, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	search := fs.String("search", "", "match product or category name")
	category := fs.String("category", "", "category id, empty for all")
	statusFlag := fs.String("status", "all", "all, active or inactive")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st := filter.State{Query: *search, Status: parseStatus(*statusFlag)}
	if err := svc.LoadProducts(ctx, domain.ID(*category), st); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tSTATUS\tEXPIRY")
	for _, row := range svc.Products().Rows {
		p := row.Product
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			p.ProductID, p.Name, p.CategoryName, p.UnitPrice.StringFixed(2), p.CurrentStock, row.Stock, row.Expiry)
	}
	return w.Flush()
}

func runInventory(ctx context.Context, client *api.Client) error {
	stats, err := client.InventoryStats(ctx)
	if err != nil {
		return err
	}
	overview, err := client.InventoryOverview(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "products\t%d\n", stats.TotalProducts)
	fmt.Fprintf(w, "batches\t%d\n", overview.TotalBatches)
	fmt.Fprintf(w, "stock value\t%s\n", overview.StockValue.StringFixed(2))
	fmt.Fprintf(w, "low stock\t%d\n", stats.LowStock)
	fmt.Fprintf(w, "out of stock\t%d\n", stats.OutOfStock)
	fmt.Fprintf(w, "expiring soon\t%d\n", stats.ExpiringSoon)
	return w.Flush()
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
