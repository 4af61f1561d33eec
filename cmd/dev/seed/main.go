// Seed creates the admin account and a handful of sample services with open
// dates, so a fresh database is bookable right away.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"salonbooking/internal/admin"
	"salonbooking/internal/availability"
	"salonbooking/internal/service"
	"salonbooking/pkg/config"
	"salonbooking/pkg/db"
)

func main() {
	var (
		withSamples = flag.Bool("samples", true, "seed sample services and availability dates")
	)
	flag.Parse()

	cfg := config.Load()
	if cfg.Admin.Password == "" {
		fmt.Fprintln(os.Stderr, "missing ADMIN_PASSWORD (set it in env or .env)")
		os.Exit(2)
	}

	ctx := context.Background()
	pool, err := db.Open(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "db open failed: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := admin.HashPassword(cfg.Admin.Password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password failed: %v\n", err)
		os.Exit(1)
	}

	admins := admin.NewRepository(pool)
	a, err := admins.Upsert(ctx, cfg.Admin.Username, hash, cfg.Admin.Email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed admin failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("admin %q ready (id=%d)\n", a.Username, a.ID)

	if !*withSamples {
		return
	}

	samples := []struct {
		name     string
		minutes  int
		price    int64
		dates    []string
	}{
		{"Coloring", 120, 240, []string{"2025-11-04", "2025-12-04"}},
		{"Haircut", 120, 240, []string{"2025-11-04", "2025-11-18"}},
		{"Styling", 120, 240, []string{"2025-12-04"}},
	}

	err = db.WithTx(ctx, pool, func(tx pgx.Tx) error {
		for _, s := range samples {
			id, err := service.FindOrCreateByName(ctx, tx, s.name, s.minutes)
			if err != nil {
				return err
			}
			price := decimal.NewFromInt(s.price)
			const q = `UPDATE services SET price = COALESCE(price, $1) WHERE service_id = $2`
			if _, err := tx.Exec(ctx, q, price, id); err != nil {
				return err
			}
			if err := availability.Replace(ctx, tx, id, s.dates, 1); err != nil {
				return err
			}
			fmt.Printf("service %q ready (id=%d, %d open dates)\n", s.name, id, len(s.dates))
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed samples failed: %v\n", err)
		os.Exit(1)
	}
}
