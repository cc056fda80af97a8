package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/sheikh-saqib/lender-tracker/internal/config"
	"github.com/sheikh-saqib/lender-tracker/internal/events/kafka"
	"github.com/sheikh-saqib/lender-tracker/internal/events/nop"
	interfaces "github.com/sheikh-saqib/lender-tracker/internal/interfaces"
	"github.com/sheikh-saqib/lender-tracker/internal/ledger"
	"github.com/sheikh-saqib/lender-tracker/internal/menu"
	"github.com/sheikh-saqib/lender-tracker/internal/storage/file"
	"github.com/sheikh-saqib/lender-tracker/internal/storage/postgres"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so deferred closes always happen.
func run(ctx context.Context) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var store interfaces.LenderStore = file.NewFileLenderStore(cfg.Path)
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		pg := postgres.NewPostgresLenderStore(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("database schema: %w", err)
		}
		store = pg
	}

	var publisher interfaces.EventPublisher = nop.Publisher{}
	if len(cfg.KafkaBrokers) > 0 {
		p := kafka.NewPublisher(cfg.KafkaBrokers)
		defer p.Close()
		publisher = p
	}

	lenders := ledger.NewLedger(store, publisher, cfg.KafkaTopic)
	skipped, err := lenders.Load(ctx)
	if err != nil {
		return fmt.Errorf("load lenders: %w", err)
	}
	if skipped > 0 {
		log.Printf("skipped %d malformed line(s) in %s", skipped, cfg.Path)
	}

	if err := menu.New(lenders, os.Stdin, os.Stdout).Run(ctx); err != nil {
		return fmt.Errorf("lender tracker: %w", err)
	}
	return nil
}
