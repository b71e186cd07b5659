package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"commerce/config"
	"commerce/internal/domain/repository"
	logs "commerce/internal/infra/log"
	"commerce/internal/infra/persistence/model"
	"commerce/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported subcommands:
// - schema: create or update the tables
// - seed:   upsert catalog products from a YAML file

type deps struct {
	DB          *gorm.DB
	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

func main() {
	schemaCmd := flag.NewFlagSet("schema", flag.ExitOnError)

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedFile := seedCmd.String("file", "", "Catalog YAML file to load")
	seedSchema := seedCmd.Bool("schema", false, "Migrate the schema before seeding")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var err error
	switch os.Args[1] {
	case "schema":
		if err = schemaCmd.Parse(os.Args[2:]); err == nil {
			err = withDeps(ctx, func(d deps) error {
				return migrateSchema(ctx, d)
			})
		}
	case "seed":
		if err = seedCmd.Parse(os.Args[2:]); err != nil {
			break
		}
		if *seedFile == "" {
			err = errors.New("--file flag is required for seed command")

			break
		}
		err = withDeps(ctx, func(d deps) error {
			if *seedSchema {
				if err := migrateSchema(ctx, d); err != nil {
					return err
				}
			}

			return seedCatalog(ctx, d, *seedFile)
		})
	default:
		printUsage()
		err = errors.New("unknown subcommand")
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withDeps starts the persistence graph, runs fn and shuts the graph down.
func withDeps(ctx context.Context, fn func(deps) error) error {
	var d deps
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewCatalogRepository,
		),
		fx.Populate(&d.DB, &d.CatalogRepo, &d.Logger),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build dependencies")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start dependencies")
	}
	defer func() {
		if err := app.Stop(context.WithoutCancel(ctx)); err != nil {
			d.Logger.Warn("Failed to stop dependencies", slog.Any("error", err))
		}
	}()

	return fn(d)
}

func migrateSchema(ctx context.Context, d deps) error {
	if err := d.DB.WithContext(ctx).AutoMigrate(model.AllModels()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}
	d.Logger.Info("Schema migrated", slog.Int("tables", len(model.AllModels())))

	return nil
}

func seedCatalog(ctx context.Context, d deps, path string) error {
	products, err := loadCatalog(path)
	if err != nil {
		return err
	}

	for _, product := range products {
		if err := d.CatalogRepo.SaveProduct(ctx, product); err != nil {
			return errors.Wrapf(err, "failed to save product %s", product.SKU)
		}
		d.Logger.Info("Product seeded",
			slog.String("sku", product.SKU),
			slog.String("slug", product.Slug),
			slog.Int("variants", len(product.Variants)),
		)
	}

	return nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  schema                 Create or update the database tables")
	fmt.Println("  seed --file <path>     Upsert catalog products from YAML (--schema to migrate first)")
}
