// Command seed writes the initial folder tree into postgres. It is meant for
// provisioning a fresh environment; the server does the same lazily on first
// start, so running it is optional.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"fruitstars/internal/config"
	"fruitstars/internal/domain/models"
	"fruitstars/internal/repository/postgres"
	"fruitstars/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	seedFile := flag.String("file", "", "YAML tree to seed instead of the builtin structure")
	force := flag.Bool("force", false, "overwrite an existing tree")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{}))

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	repo := postgres.NewTreeRepository(&postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	})

	if !*force {
		if _, err := repo.LoadTree(ctx); err == nil {
			log.Fatal("Tree already seeded, use -force to overwrite")
		}
	}

	var root *models.Folder
	if *seedFile != "" {
		root, err = seed.LoadTree(*seedFile)
		if err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}
	} else {
		root = seed.DefaultTree(time.Now())
	}

	if err := repo.SaveTree(ctx, root); err != nil {
		log.Fatalf("Failed to save tree: %v", err)
	}

	logger.Info("tree seeded",
		"folders", root.FolderCount(),
		"files", root.FileCount(),
		"table_prefix", cfg.TablePrefix,
	)
}
