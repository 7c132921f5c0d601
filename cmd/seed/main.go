package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"logistics/cmd"
	"logistics/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	path := flag.String("file", configs.SeedPath, "network description to load")
	flag.Parse()

	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	ctx := context.Background()
	if err = postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)
	defer app.Close()

	if _, err = app.CreateSeedLoader().LoadFile(ctx, *path); err != nil {
		log.Fatalf("Error seeding %s: %v", *path, err)
	}
}
