package main

import (
	"context"
	"mobile-depot-planner/internal/adapters/repositories"
	"mobile-depot-planner/internal/config"
	"mobile-depot-planner/internal/platform/db"
	"strings"

	"github.com/sirupsen/logrus"
)

// dbtool creates the profile schema and seeds it from PROFILES_PATH.
func main() {
	config.LoadDotEnv()

	driver := config.Get("DB_DRIVER", "postgres")
	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		logrus.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, driver, databaseURL)
	if err != nil {
		logrus.Fatal(err)
	}
	defer conn.Close()

	dialect, err := repositories.DialectFor(driver)
	if err != nil {
		logrus.Fatal(err)
	}

	seedPath := config.Get("PROFILES_PATH", "data/profiles.yaml")
	if err := initAndSeed(ctx, repositories.NewSQLProfileRepository(conn, dialect), seedPath); err != nil {
		logrus.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, repo *repositories.SQLProfileRepository, seedPath string) error {
	logrus.Info("Initializing database schema...")
	if err := repositories.InitSchema(ctx, repo.DB); err != nil {
		return err
	}
	logrus.Info("Schema ready.")

	logrus.Info("Seeding profiles...")
	n, err := repositories.SeedFromYAML(ctx, repo, seedPath)
	if err != nil {
		return err
	}
	logrus.WithField("profiles", n).Info("Seeding complete.")

	return nil
}
