// Package integration provides test utilities for running integration tests
// with testcontainers. These tests require Docker to be running.
//
// The suite starts one PostgreSQL container in TestMain, runs the migrations
// and tears everything down once all tests complete.
package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/centavohq/centavo/internal/db"
)

// suiteContainer is the shared container started in TestMain.
var suiteContainer *TestContainer

// TestContainer holds the PostgreSQL container and connection details
type TestContainer struct {
	Container testcontainers.Container
	DB        *db.DB
	Config    *db.Config
}

// GetSuiteContainer returns the shared container, failing the test when the
// suite was not initialized.
func GetSuiteContainer(t *testing.T) *TestContainer {
	t.Helper()
	if suiteContainer == nil {
		t.Fatal("suite container not initialized; TestMain did not run")
	}
	return suiteContainer
}

// setupWithContext starts a PostgreSQL container and runs the migrations.
func setupWithContext(ctx context.Context) (*TestContainer, error) {
	migrationsPath, err := filepath.Abs("../../migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("centavo_test"),
		postgres.WithUsername("centavo_user"),
		postgres.WithPassword("centavo_password"),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort("5432/tcp").WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	config := &db.Config{
		Host:     host,
		Port:     port.Port(),
		User:     "centavo_user",
		Password: "centavo_password",
		Name:     "centavo_test",
		SSLMode:  "disable",
	}

	database, err := db.Connect(config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if err := runMigrations(database, migrationsPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &TestContainer{
		Container: pgContainer,
		DB:        database,
		Config:    config,
	}, nil
}

// runMigrations executes the migration scripts in order
func runMigrations(database *db.DB, migrationsPath string) error {
	sqlDB, err := database.GetSQLDB()
	if err != nil {
		return err
	}

	for _, file := range []string{"001_init.sql"} {
		script, err := os.ReadFile(filepath.Join(migrationsPath, file))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		if _, err := sqlDB.Exec(string(script)); err != nil {
			return fmt.Errorf("failed to execute %s: %w", file, err)
		}
	}
	return nil
}
