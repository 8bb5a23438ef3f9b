package testhelpers

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoshop-manager/internal/db"
)

const postgresImage = "postgres:16-alpine"

// Tabelas apagadas entre testes, na ordem das dependências.
var tables = []string{
	"audit_logs",
	"feedback",
	"service_record_inventory",
	"service_records",
	"appointments",
	"vehicles",
	"customers",
	"service_packages",
	"employees",
	"inventory",
}

type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	ConnStr   string
}

var (
	sharedTestDB     *TestDB
	sharedTestDBOnce sync.Once
	sharedTestDBErr  error
)

// GetTestDB devolve um Postgres compartilhado, com migrations aplicadas.
// O container sobe uma vez por execução de testes e precisa de Docker.
func GetTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	sharedTestDBOnce.Do(func() {
		sharedTestDB, sharedTestDBErr = setupTestDB()
	})

	if sharedTestDBErr != nil {
		t.Fatalf("Failed to setup test database: %v", sharedTestDBErr)
	}

	return sharedTestDB
}

func setupTestDB() (*TestDB, error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "autoshop_test",
			"POSTGRES_USER":     "autoshop",
			"POSTGRES_PASSWORD": "test_password",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start test container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	connStr := fmt.Sprintf("postgres://autoshop:test_password@%s:%s/autoshop_test?sslmode=disable",
		host, port.Port())

	logger := zap.NewNop()

	if err := db.Migrate(connStr, logger); err != nil {
		return nil, err
	}

	gdb, err := db.Open(connStr, logger)
	if err != nil {
		return nil, err
	}

	return &TestDB{
		Container: container,
		DB:        gdb,
		ConnStr:   connStr,
	}, nil
}

// Reset esvazia todas as tabelas e reinicia as sequências.
func (tdb *TestDB) Reset(t *testing.T) {
	t.Helper()

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}
