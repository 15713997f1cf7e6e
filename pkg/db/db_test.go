package db

import (
	"os"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"agrovista.dev/agro-telemetry-service/pkg/common"
	_ "agrovista.dev/agro-telemetry-service/pkg/testing"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func TestOpenWithMemorySqlite(t *testing.T) {
	common.SetTestLoggerNop()

	instance, err := Open(UseMemorySqliteDialector())
	if err != nil {
		t.Fatalf("Expected Open to succeed, got: %v", err)
	}
	if instance == nil {
		t.Fatal("Expected non-nil DB instance")
	}

	var tables = []string{
		"organizations",
		"device_models",
		"devices",
		"sensor_types",
		"sensor_models",
		"sensors",
		"measurement_columns",
		"telemetry_samples",
		"notifications",
		"alerts",
	}
	for _, table := range tables {
		if !tableExists(instance.Conn, table) {
			t.Errorf("Expected table %q to exist after migration", table)
		}
	}
}

func TestOpenWithEnvPath(t *testing.T) {
	common.SetTestLoggerNop()

	if os.Getenv(common.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	testPath := filepath.Join(wd, "test.db")

	originalDBPath, hadOriginal := os.LookupEnv(common.EnvKeyAgroDbPath)

	if err := os.Setenv(common.EnvKeyAgroDbPath, testPath); err != nil {
		t.Fatalf("Failed to set AGRO_DB_PATH: %v", err)
	}

	defer func() {
		if hadOriginal {
			_ = os.Setenv(common.EnvKeyAgroDbPath, originalDBPath)
		} else {
			_ = os.Unsetenv(common.EnvKeyAgroDbPath)
		}
		_ = os.Remove(testPath)
	}()

	instance, err := Open(UseSqliteDialector())
	if err != nil {
		t.Fatalf("Expected Open to succeed, got: %v", err)
	}
	if instance == nil || instance.Conn == nil {
		t.Fatal("Expected non-nil DB connection")
	}
	defer instance.Close()

	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Errorf("Expected database file to be created at %s", testPath)
	}
}
