package db

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/glebarez/sqlite"
	embeddedmigrations "github.com/terraincognita07/mcycle/migrations"
	"gorm.io/gorm"
)

func TestOpenSQLiteAppliesEmbeddedMigrationsOnCleanDatabase(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "mcycle-clean.db")
	database := openSQLiteForMigrationBootstrapTest(t, databasePath)

	for _, table := range []string{"users", "cycles", "health_metrics", "daily_logs"} {
		if !database.Migrator().HasTable(table) {
			t.Fatalf("expected table %s to exist", table)
		}
	}
	assertColumnsExist(t, database, "users", "name", "email", "password_hash", "date_of_birth", "created_at")
	assertColumnsExist(t, database, "cycles", "start_date", "end_date", "cycle_length", "bleeding_duration", "predicted_next", "notes")
	assertColumnsExist(t, database, "health_metrics", "recorded_date", "bmi", "waist_hip_ratio")
	assertColumnsExist(t, database, "daily_logs", "log_date", "mood", "acne_level", "hair_growth_level")
	assertAllEmbeddedMigrationsApplied(t, database)
}

func TestOpenSQLiteSkipsExistingColumns(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "mcycle-patched.db")
	seedPatchedInitSchema(t, databasePath)

	database := openSQLiteForMigrationBootstrapTest(t, databasePath)
	assertColumnsExist(t, database, "users", "date_of_birth")
	assertAllEmbeddedMigrationsApplied(t, database)

	var count int64
	if err := database.Table("users").Where("email = ?", "patched@example.com").Count(&count).Error; err != nil {
		t.Fatalf("count patched users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected patched user to survive migrations, got %d rows", count)
	}
}

func TestOpenSQLiteMigrationBootstrapIsIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "mcycle-idempotent.db")

	first := openSQLiteForMigrationBootstrapTest(t, databasePath)
	firstSQL, err := first.DB()
	if err != nil {
		t.Fatalf("open first sql db: %v", err)
	}
	if err := firstSQL.Close(); err != nil {
		t.Fatalf("close first sql db: %v", err)
	}

	second := openSQLiteForMigrationBootstrapTest(t, databasePath)
	assertAllEmbeddedMigrationsApplied(t, second)
}

func TestEmbeddedMigrationsMatchAcrossDialects(t *testing.T) {
	sqliteVersions := embeddedMigrationVersionsForTest(t, dialectSQLite)
	postgresVersions := embeddedMigrationVersionsForTest(t, dialectPostgres)
	if !reflect.DeepEqual(sqliteVersions, postgresVersions) {
		t.Fatalf("expected matching migration versions, sqlite=%v postgres=%v", sqliteVersions, postgresVersions)
	}
}

func TestSplitSQLStatements(t *testing.T) {
	statements := splitSQLStatements("CREATE TABLE a (id INTEGER);\n\n ;CREATE INDEX i ON a(id);  ")
	want := []string{"CREATE TABLE a (id INTEGER)", "CREATE INDEX i ON a(id)"}
	if !reflect.DeepEqual(statements, want) {
		t.Fatalf("expected %v, got %v", want, statements)
	}
}

func openSQLiteForMigrationBootstrapTest(t *testing.T, databasePath string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func seedPatchedInitSchema(t *testing.T, databasePath string) {
	t.Helper()

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)", databasePath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open patched sqlite: %v", err)
	}

	initSQL, err := fs.ReadFile(embeddedmigrations.Files, path.Join(dialectSQLite, "0001_init.sql"))
	if err != nil {
		t.Fatalf("read 0001 migration: %v", err)
	}
	for _, statement := range splitSQLStatements(string(initSQL)) {
		if err := database.Exec(statement).Error; err != nil {
			t.Fatalf("apply 0001 statement: %v", err)
		}
	}
	if err := database.Exec(`ALTER TABLE users ADD COLUMN date_of_birth DATE`).Error; err != nil {
		t.Fatalf("patch users table: %v", err)
	}
	if err := database.Exec(
		`INSERT INTO users (name, email, password_hash, created_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
		"Patched",
		"patched@example.com",
		"patched-hash",
	).Error; err != nil {
		t.Fatalf("insert patched user: %v", err)
	}

	if database.Migrator().HasTable("schema_migrations") {
		t.Fatal("expected patched schema to not have schema_migrations table")
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open patched sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close patched sql db: %v", err)
	}
}

func assertColumnsExist(t *testing.T, database *gorm.DB, tableName string, columns ...string) {
	t.Helper()

	for _, column := range columns {
		exists, err := tableColumnExists(database, dialectSQLite, tableName, column)
		if err != nil {
			t.Fatalf("inspect %s.%s: %v", tableName, column, err)
		}
		if !exists {
			t.Fatalf("expected column %s.%s to exist", tableName, column)
		}
	}
}

func assertAllEmbeddedMigrationsApplied(t *testing.T, database *gorm.DB) {
	t.Helper()

	expectedVersions := embeddedMigrationVersionsForTest(t, dialectSQLite)
	actualVersions := make([]string, 0)

	var rows []struct {
		Version string `gorm:"column:version"`
	}
	if err := database.Raw(`SELECT version FROM schema_migrations ORDER BY version ASC`).Scan(&rows).Error; err != nil {
		t.Fatalf("load applied migration versions: %v", err)
	}
	for _, row := range rows {
		actualVersions = append(actualVersions, row.Version)
	}

	if !reflect.DeepEqual(expectedVersions, actualVersions) {
		t.Fatalf("unexpected applied migration versions: expected=%v actual=%v", expectedVersions, actualVersions)
	}
}

func embeddedMigrationVersionsForTest(t *testing.T, dialect string) []string {
	t.Helper()

	migrations, err := loadEmbeddedMigrations(dialect)
	if err != nil {
		t.Fatalf("load embedded migrations: %v", err)
	}
	versions := make([]string, 0, len(migrations))
	for _, migration := range migrations {
		versions = append(versions, migration.Version)
	}
	sort.Strings(versions)
	return versions
}
