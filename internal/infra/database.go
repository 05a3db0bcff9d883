package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens (creating if needed) the local SQLite store. TranslateError
// is enabled so unique-constraint violations surface as gorm.ErrDuplicatedKey
// instead of driver-specific errors.
func NewDatabase(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; serialize access at the pool level so a
	// busy save never races a dashboard read on the same handle.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Migrate applies the schema as one explicit idempotent step at process
// initialization, separate from the entity persistence contract. Every
// statement is IF NOT EXISTS so re-running on an existing file is a no-op.
func Migrate(db *gorm.DB) error {
	stmts := []struct{ descr, sql string }{
		{"create users", `
CREATE TABLE IF NOT EXISTS users (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    name     TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL
)`},
		{"create suppliers", `
CREATE TABLE IF NOT EXISTS suppliers (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    name    TEXT NOT NULL,
    contact TEXT,
    phone   TEXT,
    email   TEXT,
    address TEXT,
    notes   TEXT
)`},
		{"create products", `
CREATE TABLE IF NOT EXISTS products (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL,
    description TEXT,
    category    TEXT NOT NULL,
    barcode     TEXT UNIQUE,
    quantity    INTEGER NOT NULL DEFAULT 0,
    min_stock   INTEGER NOT NULL DEFAULT 0,
    location    TEXT,
    cost_price  NUMERIC NOT NULL,
    sale_price  NUMERIC NOT NULL,
    margin      NUMERIC,
    supplier_id INTEGER REFERENCES suppliers (id),
    image_path  TEXT,
    created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
    active      BOOLEAN NOT NULL DEFAULT 1
)`},
		{"create sales", `
CREATE TABLE IF NOT EXISTS sales (
    id    INTEGER PRIMARY KEY AUTOINCREMENT,
    date  TEXT NOT NULL,
    total NUMERIC NOT NULL
)`},
	}

	for _, s := range stmts {
		if err := db.Exec(s.sql).Error; err != nil {
			return fmt.Errorf("migration %q: %w", s.descr, err)
		}
	}
	return nil
}

// Seed inserts the default rows a fresh install expects: the admin login and
// three sample suppliers. INSERT OR IGNORE keeps it idempotent across restarts.
func Seed(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := db.Exec(
		`INSERT OR IGNORE INTO users (id, name, password) VALUES (1, 'admin', ?)`,
		string(hash),
	).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	if err := db.Exec(`
INSERT OR IGNORE INTO suppliers (id, name, contact, phone, email) VALUES
    (1, 'Fornecedor Geral',  'Contato Geral', '(11) 99999-9999', 'contato@fornecedor.com'),
    (2, 'Distribuidora ABC', 'João Silva',    '(11) 88888-8888', 'joao@abc.com'),
    (3, 'Atacado XYZ',       'Maria Santos',  '(11) 77777-7777', 'maria@xyz.com')`,
	).Error; err != nil {
		return fmt.Errorf("seed suppliers: %w", err)
	}

	return nil
}
