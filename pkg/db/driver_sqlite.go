package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const DriverSqlite = "sqlite3"

func init() {
	AddDriverFactory(DriverSqlite, NewSqliteDriverFactory())
}

func NewSqliteDriverFactory() DriverFactory {
	return &sqliteDriverFactory{}
}

type sqliteDriverFactory struct{}

// GetDSN uses the database setting as the path of the database file, ":memory:" works as well.
func (m *sqliteDriverFactory) GetDSN(settings *Settings) string {
	return fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", settings.Uri.Database)
}

// ConfigurePool keeps exactly one connection open. sqlite has a single writer and an in-memory
// database only lives as long as the connection holding it.
func (m *sqliteDriverFactory) ConfigurePool(db *sql.DB, _ *Settings) {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(0)
	db.SetConnMaxLifetime(0)
}
