package db

import (
	"database/sql"
	"fmt"
)

type DriverFactory interface {
	GetDSN(settings *Settings) string
	// ConfigurePool applies the connection pool limits the driver can work with.
	ConfigurePool(db *sql.DB, settings *Settings)
}

var driverFactories = map[string]DriverFactory{}

func AddDriverFactory(driverName string, factory DriverFactory) {
	driverFactories[driverName] = factory
}

func GetDriverFactory(driverName string) (DriverFactory, error) {
	factory, ok := driverFactories[driverName]
	if !ok {
		return nil, fmt.Errorf("no driver factory defined for %s", driverName)
	}

	return factory, nil
}

func configureDefaultPool(db *sql.DB, settings *Settings) {
	db.SetMaxIdleConns(settings.MaxIdleConnections)
	db.SetMaxOpenConns(settings.MaxOpenConnections)
	db.SetConnMaxIdleTime(settings.ConnectionMaxIdleTime)
	db.SetConnMaxLifetime(settings.ConnectionMaxLifetime)
}
