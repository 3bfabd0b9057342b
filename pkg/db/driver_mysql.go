package db

import (
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

const DriverMysql = "mysql"

func init() {
	AddDriverFactory(DriverMysql, NewMysqlDriverFactory())
}

func NewMysqlDriverFactory() DriverFactory {
	return &mysqlDriverFactory{}
}

type mysqlDriverFactory struct{}

func (m *mysqlDriverFactory) GetDSN(settings *Settings) string {
	cfg := mysql.NewConfig()
	cfg.User = settings.Uri.User
	cfg.Passwd = settings.Uri.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", settings.Uri.Host, settings.Uri.Port)
	cfg.DBName = settings.Uri.Database
	cfg.MultiStatements = true
	cfg.ParseTime = settings.ParseTime
	cfg.Collation = settings.Collation
	cfg.Params = map[string]string{
		"charset": settings.Charset,
	}

	return cfg.FormatDSN()
}

func (m *mysqlDriverFactory) ConfigurePool(db *sql.DB, settings *Settings) {
	configureDefaultPool(db, settings)
}
