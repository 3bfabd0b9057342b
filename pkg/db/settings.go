package db

import (
	"fmt"
	"time"

	"github.com/justtrackio/crudgen/pkg/cfg"
)

type Uri struct {
	Host     string `cfg:"host"     default:"localhost"`
	Port     int    `cfg:"port"     default:"3306"`
	User     string `cfg:"user"`
	Password string `cfg:"password"`
	Database string `cfg:"database" validate:"required"`
}

type Settings struct {
	Charset               string            `cfg:"charset"                 default:"utf8mb4"`
	Collation             string            `cfg:"collation"               default:"utf8mb4_general_ci"`
	ConnectionMaxIdleTime time.Duration     `cfg:"connection_max_idletime" default:"120s"`
	ConnectionMaxLifetime time.Duration     `cfg:"connection_max_lifetime" default:"120s"`
	Driver                string            `cfg:"driver"                  default:"sqlite3" validate:"oneof=mysql sqlite3"`
	MaxIdleConnections    int               `cfg:"max_idle_connections"    default:"2"` // 0 or negative number=no idle connections, sql driver default=2
	MaxOpenConnections    int               `cfg:"max_open_connections"    default:"0"` // 0 or negative number=unlimited, sql driver default=0
	Migrations            MigrationSettings `cfg:"migrations"`
	ParseTime             bool              `cfg:"parse_time"              default:"true"`
	Uri                   Uri               `cfg:"uri"`
}

type MigrationSettings struct {
	Enabled  bool   `cfg:"enabled"  default:"false"`
	Path     string `cfg:"path"     default:"migrations"`
	Provider string `cfg:"provider" default:"goose"`
	Table    string `cfg:"table"    default:"goose_db_version"`
}

func SettingsKey(name string) string {
	return fmt.Sprintf("db.%s", name)
}

// ReadSettings reads the settings of the connection with the given name from db.<name>.
func ReadSettings(config cfg.Config, name string) (*Settings, error) {
	settings := &Settings{}
	if err := config.UnmarshalKey(SettingsKey(name), settings); err != nil {
		return nil, fmt.Errorf("can not read settings of db connection %s: %w", name, err)
	}

	return settings, nil
}
