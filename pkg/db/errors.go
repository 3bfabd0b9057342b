package db

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/VividCortex/mysqlerr"
	"github.com/go-sql-driver/mysql"
	"github.com/justtrackio/crudgen/pkg/exec"
	"github.com/mattn/go-sqlite3"
)

type DuplicateEntryError struct {
	Err error
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("duplicate entry: %s", e.Err.Error())
}

func (e *DuplicateEntryError) Is(err error) bool {
	_, ok := err.(*DuplicateEntryError)

	return ok
}

func (e *DuplicateEntryError) Unwrap() error {
	return e.Err
}

// IsDuplicateEntryError reports a violated primary key or unique constraint of any supported driver.
func IsDuplicateEntryError(err error) bool {
	mysqlErr := &mysql.MySQLError{}
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlerr.ER_DUP_ENTRY
	}

	sqliteErr := sqlite3.Error{}
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return errors.Is(err, &DuplicateEntryError{})
}

// IsConnectionError reports errors caused by a lost or unusable connection rather than by the query.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, mysql.ErrInvalidConn) || exec.IsConnectionError(err) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}

// Classify names the kind of a storage error so it can be logged and counted.
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case IsDuplicateEntryError(err):
		return "duplicate_entry"
	case IsConnectionError(err):
		return "connection"
	default:
		return "unknown"
	}
}
