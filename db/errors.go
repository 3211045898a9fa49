package db

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrUniqueViolation is returned when a unique key constraint is hit.
// Column holds the key or column name as reported by the driver.
type ErrUniqueViolation struct {
	Column string
}

func (e *ErrUniqueViolation) Error() string {
	return "unique constraint violation on " + e.Column
}

// ErrNotNullViolation is returned when a required column is missing.
type ErrNotNullViolation struct {
	Column string
}

func (e *ErrNotNullViolation) Error() string {
	return "not-null constraint violation on " + e.Column
}

var ErrNotFound = errors.New("record not found")

const (
	mysqlDuplicateEntry = 1062
	mysqlColumnNull     = 1048
	mysqlNoDefault      = 1364
)

// Decode translates driver-specific errors into the typed errors above,
// so no call site has to match magic error codes itself.
func Decode(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlDuplicateEntry:
			return &ErrUniqueViolation{Column: lastQuoted(mysqlErr.Message)}
		case mysqlColumnNull, mysqlNoDefault:
			return &ErrNotNullViolation{Column: firstQuoted(mysqlErr.Message)}
		}
		return err
	}
	// SQLite reports constraint failures in the message only
	msg := err.Error()
	if rest, found := cutMarker(msg, "UNIQUE constraint failed: "); found {
		return &ErrUniqueViolation{Column: rest}
	}
	if rest, found := cutMarker(msg, "NOT NULL constraint failed: "); found {
		return &ErrNotNullViolation{Column: rest}
	}
	return err
}

func cutMarker(msg, marker string) (string, bool) {
	i := strings.Index(msg, marker)
	if i < 0 {
		return "", false
	}
	rest := msg[i+len(marker):]
	return strings.TrimSpace(strings.SplitN(rest, ",", 2)[0]), true
}

// "Duplicate entry 'SN-1' for key 'assets.uniq_serial'" -> assets.uniq_serial
func lastQuoted(msg string) string {
	parts := strings.Split(msg, "'")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}

// "Column 'name' cannot be null" -> name
func firstQuoted(msg string) string {
	parts := strings.Split(msg, "'")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
