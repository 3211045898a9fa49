package db

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func TestDecodeMySQLErrors(t *testing.T) {
	unique := Decode(&mysql.MySQLError{
		Number:  1062,
		Message: "Duplicate entry 'SN-1' for key 'assets.uniq_serial_number'",
	})
	var uniqueErr *ErrUniqueViolation
	if !errors.As(unique, &uniqueErr) {
		t.Fatalf("expected ErrUniqueViolation, got %v", unique)
	}
	if uniqueErr.Column != "assets.uniq_serial_number" {
		t.Errorf("got column %q, want assets.uniq_serial_number", uniqueErr.Column)
	}

	notNull := Decode(&mysql.MySQLError{
		Number:  1048,
		Message: "Column 'name' cannot be null",
	})
	var notNullErr *ErrNotNullViolation
	if !errors.As(notNull, &notNullErr) {
		t.Fatalf("expected ErrNotNullViolation, got %v", notNull)
	}
	if notNullErr.Column != "name" {
		t.Errorf("got column %q, want name", notNullErr.Column)
	}
}

func TestDecodeSQLiteErrors(t *testing.T) {
	unique := Decode(errors.New("UNIQUE constraint failed: assets.serial_number"))
	var uniqueErr *ErrUniqueViolation
	if !errors.As(unique, &uniqueErr) {
		t.Fatalf("expected ErrUniqueViolation, got %v", unique)
	}
	if uniqueErr.Column != "assets.serial_number" {
		t.Errorf("got column %q, want assets.serial_number", uniqueErr.Column)
	}

	notNull := Decode(errors.New("NOT NULL constraint failed: assets.name"))
	var notNullErr *ErrNotNullViolation
	if !errors.As(notNull, &notNullErr) {
		t.Fatalf("expected ErrNotNullViolation, got %v", notNull)
	}
}

func TestDecodePassthrough(t *testing.T) {
	if Decode(nil) != nil {
		t.Error("nil must decode to nil")
	}
	if !errors.Is(Decode(gorm.ErrRecordNotFound), ErrNotFound) {
		t.Error("gorm.ErrRecordNotFound must decode to ErrNotFound")
	}
	plain := errors.New("connection refused")
	if Decode(plain) != plain {
		t.Error("unrelated errors must pass through unchanged")
	}
}
