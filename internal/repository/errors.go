package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	sqlitelib "modernc.org/sqlite"
)

// Store error kinds. Modules match on these instead of inspecting driver
// error codes or messages; the translation happens in exactly one place.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// SQLite extended result codes for unique/primary key violations.
const (
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// translateError maps driver-level failures onto the store error kinds.
// gorm's TranslateError covers the postgres driver; pgconn and modernc
// sqlite codes are checked directly because the translated error is lost
// once wrapped, and the sqlite driver used here (modernc, CGO-free) is not
// covered by gorm's own translator.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateKey
	}

	var sqliteErr *sqlitelib.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqliteConstraintPrimaryKey, sqliteConstraintUnique:
			return ErrDuplicateKey
		}
	}

	return err
}
