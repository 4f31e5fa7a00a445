package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// Names of constraints and indexes the repositories translate into domain errors.
const (
	pendingStockUpdateIndex = "ux_grower_stock_updates_pending_variant"
	growerProductIndex      = "ux_grower_products_grower_product"
)

func pgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}

	return nil
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	pgErr := pgError(err)

	return pgErr != nil && pgErr.Code == pgUniqueViolation
}

// isUniqueViolationOn reports a unique violation raised by the named index.
// GORM's translated error drops the name, so an untranslated violation is required to tell indexes apart;
// a translated one is attributed to the index the caller expects.
func isUniqueViolationOn(err error, index string) bool {
	if pgErr := pgError(err); pgErr != nil {
		return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == index
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	pgErr := pgError(err)

	return pgErr != nil && pgErr.Code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	pgErr := pgError(err)

	return pgErr != nil && pgErr.Code == pgCheckViolation
}
