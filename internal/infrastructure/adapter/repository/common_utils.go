package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	errs "github.com/atgamehub/storefront/internal/domain/error"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	NotFoundError     ErrorType = "not_found"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsConstraintError(err):
		return ConstraintError
	case c.IsConnectionError(err):
		return ConnectionError
	}
	return ""
}

// Translate maps a gorm error to a domain error. notFound and duplicate are
// the sentinels the caller wants for missing rows and unique violations.
func (c *ErrorClassifier) Translate(err error, notFound, duplicate error, subject string) error {
	switch c.Classify(err) {
	case "":
		if err == nil {
			return nil
		}
	case NotFoundError:
		if notFound != nil {
			return fmt.Errorf("%w: %s", notFound, subject)
		}
	case DuplicateKeyError:
		if duplicate != nil {
			return fmt.Errorf("%w: %s", duplicate, subject)
		}
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	case ConstraintError:
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := postgresError(err); ok {
		return pgErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "UNIQUE constraint")
}

// IsLockError checks if the error is due to locking or serialization conflicts
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := postgresError(err); ok {
		return pgErr.Code == "40001" || pgErr.Code == "40P01" || pgErr.Code == "55P03"
	}
	msg := err.Error()
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "lock wait timeout") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "SQLSTATE 40001")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection") ||
		strings.Contains(msg, "dial") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "EOF")
}

// IsConstraintError checks if the error is a non-unique constraint violation
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := postgresError(err); ok {
		// Class 23 is integrity constraint violation
		return strings.HasPrefix(pgErr.Code, "23") && pgErr.Code != "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "violates") ||
		strings.Contains(msg, "foreign key")
}

// ViolatedConstraint returns the name of the unique or check constraint a
// postgres error reports, or "" when the error carries none
func (c *ErrorClassifier) ViolatedConstraint(err error) string {
	if pgErr, ok := postgresError(err); ok {
		return pgErr.ConstraintName
	}
	return ""
}

func postgresError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}
