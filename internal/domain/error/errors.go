package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance  = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidAccountID     = 4003
	CodeDuplicatePurchase    = 4004
	CodeConstraintViolation  = 4005
	CodeAmountOverflow       = 4006
	CodeMissingIdentifier    = 4007
	CodeInvalidQuantity      = 4008
	CodeInvalidDisplayName   = 4009
	CodeInvalidEvidence      = 4010
	CodeUnauthorized         = 4011
	CodeForbidden            = 4030
	CodeAccountNotFound      = 4040
	CodeOrderNotFound        = 4041
	CodeItemNotFound         = 4042
	CodeTopUpNotFound        = 4043
	CodeNotificationNotFound = 4044
	CodeInvalidTransition    = 4090
	CodeConcurrentUpdate     = 4091
	CodeDuplicateAccount     = 4092
	CodeDuplicateDisplayName = 4093
	CodeInvalidRequest       = 4000

	// 5xxx - Server errors
	CodeInternalServer       = 5000
	CodePurchaseFailed       = 5001
	CodeCriticalCompensation = 5002
	CodeDatabaseConnection   = 5003
)

// Base error types
var (
	// ErrInsufficientBalance is returned when the charge exceeds the wallet balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when an amount is malformed or out of range
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAmountOverflow is returned when price times quantity does not fit into int64
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidAccountID is returned when the account ID is empty
	ErrInvalidAccountID = errors.New("account ID cannot be empty")

	// ErrInvalidDisplayName is returned when a display name fails validation
	ErrInvalidDisplayName = errors.New("invalid display name")

	// ErrInvalidEmail is returned when an email address fails validation
	ErrInvalidEmail = errors.New("invalid email")

	// ErrMissingIdentifier is returned when a buyer identifier required by the product line is absent
	ErrMissingIdentifier = errors.New("missing buyer identifier")

	// ErrInvalidQuantity is returned for non-positive quantities or multi-unit buys of single-unit items
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidEvidence is returned when a top-up request carries no usable evidence reference
	ErrInvalidEvidence = errors.New("invalid payment evidence")

	// ErrInvalidStatusTransition is returned when a status change is not allowed from the current status
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrConcurrentUpdate is returned when an optimistic balance update keeps losing to other writers
	ErrConcurrentUpdate = errors.New("concurrent update, please retry")

	// ErrDuplicatePurchase is returned when a purchase with the same request key is already in flight
	ErrDuplicatePurchase = errors.New("purchase with this request key already exists")

	// ErrDuplicateOrderID is returned by order stores when the generated order code is taken
	ErrDuplicateOrderID = errors.New("order ID already exists")

	// ErrPurchaseFailed is returned when the order could not be recorded and the debit was credited back
	ErrPurchaseFailed = errors.New("purchase failed, balance restored")

	// ErrCriticalCompensation is returned when the order could not be recorded and the credit back failed too
	ErrCriticalCompensation = errors.New("purchase failed and balance could not be restored")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrOrderNotFound is returned when the requested order doesn't exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrItemNotFound is returned when the catalog has no item with the given ID
	ErrItemNotFound = errors.New("catalog item not found")

	// ErrLineNotFound is returned when the catalog has no product line with the given ID
	ErrLineNotFound = errors.New("product line not found")

	// ErrTopUpNotFound is returned when the requested top-up request doesn't exist
	ErrTopUpNotFound = errors.New("top-up request not found")

	// ErrNotificationNotFound is returned when the notification doesn't exist or belongs to another account
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrIntentNotFound is returned when the purchase intent doesn't exist
	ErrIntentNotFound = errors.New("purchase intent not found")

	// ErrDuplicateAccount is returned when trying to create an account that already exists
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrDuplicateDisplayName is returned when the display name is taken
	ErrDuplicateDisplayName = errors.New("display name already taken")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized is returned when the caller is not authenticated
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller lacks the admin role
	ErrForbidden = errors.New("forbidden")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the store
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrCriticalCompensation):
		return CodeCriticalCompensation
	case errors.Is(err, ErrPurchaseFailed):
		return CodePurchaseFailed
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidAccountID):
		return CodeInvalidAccountID
	case errors.Is(err, ErrInvalidDisplayName), errors.Is(err, ErrInvalidEmail):
		return CodeInvalidDisplayName
	case errors.Is(err, ErrMissingIdentifier):
		return CodeMissingIdentifier
	case errors.Is(err, ErrInvalidQuantity):
		return CodeInvalidQuantity
	case errors.Is(err, ErrInvalidEvidence):
		return CodeInvalidEvidence
	case errors.Is(err, ErrDuplicatePurchase):
		return CodeDuplicatePurchase
	case errors.Is(err, ErrInvalidStatusTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrConcurrentUpdate):
		return CodeConcurrentUpdate
	case errors.Is(err, ErrDuplicateAccount):
		return CodeDuplicateAccount
	case errors.Is(err, ErrDuplicateDisplayName):
		return CodeDuplicateDisplayName
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrOrderNotFound):
		return CodeOrderNotFound
	case errors.Is(err, ErrItemNotFound), errors.Is(err, ErrLineNotFound):
		return CodeItemNotFound
	case errors.Is(err, ErrTopUpNotFound):
		return CodeTopUpNotFound
	case errors.Is(err, ErrNotificationNotFound):
		return CodeNotificationNotFound
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	AccountID string
	Required  int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for account %s: required %d, available %d",
		e.AccountID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"account_id": e.AccountID,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(accountID string, required, available int64) error {
	return &InsufficientBalanceError{
		AccountID: accountID,
		Required:  required,
		Available: available,
	}
}

// MissingIdentifierError names the buyer field a product line requires
type MissingIdentifierError struct {
	LineID string
	Field  string
}

// Error implements the error interface
func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("%s is required for %s", e.Field, e.LineID)
}

// Is checks if the target error is an ErrMissingIdentifier
func (e *MissingIdentifierError) Is(target error) bool {
	return target == ErrMissingIdentifier
}

// NewMissingIdentifierError creates a new missing identifier error
func NewMissingIdentifierError(lineID, field string) error {
	return &MissingIdentifierError{LineID: lineID, Field: field}
}

// PurchaseStage names the step of the purchase sequence that failed
type PurchaseStage string

const (
	StageIntent PurchaseStage = "intent"
	StageDebit  PurchaseStage = "debit"
	StageRecord PurchaseStage = "record"
)

// PurchaseError reports a purchase that failed after validation passed.
// CompensationErr is set when crediting the debit back failed as well,
// which turns the error into ErrCriticalCompensation.
type PurchaseError struct {
	OrderID         string
	AccountID       string
	Amount          int64
	Stage           PurchaseStage
	Err             error
	CompensationErr error
}

// Error implements the error interface
func (e *PurchaseError) Error() string {
	if e.CompensationErr != nil {
		return fmt.Sprintf("purchase %s for account %s failed at %s (%v); compensation of %d failed: %v",
			e.OrderID, e.AccountID, e.Stage, e.Err, e.Amount, e.CompensationErr)
	}
	return fmt.Sprintf("purchase %s for account %s failed at %s: %v", e.OrderID, e.AccountID, e.Stage, e.Err)
}

// Unwrap returns the underlying errors
func (e *PurchaseError) Unwrap() []error {
	if e.CompensationErr != nil {
		return []error{e.Err, e.CompensationErr}
	}
	return []error{e.Err}
}

// Is reports whether the purchase error is the failed or the critical kind
func (e *PurchaseError) Is(target error) bool {
	if e.CompensationErr != nil {
		return target == ErrCriticalCompensation
	}
	return target == ErrPurchaseFailed
}

// Critical reports whether the account was left debited
func (e *PurchaseError) Critical() bool {
	return e.CompensationErr != nil
}

// LogFields returns a map of fields for structured logging
func (e *PurchaseError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "purchase_error",
		"order_id":   e.OrderID,
		"account_id": e.AccountID,
		"amount":     e.Amount,
		"stage":      string(e.Stage),
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e),
	}
	if e.CompensationErr != nil {
		fields["compensation_error"] = e.CompensationErr.Error()
	}
	return fields
}

// NewPurchaseError creates a purchase error without a compensation failure
func NewPurchaseError(orderID, accountID string, amount int64, stage PurchaseStage, err error) *PurchaseError {
	return &PurchaseError{
		OrderID:   orderID,
		AccountID: accountID,
		Amount:    amount,
		Stage:     stage,
		Err:       err,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrLineNotFound) ||
		errors.Is(err, ErrTopUpNotFound) ||
		errors.Is(err, ErrNotificationNotFound) ||
		errors.Is(err, ErrIntentNotFound)
}

// IsValidationError checks if the error is a client-side validation failure that mutated nothing
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrInvalidAccountID) ||
		errors.Is(err, ErrInvalidDisplayName) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrMissingIdentifier) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidEvidence) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsConflictError checks if the error is caused by the current state of a resource
func IsConflictError(err error) bool {
	return errors.Is(err, ErrInvalidStatusTransition) ||
		errors.Is(err, ErrConcurrentUpdate) ||
		errors.Is(err, ErrDuplicatePurchase) ||
		errors.Is(err, ErrDuplicateAccount) ||
		errors.Is(err, ErrDuplicateDisplayName)
}
