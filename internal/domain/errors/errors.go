package errors

import (
	"net/http"

	"market/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same error code, so errors built with WithDetails
// still match their predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Customer and wallet errors
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer not found",
		"",
	)

	ErrInvalidCreditAmount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDIT_AMOUNT",
		"Credit amount must be greater than zero",
		"",
	)

	ErrInsufficientWallet = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_WALLET",
		"Wallet balance does not cover the requested amount",
		"",
	)

	// Basket and checkout errors
	ErrBasketNotFound = NewBaseError(
		http.StatusNotFound,
		"BASKET_NOT_FOUND",
		"Basket not found",
		"",
	)

	ErrBasketItemNotFound = NewBaseError(
		http.StatusNotFound,
		"BASKET_ITEM_NOT_FOUND",
		"Basket item not found",
		"",
	)

	ErrInvalidBasketItem = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BASKET_ITEM",
		"Basket item is invalid",
		"",
	)

	ErrBasketAlreadyPaid = NewBaseError(
		http.StatusConflict,
		"BASKET_ALREADY_PAID",
		"Basket has already been paid",
		"",
	)

	ErrBasketNotPaid = NewBaseError(
		http.StatusConflict,
		"BASKET_NOT_PAID",
		"Basket has not been paid yet",
		"",
	)

	ErrCheckoutSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"CHECKOUT_SESSION_NOT_FOUND",
		"Checkout session not found",
		"",
	)

	ErrCheckoutAlreadyPaid = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_ALREADY_PAID",
		"Checkout session was already paid with a different confirmation",
		"",
	)

	ErrWalletDoesNotCoverTotal = NewBaseError(
		http.StatusBadRequest,
		"WALLET_DOES_NOT_COVER_TOTAL",
		"Wallet amount does not cover the basket total",
		"",
	)

	ErrPaymentProviderFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_PROVIDER_FAILED",
		"Payment provider is unavailable",
		"",
	)

	ErrInvalidWebhookSignature = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_WEBHOOK_SIGNATURE",
		"Webhook signature is invalid",
		"",
	)

	// Catalog and grower stock errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrVariantNotFound = NewBaseError(
		http.StatusNotFound,
		"VARIANT_NOT_FOUND",
		"Product variant not found",
		"",
	)

	ErrPanyenNotFound = NewBaseError(
		http.StatusNotFound,
		"PANYEN_NOT_FOUND",
		"Panyen not found",
		"",
	)

	ErrGrowerProductNotFound = NewBaseError(
		http.StatusNotFound,
		"GROWER_PRODUCT_NOT_FOUND",
		"This product is not in your stock",
		"",
	)

	ErrGrowerProductExists = NewBaseError(
		http.StatusConflict,
		"GROWER_PRODUCT_EXISTS",
		"This product is already in your stock",
		"",
	)

	ErrNegativeStock = NewBaseError(
		http.StatusBadRequest,
		"NEGATIVE_STOCK",
		"Stock must be zero or more",
		"",
	)

	ErrNegativePrice = NewBaseError(
		http.StatusBadRequest,
		"NEGATIVE_PRICE",
		"Price must be zero or more",
		"",
	)

	// Stock validation errors
	ErrStockUpdateNotFound = NewBaseError(
		http.StatusNotFound,
		"STOCK_UPDATE_NOT_FOUND",
		"Stock update request not found",
		"",
	)

	ErrStockUpdateNotPending = NewBaseError(
		http.StatusConflict,
		"STOCK_UPDATE_NOT_PENDING",
		"Stock update request has already been decided",
		"",
	)

	ErrPendingStockUpdateExists = NewBaseError(
		http.StatusConflict,
		"PENDING_STOCK_UPDATE_EXISTS",
		"A stock update request is already pending for this variant",
		"",
	)

	ErrEmptyStockUpdate = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_STOCK_UPDATE",
		"Stock update request does not change anything",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"Unknown role",
		"",
	)

	ErrAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ACCESS_DENIED",
		"Access denied, please log in with an account that has the required role",
		"",
	)

	// Delivery errors
	ErrInvalidQRCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"QR code is not a delivery slip",
		"",
	)

	ErrAlreadyDelivered = NewBaseError(
		http.StatusConflict,
		"ALREADY_DELIVERED",
		"Basket has already been delivered",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
