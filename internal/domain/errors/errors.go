package errors

import (
	"fmt"
	"net/http"

	"ecodeli/internal/errors"
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Response is the unified JSON error envelope written by the HTTP layer.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business error code and optional details.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// Predefined error types
var (
	// Lifecycle errors
	ErrInvalidTransition = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_TRANSITION",
		"Changement de statut non autorisé",
		"",
	)

	ErrPaymentNotSettled = NewBaseError(
		http.StatusUnprocessableEntity,
		"PAYMENT_NOT_SETTLED",
		"Le paiement de cette livraison n'est pas encore confirmé",
		"",
	)

	ErrInvalidValidationCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_VALIDATION_CODE",
		"Code de validation incorrect",
		"",
	)

	ErrDeliveryNotFound = NewBaseError(
		http.StatusNotFound,
		"DELIVERY_NOT_FOUND",
		"Livraison introuvable",
		"",
	)

	ErrDeliveryNotAssigned = NewBaseError(
		http.StatusForbidden,
		"DELIVERY_NOT_ASSIGNED",
		"Cette livraison n'est pas assignée à ce livreur",
		"",
	)

	// Cancellation errors
	ErrCancellationNotAllowed = NewBaseError(
		http.StatusUnprocessableEntity,
		"CANCELLATION_NOT_ALLOWED",
		"Annulation impossible",
		"",
	)

	ErrAnnouncementNotFound = NewBaseError(
		http.StatusNotFound,
		"ANNOUNCEMENT_NOT_FOUND",
		"Annonce introuvable",
		"",
	)

	// Payment errors
	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"Paiement introuvable",
		"",
	)

	ErrAlreadyRefunded = NewBaseError(
		http.StatusConflict,
		"ALREADY_REFUNDED",
		"Ce paiement a déjà été remboursé",
		"",
	)

	ErrInsufficientFunds = NewBaseError(
		http.StatusUnprocessableEntity,
		"INSUFFICIENT_FUNDS",
		"Solde insuffisant",
		"",
	)

	ErrWalletNotFound = NewBaseError(
		http.StatusNotFound,
		"WALLET_NOT_FOUND",
		"Portefeuille introuvable",
		"",
	)

	// Authentication errors
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Jeton d'authentification invalide ou expiré",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Données de la requête invalides",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Échec de la transaction",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erreur interne du système",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Accès refusé",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Ressource introuvable",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflit de ressource",
		"",
	)
)

// NewInvalidTransition builds an InvalidTransition error naming both the
// current and the requested status.
func NewInvalidTransition(current, requested string) *BaseError {
	return ErrInvalidTransition.WithDetails(
		fmt.Sprintf("transition from %s to %s is not allowed", current, requested),
	)
}

// NewCancellationNotAllowed builds a CancellationNotAllowed error carrying
// the status-specific reason as the user-facing message.
func NewCancellationNotAllowed(reason string) *BaseError {
	return NewBaseError(
		ErrCancellationNotAllowed.httpCode,
		ErrCancellationNotAllowed.errorCode,
		reason,
		"",
	)
}

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
	return "Échec d'exécution de la base de données"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
