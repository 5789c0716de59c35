// Package errors classifies registry failures into categories that map onto
// HTTP statuses, JSON-RPC codes and metric labels.
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError labels successful operations in metrics.
	CategoryNoError Category = iota
	// CategoryDataError covers malformed input: bad JSON, empty fields, unknown events.
	CategoryDataError
	// CategoryUnauthorized means no valid session was presented.
	CategoryUnauthorized
	// CategoryForbidden means the caller is known but may not perform the call,
	// e.g. an unregistered wallet voting or a non-admin adding candidates.
	CategoryForbidden
	// CategoryResourceNotFound covers unknown citizens, candidates and indexes.
	CategoryResourceNotFound
	// CategoryDataConflict covers duplicate registrations and double votes.
	CategoryDataConflict
	// CategoryLocked means the election phase no longer accepts the change.
	CategoryLocked
	// CategoryDependencyFailure means the database or another backend failed.
	CategoryDependencyFailure
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
)

type categoryInfo struct {
	label  string
	status int
}

var categories = map[Category]categoryInfo{
	CategoryNoError:           {"ok", http.StatusOK},
	CategoryDataError:         {"data_error", http.StatusBadRequest},
	CategoryUnauthorized:      {"unauthorized", http.StatusUnauthorized},
	CategoryForbidden:         {"forbidden", http.StatusForbidden},
	CategoryResourceNotFound:  {"not_found", http.StatusNotFound},
	CategoryDataConflict:      {"conflict", http.StatusConflict},
	CategoryLocked:            {"locked", http.StatusLocked},
	CategoryDependencyFailure: {"dependency_failure", http.StatusBadGateway},
	CategoryGeneralError:      {"general_error", http.StatusInternalServerError},
}

func (c Category) info() categoryInfo {
	if info, ok := categories[c]; ok {
		return info
	}
	return categories[CategoryGeneralError]
}

// String returns the snake_case label used in logs and metrics.
func (c Category) String() string {
	return c.info().label
}

// ServiceError carries a category, a client-facing message and the
// underlying cause, which is only ever logged.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is matches targets whose text equals the client-facing message.
func (err ServiceError) Is(target error) bool {
	if target == nil {
		return false
	}
	return err.Message == target.Error()
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	return err.Category.info().status
}

func newError(cat Category, err error, message, fallback string) error {
	if err == nil {
		err = errors.New(fallback)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// CategoryOf returns the category of err, CategoryNoError for nil and
// CategoryGeneralError for errors that are not service errors.
func CategoryOf(err error) Category {
	if err == nil {
		return CategoryNoError
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Category
	}
	return CategoryGeneralError
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	return err != nil && CategoryOf(err) == cat
}

// IsInternalError reports whether err is a server-side failure whose cause
// should be logged rather than returned.
func IsInternalError(err error) bool {
	return CategoryOf(err) >= CategoryDependencyFailure
}

// GeneralError hides err behind "Internal Server Error".
func GeneralError(err error) error {
	return newError(CategoryGeneralError, err, "Internal Server Error", "internal server error")
}

// DependencyFailureError hides err behind "Dependency Failure".
func DependencyFailureError(err error) error {
	return newError(CategoryDependencyFailure, err, "Dependency Failure", "dependency failure")
}

// ResourceNotFoundError returns an error with category ResourceNotFound
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, message, "resource not found: "+message)
}

// BadRequestError returns an error with category DataError
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, message, "bad request: "+message)
}

// ForbiddenError returns an error with category Forbidden
func ForbiddenError(err error, message string) error {
	return newError(CategoryForbidden, err, message, "forbidden: "+message)
}

// UnAuthorizedError returns an error with category Unauthorized
func UnAuthorizedError(err error, message string) error {
	return newError(CategoryUnauthorized, err, message, "unauthorized: "+message)
}

// ConflictError returns an error with category DataConflict
func ConflictError(err error, message string) error {
	return newError(CategoryDataConflict, err, message, "conflict: "+message)
}

// LockedError is returned when the resource exists but its phase is over.
func LockedError(err error, message string) error {
	return newError(CategoryLocked, err, message, "locked: "+message)
}
