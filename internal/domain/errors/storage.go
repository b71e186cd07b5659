package errors

import "net/http"

// StorageError wraps a driver failure that is not a business condition. The
// driver error stays reachable through Unwrap for logging; clients only see
// the generic message.
type StorageError struct {
	err       error
	operation string
}

func NewStorageError(err error, operation string) AppError {
	return &StorageError{err: err, operation: operation}
}

func (e *StorageError) Error() string {
	if e.err == nil {
		return "storage: " + e.operation
	}

	return "storage: " + e.operation + ": " + e.err.Error()
}

func (e *StorageError) Unwrap() error { return e.err }

func (e *StorageError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *StorageError) ErrorCode() string { return "STORAGE_FAILED" }
func (e *StorageError) Message() string   { return "the request could not be completed" }
func (e *StorageError) Details() string   { return e.operation }
