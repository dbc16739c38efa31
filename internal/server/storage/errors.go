package storage

import "errors"

// Common storage errors
var (
	// ErrStorageClosed indicates that the backend was already closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrCorruptSnapshot indicates that a persisted snapshot could not be decoded
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)
