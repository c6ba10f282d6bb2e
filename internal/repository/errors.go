// Package repository holds storage contracts shared by the ledger store implementations.
package repository

import "errors"

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a uniqueness invariant rejects a write.
	ErrConflict = errors.New("conflict")
	// ErrStaleState is returned when a conditional transition matched no row
	// because the request already left the expected status.
	ErrStaleState = errors.New("stale state")
	// ErrAlreadyTransferred is returned when a credit already has a transferred buy request.
	ErrAlreadyTransferred = errors.New("credit already transferred")
	// ErrAlreadyRetired is returned when a credit was already retired.
	ErrAlreadyRetired = errors.New("credit already retired")
	// ErrOperationInProgress is returned when a request has an unresolved chain operation.
	ErrOperationInProgress = errors.New("chain operation in progress")
)
