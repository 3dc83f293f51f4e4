package types

import "errors"

// Sentinel errors for the bridge. Handlers wrap these with fmt.Errorf and a
// %w verb so callers can classify failures with errors.Is while still
// receiving a full diagnostic message.
var (
	// ErrValidation indicates a request carried malformed or missing fields.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidFunds indicates funds were attached where none are accepted,
	// a required balance entry is missing entirely, or a conversion would
	// truncate to zero.
	ErrInvalidFunds = errors.New("invalid funds")
	// ErrInvalidAccount indicates the account holds an insufficient balance
	// or lacks a required attribute.
	ErrInvalidAccount = errors.New("invalid account")
	// ErrNotAuthorized indicates a non-admin invoked an admin-only operation.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrNotFound indicates a lookup missed: a marker or administrative
	// address could not be resolved, or no contract state has been stored.
	ErrNotFound = errors.New("not found")
	// ErrConversion indicates the precision-delta arithmetic cannot be
	// represented.
	ErrConversion = errors.New("conversion failure")
	// ErrMigration indicates a contract-type mismatch or a non-increasing
	// version on migration.
	ErrMigration = errors.New("migration error")
	// ErrStorage indicates a persistence read or write failure.
	ErrStorage = errors.New("storage error")
)
