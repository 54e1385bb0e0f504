package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors below wrap one of these so callers can match
// either the kind or the specific case with errors.Is.
var (
	// ErrInvalidOperation marks misuse of the balance API, such as asking a
	// rollup account for a leaf balance.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrValidation marks a malformed account or entry, rejected before any
	// persistence happens.
	ErrValidation = errors.New("validation failed")
)

// Invalid operations.
var (
	ErrBalanceOnRollup = fmt.Errorf("%w: balance is not defined for a rollup account, use rollup balance", ErrInvalidOperation)
	ErrNotRollup       = fmt.Errorf("%w: rollup balance requires a rollup account", ErrInvalidOperation)
	ErrInvalidType     = fmt.Errorf("%w: unknown account type", ErrInvalidOperation)
)

// Validation errors.
var (
	ErrMissingName        = fmt.Errorf("%w: account name is required", ErrValidation)
	ErrBadAccountType     = fmt.Errorf("%w: account type must be asset, liability, equity, revenue or expense", ErrValidation)
	ErrCodeTooSmall       = fmt.Errorf("%w: account code must be at least %d", ErrValidation, MinAccountCode)
	ErrRollupCodeTooSmall = fmt.Errorf("%w: rollup code must be at least %d", ErrValidation, MinAccountCode)
	ErrCodeBelowRollup    = fmt.Errorf("%w: account code must be greater than or equal to rollup code", ErrValidation)
	ErrUnbalancedEntry    = fmt.Errorf("%w: debit total does not equal credit total", ErrValidation)
	ErrIncompleteEntry    = fmt.Errorf("%w: entry requires at least one debit and one credit amount", ErrValidation)
	ErrNonPositiveAmount  = fmt.Errorf("%w: amounts must be positive", ErrValidation)
	ErrInvalidSide        = fmt.Errorf("%w: amount side must be debit or credit", ErrValidation)
	ErrAmountOnRollup     = fmt.Errorf("%w: amounts cannot be posted to a rollup account", ErrValidation)
)

// Lookup errors.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEntryNotFound   = errors.New("entry not found")
)
