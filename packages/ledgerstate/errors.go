package ledgerstate

import (
	"errors"
)

var (
	// ErrOutputNotFound is returned if an Input references an Output that is not part of the unspent Outputs (it either
	// never existed, was spent already or is not committed, yet).
	ErrOutputNotFound = errors.New("referenced output is not unspent")

	// ErrUnlockInvalid is returned if an UnlockBlock does not authorize spending the Output that its Input references.
	ErrUnlockInvalid = errors.New("spending of referenced output is not authorized")

	// ErrDuplicateInput is returned if two Inputs of the same Transaction reference the same Output.
	ErrDuplicateInput = errors.New("output is referenced by more than one input")

	// ErrNegativeBalance is returned if a Transaction creates an Output with a negative balance.
	ErrNegativeBalance = errors.New("output balance is negative")

	// ErrInsufficientFunds is returned if a Transaction creates more funds than its Inputs consume.
	ErrInsufficientFunds = errors.New("consumed balance is smaller than created balance")

	// ErrBatchConflict is returned as the rejection reason of a Transaction that was valid on its own but lost its
	// Inputs to an earlier accepted Transaction within the same epoch.
	ErrBatchConflict = errors.New("inputs were consumed by an earlier accepted transaction in the same epoch")
)
