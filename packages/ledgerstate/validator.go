package ledgerstate

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/generics/dataflow"
	"github.com/iotaledger/hive.go/generics/lo"
	"github.com/iotaledger/hive.go/generics/set"
)

// region Validator ////////////////////////////////////////////////////////////////////////////////////////////////////

// Validator checks Transactions against a UTXOPool and commits mutually valid batches of them. It takes a private copy
// of the initial pool on construction and owns that copy exclusively: no other component may read or mutate it while
// an epoch is being processed.
type Validator struct {
	// Events contains the accepted/rejected events that the Validator triggers while processing an epoch.
	Events *Events

	pool *UTXOPool
}

// NewValidator creates a new Validator over an independent copy of the given UTXOPool. The caller's pool is never
// mutated by the Validator.
func NewValidator(pool *UTXOPool) (new *Validator) {
	return &Validator{
		Events: newEvents(),
		pool:   pool.Clone(),
	}
}

// UnspentOutputs returns the UTXOPool that the Validator owns. It reflects the state after the last processed epoch.
// Callers must not mutate it while an epoch is being processed.
func (v *Validator) UnspentOutputs() *UTXOPool {
	return v.pool
}

// IsValid returns true if the given Transaction is valid against the current state of the owned UTXOPool. It is a
// read-only predicate and never mutates the pool.
func (v *Validator) IsValid(tx *Transaction) bool {
	return v.CheckTransaction(tx) == nil
}

// CheckTransaction checks the given Transaction against the current state of the owned UTXOPool and returns the reason
// for its invalidity (nil if the Transaction is valid). The returned error wraps exactly one of the sentinel errors
// declared in errors.go.
func (v *Validator) CheckTransaction(tx *Transaction) (err error) {
	return v.checkTransaction(tx, v.pool)
}

// ProcessEpoch processes one epoch: it iterates the candidates in exactly the order they were submitted, checks each
// one against the current (already mutated so far) state of the owned UTXOPool and commits the valid ones by removing
// their consumed Outputs and adding their created Outputs. The returned Transactions form a mutually valid subset:
// no two of them consume the same Output and every consumed Output is either part of the pool at epoch start or was
// created by an earlier accepted Transaction of the same epoch.
//
// The submission order is the batch conflict resolution policy: of two candidates that consume the same Output only
// the earlier one is accepted - the later one fails the existence check because the Output was already removed.
func (v *Validator) ProcessEpoch(candidates []*Transaction) (accepted []*Transaction) {
	epochStartPool := v.pool.Clone()

	accepted = make([]*Transaction, 0)
	for _, candidate := range candidates {
		if err := v.checkTransaction(candidate, v.pool); err != nil {
			v.Events.TransactionRejected.Trigger(&TransactionRejectedEvent{
				TransactionID: candidate.ID(),
				Reason:        v.rejectionReason(candidate, err, epochStartPool),
			})

			continue
		}

		createdOutputs := v.applyTransaction(candidate)
		accepted = append(accepted, candidate)

		v.Events.TransactionAccepted.Trigger(&TransactionAcceptedEvent{
			TransactionID: candidate.ID(),
			Outputs:       createdOutputs,
		})
	}

	return accepted
}

// checkTransaction runs the validity checks of the given Transaction against the given UTXOPool as a DataFlow of
// chained commands that aborts on the first failed check.
func (v *Validator) checkTransaction(tx *Transaction, pool *UTXOPool) (err error) {
	return dataflow.New[*validationParams](
		v.resolveInputsCommand,
		v.checkUnlockBlocksCommand,
		v.checkInputsUniqueCommand,
		v.checkOutputsNonNegativeCommand,
		v.checkBalancesCommand,
	).Run(&validationParams{
		Transaction: tx,
		UTXOPool:    pool,
	})
}

// resolveInputsCommand is a ChainedCommand that resolves the referenced Outputs of the Transaction from the UTXOPool.
// An Input that does not resolve refers to an Output that either never existed, was spent already or is not committed,
// yet (forward references into the same epoch are never valid).
func (v *Validator) resolveInputsCommand(params *validationParams, next dataflow.Next[*validationParams]) (err error) {
	params.InputIDs = lo.Map(params.Transaction.Essence().Inputs(), (*UTXOInput).ReferencedOutputID)

	params.Inputs = make(Outputs, len(params.InputIDs))
	for i, inputID := range params.InputIDs {
		input, exists := params.UTXOPool.Output(inputID)
		if !exists {
			return errors.Errorf("failed to resolve Input of %s referencing %s: %w", params.Transaction.ID(), inputID, ErrOutputNotFound)
		}

		params.Inputs[i] = input
	}

	return next(params)
}

// checkUnlockBlocksCommand is a ChainedCommand that checks if the UnlockBlocks of the Transaction authorize spending
// the resolved Outputs. The signed payload binds the Input position, so a Signature that was issued for one position
// does not unlock another.
func (v *Validator) checkUnlockBlocksCommand(params *validationParams, next dataflow.Next[*validationParams]) (err error) {
	unlockBlocks := params.Transaction.UnlockBlocks()
	for i, input := range params.Inputs {
		unlockValid, unlockErr := input.UnlockValid(params.Transaction, unlockBlocks[i], uint16(i))
		if unlockErr != nil {
			return errors.Errorf("failed to check UnlockBlock %d of %s (%v): %w", i, params.Transaction.ID(), unlockErr, ErrUnlockInvalid)
		}
		if !unlockValid {
			return errors.Errorf("UnlockBlock %d of %s does not unlock %s: %w", i, params.Transaction.ID(), params.InputIDs[i], ErrUnlockInvalid)
		}
	}

	return next(params)
}

// checkInputsUniqueCommand is a ChainedCommand that checks if the Transaction references each Output at most once.
func (v *Validator) checkInputsUniqueCommand(params *validationParams, next dataflow.Next[*validationParams]) (err error) {
	claimedOutputIDs := set.New[OutputID](false)
	for _, inputID := range params.InputIDs {
		if !claimedOutputIDs.Add(inputID) {
			return errors.Errorf("%s is claimed multiple times by %s: %w", inputID, params.Transaction.ID(), ErrDuplicateInput)
		}
	}

	return next(params)
}

// checkOutputsNonNegativeCommand is a ChainedCommand that checks if all created Outputs carry a non-negative balance.
func (v *Validator) checkOutputsNonNegativeCommand(params *validationParams, next dataflow.Next[*validationParams]) (err error) {
	for i, output := range params.Transaction.Essence().Outputs() {
		if output.Balance() < 0 {
			return errors.Errorf("Output %d of %s has a balance of %d: %w", i, params.Transaction.ID(), output.Balance(), ErrNegativeBalance)
		}
	}

	return next(params)
}

// checkBalancesCommand is a ChainedCommand that checks if the consumed balance covers the created balance. A surplus
// is allowed (it is an implicit fee that is outside the concerns of the Validator). The sums are built with
// overflow-checked additions so that a list of individually valid balances cannot wrap around and fake conservation.
func (v *Validator) checkBalancesCommand(params *validationParams, next dataflow.Next[*validationParams]) (err error) {
	consumedBalance := int64(0)
	for _, input := range params.Inputs {
		if consumedBalance, err = SafeAddInt64(consumedBalance, input.Balance()); err != nil {
			return errors.Errorf("consumed balance of %s overflows (%v): %w", params.Transaction.ID(), err, ErrInsufficientFunds)
		}
	}

	createdBalance := int64(0)
	for _, output := range params.Transaction.Essence().Outputs() {
		if createdBalance, err = SafeAddInt64(createdBalance, output.Balance()); err != nil {
			return errors.Errorf("created balance of %s overflows (%v): %w", params.Transaction.ID(), err, ErrInsufficientFunds)
		}
	}

	if consumedBalance < createdBalance {
		return errors.Errorf("%s consumes %d but creates %d: %w", params.Transaction.ID(), consumedBalance, createdBalance, ErrInsufficientFunds)
	}

	return next(params)
}

// applyTransaction commits an accepted Transaction to the owned UTXOPool: it removes the consumed Outputs and then
// adds the created Outputs, keyed by the Transaction's identifier and their position in the output list.
func (v *Validator) applyTransaction(tx *Transaction) (createdOutputs Outputs) {
	for _, input := range tx.Essence().Inputs() {
		v.pool.RemoveOutput(input.ReferencedOutputID())
	}

	createdOutputs = make(Outputs, 0, len(tx.Essence().Outputs()))
	for index, output := range tx.Essence().Outputs() {
		output.SetID(NewOutputID(tx.ID(), uint16(index)))
		v.pool.AddOutput(output)

		createdOutputs = append(createdOutputs, output)
	}

	return createdOutputs
}

// rejectionReason distinguishes a batch conflict from plain invalidity: a Transaction whose Inputs did not resolve
// against the current pool but that checks out against the pool as it was at epoch start did not become invalid - it
// lost a shared Input to an earlier accepted Transaction of the same epoch.
func (v *Validator) rejectionReason(tx *Transaction, checkErr error, epochStartPool *UTXOPool) (reason error) {
	if errors.Is(checkErr, ErrOutputNotFound) && v.checkTransaction(tx, epochStartPool) == nil {
		return errors.Errorf("%s was valid at epoch start: %w", tx.ID(), ErrBatchConflict)
	}

	return checkErr
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region validationParams /////////////////////////////////////////////////////////////////////////////////////////////

// validationParams acts as a dictionary for the parameters that are passed between the ChainedCommands of the
// validity check DataFlow.
type validationParams struct {
	// Transaction contains the Transaction that is being checked.
	Transaction *Transaction

	// UTXOPool contains the pool state that the Transaction is checked against.
	UTXOPool *UTXOPool

	// InputIDs contains the OutputIDs that the Transaction's Inputs reference.
	InputIDs []OutputID

	// Inputs contains the resolved Outputs that the Transaction consumes.
	Inputs Outputs
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
