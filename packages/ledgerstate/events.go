package ledgerstate

import (
	"github.com/iotaledger/hive.go/generics/event"
)

// region Events ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Events is a container that acts as a dictionary for the existing events of a Validator.
type Events struct {
	// TransactionAccepted is an event that gets triggered whenever a Transaction is accepted into an epoch and the
	// UTXOPool was updated accordingly.
	TransactionAccepted *event.Event[*TransactionAcceptedEvent]

	// TransactionRejected is an event that gets triggered whenever a Transaction is dropped from an epoch.
	TransactionRejected *event.Event[*TransactionRejectedEvent]
}

// newEvents returns a new Events object.
func newEvents() (new *Events) {
	return &Events{
		TransactionAccepted: event.New[*TransactionAcceptedEvent](),
		TransactionRejected: event.New[*TransactionRejectedEvent](),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TransactionAcceptedEvent /////////////////////////////////////////////////////////////////////////////////////

// TransactionAcceptedEvent is a container that acts as a dictionary for the TransactionAccepted event related
// parameters.
type TransactionAcceptedEvent struct {
	// TransactionID contains the identifier of the accepted Transaction.
	TransactionID TransactionID

	// Outputs contains the Outputs that the accepted Transaction added to the UTXOPool (with their assigned OutputIDs).
	Outputs Outputs
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TransactionRejectedEvent /////////////////////////////////////////////////////////////////////////////////////

// TransactionRejectedEvent is a container that acts as a dictionary for the TransactionRejected event related
// parameters.
type TransactionRejectedEvent struct {
	// TransactionID contains the identifier of the rejected Transaction.
	TransactionID TransactionID

	// Reason contains the error that caused the Transaction to be rejected. Transactions that were valid on their own
	// but lost a shared Input to an earlier accepted Transaction carry a Reason that wraps ErrBatchConflict.
	Reason error
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
