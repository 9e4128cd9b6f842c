package ledgerstate

import (
	"github.com/iotaledger/hive.go/generics/orderedmap"
	"github.com/iotaledger/hive.go/stringify"
)

// region UTXOPool /////////////////////////////////////////////////////////////////////////////////////////////////////

// UTXOPool is the set of all currently unspent Outputs, keyed by their OutputID. Membership exactly reflects
// spendability: an OutputID is removed the moment an accepted Transaction consumes it and added the moment an accepted
// Transaction produces it. A pool instance is exclusively owned by a single Validator for the duration of an epoch.
//
// The underlying OrderedMap preserves insertion order, which keeps iteration over the pool deterministic.
type UTXOPool struct {
	mapping *orderedmap.OrderedMap[OutputID, Output]
}

// NewUTXOPool creates a new empty UTXOPool.
func NewUTXOPool() *UTXOPool {
	return &UTXOPool{
		mapping: orderedmap.New[OutputID, Output](),
	}
}

// Contains returns true if an Output with the given OutputID is unspent.
func (u *UTXOPool) Contains(outputID OutputID) (exists bool) {
	_, exists = u.mapping.Get(outputID)

	return
}

// Output returns the unspent Output with the given OutputID.
func (u *UTXOPool) Output(outputID OutputID) (output Output, exists bool) {
	return u.mapping.Get(outputID)
}

// AddOutput adds the given Output to the UTXOPool, keyed by its OutputID. The Output must have been assigned its
// identifier. An existing mapping for the same OutputID is overwritten.
func (u *UTXOPool) AddOutput(output Output) {
	u.mapping.Set(output.ID(), output)
}

// RemoveOutput removes the Output with the given OutputID from the UTXOPool. It returns false if no such Output
// existed.
func (u *UTXOPool) RemoveOutput(outputID OutputID) (removed bool) {
	return u.mapping.Delete(outputID)
}

// Size returns the number of unspent Outputs in the UTXOPool.
func (u *UTXOPool) Size() int {
	return u.mapping.Size()
}

// ForEach executes the callback for each unspent Output (it aborts if the callback returns false).
func (u *UTXOPool) ForEach(callback func(outputID OutputID, output Output) bool) {
	u.mapping.ForEach(callback)
}

// OutputIDs returns the identifiers of all unspent Outputs in deterministic (insertion) order.
func (u *UTXOPool) OutputIDs() (outputIDs []OutputID) {
	outputIDs = make([]OutputID, 0, u.Size())
	u.mapping.ForEach(func(outputID OutputID, _ Output) bool {
		outputIDs = append(outputIDs, outputID)
		return true
	})

	return
}

// Clone creates an independent copy of the UTXOPool. Outputs themselves are immutable and therefore shared between
// the copies.
func (u *UTXOPool) Clone() (clonedPool *UTXOPool) {
	clonedPool = NewUTXOPool()
	u.mapping.ForEach(func(outputID OutputID, output Output) bool {
		clonedPool.mapping.Set(outputID, output)
		return true
	})

	return
}

// String returns a human readable version of the UTXOPool.
func (u *UTXOPool) String() string {
	structBuilder := stringify.StructBuilder("UTXOPool")
	u.mapping.ForEach(func(outputID OutputID, output Output) bool {
		structBuilder.AddField(stringify.StructField(outputID.String(), output))
		return true
	})

	return structBuilder.String()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
