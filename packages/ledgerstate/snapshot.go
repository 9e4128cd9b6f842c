package ledgerstate

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
)

// region Snapshot /////////////////////////////////////////////////////////////////////////////////////////////////////

// Snapshot represents a serializable snapshot of spendable Outputs together with their assigned OutputIDs. It is the
// canonical way to seed the initial UTXOPool of a Validator (e.g. with genesis Outputs keyed by the
// GenesisTransactionID).
type Snapshot struct {
	Outputs Outputs
}

// NewSnapshot creates a new Snapshot from the given Outputs. All Outputs must have an assigned OutputID.
func NewSnapshot(outputs Outputs) (new *Snapshot) {
	return &Snapshot{
		Outputs: outputs,
	}
}

// SnapshotFromBytes unmarshals a Snapshot from a sequence of bytes.
func SnapshotFromBytes(bytes []byte) (snapshot *Snapshot, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if snapshot, err = SnapshotFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse Snapshot from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// SnapshotFromMarshalUtil unmarshals a Snapshot using a MarshalUtil (for easier unmarshaling).
func SnapshotFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (snapshot *Snapshot, err error) {
	outputCount, err := marshalUtil.ReadUint32()
	if err != nil {
		err = errors.Errorf("failed to parse Output count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	snapshot = &Snapshot{
		Outputs: make(Outputs, outputCount),
	}
	for i := uint32(0); i < outputCount; i++ {
		outputID, outputIDErr := OutputIDFromMarshalUtil(marshalUtil)
		if outputIDErr != nil {
			err = errors.Errorf("failed to parse OutputID from MarshalUtil: %w", outputIDErr)
			return
		}

		output, outputErr := OutputFromMarshalUtil(marshalUtil)
		if outputErr != nil {
			err = errors.Errorf("failed to parse Output from MarshalUtil: %w", outputErr)
			return
		}
		output.SetID(outputID)

		snapshot.Outputs[i] = output
	}

	return
}

// UTXOPool materializes the Snapshot into a new UTXOPool.
func (s *Snapshot) UTXOPool() (pool *UTXOPool) {
	pool = NewUTXOPool()
	for _, output := range s.Outputs {
		pool.AddOutput(output)
	}

	return
}

// Bytes returns a marshaled version of the Snapshot.
func (s *Snapshot) Bytes() []byte {
	marshalUtil := marshalutil.New()
	marshalUtil.WriteUint32(uint32(len(s.Outputs)))
	for _, output := range s.Outputs {
		marshalUtil.WriteBytes(output.ID().Bytes())
		marshalUtil.WriteBytes(output.Bytes())
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the Snapshot.
func (s *Snapshot) String() string {
	return stringify.Struct("Snapshot",
		stringify.StructField("Outputs", s.Outputs),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
