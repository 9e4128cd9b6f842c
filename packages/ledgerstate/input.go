package ledgerstate

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
)

// region UTXOInput ////////////////////////////////////////////////////////////////////////////////////////////////////

// UTXOInput references an unspent Output that a Transaction wants to consume, by the identifier of the producing
// Transaction and the position of the Output in its output list.
type UTXOInput struct {
	referencedOutputID OutputID
}

// NewUTXOInput creates a new UTXOInput for the given OutputID.
func NewUTXOInput(referencedOutputID OutputID) *UTXOInput {
	return &UTXOInput{
		referencedOutputID: referencedOutputID,
	}
}

// UTXOInputFromMarshalUtil unmarshals a UTXOInput using a MarshalUtil (for easier unmarshaling).
func UTXOInputFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (input *UTXOInput, err error) {
	input = &UTXOInput{}
	if input.referencedOutputID, err = OutputIDFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse OutputID from MarshalUtil: %w", err)
		return
	}

	return
}

// ReferencedOutputID returns the OutputID that this UTXOInput references.
func (u *UTXOInput) ReferencedOutputID() OutputID {
	return u.referencedOutputID
}

// Bytes returns a marshaled version of the UTXOInput.
func (u *UTXOInput) Bytes() []byte {
	return u.referencedOutputID.Bytes()
}

// String returns a human readable version of the UTXOInput.
func (u *UTXOInput) String() string {
	return stringify.Struct("UTXOInput",
		stringify.StructField("referencedOutputID", u.referencedOutputID),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Inputs ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Inputs is an ordered collection of UTXOInputs. The order is part of the Transaction's identity and determines which
// UnlockBlock authorizes which Input.
type Inputs []*UTXOInput

// NewInputs creates a new collection of Inputs from the given details.
func NewInputs(inputs ...*UTXOInput) (new Inputs) {
	return append(make(Inputs, 0, len(inputs)), inputs...)
}

// InputsFromMarshalUtil unmarshals Inputs using a MarshalUtil (for easier unmarshaling).
func InputsFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (inputs Inputs, err error) {
	inputCount, err := marshalUtil.ReadUint16()
	if err != nil {
		err = errors.Errorf("failed to parse Input count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	inputs = make(Inputs, inputCount)
	for i := uint16(0); i < inputCount; i++ {
		if inputs[i], err = UTXOInputFromMarshalUtil(marshalUtil); err != nil {
			err = errors.Errorf("failed to parse UTXOInput from MarshalUtil: %w", err)
			return
		}
	}

	return
}

// Bytes returns a marshaled version of the Inputs.
func (i Inputs) Bytes() []byte {
	marshalUtil := marshalutil.New()
	marshalUtil.WriteUint16(uint16(len(i)))
	for _, input := range i {
		marshalUtil.WriteBytes(input.Bytes())
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the Inputs.
func (i Inputs) String() string {
	structBuilder := stringify.StructBuilder("Inputs")
	for index, input := range i {
		structBuilder.AddField(stringify.StructField(strconv.Itoa(index), input))
	}

	return structBuilder.String()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
