package ledgerstate

import (
	"strconv"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"github.com/mr-tron/base58"
)

// region OutputID /////////////////////////////////////////////////////////////////////////////////////////////////////

// OutputIDLength contains the byte length of a serialized OutputID.
const OutputIDLength = TransactionIDLength + marshalutil.Uint16Size

// OutputID is the unique identifier of an Output. It is derived from the identifier of the Transaction that created
// the Output and the position of the Output in that Transaction's output list.
type OutputID struct {
	TransactionID TransactionID
	Index         uint16
}

// NewOutputID creates a new OutputID from the given details.
func NewOutputID(transactionID TransactionID, index uint16) OutputID {
	return OutputID{
		TransactionID: transactionID,
		Index:         index,
	}
}

// OutputIDFromBytes unmarshals an OutputID from a sequence of bytes.
func OutputIDFromBytes(bytes []byte) (outputID OutputID, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if outputID, err = OutputIDFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse OutputID from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// OutputIDFromBase58 creates an OutputID from a base58 encoded string.
func OutputIDFromBase58(base58String string) (outputID OutputID, err error) {
	decodedBytes, err := base58.Decode(base58String)
	if err != nil {
		err = errors.Errorf("error while decoding base58 encoded OutputID (%v): %w", err, cerrors.ErrBase58DecodeFailed)
		return
	}

	if outputID, _, err = OutputIDFromBytes(decodedBytes); err != nil {
		err = errors.Errorf("failed to parse OutputID from bytes: %w", err)
		return
	}

	return
}

// OutputIDFromMarshalUtil unmarshals an OutputID using a MarshalUtil (for easier unmarshaling).
func OutputIDFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (outputID OutputID, err error) {
	if outputID.TransactionID, err = TransactionIDFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse TransactionID: %w", err)
		return
	}
	if outputID.Index, err = marshalUtil.ReadUint16(); err != nil {
		err = errors.Errorf("failed to parse Index (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// Bytes returns a marshaled version of the OutputID.
func (o OutputID) Bytes() []byte {
	return marshalutil.New(OutputIDLength).
		WriteBytes(o.TransactionID.Bytes()).
		WriteUint16(o.Index).
		Bytes()
}

// Base58 returns a base58 encoded version of the OutputID.
func (o OutputID) Base58() string {
	return base58.Encode(o.Bytes())
}

// String returns a human readable version of the OutputID.
func (o OutputID) String() string {
	return "OutputID(" + o.TransactionID.Base58() + ", " + strconv.Itoa(int(o.Index)) + ")"
}

// EmptyOutputID contains the null-value of the OutputID type. Note that it coincides with the identifier of the first
// genesis Output (GenesisTransactionID at position 0), so it cannot serve as an "unassigned" marker - Outputs track
// their assignment state separately.
var EmptyOutputID OutputID

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Output ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Output is the interface for the different kinds of Outputs that the ledger state supports. Validity checking only
// relies on this interface, which makes the authorization scheme of an Output opaque to the Validator.
type Output interface {
	// ID returns the identifier of the Output (the zero value if no identifier was assigned, yet).
	ID() OutputID

	// SetID assigns the identifier of the Output once the producing Transaction is accepted.
	SetID(outputID OutputID)

	// Balance returns the amount of funds that the Output holds. Negative balances are representable on purpose: they
	// are rejected at validation time rather than at construction time.
	Balance() int64

	// Address returns the Address that the Output is locked to.
	Address() Address

	// UnlockValid determines if the given UnlockBlock authorizes spending this Output as the Input at position
	// inputIndex of the given Transaction.
	UnlockValid(tx *Transaction, unlockBlock UnlockBlock, inputIndex uint16) (bool, error)

	// Input returns a UTXOInput that references the Output.
	Input() *UTXOInput

	// Clone creates a copy of the Output.
	Clone() Output

	// Bytes returns a marshaled version of the Output.
	Bytes() []byte

	// String returns a human readable version of the Output.
	String() string
}

// OutputFromMarshalUtil unmarshals an Output using a MarshalUtil (for easier unmarshaling).
func OutputFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (output Output, err error) {
	if output, err = SigLockedOutputFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse SigLockedOutput from MarshalUtil: %w", err)
		return
	}

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region SigLockedOutput //////////////////////////////////////////////////////////////////////////////////////////////

// SigLockedOutput is an Output that holds a balance and is locked to an Address. It is unlocked by a valid Signature
// of the private key belonging to that Address over the position-bound signing payload of the spending Transaction.
type SigLockedOutput struct {
	id         OutputID
	idAssigned bool
	idMutex    sync.RWMutex
	balance    int64
	address    Address
}

// NewSigLockedOutput creates a new SigLockedOutput from the given details.
func NewSigLockedOutput(balance int64, address Address) *SigLockedOutput {
	return &SigLockedOutput{
		balance: balance,
		address: address,
	}
}

// SigLockedOutputFromMarshalUtil unmarshals a SigLockedOutput using a MarshalUtil (for easier unmarshaling).
func SigLockedOutputFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (output *SigLockedOutput, err error) {
	output = &SigLockedOutput{}
	if output.balance, err = marshalUtil.ReadInt64(); err != nil {
		err = errors.Errorf("failed to parse balance (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if output.address, err = AddressFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse Address from MarshalUtil: %w", err)
		return
	}

	return
}

// ID returns the identifier of the Output.
func (s *SigLockedOutput) ID() OutputID {
	s.idMutex.RLock()
	defer s.idMutex.RUnlock()

	return s.id
}

// SetID assigns the identifier of the Output.
func (s *SigLockedOutput) SetID(outputID OutputID) {
	s.idMutex.Lock()
	defer s.idMutex.Unlock()

	s.id = outputID
	s.idAssigned = true
}

// Balance returns the amount of funds that the Output holds.
func (s *SigLockedOutput) Balance() int64 {
	return s.balance
}

// Address returns the Address that the Output is locked to.
func (s *SigLockedOutput) Address() Address {
	return s.address
}

// UnlockValid determines if the given UnlockBlock authorizes spending this Output as the Input at position inputIndex
// of the given Transaction.
func (s *SigLockedOutput) UnlockValid(tx *Transaction, unlockBlock UnlockBlock, inputIndex uint16) (unlockValid bool, err error) {
	signatureUnlockBlock, correctType := unlockBlock.(*SignatureUnlockBlock)
	if !correctType {
		err = errors.Errorf("UnlockBlock does not match expected SignatureUnlockBlock: %w", cerrors.ErrParseBytesFailed)
		return
	}

	unlockValid = signatureUnlockBlock.AddressSignatureValid(s.address, tx.Essence().SigningPayload(inputIndex))

	return
}

// Input returns a UTXOInput that references the Output.
func (s *SigLockedOutput) Input() *UTXOInput {
	s.idMutex.RLock()
	defer s.idMutex.RUnlock()

	if !s.idAssigned {
		panic("Outputs that haven't been assigned an ID yet cannot be converted to an Input")
	}

	return NewUTXOInput(s.id)
}

// Clone creates a copy of the Output.
func (s *SigLockedOutput) Clone() Output {
	s.idMutex.RLock()
	defer s.idMutex.RUnlock()

	return &SigLockedOutput{
		id:         s.id,
		idAssigned: s.idAssigned,
		balance:    s.balance,
		address:    s.address,
	}
}

// Bytes returns a marshaled version of the Output.
func (s *SigLockedOutput) Bytes() []byte {
	return marshalutil.New(marshalutil.Int64Size + AddressLength).
		WriteInt64(s.balance).
		WriteBytes(s.address.Bytes()).
		Bytes()
}

// String returns a human readable version of the Output.
func (s *SigLockedOutput) String() string {
	return stringify.Struct("SigLockedOutput",
		stringify.StructField("id", s.ID()),
		stringify.StructField("balance", s.balance),
		stringify.StructField("address", s.address),
	)
}

// code contract (make sure the type implements all required methods)
var _ Output = &SigLockedOutput{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Outputs //////////////////////////////////////////////////////////////////////////////////////////////////////

// Outputs is an ordered collection of Outputs. The order is part of the Transaction's identity and determines the
// OutputIDs that the Outputs receive when the Transaction is accepted.
type Outputs []Output

// NewOutputs creates a new collection of Outputs from the given details.
func NewOutputs(outputs ...Output) (new Outputs) {
	return append(make(Outputs, 0, len(outputs)), outputs...)
}

// OutputsFromMarshalUtil unmarshals Outputs using a MarshalUtil (for easier unmarshaling).
func OutputsFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (outputs Outputs, err error) {
	outputCount, err := marshalUtil.ReadUint16()
	if err != nil {
		err = errors.Errorf("failed to parse Output count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	outputs = make(Outputs, outputCount)
	for i := uint16(0); i < outputCount; i++ {
		if outputs[i], err = OutputFromMarshalUtil(marshalUtil); err != nil {
			err = errors.Errorf("failed to parse Output from MarshalUtil: %w", err)
			return
		}
	}

	return
}

// Clone creates a copy of the Outputs.
func (o Outputs) Clone() (clonedOutputs Outputs) {
	clonedOutputs = make(Outputs, len(o))
	for i, output := range o {
		clonedOutputs[i] = output.Clone()
	}

	return
}

// Bytes returns a marshaled version of the Outputs.
func (o Outputs) Bytes() []byte {
	marshalUtil := marshalutil.New()
	marshalUtil.WriteUint16(uint16(len(o)))
	for _, output := range o {
		marshalUtil.WriteBytes(output.Bytes())
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the Outputs.
func (o Outputs) String() string {
	structBuilder := stringify.StructBuilder("Outputs")
	for index, output := range o {
		structBuilder.AddField(stringify.StructField(strconv.Itoa(index), output))
	}

	return structBuilder.String()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
