package ledgerstate

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
)

// region SignatureType ////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// ED25519SignatureType represents a Signature created with the ED25519 signature scheme.
	ED25519SignatureType SignatureType = iota
)

// SignatureType represents the type of the Signature (which signature scheme was used to create it).
type SignatureType uint8

// String returns a human readable representation of the SignatureType.
func (s SignatureType) String() string {
	return [...]string{
		"ED25519SignatureType",
	}[s]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Signature ////////////////////////////////////////////////////////////////////////////////////////////////////

// Signature is an interface for the different kinds of Signatures that can be used to authorize spends.
type Signature interface {
	// Type returns the SignatureType of this Signature.
	Type() SignatureType

	// SignsAddress returns true if the Signature signs the given Address and data.
	SignsAddress(address Address, signedData []byte) bool

	// Bytes returns a marshaled version of the Signature.
	Bytes() []byte

	// String returns a human readable version of the Signature.
	String() string
}

// SignatureFromMarshalUtil unmarshals a Signature using a MarshalUtil (for easier unmarshaling).
func SignatureFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (signature Signature, err error) {
	signatureType, err := marshalUtil.ReadByte()
	if err != nil {
		err = errors.Errorf("failed to parse SignatureType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	marshalUtil.ReadSeek(-1)

	switch SignatureType(signatureType) {
	case ED25519SignatureType:
		return ED25519SignatureFromMarshalUtil(marshalUtil)
	default:
		err = errors.Errorf("unsupported SignatureType (%X): %w", signatureType, cerrors.ErrParseBytesFailed)
		return
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ED25519Signature /////////////////////////////////////////////////////////////////////////////////////////////

// ED25519Signature represents a Signature created with the ED25519 signature scheme.
type ED25519Signature struct {
	publicKey ed25519.PublicKey
	signature ed25519.Signature
}

// NewED25519Signature creates a new ED25519Signature from the given details.
func NewED25519Signature(publicKey ed25519.PublicKey, signature ed25519.Signature) *ED25519Signature {
	return &ED25519Signature{
		publicKey: publicKey,
		signature: signature,
	}
}

// ED25519SignatureFromMarshalUtil unmarshals an ED25519Signature using a MarshalUtil (for easier unmarshaling).
func ED25519SignatureFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (signature *ED25519Signature, err error) {
	signatureType, err := marshalUtil.ReadByte()
	if err != nil {
		err = errors.Errorf("failed to parse SignatureType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if SignatureType(signatureType) != ED25519SignatureType {
		err = errors.Errorf("invalid SignatureType (%X): %w", signatureType, cerrors.ErrParseBytesFailed)
		return
	}

	signature = &ED25519Signature{}
	if signature.publicKey, err = ed25519.ParsePublicKey(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse public key (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if signature.signature, err = ed25519.ParseSignature(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse signature (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// Type returns the SignatureType of this Signature.
func (e *ED25519Signature) Type() SignatureType {
	return ED25519SignatureType
}

// SignsAddress returns true if the Signature signs the given Address and data. The Address has to be the hashed
// version of the public key that created the Signature.
func (e *ED25519Signature) SignsAddress(address Address, signedData []byte) bool {
	if NewAddress(e.publicKey) != address {
		return false
	}

	return e.publicKey.VerifySignature(signedData, e.signature)
}

// Bytes returns a marshaled version of the Signature.
func (e *ED25519Signature) Bytes() []byte {
	return marshalutil.New(1 + ed25519.PublicKeySize + ed25519.SignatureSize).
		WriteByte(byte(ED25519SignatureType)).
		WriteBytes(e.publicKey.Bytes()).
		WriteBytes(e.signature.Bytes()).
		Bytes()
}

// String returns a human readable version of the Signature.
func (e *ED25519Signature) String() string {
	return stringify.Struct("ED25519Signature",
		stringify.StructField("publicKey", e.publicKey),
		stringify.StructField("signature", e.signature),
	)
}

// code contract (make sure the type implements all required methods)
var _ Signature = &ED25519Signature{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
