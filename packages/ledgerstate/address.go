package ledgerstate

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// region Address //////////////////////////////////////////////////////////////////////////////////////////////////////

// AddressLength contains the byte length of a serialized Address.
const AddressLength = 32

// Address is the hashed version of the public key that is allowed to spend an Output. Outputs are locked to an Address
// and are unlocked by a signature of the corresponding private key.
type Address [AddressLength]byte

// NewAddress creates an Address from the given ED25519 public key.
func NewAddress(publicKey ed25519.PublicKey) (address Address) {
	return blake2b.Sum256(publicKey.Bytes())
}

// AddressFromBytes unmarshals an Address from a sequence of bytes.
func AddressFromBytes(bytes []byte) (address Address, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if address, err = AddressFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse Address from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// AddressFromBase58 creates an Address from a base58 encoded string.
func AddressFromBase58(base58String string) (address Address, err error) {
	decodedBytes, err := base58.Decode(base58String)
	if err != nil {
		err = errors.Errorf("error while decoding base58 encoded Address (%v): %w", err, cerrors.ErrBase58DecodeFailed)
		return
	}

	if address, _, err = AddressFromBytes(decodedBytes); err != nil {
		err = errors.Errorf("failed to parse Address from bytes: %w", err)
		return
	}

	return
}

// AddressFromMarshalUtil unmarshals an Address using a MarshalUtil (for easier unmarshaling).
func AddressFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (address Address, err error) {
	addressBytes, err := marshalUtil.ReadBytes(AddressLength)
	if err != nil {
		err = errors.Errorf("failed to parse Address (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	copy(address[:], addressBytes)

	return
}

// Bytes returns a marshaled version of the Address.
func (a Address) Bytes() []byte {
	return a[:]
}

// Base58 returns a base58 encoded version of the Address.
func (a Address) Base58() string {
	return base58.Encode(a[:])
}

// String returns a human readable version of the Address.
func (a Address) String() string {
	return "Address(" + a.Base58() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
