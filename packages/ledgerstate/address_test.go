package ledgerstate

import (
	"testing"

	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress_Base58Roundtrip(t *testing.T) {
	kp := ed25519.GenerateKeyPair()
	address := NewAddress(kp.PublicKey)

	restoredAddress, err := AddressFromBase58(address.Base58())
	require.NoError(t, err)
	assert.Equal(t, address, restoredAddress)

	// the same public key always hashes to the same Address
	assert.Equal(t, address, NewAddress(kp.PublicKey))
}

func TestED25519Signature_SignsAddress(t *testing.T) {
	kp := ed25519.GenerateKeyPair()
	address := NewAddress(kp.PublicKey)
	data := []byte("some signed data")

	signature := NewED25519Signature(kp.PublicKey, kp.PrivateKey.Sign(data))

	assert.True(t, signature.SignsAddress(address, data))
	assert.False(t, signature.SignsAddress(address, []byte("some other data")))

	otherAddress := NewAddress(ed25519.GenerateKeyPair().PublicKey)
	assert.False(t, signature.SignsAddress(otherAddress, data))
}

func TestSignatureUnlockBlock_Marshaling(t *testing.T) {
	kp := ed25519.GenerateKeyPair()
	data := []byte("some signed data")

	unlockBlock := NewSignatureUnlockBlock(NewED25519Signature(kp.PublicKey, kp.PrivateKey.Sign(data)))

	restoredUnlockBlocks, err := UnlockBlocksFromMarshalUtil(marshalutil.New(UnlockBlocks{unlockBlock}.Bytes()))
	require.NoError(t, err)
	require.Len(t, restoredUnlockBlocks, 1)
	assert.Equal(t, unlockBlock.Bytes(), restoredUnlockBlocks[0].Bytes())

	restoredUnlockBlock, typeOK := restoredUnlockBlocks[0].(*SignatureUnlockBlock)
	require.True(t, typeOK)
	assert.True(t, restoredUnlockBlock.AddressSignatureValid(NewAddress(kp.PublicKey), data))
}
