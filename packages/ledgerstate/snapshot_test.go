package ledgerstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Marshaling(t *testing.T) {
	wallets := createWallets(2)

	output1 := NewSigLockedOutput(10, wallets[0].address)
	output1.SetID(NewOutputID(GenesisTransactionID, 0))
	output2 := NewSigLockedOutput(5, wallets[1].address)
	output2.SetID(NewOutputID(GenesisTransactionID, 1))

	snapshot := NewSnapshot(NewOutputs(output1, output2))

	restoredSnapshot, consumedBytes, err := SnapshotFromBytes(snapshot.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(snapshot.Bytes()), consumedBytes)
	assert.Equal(t, snapshot.Bytes(), restoredSnapshot.Bytes())

	pool := restoredSnapshot.UTXOPool()
	assert.Equal(t, 2, pool.Size())
	restoredOutput, exists := pool.Output(output1.ID())
	require.True(t, exists)
	assert.Equal(t, int64(10), restoredOutput.Balance())
	assert.Equal(t, wallets[0].address, restoredOutput.Address())
}

func TestSnapshot_SeedsValidator(t *testing.T) {
	wallets := createWallets(2)

	genesisOutput := NewSigLockedOutput(10, wallets[0].address)
	genesisOutput.SetID(NewOutputID(GenesisTransactionID, 0))
	snapshot := NewSnapshot(NewOutputs(genesisOutput))

	validator := NewValidator(snapshot.UTXOPool())

	tx := buildTransaction(wallets[0], Outputs{genesisOutput}, NewOutputs(NewSigLockedOutput(10, wallets[1].address)))
	assert.True(t, validator.IsValid(tx))
}
