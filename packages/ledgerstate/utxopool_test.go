package ledgerstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTXOPool_AddRemoveContains(t *testing.T) {
	wallets := createWallets(1)
	pool := NewUTXOPool()

	output := NewSigLockedOutput(10, wallets[0].address)
	output.SetID(NewOutputID(GenesisTransactionID, 0))

	assert.False(t, pool.Contains(output.ID()))
	assert.Equal(t, 0, pool.Size())

	pool.AddOutput(output)
	assert.True(t, pool.Contains(output.ID()))
	assert.Equal(t, 1, pool.Size())

	retrievedOutput, exists := pool.Output(output.ID())
	require.True(t, exists)
	assert.Equal(t, output, retrievedOutput)

	assert.True(t, pool.RemoveOutput(output.ID()))
	assert.False(t, pool.Contains(output.ID()))
	assert.Equal(t, 0, pool.Size())

	// removing an absent Output is reported
	assert.False(t, pool.RemoveOutput(output.ID()))
}

func TestUTXOPool_AddOutputOverwrites(t *testing.T) {
	wallets := createWallets(2)
	pool := NewUTXOPool()

	outputID := NewOutputID(GenesisTransactionID, 0)

	oldOutput := NewSigLockedOutput(10, wallets[0].address)
	oldOutput.SetID(outputID)
	pool.AddOutput(oldOutput)

	newOutput := NewSigLockedOutput(20, wallets[1].address)
	newOutput.SetID(outputID)
	pool.AddOutput(newOutput)

	assert.Equal(t, 1, pool.Size())
	retrievedOutput, exists := pool.Output(outputID)
	require.True(t, exists)
	assert.Equal(t, int64(20), retrievedOutput.Balance())
}

func TestUTXOPool_GenesisOutputAtIndexZero(t *testing.T) {
	wallets := createWallets(1)
	pool := NewUTXOPool()

	// the zero OutputID is the legitimate key of the first genesis output
	output := NewSigLockedOutput(10, wallets[0].address)
	output.SetID(NewOutputID(GenesisTransactionID, 0))
	pool.AddOutput(output)

	assert.True(t, pool.Contains(NewOutputID(GenesisTransactionID, 0)))
	assert.Equal(t, output.ID(), output.Input().ReferencedOutputID())
	assert.Equal(t, output.ID(), output.Clone().Input().ReferencedOutputID())
}

func TestSigLockedOutput_InputRequiresAssignedID(t *testing.T) {
	wallets := createWallets(1)

	assert.Panics(t, func() {
		NewSigLockedOutput(10, wallets[0].address).Input()
	})
}

func TestUTXOPool_OutputIDsOrder(t *testing.T) {
	wallets := createWallets(1)
	pool := NewUTXOPool()

	generateOutput(pool, wallets[0].address, 2, 1)
	generateOutput(pool, wallets[0].address, 0, 2)
	generateOutput(pool, wallets[0].address, 1, 3)

	// iteration follows insertion order
	assert.Equal(t, []OutputID{
		NewOutputID(GenesisTransactionID, 2),
		NewOutputID(GenesisTransactionID, 0),
		NewOutputID(GenesisTransactionID, 1),
	}, pool.OutputIDs())
}

func TestUTXOPool_Clone(t *testing.T) {
	wallets := createWallets(1)
	pool := NewUTXOPool()
	output1 := generateOutput(pool, wallets[0].address, 0, 10)
	output2 := generateOutput(pool, wallets[0].address, 1, 20)

	clonedPool := pool.Clone()
	assert.Equal(t, pool.Size(), clonedPool.Size())

	// mutating the clone leaves the original untouched
	clonedPool.RemoveOutput(output1.ID())
	assert.True(t, pool.Contains(output1.ID()))
	assert.False(t, clonedPool.Contains(output1.ID()))

	extraOutput := NewSigLockedOutput(5, wallets[0].address)
	extraOutput.SetID(NewOutputID(GenesisTransactionID, 2))
	clonedPool.AddOutput(extraOutput)
	assert.False(t, pool.Contains(extraOutput.ID()))
	assert.True(t, pool.Contains(output2.ID()))
}
