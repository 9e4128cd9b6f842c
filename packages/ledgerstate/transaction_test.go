package ledgerstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_IDDeterminism(t *testing.T) {
	wallets := createWallets(2)
	pool := NewUTXOPool()
	genesisOutput := generateOutput(pool, wallets[0].address, 0, 10)

	tx1 := buildTransaction(wallets[0], Outputs{genesisOutput}, NewOutputs(NewSigLockedOutput(10, wallets[1].address)))
	tx2 := NewTransaction(tx1.Essence(), tx1.UnlockBlocks())
	assert.Equal(t, tx1.ID(), tx2.ID())

	// a different output list yields a different identity
	tx3 := buildTransaction(wallets[0], Outputs{genesisOutput}, NewOutputs(NewSigLockedOutput(9, wallets[1].address)))
	assert.NotEqual(t, tx1.ID(), tx3.ID())
}

func TestTransaction_Marshaling(t *testing.T) {
	wallets := createWallets(2)
	pool := NewUTXOPool()
	genesisOutput1 := generateOutput(pool, wallets[0].address, 0, 10)
	genesisOutput2 := generateOutput(pool, wallets[0].address, 1, 5)

	tx := buildTransaction(wallets[0], Outputs{genesisOutput1, genesisOutput2}, NewOutputs(
		NewSigLockedOutput(12, wallets[1].address),
		NewSigLockedOutput(3, wallets[0].address),
	))

	restoredTx, consumedBytes, err := TransactionFromBytes(tx.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(tx.Bytes()), consumedBytes)
	assert.Equal(t, tx.Bytes(), restoredTx.Bytes())
	assert.Equal(t, tx.ID(), restoredTx.ID())

	// a restored Transaction still passes validation
	validator := NewValidator(pool)
	require.NoError(t, validator.CheckTransaction(restoredTx))
}

func TestTransaction_UnlockBlockCountMismatchPanics(t *testing.T) {
	wallets := createWallets(1)
	pool := NewUTXOPool()
	genesisOutput := generateOutput(pool, wallets[0].address, 0, 10)

	txEssence := NewTransactionEssence(0, NewInputs(genesisOutput.Input()), NewOutputs(NewSigLockedOutput(10, wallets[0].address)))

	assert.Panics(t, func() {
		NewTransaction(txEssence, UnlockBlocks{})
	})
}

func TestTransactionEssence_SigningPayload(t *testing.T) {
	wallets := createWallets(1)
	pool := NewUTXOPool()
	genesisOutput1 := generateOutput(pool, wallets[0].address, 0, 10)
	genesisOutput2 := generateOutput(pool, wallets[0].address, 1, 5)

	txEssence := NewTransactionEssence(0, NewInputs(genesisOutput1.Input(), genesisOutput2.Input()), NewOutputs(NewSigLockedOutput(15, wallets[0].address)))

	// the payload embeds the input position, so every position signs different data
	assert.NotEqual(t, txEssence.SigningPayload(0), txEssence.SigningPayload(1))
	assert.Equal(t, txEssence.SigningPayload(0), txEssence.SigningPayload(0))
}
