package solana

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountMeta(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	writable := NewAccountMeta(pub, true)
	assert.Equal(t, pub, writable.PublicKey)
	assert.True(t, writable.IsSigner)
	assert.True(t, writable.IsWritable)

	readonly := NewReadonlyAccountMeta(pub, false)
	assert.Equal(t, pub, readonly.PublicKey)
	assert.False(t, readonly.IsSigner)
	assert.False(t, readonly.IsWritable)
}

func TestNewInstruction(t *testing.T) {
	program, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	account, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	i := NewInstruction(program, []byte{1, 2, 3}, NewAccountMeta(account, false))
	assert.Equal(t, program, i.Program)
	assert.Equal(t, []byte{1, 2, 3}, i.Data)
	require.Len(t, i.Accounts, 1)
	assert.Equal(t, account, i.Accounts[0].PublicKey)

	i = NewInstruction(program, nil)
	assert.Empty(t, i.Accounts)
	assert.Empty(t, i.Data)
}
