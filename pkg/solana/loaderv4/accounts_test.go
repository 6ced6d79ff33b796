package loaderv4

import (
	"crypto/ed25519"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/loader-v4-client/pkg/solana"
)

func TestResolveAccounts_DeployWithoutSource(t *testing.T) {
	program := newRandomKey(t)
	authority := newRandomKey(t)

	accounts := ResolveAccounts(InstructionTypeDeploy, program, authority, nil)
	require.Len(t, accounts, 3)

	assert.Equal(t, solana.NewAccountMeta(program, false), accounts[0])
	assert.Equal(t, solana.NewReadonlyAccountMeta(authority, true), accounts[1])
	assert.Equal(t, solana.NewAccountMeta(PROGRAM_ID, false), accounts[2])

	// Trailing optional accounts may be omitted entirely
	assert.Equal(t, accounts, ResolveAccounts(InstructionTypeDeploy, program, authority))
	assert.Equal(t, accounts, ResolveAccounts(InstructionTypeDeploy, program, authority, ed25519.PublicKey{}))
}

func TestResolveAccounts_DeployWithSource(t *testing.T) {
	program := newRandomKey(t)
	authority := newRandomKey(t)
	source := newRandomKey(t)

	accounts := ResolveAccounts(InstructionTypeDeploy, program, authority, source)
	require.Len(t, accounts, 3)

	assert.Equal(t, source, accounts[2].PublicKey)
	assert.True(t, accounts[2].IsWritable)
	assert.False(t, accounts[2].IsSigner)
}

func TestResolveAccounts_Roles(t *testing.T) {
	program := newRandomKey(t)
	authority := newRandomKey(t)
	other := newRandomKey(t)

	for _, tc := range []struct {
		instructionType InstructionType
		expected        []AccountRole
	}{
		{InstructionTypeWrite, []AccountRole{RoleWritable, RoleReadonlySigner}},
		{InstructionTypeTruncate, []AccountRole{RoleWritableSigner, RoleReadonlySigner, RoleWritable}},
		{InstructionTypeDeploy, []AccountRole{RoleWritable, RoleReadonlySigner, RoleWritable}},
		{InstructionTypeRetract, []AccountRole{RoleWritable, RoleReadonlySigner}},
		{InstructionTypeTransferAuthority, []AccountRole{RoleWritable, RoleReadonlySigner, RoleReadonlySigner}},
		{InstructionTypeFinalize, []AccountRole{RoleWritable, RoleReadonlySigner, RoleReadonly}},
	} {
		accounts := ResolveAccounts(tc.instructionType, program, authority, other, other)
		require.Len(t, accounts, len(tc.expected), tc.instructionType.String())
		assert.Equal(t, len(tc.expected), tc.instructionType.MinAccounts())

		for i, role := range tc.expected {
			assert.Equal(t, role.IsWritable, accounts[i].IsWritable, "%s slot %d", tc.instructionType, i)
			assert.Equal(t, role.IsSigner, accounts[i].IsSigner, "%s slot %d", tc.instructionType, i)
		}
	}
}

func TestResolveAccounts_SentinelKeepsRole(t *testing.T) {
	accounts := ResolveAccounts(InstructionTypeTruncate, newRandomKey(t), newRandomKey(t))
	require.Len(t, accounts, 3)
	assert.Equal(t, PROGRAM_ID, accounts[2].PublicKey)
	assert.True(t, accounts[2].IsWritable)
	assert.False(t, accounts[2].IsSigner)
}

func TestResolveAccounts_NoDeduplication(t *testing.T) {
	key := newRandomKey(t)

	accounts := ResolveAccounts(InstructionTypeFinalize, key, key, key)
	require.Len(t, accounts, 3)
	for _, account := range accounts {
		assert.Equal(t, key, account.PublicKey)
	}
}

func TestResolveAccounts_UnknownType(t *testing.T) {
	assert.Nil(t, ResolveAccounts(InstructionType(42), newRandomKey(t)))
	assert.Nil(t, InstructionType(42).AccountSlots())
	assert.Zero(t, InstructionType(42).MinAccounts())
}

func TestAccountSlots(t *testing.T) {
	slots := InstructionTypeDeploy.AccountSlots()
	require.Len(t, slots, 3)
	assert.Equal(t, "program", slots[0].Name)
	assert.Equal(t, "authority", slots[1].Name)
	assert.Equal(t, "source", slots[2].Name)
	assert.True(t, slots[2].IsOptional)

	// Callers get a copy of the schema
	slots[0].Name = "mutated"
	assert.Equal(t, "program", InstructionTypeDeploy.AccountSlots()[0].Name)

	assert.Equal(t, 3, InstructionTypeDeploy.MinAccounts())
	assert.Equal(t, 3, InstructionTypeFinalize.MinAccounts())
	assert.Equal(t, 2, InstructionTypeRetract.MinAccounts())
}

func TestParseAccounts_InvalidProgram(t *testing.T) {
	ix := NewRetractInstruction(&RetractInstructionAccounts{
		Program:   newRandomKey(t),
		Authority: newRandomKey(t),
	}, &RetractInstructionArgs{})
	ix.Program = newRandomKey(t)

	_, err := layouts[InstructionTypeRetract].parseAccounts(ix)
	assert.Equal(t, ErrInvalidProgram, err)
}

func TestParseAccounts_DoesNotAlias(t *testing.T) {
	ix := NewRetractInstruction(&RetractInstructionAccounts{
		Program:   newRandomKey(t),
		Authority: newRandomKey(t),
	}, &RetractInstructionArgs{})
	expected := append(ed25519.PublicKey(nil), ix.Accounts[0].PublicKey...)

	addresses, err := layouts[InstructionTypeRetract].parseAccounts(ix)
	require.NoError(t, err)

	addresses[0][0] ^= 0xff
	assert.Equal(t, expected, ix.Accounts[0].PublicKey)
}

func TestParseAccounts_Insufficient(t *testing.T) {
	ix := solana.NewInstruction(PROGRAM_ID, EncodeDiscriminator(InstructionTypeFinalize),
		solana.NewAccountMeta(newRandomKey(t), false),
		solana.NewReadonlyAccountMeta(newRandomKey(t), true),
	)

	_, err := layouts[InstructionTypeFinalize].parseAccounts(ix)
	assert.True(t, errors.Is(err, ErrInsufficientAccounts))
	assert.Contains(t, err.Error(), "need 3, have 2")
}
