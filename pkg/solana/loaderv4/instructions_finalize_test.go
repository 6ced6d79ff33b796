package loaderv4

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/loader-v4-client/pkg/solana"
)

func TestFinalizeInstructionData(t *testing.T) {
	data := EncodeFinalizeInstructionData(&FinalizeInstructionArgs{})
	assert.Equal(t, []byte{0x05}, data)

	decoded, err := DecodeFinalizeInstructionData(data)
	require.NoError(t, err)
	assert.EqualValues(t, 5, decoded.Discriminator)

	_, err = DecodeFinalizeInstructionData([]byte{})
	assert.True(t, errors.Is(err, ErrShortBuffer))
}

func TestNewFinalizeInstruction(t *testing.T) {
	program := newRandomKey(t)
	authority := newRandomKey(t)

	// The next version can be the program itself
	ix := NewFinalizeInstruction(&FinalizeInstructionAccounts{
		Program:     program,
		Authority:   authority,
		NextVersion: program,
	}, &FinalizeInstructionArgs{})

	assert.Equal(t, PROGRAM_ID, ix.Program)
	assert.Equal(t, []byte{0x05}, ix.Data)
	assert.Equal(t, []solana.AccountMeta{
		solana.NewAccountMeta(program, false),
		solana.NewReadonlyAccountMeta(authority, true),
		solana.NewReadonlyAccountMeta(program, false),
	}, ix.Accounts)
}

func TestFinalizeInstructionFromInstruction_InsufficientAccounts(t *testing.T) {
	ix := solana.NewInstruction(PROGRAM_ID, []byte{0x05},
		solana.NewAccountMeta(newRandomKey(t), false),
		solana.NewReadonlyAccountMeta(newRandomKey(t), true),
	)

	_, _, err := FinalizeInstructionFromInstruction(ix)
	assert.True(t, errors.Is(err, ErrInsufficientAccounts))
}

func TestFinalizeInstruction_RoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		expected := &FinalizeInstructionAccounts{
			Program:     newRandomKey(t),
			Authority:   newRandomKey(t),
			NextVersion: newRandomKey(t),
		}

		data, actual, err := FinalizeInstructionFromInstruction(NewFinalizeInstruction(expected, &FinalizeInstructionArgs{}))
		require.NoError(t, err)
		assert.Equal(t, &FinalizeInstructionData{Discriminator: 5}, data)
		assert.Equal(t, expected, actual)
	}
}
