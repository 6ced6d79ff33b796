package loaderv4

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/loader-v4-client/pkg/solana"
)

func TestWriteInstructionData(t *testing.T) {
	data := EncodeWriteInstructionData(&WriteInstructionArgs{
		Offset: 16,
		Bytes:  []byte{0x7f, 0x45, 0x4c, 0x46},
	})
	assert.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x00, // discriminator
		0x10, 0x00, 0x00, 0x00, // offset
		0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // len(bytes)
		0x7f, 0x45, 0x4c, 0x46,
	}, data)

	decoded, err := DecodeWriteInstructionData(data)
	require.NoError(t, err)
	assert.EqualValues(t, 0, decoded.Discriminator)
	assert.EqualValues(t, 16, decoded.Offset)
	assert.Equal(t, []byte{0x7f, 0x45, 0x4c, 0x46}, decoded.Bytes)

	for i := 0; i < len(data); i++ {
		_, err = DecodeWriteInstructionData(data[:i])
		assert.True(t, errors.Is(err, ErrShortBuffer), "length %d", i)
	}
}

func TestWriteInstructionData_Empty(t *testing.T) {
	data := EncodeWriteInstructionData(&WriteInstructionArgs{Offset: 1})
	assert.Len(t, data, 4+WriteInstructionArgsSize)

	decoded, err := DecodeWriteInstructionData(data)
	require.NoError(t, err)
	assert.EqualValues(t, 1, decoded.Offset)
	assert.Empty(t, decoded.Bytes)
}

func TestWriteInstructionData_OversizedLength(t *testing.T) {
	data := EncodeWriteInstructionData(&WriteInstructionArgs{Bytes: []byte{1, 2, 3}})
	data[8] = 0xff
	data[15] = 0xff

	_, err := DecodeWriteInstructionData(data)
	assert.True(t, errors.Is(err, ErrShortBuffer))
}

func TestNewWriteInstruction(t *testing.T) {
	program := newRandomKey(t)
	authority := newRandomKey(t)

	ix := NewWriteInstruction(&WriteInstructionAccounts{
		Program:   program,
		Authority: authority,
	}, &WriteInstructionArgs{Bytes: []byte("elf")})

	assert.Equal(t, PROGRAM_ID, ix.Program)
	assert.Equal(t, []solana.AccountMeta{
		solana.NewAccountMeta(program, false),
		solana.NewReadonlyAccountMeta(authority, true),
	}, ix.Accounts)
}

func TestWriteInstruction_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	for i := 0; i < 100; i++ {
		args := &WriteInstructionArgs{
			Offset: r.Uint32(),
			Bytes:  make([]byte, 1+r.Intn(256)),
		}
		r.Read(args.Bytes)

		expected := &WriteInstructionAccounts{
			Program:   newRandomKey(t),
			Authority: newRandomKey(t),
		}

		data, actual, err := WriteInstructionFromInstruction(NewWriteInstruction(expected, args))
		require.NoError(t, err)
		assert.Equal(t, &WriteInstructionData{Offset: args.Offset, Bytes: args.Bytes}, data)
		assert.Equal(t, expected, actual)
	}
}
