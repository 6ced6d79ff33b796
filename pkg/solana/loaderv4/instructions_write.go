package loaderv4

import (
	"crypto/ed25519"

	"github.com/code-payments/loader-v4-client/pkg/solana"
	"github.com/code-payments/loader-v4-client/pkg/solana/binary"
)

const (
	WriteInstructionArgsSize = (4 + // offset
		8) // len(bytes)
)

type WriteInstructionArgs struct {
	Offset uint32
	Bytes  []byte
}

type WriteInstructionData struct {
	Discriminator uint32
	Offset        uint32
	Bytes         []byte
}

type WriteInstructionAccounts struct {
	Program   ed25519.PublicKey
	Authority ed25519.PublicKey
}

func EncodeWriteInstructionData(args *WriteInstructionArgs) []byte {
	data, offset := layouts[InstructionTypeWrite].newData(WriteInstructionArgsSize + len(args.Bytes))
	binary.PutUint32(data, args.Offset, &offset)
	binary.PutUint64(data, uint64(len(args.Bytes)), &offset)
	binary.PutBytes(data, args.Bytes, &offset)
	return data
}

func DecodeWriteInstructionData(data []byte) (*WriteInstructionData, error) {
	var offset int
	var length uint64
	var decoded WriteInstructionData

	if err := layouts[InstructionTypeWrite].discriminator.get(data, &decoded.Discriminator, &offset); err != nil {
		return nil, err
	}
	if err := binary.GetUint32(data, &decoded.Offset, &offset); err != nil {
		return nil, err
	}
	if err := binary.GetUint64(data, &length, &offset); err != nil {
		return nil, err
	}
	if err := binary.GetBytes(data, &decoded.Bytes, length, &offset); err != nil {
		return nil, err
	}

	return &decoded, nil
}

// NewWriteInstruction writes ELF bytes into an undeployed program at the
// given offset.
func NewWriteInstruction(
	accounts *WriteInstructionAccounts,
	args *WriteInstructionArgs,
	remaining ...solana.AccountMeta,
) solana.Instruction {
	return layouts[InstructionTypeWrite].build(
		EncodeWriteInstructionData(args),
		[]ed25519.PublicKey{
			accounts.Program,
			accounts.Authority,
		},
		remaining,
	)
}

func WriteInstructionFromInstruction(ix solana.Instruction) (*WriteInstructionData, *WriteInstructionAccounts, error) {
	addresses, err := layouts[InstructionTypeWrite].parseAccounts(ix)
	if err != nil {
		return nil, nil, err
	}

	data, err := DecodeWriteInstructionData(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	return data, &WriteInstructionAccounts{
		Program:   addresses[0],
		Authority: addresses[1],
	}, nil
}
