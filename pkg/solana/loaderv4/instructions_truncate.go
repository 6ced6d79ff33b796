package loaderv4

import (
	"crypto/ed25519"

	"github.com/code-payments/loader-v4-client/pkg/solana"
	"github.com/code-payments/loader-v4-client/pkg/solana/binary"
)

const (
	TruncateInstructionArgsSize = 4 // new_size
)

type TruncateInstructionArgs struct {
	NewSize uint32
}

type TruncateInstructionData struct {
	Discriminator uint8
	NewSize       uint32
}

type TruncateInstructionAccounts struct {
	Program   ed25519.PublicKey
	Authority ed25519.PublicKey

	// Optional recipient of reclaimed lamports
	Destination ed25519.PublicKey
}

func EncodeTruncateInstructionData(args *TruncateInstructionArgs) []byte {
	data, offset := layouts[InstructionTypeTruncate].newData(TruncateInstructionArgsSize)
	binary.PutUint32(data, args.NewSize, &offset)
	return data
}

func DecodeTruncateInstructionData(data []byte) (*TruncateInstructionData, error) {
	var offset int
	var discriminator uint32
	var decoded TruncateInstructionData

	if err := layouts[InstructionTypeTruncate].discriminator.get(data, &discriminator, &offset); err != nil {
		return nil, err
	}
	decoded.Discriminator = uint8(discriminator)

	if err := binary.GetUint32(data, &decoded.NewSize, &offset); err != nil {
		return nil, err
	}

	return &decoded, nil
}

// NewTruncateInstruction changes the size of an undeployed program. The
// program must sign when it is first initialized.
func NewTruncateInstruction(
	accounts *TruncateInstructionAccounts,
	args *TruncateInstructionArgs,
	remaining ...solana.AccountMeta,
) solana.Instruction {
	return layouts[InstructionTypeTruncate].build(
		EncodeTruncateInstructionData(args),
		[]ed25519.PublicKey{
			accounts.Program,
			accounts.Authority,
			accounts.Destination,
		},
		remaining,
	)
}

func TruncateInstructionFromInstruction(ix solana.Instruction) (*TruncateInstructionData, *TruncateInstructionAccounts, error) {
	addresses, err := layouts[InstructionTypeTruncate].parseAccounts(ix)
	if err != nil {
		return nil, nil, err
	}

	data, err := DecodeTruncateInstructionData(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	return data, &TruncateInstructionAccounts{
		Program:     addresses[0],
		Authority:   addresses[1],
		Destination: addresses[2],
	}, nil
}
