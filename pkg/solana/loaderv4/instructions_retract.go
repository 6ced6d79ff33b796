package loaderv4

import (
	"crypto/ed25519"

	"github.com/code-payments/loader-v4-client/pkg/solana"
)

const (
	RetractInstructionArgsSize = 0
)

type RetractInstructionArgs struct {
}

// RetractInstructionData carries a 4 byte discriminator, unlike Deploy and
// Finalize.
type RetractInstructionData struct {
	Discriminator uint32
}

type RetractInstructionAccounts struct {
	Program   ed25519.PublicKey
	Authority ed25519.PublicKey
}

func EncodeRetractInstructionData(args *RetractInstructionArgs) []byte {
	data, _ := layouts[InstructionTypeRetract].newData(RetractInstructionArgsSize)
	return data
}

func DecodeRetractInstructionData(data []byte) (*RetractInstructionData, error) {
	var offset int
	var decoded RetractInstructionData

	if err := layouts[InstructionTypeRetract].discriminator.get(data, &decoded.Discriminator, &offset); err != nil {
		return nil, err
	}

	return &decoded, nil
}

func NewRetractInstruction(
	accounts *RetractInstructionAccounts,
	args *RetractInstructionArgs,
	remaining ...solana.AccountMeta,
) solana.Instruction {
	return layouts[InstructionTypeRetract].build(
		EncodeRetractInstructionData(args),
		[]ed25519.PublicKey{
			accounts.Program,
			accounts.Authority,
		},
		remaining,
	)
}

func RetractInstructionFromInstruction(ix solana.Instruction) (*RetractInstructionData, *RetractInstructionAccounts, error) {
	addresses, err := layouts[InstructionTypeRetract].parseAccounts(ix)
	if err != nil {
		return nil, nil, err
	}

	data, err := DecodeRetractInstructionData(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	return data, &RetractInstructionAccounts{
		Program:   addresses[0],
		Authority: addresses[1],
	}, nil
}
