package loaderv4

import (
	"crypto/ed25519"

	"github.com/code-payments/loader-v4-client/pkg/solana"
)

const (
	FinalizeInstructionArgsSize = 0
)

type FinalizeInstructionArgs struct {
}

type FinalizeInstructionData struct {
	Discriminator uint8
}

type FinalizeInstructionAccounts struct {
	Program   ed25519.PublicKey
	Authority ed25519.PublicKey

	// The next version of the program, which can be the program itself
	NextVersion ed25519.PublicKey
}

func EncodeFinalizeInstructionData(args *FinalizeInstructionArgs) []byte {
	data, _ := layouts[InstructionTypeFinalize].newData(FinalizeInstructionArgsSize)
	return data
}

func DecodeFinalizeInstructionData(data []byte) (*FinalizeInstructionData, error) {
	var offset int
	var discriminator uint32

	if err := layouts[InstructionTypeFinalize].discriminator.get(data, &discriminator, &offset); err != nil {
		return nil, err
	}

	return &FinalizeInstructionData{
		Discriminator: uint8(discriminator),
	}, nil
}

func NewFinalizeInstruction(
	accounts *FinalizeInstructionAccounts,
	args *FinalizeInstructionArgs,
	remaining ...solana.AccountMeta,
) solana.Instruction {
	return layouts[InstructionTypeFinalize].build(
		EncodeFinalizeInstructionData(args),
		[]ed25519.PublicKey{
			accounts.Program,
			accounts.Authority,
			accounts.NextVersion,
		},
		remaining,
	)
}

func FinalizeInstructionFromInstruction(ix solana.Instruction) (*FinalizeInstructionData, *FinalizeInstructionAccounts, error) {
	addresses, err := layouts[InstructionTypeFinalize].parseAccounts(ix)
	if err != nil {
		return nil, nil, err
	}

	data, err := DecodeFinalizeInstructionData(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	return data, &FinalizeInstructionAccounts{
		Program:     addresses[0],
		Authority:   addresses[1],
		NextVersion: addresses[2],
	}, nil
}
