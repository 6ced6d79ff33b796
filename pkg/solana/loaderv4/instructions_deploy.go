package loaderv4

import (
	"crypto/ed25519"

	"github.com/code-payments/loader-v4-client/pkg/solana"
)

const (
	DeployInstructionArgsSize = 0
)

type DeployInstructionArgs struct {
}

type DeployInstructionData struct {
	Discriminator uint8
}

type DeployInstructionAccounts struct {
	Program   ed25519.PublicKey
	Authority ed25519.PublicKey

	// Optional undeployed program to take data and lamports from
	Source ed25519.PublicKey
}

func EncodeDeployInstructionData(args *DeployInstructionArgs) []byte {
	data, _ := layouts[InstructionTypeDeploy].newData(DeployInstructionArgsSize)
	return data
}

func DecodeDeployInstructionData(data []byte) (*DeployInstructionData, error) {
	var offset int
	var discriminator uint32

	if err := layouts[InstructionTypeDeploy].discriminator.get(data, &discriminator, &offset); err != nil {
		return nil, err
	}

	return &DeployInstructionData{
		Discriminator: uint8(discriminator),
	}, nil
}

func NewDeployInstruction(
	accounts *DeployInstructionAccounts,
	args *DeployInstructionArgs,
	remaining ...solana.AccountMeta,
) solana.Instruction {
	return layouts[InstructionTypeDeploy].build(
		EncodeDeployInstructionData(args),
		[]ed25519.PublicKey{
			accounts.Program,
			accounts.Authority,
			accounts.Source,
		},
		remaining,
	)
}

func DeployInstructionFromInstruction(ix solana.Instruction) (*DeployInstructionData, *DeployInstructionAccounts, error) {
	addresses, err := layouts[InstructionTypeDeploy].parseAccounts(ix)
	if err != nil {
		return nil, nil, err
	}

	data, err := DecodeDeployInstructionData(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	return data, &DeployInstructionAccounts{
		Program:   addresses[0],
		Authority: addresses[1],
		Source:    addresses[2],
	}, nil
}
