package loaderv4

import (
	"crypto/ed25519"

	"github.com/code-payments/loader-v4-client/pkg/solana"
)

const (
	TransferAuthorityInstructionArgsSize = 0
)

type TransferAuthorityInstructionArgs struct {
}

type TransferAuthorityInstructionData struct {
	Discriminator uint32
}

// Both authorities must sign.
type TransferAuthorityInstructionAccounts struct {
	Program          ed25519.PublicKey
	CurrentAuthority ed25519.PublicKey
	NewAuthority     ed25519.PublicKey
}

func EncodeTransferAuthorityInstructionData(args *TransferAuthorityInstructionArgs) []byte {
	data, _ := layouts[InstructionTypeTransferAuthority].newData(TransferAuthorityInstructionArgsSize)
	return data
}

func DecodeTransferAuthorityInstructionData(data []byte) (*TransferAuthorityInstructionData, error) {
	var offset int
	var decoded TransferAuthorityInstructionData

	if err := layouts[InstructionTypeTransferAuthority].discriminator.get(data, &decoded.Discriminator, &offset); err != nil {
		return nil, err
	}

	return &decoded, nil
}

func NewTransferAuthorityInstruction(
	accounts *TransferAuthorityInstructionAccounts,
	args *TransferAuthorityInstructionArgs,
	remaining ...solana.AccountMeta,
) solana.Instruction {
	return layouts[InstructionTypeTransferAuthority].build(
		EncodeTransferAuthorityInstructionData(args),
		[]ed25519.PublicKey{
			accounts.Program,
			accounts.CurrentAuthority,
			accounts.NewAuthority,
		},
		remaining,
	)
}

func TransferAuthorityInstructionFromInstruction(ix solana.Instruction) (*TransferAuthorityInstructionData, *TransferAuthorityInstructionAccounts, error) {
	addresses, err := layouts[InstructionTypeTransferAuthority].parseAccounts(ix)
	if err != nil {
		return nil, nil, err
	}

	data, err := DecodeTransferAuthorityInstructionData(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	return data, &TransferAuthorityInstructionAccounts{
		Program:          addresses[0],
		CurrentAuthority: addresses[1],
		NewAuthority:     addresses[2],
	}, nil
}
