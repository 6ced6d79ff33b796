package loaderv4

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/loader-v4-client/pkg/solana"
)

// DecompiledAccount is one account slot of a decompiled instruction. PublicKey
// is nil when an optional account was not provided.
type DecompiledAccount struct {
	Slot      AccountSlot
	PublicKey ed25519.PublicKey
}

type DecompiledInstruction struct {
	Type     InstructionType
	Accounts []DecompiledAccount

	// Data is one of the *<Type>InstructionData structs.
	Data interface{}
}

// Account returns the address held in the named slot, or nil.
func (d *DecompiledInstruction) Account(name string) ed25519.PublicKey {
	for _, account := range d.Accounts {
		if account.Slot.Name == name {
			return account.PublicKey
		}
	}
	return nil
}

// DecompileInstruction identifies and parses any loader instruction.
//
// Every discriminator in use is below 256 and little-endian, so the first data
// byte identifies the instruction regardless of its discriminator width.
func DecompileInstruction(ix solana.Instruction) (*DecompiledInstruction, error) {
	if len(ix.Data) == 0 {
		return nil, errors.Wrap(ErrShortBuffer, "missing discriminator")
	}

	t := InstructionType(ix.Data[0])
	if !t.IsValid() {
		return nil, errors.Wrapf(ErrUnknownInstruction, "discriminator %d", ix.Data[0])
	}

	layout := &layouts[t]
	addresses, err := layout.parseAccounts(ix)
	if err != nil {
		return nil, err
	}

	// Only the low byte was used to pick the type. Wider tags must match in full.
	var offset int
	var discriminator uint32
	if err := layout.discriminator.get(ix.Data, &discriminator, &offset); err != nil {
		return nil, errors.Wrapf(err, "invalid %s instruction data", t)
	}
	if discriminator != layout.discriminator.Value {
		return nil, errors.Wrapf(ErrUnknownInstruction, "discriminator %d", discriminator)
	}

	var data interface{}
	switch t {
	case InstructionTypeWrite:
		data, err = DecodeWriteInstructionData(ix.Data)
	case InstructionTypeTruncate:
		data, err = DecodeTruncateInstructionData(ix.Data)
	case InstructionTypeDeploy:
		data, err = DecodeDeployInstructionData(ix.Data)
	case InstructionTypeRetract:
		data, err = DecodeRetractInstructionData(ix.Data)
	case InstructionTypeTransferAuthority:
		data, err = DecodeTransferAuthorityInstructionData(ix.Data)
	case InstructionTypeFinalize:
		data, err = DecodeFinalizeInstructionData(ix.Data)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s instruction data", t)
	}

	accounts := make([]DecompiledAccount, len(layout.accounts))
	for i, slot := range layout.accounts {
		accounts[i] = DecompiledAccount{
			Slot:      slot,
			PublicKey: addresses[i],
		}
	}

	return &DecompiledInstruction{
		Type:     t,
		Accounts: accounts,
		Data:     data,
	}, nil
}
