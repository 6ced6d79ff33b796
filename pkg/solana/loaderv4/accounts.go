package loaderv4

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/loader-v4-client/pkg/solana"
)

// AccountRole is the access an instruction requires for one of its accounts.
type AccountRole struct {
	IsWritable bool
	IsSigner   bool
}

var (
	RoleReadonly       = AccountRole{}
	RoleReadonlySigner = AccountRole{IsSigner: true}
	RoleWritable       = AccountRole{IsWritable: true}
	RoleWritableSigner = AccountRole{IsWritable: true, IsSigner: true}
)

// AccountSlot is a fixed position in an instruction's account list.
type AccountSlot struct {
	Name       string
	Role       AccountRole
	IsOptional bool
}

// AccountSlots returns the ordered account schema for t.
func (t InstructionType) AccountSlots() []AccountSlot {
	if !t.IsValid() {
		return nil
	}
	slots := make([]AccountSlot, len(layouts[t].accounts))
	copy(slots, layouts[t].accounts)
	return slots
}

// MinAccounts is the number of accounts a raw instruction of type t must
// carry. Optional slots count, since they are always filled.
func (t InstructionType) MinAccounts() int {
	if !t.IsValid() {
		return 0
	}
	return len(layouts[t].accounts)
}

// ResolveAccounts maps addresses onto the account slots of t, in order.
//
// Roles come from the slot and never from the address. A nil (or missing)
// address in an optional slot resolves to PROGRAM_ID. Addresses beyond the
// last slot are ignored.
func ResolveAccounts(t InstructionType, addresses ...ed25519.PublicKey) []solana.AccountMeta {
	if !t.IsValid() {
		return nil
	}
	return layouts[t].resolve(addresses)
}

func (l *instructionLayout) resolve(addresses []ed25519.PublicKey) []solana.AccountMeta {
	accounts := make([]solana.AccountMeta, len(l.accounts))
	for i, slot := range l.accounts {
		var address ed25519.PublicKey
		if i < len(addresses) {
			address = addresses[i]
		}

		if slot.IsOptional && len(address) == 0 {
			address = PROGRAM_ID
		}

		accounts[i] = solana.AccountMeta{
			PublicKey:  address,
			IsWritable: slot.Role.IsWritable,
			IsSigner:   slot.Role.IsSigner,
		}
	}
	return accounts
}

// parseAccounts is the inverse of resolve. Optional slots holding PROGRAM_ID
// come back as nil.
func (l *instructionLayout) parseAccounts(ix solana.Instruction) ([]ed25519.PublicKey, error) {
	if !bytes.Equal(ix.Program, PROGRAM_ID) {
		return nil, ErrInvalidProgram
	}

	if len(ix.Accounts) < len(l.accounts) {
		return nil, errors.Wrapf(ErrInsufficientAccounts, "need %d, have %d", len(l.accounts), len(ix.Accounts))
	}

	addresses := make([]ed25519.PublicKey, len(l.accounts))
	for i, slot := range l.accounts {
		meta := ix.Accounts[i]
		if slot.IsOptional && bytes.Equal(meta.PublicKey, PROGRAM_ID) {
			continue
		}

		addresses[i] = make(ed25519.PublicKey, len(meta.PublicKey))
		copy(addresses[i], meta.PublicKey)
	}
	return addresses, nil
}
