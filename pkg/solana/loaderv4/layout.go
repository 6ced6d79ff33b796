package loaderv4

import (
	"crypto/ed25519"

	"github.com/code-payments/loader-v4-client/pkg/solana"
)

type instructionLayout struct {
	discriminator Discriminator
	accounts      []AccountSlot
}

// Reference: https://github.com/solana-program/loader-v4/blob/main/program/src/instruction.rs
var layouts = [...]instructionLayout{
	InstructionTypeWrite: {
		discriminator: Discriminator{Value: 0, Size: 4},
		accounts: []AccountSlot{
			{Name: "program", Role: RoleWritable},
			{Name: "authority", Role: RoleReadonlySigner},
		},
	},
	InstructionTypeTruncate: {
		discriminator: Discriminator{Value: 1, Size: 1},
		accounts: []AccountSlot{
			{Name: "program", Role: RoleWritableSigner},
			{Name: "authority", Role: RoleReadonlySigner},
			{Name: "destination", Role: RoleWritable, IsOptional: true},
		},
	},
	InstructionTypeDeploy: {
		discriminator: Discriminator{Value: 2, Size: 1},
		accounts: []AccountSlot{
			{Name: "program", Role: RoleWritable},
			{Name: "authority", Role: RoleReadonlySigner},
			{Name: "source", Role: RoleWritable, IsOptional: true},
		},
	},
	InstructionTypeRetract: {
		discriminator: Discriminator{Value: 3, Size: 4},
		accounts: []AccountSlot{
			{Name: "program", Role: RoleWritable},
			{Name: "authority", Role: RoleReadonlySigner},
		},
	},
	InstructionTypeTransferAuthority: {
		discriminator: Discriminator{Value: 4, Size: 4},
		accounts: []AccountSlot{
			{Name: "program", Role: RoleWritable},
			{Name: "current_authority", Role: RoleReadonlySigner},
			{Name: "new_authority", Role: RoleReadonlySigner},
		},
	},
	InstructionTypeFinalize: {
		discriminator: Discriminator{Value: 5, Size: 1},
		accounts: []AccountSlot{
			{Name: "program", Role: RoleWritable},
			{Name: "authority", Role: RoleReadonlySigner},
			{Name: "next_version", Role: RoleReadonly},
		},
	},
}

// newData allocates instruction data for argsSize bytes of arguments with the
// discriminator already written. The returned offset points past it.
func (l *instructionLayout) newData(argsSize int) ([]byte, int) {
	var offset int
	data := make([]byte, l.discriminator.Size+argsSize)
	l.discriminator.put(data, &offset)
	return data, offset
}

// build resolves addresses onto the layout's slots and appends any remaining
// accounts after them, unchanged.
func (l *instructionLayout) build(data []byte, addresses []ed25519.PublicKey, remaining []solana.AccountMeta) solana.Instruction {
	accounts := l.resolve(addresses)
	accounts = append(accounts, remaining...)

	return solana.Instruction{
		Program: PROGRAM_ID,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: accounts,
	}
}
