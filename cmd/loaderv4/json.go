package main

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"io"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/code-payments/loader-v4-client/pkg/solana"
	"github.com/code-payments/loader-v4-client/pkg/solana/loaderv4"
)

type jsonAccountMeta struct {
	Address    string `json:"address"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

// jsonInstruction mirrors the RPC convention of base58 addresses and data.
type jsonInstruction struct {
	Program  string            `json:"program"`
	Accounts []jsonAccountMeta `json:"accounts"`
	Data     string            `json:"data"`
}

type jsonInstructionData struct {
	Discriminator uint32  `json:"discriminator"`
	Offset        *uint32 `json:"offset,omitempty"`
	Bytes         *string `json:"bytes,omitempty"`
	NewSize       *uint32 `json:"new_size,omitempty"`
}

// jsonDecompiledInstruction omits optional accounts that were not provided.
type jsonDecompiledInstruction struct {
	Type     string              `json:"type"`
	Accounts map[string]string   `json:"accounts"`
	Data     jsonInstructionData `json:"data"`
}

func toJSONInstruction(ix solana.Instruction) *jsonInstruction {
	accounts := make([]jsonAccountMeta, len(ix.Accounts))
	for i, account := range ix.Accounts {
		accounts[i] = jsonAccountMeta{
			Address:    base58.Encode(account.PublicKey),
			IsSigner:   account.IsSigner,
			IsWritable: account.IsWritable,
		}
	}

	return &jsonInstruction{
		Program:  base58.Encode(ix.Program),
		Accounts: accounts,
		Data:     base58.Encode(ix.Data),
	}
}

func (j *jsonInstruction) toInstruction() (solana.Instruction, error) {
	program, err := decodeAddress(j.Program)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "program")
	}

	var data []byte
	if len(j.Data) > 0 {
		data, err = base58.Decode(j.Data)
		if err != nil {
			return solana.Instruction{}, errors.Wrap(err, "invalid instruction data")
		}
	}

	accounts := make([]solana.AccountMeta, len(j.Accounts))
	for i, account := range j.Accounts {
		address, err := decodeAddress(account.Address)
		if err != nil {
			return solana.Instruction{}, errors.Wrapf(err, "account %d", i)
		}

		accounts[i] = solana.AccountMeta{
			PublicKey:  address,
			IsSigner:   account.IsSigner,
			IsWritable: account.IsWritable,
		}
	}

	return solana.NewInstruction(program, data, accounts...), nil
}

func toJSONDecompiledInstruction(decompiled *loaderv4.DecompiledInstruction) *jsonDecompiledInstruction {
	accounts := make(map[string]string)
	for _, account := range decompiled.Accounts {
		if account.PublicKey == nil {
			continue
		}
		accounts[account.Slot.Name] = base58.Encode(account.PublicKey)
	}

	var data jsonInstructionData
	switch typed := decompiled.Data.(type) {
	case *loaderv4.WriteInstructionData:
		encoded := hex.EncodeToString(typed.Bytes)
		data.Discriminator = typed.Discriminator
		data.Offset = &typed.Offset
		data.Bytes = &encoded
	case *loaderv4.TruncateInstructionData:
		data.Discriminator = uint32(typed.Discriminator)
		data.NewSize = &typed.NewSize
	case *loaderv4.DeployInstructionData:
		data.Discriminator = uint32(typed.Discriminator)
	case *loaderv4.RetractInstructionData:
		data.Discriminator = typed.Discriminator
	case *loaderv4.TransferAuthorityInstructionData:
		data.Discriminator = typed.Discriminator
	case *loaderv4.FinalizeInstructionData:
		data.Discriminator = uint32(typed.Discriminator)
	}

	return &jsonDecompiledInstruction{
		Type:     decompiled.Type.String(),
		Accounts: accounts,
		Data:     data,
	}
}

func decodeAddress(value string) (ed25519.PublicKey, error) {
	decoded, err := base58.Decode(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid address %q", value)
	}
	if len(decoded) != ed25519.PublicKeySize {
		return nil, errors.Errorf("invalid address %q: expected %d bytes, got %d", value, ed25519.PublicKeySize, len(decoded))
	}
	return decoded, nil
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}
