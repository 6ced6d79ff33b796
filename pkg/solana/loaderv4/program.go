package loaderv4

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/code-payments/loader-v4-client/pkg/solana/binary"
)

var (
	ErrInvalidProgram       = errors.New("invalid program id")
	ErrInsufficientAccounts = errors.New("insufficient accounts")
	ErrUnknownInstruction   = errors.New("unknown instruction")
	ErrShortBuffer          = binary.ErrShortBuffer
)

// PROGRAM_ID is the address of the loader. It doubles as the placeholder for
// optional accounts that were not provided.
//
// Reference: https://github.com/solana-program/loader-v4
var (
	PROGRAM_ADDRESS = mustBase58Decode("LoaderV411111111111111111111111111111111111")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
