package loaderv4

import (
	"github.com/pkg/errors"

	"github.com/code-payments/loader-v4-client/pkg/solana/binary"
)

type InstructionType uint8

const (
	InstructionTypeWrite InstructionType = iota
	InstructionTypeTruncate
	InstructionTypeDeploy
	InstructionTypeRetract
	InstructionTypeTransferAuthority
	InstructionTypeFinalize
)

// InstructionTypes lists every instruction, in discriminator order.
var InstructionTypes = []InstructionType{
	InstructionTypeWrite,
	InstructionTypeTruncate,
	InstructionTypeDeploy,
	InstructionTypeRetract,
	InstructionTypeTransferAuthority,
	InstructionTypeFinalize,
}

func (t InstructionType) String() string {
	switch t {
	case InstructionTypeWrite:
		return "write"
	case InstructionTypeTruncate:
		return "truncate"
	case InstructionTypeDeploy:
		return "deploy"
	case InstructionTypeRetract:
		return "retract"
	case InstructionTypeTransferAuthority:
		return "transfer_authority"
	case InstructionTypeFinalize:
		return "finalize"
	}
	return "unknown"
}

// IsValid reports whether t is an instruction this package can encode.
func (t InstructionType) IsValid() bool {
	return int(t) < len(layouts)
}

// ParseInstructionType is the inverse of InstructionType.String.
func ParseInstructionType(name string) (InstructionType, error) {
	for i := range layouts {
		if t := InstructionType(i); t.String() == name {
			return t, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownInstruction, "name %q", name)
}

// Discriminator is the opcode tag that prefixes instruction data.
//
// The width is not uniform across the loader's instructions. Deploy, Finalize
// and Truncate use a single byte while Write, Retract and TransferAuthority
// use a little-endian uint32, and the on-chain program expects exactly that.
type Discriminator struct {
	Value uint32
	Size  int
}

// Bytes returns the wire encoding of the discriminator, or nil when Size is
// not a width the loader uses.
func (d Discriminator) Bytes() []byte {
	if !d.isValid() {
		return nil
	}

	var offset int
	data := make([]byte, d.Size)
	d.put(data, &offset)
	return data
}

func (d Discriminator) isValid() bool {
	return d.Size == 1 || d.Size == 4
}

func (d Discriminator) put(dst []byte, offset *int) {
	switch d.Size {
	case 1:
		binary.PutUint8(dst, uint8(d.Value), offset)
	case 4:
		binary.PutUint32(dst, d.Value, offset)
	}
}

func (d Discriminator) get(src []byte, dst *uint32, offset *int) error {
	switch d.Size {
	case 1:
		var v uint8
		if err := binary.GetUint8(src, &v, offset); err != nil {
			return errors.Wrap(err, "discriminator")
		}
		*dst = uint32(v)
	case 4:
		if err := binary.GetUint32(src, dst, offset); err != nil {
			return errors.Wrap(err, "discriminator")
		}
	default:
		return errors.Wrapf(ErrUnknownInstruction, "discriminator size %d", d.Size)
	}
	return nil
}

// Discriminator returns the tag the loader expects for t. The zero value is
// returned for unknown types.
func (t InstructionType) Discriminator() Discriminator {
	if !t.IsValid() {
		return Discriminator{}
	}
	return layouts[t].discriminator
}

// EncodeDiscriminator returns the discriminator bytes for t.
func EncodeDiscriminator(t InstructionType) []byte {
	return t.Discriminator().Bytes()
}

// DecodeDiscriminator reads the discriminator for t from the start of data.
// The value is not checked against t.
func DecodeDiscriminator(t InstructionType, data []byte) (uint32, error) {
	if !t.IsValid() {
		return 0, errors.Wrapf(ErrUnknownInstruction, "type %d", t)
	}

	var offset int
	var value uint32
	if err := t.Discriminator().get(data, &value, &offset); err != nil {
		return 0, err
	}
	return value, nil
}
