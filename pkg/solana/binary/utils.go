package binary

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrShortBuffer is returned when a read would run past the end of the source.
var ErrShortBuffer = errors.New("short buffer")

func PutUint8(dst []byte, v uint8, offset *int) {
	dst[*offset] = v
	*offset += 1
}

func PutUint32(dst []byte, v uint32, offset *int) {
	binary.LittleEndian.PutUint32(dst[*offset:], v)
	*offset += 4
}

func PutUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}

func PutBytes(dst []byte, src []byte, offset *int) {
	copy(dst[*offset:], src)
	*offset += len(src)
}

func GetUint8(src []byte, dst *uint8, offset *int) error {
	if err := ensure(src, *offset, 1); err != nil {
		return err
	}
	*dst = src[*offset]
	*offset += 1
	return nil
}

func GetUint32(src []byte, dst *uint32, offset *int) error {
	if err := ensure(src, *offset, 4); err != nil {
		return err
	}
	*dst = binary.LittleEndian.Uint32(src[*offset:])
	*offset += 4
	return nil
}

func GetUint64(src []byte, dst *uint64, offset *int) error {
	if err := ensure(src, *offset, 8); err != nil {
		return err
	}
	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
	return nil
}

// GetBytes copies length bytes out of src. The copy never aliases src.
func GetBytes(src []byte, dst *[]byte, length uint64, offset *int) error {
	if length > uint64(Remaining(src, *offset)) {
		return errors.Wrapf(ErrShortBuffer, "need %d bytes at offset %d, have %d", length, *offset, Remaining(src, *offset))
	}
	*dst = make([]byte, length)
	copy(*dst, src[*offset:])
	*offset += int(length)
	return nil
}

// Remaining returns the number of bytes left in src after offset.
func Remaining(src []byte, offset int) int {
	if offset >= len(src) {
		return 0
	}
	return len(src) - offset
}

func ensure(src []byte, offset, size int) error {
	if Remaining(src, offset) < size {
		return errors.Wrapf(ErrShortBuffer, "need %d bytes at offset %d, have %d", size, offset, Remaining(src, offset))
	}
	return nil
}
