package loaderv4

import (
	"crypto/ed25519"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func newRandomKey(t *testing.T) ed25519.PublicKey {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return pub
}

// newOptionalKey returns nil about half the time.
func newOptionalKey(t *testing.T, r *rand.Rand) ed25519.PublicKey {
	if r.Intn(2) == 0 {
		return nil
	}
	return newRandomKey(t)
}
