package kyber

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounterSource(t *testing.T) {
	src := NewCounterSource(2)
	buf := make([]byte, 12)
	n, err := src.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 12, n)
	require.Equal(t, "030000000000000004000000", hex.EncodeToString(buf))

	// The partial word consumed a full step
	require.Equal(t, uint64(5), src.Uint64())
}

func TestCounterSourceDeterministic(t *testing.T) {
	a, b := NewCounterSource(7), NewCounterSource(7)
	sa, err := NewSeed(a)
	require.NoError(t, err)
	sb, err := NewSeed(b)
	require.NoError(t, err)
	require.Equal(t, sa, sb)

	sc, err := NewSeed(a)
	require.NoError(t, err)
	require.NotEqual(t, sa, sc)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestNewSeedError(t *testing.T) {
	seed, err := NewSeed(failingReader{})
	require.Error(t, err)
	require.Nil(t, seed)
}
