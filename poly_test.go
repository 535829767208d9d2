package kyber

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSecretVectorRoundTrip(t *testing.T) {
	// A key-generation style secret vector survives NTT then InvNTT with no
	// difference in any of the K*N coefficients.
	var seed [SymSize]byte
	for i := range seed {
		seed[i] = byte(i)
	}
	for _, p := range []*Params{Kyber512, Kyber768, Kyber1024} {
		t.Run(p.Name, func(t *testing.T) {
			s := p.NewPolyVec()
			next := p.NoiseVec(s, &seed, 0)
			require.Equal(t, byte(p.K), next)

			want := make(PolyVec, p.K)
			copy(want, s)
			want.Normalize()

			s.NTT()
			s.InvNTT()
			s.FromMont()
			s.Normalize()
			if diff := cmp.Diff(want, s); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
			require.True(t, want.Equal(s))
		})
	}
}

func TestNoiseVecNonces(t *testing.T) {
	var seed [SymSize]byte
	seed[0] = 42
	var arr [3]Poly
	v := PolyVec(arr[:])
	next := Kyber768.NoiseVec(v, &seed, 5)
	require.Equal(t, byte(8), next)
	for i := range v {
		require.Equal(t, Kyber768.GetNoiseEta1(&seed, byte(5+i)), v[i], "element %d", i)
	}
	require.NotEqual(t, v[0], v[1])
}

func TestToFromMont(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	p := randomPoly(rng)
	r := p
	r.ToMont()
	for i := range p {
		require.Equal(t, modQ(int64(p[i])*montR), modQ(int64(r[i])), "coefficient %d", i)
	}
	r.FromMont()
	require.True(t, r.Equal(&p))
}

func TestNormalize(t *testing.T) {
	p := Poly{-Q + 1, -1, 0, 1, Q - 1, Q, 32767, -32768}
	p.Normalize()
	require.Equal(t, Poly{1, Q - 1, 0, 1, Q - 1, 0, int16(32767 % Q), int16(Q - 32768%Q)}, p)
}

func TestAddSub(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 24))
	a, b := randomPoly(rng), randomPoly(rng)
	var s, d Poly
	s.Add(&a, &b)
	d.Sub(&s, &b)
	require.Equal(t, a, d)
}

func TestEqual(t *testing.T) {
	a := Poly{1, 2, 3}
	b := Poly{1 + Q, 2 - Q, 3}
	require.True(t, a.Equal(&b))
	b[200] = 1
	require.False(t, a.Equal(&b))

	require.False(t, PolyVec{a}.Equal(PolyVec{a, a}))
	require.True(t, PolyVec{a, b}.Equal(PolyVec{a, b}))
	require.False(t, PolyVec{a, a}.Equal(PolyVec{a, b}))
}

func TestParamsByName(t *testing.T) {
	require.Same(t, Kyber512, ParamsByName("512"))
	require.Same(t, Kyber768, ParamsByName("Kyber768"))
	require.Same(t, Kyber1024, ParamsByName("kyber1024"))
	require.Nil(t, ParamsByName("kyber2048"))
	require.Len(t, Kyber1024.NewPolyVec(), 4)
}

func BenchmarkPolyVecRoundTrip(b *testing.B) {
	var seed [SymSize]byte
	var arr [3]Poly
	v := PolyVec(arr[:])
	Kyber768.NoiseVec(v, &seed, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.NTT()
		v.InvNTT()
	}
}
