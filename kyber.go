// Package kyber implements the number-theoretic transform engine at the core
// of the Kyber (ML-KEM) key-encapsulation mechanism.
//
// Ring elements live in Z_q[X]/(X^256+1) with q = 3329 and are stored as
// 256 signed 16-bit coefficients. The package provides:
//   - Montgomery and Barrett reduction over q
//   - the forward and inverse NTT, operating in place
//   - centered binomial noise sampling from a keyed PRF
//
// Everything in this package is constant time with respect to coefficient
// values, performs no I/O and does not allocate on the transform path.
//
// Basic usage:
//
//	var seed [kyber.SymSize]byte
//	s := kyber.GetNoiseEta1(&seed, 0)
//	s.NTT()
//	// ... point-wise multiply in the NTT domain ...
//	s.InvNTT()
package kyber

import "fmt"

// Global constants.
const (
	// N is the number of coefficients in a ring element.
	N = 256

	// Q is the prime modulus.
	Q = 3329

	// SymSize is the size in bytes of seeds fed to the PRF.
	SymSize = 32

	// Eta1 is the noise parameter of the default (Kyber512) build.
	Eta1 = 3

	// Eta2 is the noise parameter used for error polynomials at every level.
	Eta2 = 2
)

// Module ranks of the security levels.
const (
	k512  = 2
	k768  = 3
	k1024 = 4
)

// Noise buffer sizes, eta*N/4 bytes per polynomial.
const (
	noiseBytesEta2 = 2 * N / 4
	noiseBytesEta3 = 3 * N / 4
)

// Poly is a ring element. Whether it holds coefficients or NTT evaluations is
// a convention tracked by the caller.
type Poly [N]int16

// PolyVec is a vector of K ring elements. It is usually a slice over a
// caller-owned [K]Poly array so that no allocation takes place.
type PolyVec []Poly

// Fixed-rank vectors of each security level.
type (
	PolyVec512  [k512]Poly
	PolyVec768  [k768]Poly
	PolyVec1024 [k1024]Poly
)

// Vec returns v as a PolyVec sharing its storage.
func (v *PolyVec512) Vec() PolyVec { return v[:] }

// Vec returns v as a PolyVec sharing its storage.
func (v *PolyVec768) Vec() PolyVec { return v[:] }

// Vec returns v as a PolyVec sharing its storage.
func (v *PolyVec1024) Vec() PolyVec { return v[:] }

// Params describes one Kyber security level.
type Params struct {
	// Name is the conventional name of the level.
	Name string
	// K is the module rank, the number of polynomials in a vector.
	K int
	// Eta1 is the CBD parameter for secrets and ephemeral keys.
	Eta1 int
	// Eta2 is the CBD parameter for error polynomials.
	Eta2 int
}

// Security levels.
var (
	Kyber512  = &Params{Name: "Kyber512", K: k512, Eta1: 3, Eta2: 2}
	Kyber768  = &Params{Name: "Kyber768", K: k768, Eta1: 2, Eta2: 2}
	Kyber1024 = &Params{Name: "Kyber1024", K: k1024, Eta1: 2, Eta2: 2}
)

// ParamsByName returns the level with the given name or rank-style alias
// ("512", "768", "1024"), or nil.
func ParamsByName(name string) *Params {
	switch name {
	case "Kyber512", "kyber512", "512":
		return Kyber512
	case "Kyber768", "kyber768", "768":
		return Kyber768
	case "Kyber1024", "kyber1024", "1024":
		return Kyber1024
	}
	return nil
}

// NewPolyVec allocates a zero vector of p.K polynomials backed by the
// level's fixed-rank array.
func (p *Params) NewPolyVec() PolyVec {
	switch p.K {
	case k512:
		return new(PolyVec512).Vec()
	case k768:
		return new(PolyVec768).Vec()
	case k1024:
		return new(PolyVec1024).Vec()
	}
	return make(PolyVec, p.K)
}

// checkRank panics unless v holds exactly p.K polynomials. It guards the
// vector entry points in every build.
func (p *Params) checkRank(v PolyVec, op string) {
	if len(v) != p.K {
		panic(fmt.Sprintf("kyber: %s: vector length %d, want %d for %s", op, len(v), p.K, p.Name))
	}
}
