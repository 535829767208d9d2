package kyber

import "golang.org/x/crypto/sha3"

// PRF expands a 32-byte key and a one-byte nonce into len(out) bytes.
type PRF func(out []byte, key *[SymSize]byte, nonce byte)

// Shake256PRF is the Kyber PRF: SHAKE-256(key || nonce).
func Shake256PRF(out []byte, key *[SymSize]byte, nonce byte) {
	h := sha3.NewShake256()
	h.Write(key[:])
	h.Write([]byte{nonce})
	h.Read(out)
}

// GetNoise samples r from the centered binomial distribution of parameter
// eta, using prf over (seed, nonce) as the randomness.
func GetNoise(r *Poly, prf PRF, seed *[SymSize]byte, nonce byte, eta int) {
	assertf(eta == 2 || eta == 3, "GetNoise: unsupported eta %d", eta)
	// Large enough for eta = 3
	var buf [noiseBytesEta3]byte
	b := buf[:eta*N/4]
	prf(b, seed, nonce)
	r.SetCBD(b, eta)
}

// GetNoiseEta1 samples a secret polynomial with eta = Eta1.
func GetNoiseEta1(seed *[SymSize]byte, nonce byte) Poly {
	var r Poly
	GetNoise(&r, Shake256PRF, seed, nonce, Eta1)
	return r
}

// GetNoiseEta2 samples an error polynomial with eta = Eta2.
func GetNoiseEta2(seed *[SymSize]byte, nonce byte) Poly {
	var r Poly
	GetNoise(&r, Shake256PRF, seed, nonce, Eta2)
	return r
}

// GetNoiseEta1 samples a secret polynomial with the level's eta1.
func (p *Params) GetNoiseEta1(seed *[SymSize]byte, nonce byte) Poly {
	var r Poly
	GetNoise(&r, Shake256PRF, seed, nonce, p.Eta1)
	return r
}

// GetNoiseEta2 samples an error polynomial with the level's eta2.
func (p *Params) GetNoiseEta2(seed *[SymSize]byte, nonce byte) Poly {
	var r Poly
	GetNoise(&r, Shake256PRF, seed, nonce, p.Eta2)
	return r
}

// NoiseVec fills v with eta1 samples under consecutive nonces starting at
// nonce and returns the next unused nonce.
func (p *Params) NoiseVec(v PolyVec, seed *[SymSize]byte, nonce byte) byte {
	p.checkRank(v, "NoiseVec")
	for i := range v {
		GetNoise(&v[i], Shake256PRF, seed, nonce, p.Eta1)
		nonce++
	}
	return nonce
}
