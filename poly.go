package kyber

import "crypto/subtle"

// NTT transforms r to the NTT domain and Barrett-reduces the result so it
// can be fed back to InvNTT or to a point-wise product.
func (r *Poly) NTT() {
	NTT(r)
	r.Reduce()
}

// InvNTT transforms r back from the NTT domain. The result carries a factor
// of R = 2^16, which a preceding Montgomery product normally cancels.
func (r *Poly) InvNTT() {
	InvNTT(r)
}

// Reduce applies Barrett reduction to every coefficient.
func (r *Poly) Reduce() {
	for i := range r {
		r[i] = BarrettReduce(r[i])
	}
}

// Normalize maps every coefficient to its canonical representative in [0, q).
func (r *Poly) Normalize() {
	for i := range r {
		r[i] = condAddQ(BarrettReduce(r[i]))
	}
}

// ToMont multiplies every coefficient by R = 2^16 mod q.
func (r *Poly) ToMont() {
	for i := range r {
		r[i] = FQMul(r[i], montR2)
	}
}

// FromMont multiplies every coefficient by R^(-1) mod q. The results lie
// in (-q, q).
func (r *Poly) FromMont() {
	for i := range r {
		r[i] = MontgomeryReduce(int32(r[i]))
	}
}

// Add sets r = a + b without reduction.
func (r *Poly) Add(a, b *Poly) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
}

// Sub sets r = a - b without reduction.
func (r *Poly) Sub(a, b *Poly) {
	for i := range r {
		r[i] = a[i] - b[i]
	}
}

// Equal reports whether r and s hold the same residues mod q, in constant time.
func (r *Poly) Equal(s *Poly) bool {
	a, b := *r, *s
	a.Normalize()
	b.Normalize()
	var diff int16
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return subtle.ConstantTimeEq(int32(diff), 0) == 1
}

// NTT applies Poly.NTT to every element of v.
func (v PolyVec) NTT() {
	for i := range v {
		v[i].NTT()
	}
}

// InvNTT applies Poly.InvNTT to every element of v.
func (v PolyVec) InvNTT() {
	for i := range v {
		v[i].InvNTT()
	}
}

// Reduce applies Poly.Reduce to every element of v.
func (v PolyVec) Reduce() {
	for i := range v {
		v[i].Reduce()
	}
}

// Normalize applies Poly.Normalize to every element of v.
func (v PolyVec) Normalize() {
	for i := range v {
		v[i].Normalize()
	}
}

// FromMont applies Poly.FromMont to every element of v.
func (v PolyVec) FromMont() {
	for i := range v {
		v[i].FromMont()
	}
}

// Equal reports whether v and w have the same length and hold the same
// residues mod q.
func (v PolyVec) Equal(w PolyVec) bool {
	if len(v) != len(w) {
		return false
	}
	eq := true
	for i := range v {
		eq = v[i].Equal(&w[i]) && eq
	}
	return eq
}
