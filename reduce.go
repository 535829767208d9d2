package kyber

// Montgomery form constants.
const (
	// qInv = q^(-1) mod 2^16
	qInv = 62209
	// montR = 2^16 mod q (Montgomery R)
	montR = 2285
	// montR2 = 2^32 mod q (Montgomery R^2)
	montR2 = 1353
	// barrettV = floor(2^26/q) + 1
	barrettV = ((1 << 26) / Q) + 1
)

// MontgomeryReduce returns a 16-bit value congruent to a * 2^(-16) mod q.
// For |a| < q * 2^15 the result lies in (-q, q).
func MontgomeryReduce(a int32) int16 {
	// u = a * q^(-1) mod 2^16, as a signed 16-bit value
	u := int16(a * qInv)
	// a - u*q is divisible by 2^16
	t := a - int32(u)*Q
	return int16(t >> 16)
}

// BarrettReduce returns a value congruent to a mod q in the centered range
// [-(q-1)/2, (q-1)/2].
func BarrettReduce(a int16) int16 {
	t := int16((barrettV*int32(a) + (1 << 25)) >> 26)
	return a - t*Q
}

// FQMul returns a * b * 2^(-16) mod q.
func FQMul(a, b int16) int16 {
	return MontgomeryReduce(int32(a) * int32(b))
}

// condAddQ maps a in (-q, q) to [0, q) without branching.
func condAddQ(a int16) int16 {
	a += (a >> 15) & Q
	return a
}
