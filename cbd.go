package kyber

// load24 reads 3 bytes as a little-endian integer.
func load24(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

// load32 reads 4 bytes as a little-endian integer.
func load32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// cbd3 samples coefficients in [-3, 3] from a centered binomial distribution
// with eta = 3. Each 3 input bytes yield 4 coefficients.
func cbd3(r *Poly, buf *[noiseBytesEta3]byte) {
	for i := 0; i < N/4; i++ {
		t := load24(buf[3*i:])
		// Sum the three bits of every 3-bit field
		d := t & 0x00249249
		d += (t >> 1) & 0x00249249
		d += (t >> 2) & 0x00249249

		for j := 0; j < 4; j++ {
			a := int16((d >> (6 * j)) & 0x7)
			b := int16((d >> (6*j + 3)) & 0x7)
			r[4*i+j] = a - b
		}
	}
}

// cbd2 samples coefficients in [-2, 2] from a centered binomial distribution
// with eta = 2. Each 4 input bytes yield 8 coefficients.
func cbd2(r *Poly, buf *[noiseBytesEta2]byte) {
	for i := 0; i < N/8; i++ {
		t := load32(buf[4*i:])
		d := t & 0x55555555
		d += (t >> 1) & 0x55555555

		for j := 0; j < 8; j++ {
			a := int16((d >> (4 * j)) & 0x3)
			b := int16((d >> (4*j + 2)) & 0x3)
			r[8*i+j] = a - b
		}
	}
}

// SetCBD fills r with centered binomial samples of parameter eta drawn from
// buf, which must hold exactly eta*N/4 bytes. Only eta 2 and 3 are defined.
func (r *Poly) SetCBD(buf []byte, eta int) {
	assertf(len(buf) == eta*N/4, "SetCBD: buffer length %d, want %d", len(buf), eta*N/4)
	switch eta {
	case 2:
		cbd2(r, (*[noiseBytesEta2]byte)(buf))
	case 3:
		cbd3(r, (*[noiseBytesEta3]byte)(buf))
	default:
		panic("kyber: unsupported eta")
	}
}
