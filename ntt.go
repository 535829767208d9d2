package kyber

// zetas contains the twiddle factors for the NTT in Montgomery form.
// zetas[k] = 17^(bitrev7(k)) * R mod q for k = 0..127, centered around zero,
// where 17 is a primitive 256th root of unity mod q and R = 2^16.
var zetas = [128]int16{
	-1044, -758, -359, -1517, 1493, 1422, 287, 202,
	-171, 622, 1577, 182, 962, -1202, -1474, 1468,
	573, -1325, 264, 383, -829, 1458, -1602, -130,
	-681, 1017, 732, 608, -1542, 411, -205, -1571,
	1223, 652, -552, 1015, -1293, 1491, -282, -1544,
	516, -8, -320, -666, -1618, -1162, 126, 1469,
	-853, -90, -271, 830, 107, -1421, -247, -951,
	-398, 961, -1508, -725, 448, -1065, 677, -1275,
	-1103, 430, 555, 843, -1251, 871, 1550, 105,
	422, 587, 177, -235, -291, -460, 1574, 1653,
	-246, 778, 1159, -147, -777, 1483, -602, 1119,
	-1590, 644, -872, 349, 418, 329, -156, -75,
	817, 1097, 603, 610, 1322, -1285, -1465, 384,
	-1215, -136, 1218, -1335, -874, 220, -1187, -1659,
	-1185, -1530, -1278, 794, -1510, -854, -870, 478,
	-108, -308, 996, 991, 958, -1460, 1522, 1628,
}

// invNTTScale is R^2 / 128 mod q. Multiplying by it with FQMul undoes the
// 1/128 normalization and leaves the result in Montgomery form.
const invNTTScale = 1441

// NTT performs the forward number theoretic transform in place.
// The input is in standard order, the output is in bit-reversed order.
//
// The last layer (length 1) is not computed: the output holds 128 residues
// of degree one rather than 256 evaluations. Coefficients are not reduced,
// each layer may grow them by at most q in absolute value.
func NTT(r *Poly) {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < N; start += 2 * length {
			zeta := zetas[k]
			k++
			lo := r[start : start+length]
			hi := r[start+length : start+2*length]
			for j := range lo {
				t := FQMul(zeta, hi[j])
				hi[j] = lo[j] - t
				lo[j] = lo[j] + t
			}
		}
	}
}

// InvNTT performs the inverse number theoretic transform in place and
// multiplies the result by the Montgomery factor R = 2^16.
// The input is in bit-reversed order, the output is in standard order.
// Input coefficients must be Barrett-reduced.
func InvNTT(r *Poly) {
	assertBounded(r, Q, "InvNTT")
	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < N; start += 2 * length {
			zeta := zetas[k]
			k--
			lo := r[start : start+length]
			hi := r[start+length : start+2*length]
			for j := range lo {
				t := lo[j]
				lo[j] = BarrettReduce(t + hi[j])
				hi[j] = FQMul(zeta, hi[j]-t)
			}
		}
	}
	for i := range r {
		r[i] = FQMul(r[i], invNTTScale)
	}
}
