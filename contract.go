package kyber

import "fmt"

// assertf panics with a formatted message when cond is false and contract
// checks are compiled in.
func assertf(cond bool, format string, args ...any) {
	if debugChecks && !cond {
		panic("kyber: " + fmt.Sprintf(format, args...))
	}
}

// assertBounded checks that every coefficient of r lies in (-bound, bound).
func assertBounded(r *Poly, bound int16, op string) {
	if !debugChecks {
		return
	}
	for i, c := range r {
		if c <= -bound || c >= bound {
			panic(fmt.Sprintf("kyber: %s: coefficient %d out of range: %d", op, i, c))
		}
	}
}
