//go:build !kyberdebug

package kyber

// debugChecks enables caller contract checks. Build with -tags kyberdebug to
// turn them on; otherwise every check below compiles to nothing.
const debugChecks = false
