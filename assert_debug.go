//go:build kyberdebug

package kyber

const debugChecks = true
