// Package modshift32 implements ModShift32, a small non-cryptographic hash
// that folds a text, code point by code point, into a single accumulator
// reduced modulo 2^32-1, runs three shift/XOR avalanche rounds over it and
// expands the result into four independently finalized 32-bit segments.
// The digest is the 32 lowercase hex characters of those segments.
//
// Digest and DigestRunes hash a complete input. Hasher is the streaming
// form and produces the same digest for the same code points regardless of
// how the input is split across writes.
//
// ModShift32 offers no preimage or collision resistance.
package modshift32
