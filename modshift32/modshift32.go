package modshift32

import (
	"strconv"
	"strings"
)

const (
	// Placeholder is hashed in place of an empty input.
	Placeholder = "empty_string"

	// Size is the length of a digest in hex characters.
	Size = 32

	modulus = 1<<32 - 1
	prime   = 31

	segments   = 4
	segmentHex = 8
)

// Digest returns the ModShift32 digest of text. Positions are counted in
// code points and invalid UTF-8 bytes each hash as U+FFFD.
func Digest(text string) string {
	if text == "" {
		text = Placeholder
	}

	var acc uint64

	pos := 0

	for _, r := range text {
		acc = mix(acc, pos, r)
		pos++
	}

	return expand(avalanche(acc))
}

// DigestRunes returns the ModShift32 digest of an explicit code point
// sequence. Each element contributes its ordinal value unchanged.
func DigestRunes(text []rune) string {
	if len(text) == 0 {
		return Digest(Placeholder)
	}

	var acc uint64

	for pos, r := range text {
		acc = mix(acc, pos, r)
	}

	return expand(avalanche(acc))
}

// mix folds the code point at position pos into acc.
func mix(acc uint64, pos int, r rune) uint64 {
	shifted := uint64(uint32(r)) << (pos % 8)

	acc = (acc*prime + shifted) % modulus

	return (acc ^ (acc >> 16)) % modulus
}

// avalanche runs the three finishing rounds. Only the shifted operand is
// reduced; the XOR result is kept as is.
func avalanche(acc uint64) uint64 {
	for range 3 {
		acc ^= (acc << 13) % modulus
		acc ^= (acc >> 7) % modulus
		acc ^= (acc << 17) % modulus
	}

	return acc
}

// expand derives the four segments from acc and renders them as hex.
func expand(acc uint64) string {
	var sb strings.Builder

	sb.Grow(Size)

	for i := range uint64(segments) {
		hx := strconv.FormatUint(segment(acc, i), 16)

		for range segmentHex - len(hx) {
			sb.WriteByte('0')
		}

		sb.WriteString(hx)
	}

	out := sb.String()
	if len(out) > Size {
		out = out[:Size]
	}

	return out
}

// segment finalizes the i-th segment of acc.
func segment(acc uint64, i uint64) uint64 {
	seg := (acc + i*0x9e3779b9) % modulus
	seg = ((seg ^ (seg >> 16)) * 0x85ebca6b) % modulus
	seg = ((seg ^ (seg >> 13)) * 0x2b2ae35) % modulus

	return (seg ^ (seg >> 16)) % modulus
}
