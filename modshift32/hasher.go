package modshift32

import (
	"unicode/utf8"
)

// Hasher computes a ModShift32 digest incrementally. The zero value is
// ready to use. A Hasher must not be used from multiple goroutines at once.
type Hasher struct {
	acc uint64
	pos int

	// pending holds the head of a UTF-8 sequence split across writes.
	pending  [utf8.UTFMax]byte
	npending int
}

// New returns an empty Hasher.
func New() *Hasher {
	return &Hasher{}
}

// Write decodes p as UTF-8 and folds every complete code point into the
// digest. It never returns an error.
func (hs *Hasher) Write(p []byte) (int, error) {
	data := p

	if hs.npending > 0 {
		data = make([]byte, 0, hs.npending+len(p))
		data = append(data, hs.pending[:hs.npending]...)
		data = append(data, p...)
		hs.npending = 0
	}

	for len(data) > 0 {
		if !utf8.FullRune(data) {
			hs.npending = copy(hs.pending[:], data)

			break
		}

		r, size := utf8.DecodeRune(data)
		hs.fold(r)
		data = data[size:]
	}

	return len(p), nil
}

// WriteString is Write for a string.
func (hs *Hasher) WriteString(s string) (int, error) {
	n := len(s)

	if hs.npending > 0 {
		return hs.Write([]byte(s))
	}

	for len(s) > 0 {
		if !utf8.FullRuneInString(s) {
			hs.npending = copy(hs.pending[:], s)

			break
		}

		r, size := utf8.DecodeRuneInString(s)
		hs.fold(r)
		s = s[size:]
	}

	return n, nil
}

// WriteRune folds r by its ordinal value. Buffered bytes of an incomplete
// UTF-8 sequence are flushed as U+FFFD first.
func (hs *Hasher) WriteRune(r rune) (int, error) {
	hs.flush()
	hs.fold(r)

	n := utf8.RuneLen(r)
	if n < 0 {
		n = utf8.RuneLen(utf8.RuneError)
	}

	return n, nil
}

// Sum returns the digest of everything written so far. It does not change
// the state of the Hasher.
func (hs *Hasher) Sum() string {
	cp := *hs
	cp.flush()

	if cp.pos == 0 {
		return Digest(Placeholder)
	}

	return expand(avalanche(cp.acc))
}

// Len returns the number of code points folded so far, not counting
// buffered bytes of an incomplete sequence.
func (hs *Hasher) Len() int {
	return hs.pos
}

// Reset returns the Hasher to its initial state.
func (hs *Hasher) Reset() {
	*hs = Hasher{}
}

func (hs *Hasher) fold(r rune) {
	hs.acc = mix(hs.acc, hs.pos, r)
	hs.pos++
}

// flush folds each buffered byte as one U+FFFD, matching how an
// incomplete trailing sequence decodes.
func (hs *Hasher) flush() {
	for range hs.npending {
		hs.fold(utf8.RuneError)
	}

	hs.npending = 0
}
