package compare

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"

	"github.com/adiibhat/ModShift32-Hash-Generator/modshift32"
)

// Result holds the digests of one input.
type Result struct {
	Input      string `json:"input"      yaml:"input"`
	Runes      int    `json:"runes"      yaml:"runes"`
	ModShift32 string `json:"modshift32" yaml:"modshift32"`
	SHA256     string `json:"sha256"     yaml:"sha256"`
	XXHash64   string `json:"xxhash64"   yaml:"xxhash64"`
}

// Compare digests text with every algorithm. The reference digests are
// taken over the UTF-8 bytes of text as given, without the empty input
// placeholder ModShift32 applies.
func Compare(text string) Result {
	sum := sha256.Sum256([]byte(text))

	return Result{
		Input:      text,
		Runes:      utf8.RuneCountInString(text),
		ModShift32: modshift32.Digest(text),
		SHA256:     hex.EncodeToString(sum[:])[:modshift32.Size],
		XXHash64:   fmt.Sprintf("%016x", xxhash.Sum64String(text)),
	}
}

// All compares each text in order.
func All(texts []string) []Result {
	out := make([]Result, 0, len(texts))

	for _, tx := range texts {
		out = append(out, Compare(tx))
	}

	return out
}
