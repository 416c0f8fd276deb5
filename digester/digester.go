package digester

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adiibhat/ModShift32-Hash-Generator/modshift32"
)

// Ext is the suffix of the sidecar file holding a stored
// digest.
const Ext = ".ms32"

// CalculateDigest computes the ModShift32 digest of the
// file at path, decoding its content as UTF-8. Returns
// empty string with no error if the file does not exist.
func CalculateDigest(path string) (result string, retErr error) {
	const errCtx = "calculating digest"

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	fi, err := os.Open(path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	hs := modshift32.New()

	if _, err := io.Copy(hs, fi); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return hs.Sum(), nil
}

// GetDigest reads a stored digest from the sidecar file.
// Returns empty string with no error if the sidecar file
// does not exist.
func GetDigest(path string) (string, error) {
	const errCtx = "getting stored digest"

	dp := path + Ext

	if _, err := os.Stat(dp); errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	digest, err := os.ReadFile(dp) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return strings.TrimSpace(string(digest)), nil
}

// VerifyDigest compares the calculated digest of the file
// against its stored sidecar digest. A file without a
// sidecar never verifies.
func VerifyDigest(path string) (bool, error) {
	const errCtx = "verifying digest"

	calc, err := CalculateDigest(path)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	stored, err := GetDigest(path)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	return stored != "" && calc == stored, nil
}

// SaveDigest calculates the digest of a file and writes it
// to the sidecar file.
func SaveDigest(path string) error {
	const errCtx = "saving digest"

	digest, err := CalculateDigest(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if digest == "" {
		return fmt.Errorf("%s: %s: %w", errCtx, path, os.ErrNotExist)
	}

	dp := path + Ext

	if err := os.WriteFile(dp, []byte(digest+"\n"), 0o600); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}
