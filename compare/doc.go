// Package compare puts a ModShift32 digest side by side with reference
// digests of the same text: SHA-256 truncated to 32 hex characters and
// xxhash64.
package compare
