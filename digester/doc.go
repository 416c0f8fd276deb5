// Package digester calculates and verifies ModShift32 file digests. It
// stores digests in companion .ms32 files alongside the original, so a
// later run can tell whether the content changed.
package digester
