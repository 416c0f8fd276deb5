// Package main provides the modshift32 CLI that digests text
// with ModShift32 and prints it next to SHA-256 and xxhash64
// reference digests. It can also store and verify ModShift32
// digests of files in .ms32 sidecar files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/adiibhat/ModShift32-Hash-Generator/compare"
	"github.com/adiibhat/ModShift32-Hash-Generator/digester"
	"github.com/adiibhat/ModShift32-Hash-Generator/report"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return strings.Join(*af, ",")
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

var errDigestMismatch = errors.New("digest mismatch")

func run(
	args []string,
	stdin io.Reader,
	stdout io.Writer,
) (retErr error) {
	const errCtx = "modshift32"

	var texts arrayFlags

	var (
		inFile       string
		outFile      string
		format       string
		template     string
		saveDigest   string
		verifyDigest string
		lines        bool
	)

	fs := flag.NewFlagSet("modshift32", flag.ContinueOnError)

	fs.Var(
		&texts, "text",
		"text to digest (repeatable)",
	)

	fs.StringVar(
		&inFile, "infile", "",
		"file whose content is digested (default: stdin"+
			" when no --text is given)",
	)

	fs.BoolVar(
		&lines, "lines", false,
		"digest each input line separately",
	)

	fs.StringVar(
		&format, "format", "text",
		"output format: text, json or yaml",
	)

	fs.StringVar(
		&template, "template", "",
		"text output template with {input}, {runes},"+
			" {modshift32}, {sha256} and {xxhash64} tags",
	)

	fs.StringVar(
		&outFile, "output", "",
		"output file path (default: stdout)",
	)

	fs.StringVar(
		&saveDigest, "save-digest", "",
		"write the digest of this file to its .ms32 sidecar",
	)

	fs.StringVar(
		&verifyDigest, "verify-digest", "",
		"check this file against its .ms32 sidecar",
	)

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if saveDigest != "" || verifyDigest != "" {
		if err := runSidecar(saveDigest, verifyDigest); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	fm, err := report.ParseFormat(format)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	inputs := []string(texts)

	if inFile != "" || len(inputs) == 0 {
		read, err := readInput(inFile, stdin, lines)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		inputs = append(inputs, read...)
	}

	out := stdout

	if outFile != "" {
		fo, err := os.Create(outFile) //nolint:gosec // path from CLI flag
		if err != nil {
			return fmt.Errorf(
				"%s: creating output: %w",
				errCtx, err,
			)
		}

		defer func() {
			if closeErr := fo.Close(); closeErr != nil && retErr == nil {
				retErr = fmt.Errorf(
					"%s: closing output: %w",
					errCtx, closeErr,
				)
			}
		}()

		out = fo
	}

	rn := report.Renderer{Format: fm, Template: template}

	if err := rn.Render(out, compare.All(inputs)...); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// runSidecar saves and then verifies sidecar digests.
func runSidecar(savePath string, verifyPath string) error {
	if savePath != "" {
		if err := digester.SaveDigest(savePath); err != nil {
			return err
		}

		slog.Info(
			"digest saved",
			"path", savePath+digester.Ext,
		)
	}

	if verifyPath == "" {
		return nil
	}

	ok, err := digester.VerifyDigest(verifyPath)
	if err != nil {
		return err
	}

	if !ok {
		return fmt.Errorf("%s: %w", verifyPath, errDigestMismatch)
	}

	slog.Info("digest verified", "path", verifyPath)

	return nil
}

// readInput reads the whole input from inFile, or stdin
// when inFile is empty. With perLine set every line is a
// separate input and line endings are dropped.
func readInput(
	inFile string,
	stdin io.Reader,
	perLine bool,
) ([]string, error) {
	const errCtx = "reading input"

	var (
		content []byte
		err     error
	)

	if inFile != "" {
		content, err = os.ReadFile(inFile) //nolint:gosec // path from CLI flag
	} else {
		content, err = io.ReadAll(stdin)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	text := string(content)

	if !perLine {
		return []string{text}, nil
	}

	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}

	split := strings.Split(text, "\n")
	for i, ln := range split {
		split[i] = strings.TrimSuffix(ln, "\r")
	}

	return split, nil
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
