package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/valyala/fasttemplate"

	"github.com/adiibhat/ModShift32-Hash-Generator/compare"
)

// Format selects the output encoding.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultTemplate mirrors the result panel of the original hash
// generator.
const DefaultTemplate = "ModShift32 Hash (32 chars):     {modshift32}\n" +
	"SHA-256 Hash (first 32 chars): {sha256}\n" +
	"xxhash64:                      {xxhash64}\n" +
	"Input length: {runes} characters\n"

// ParseFormat maps a flag value to a Format. The empty
// string selects FormatText.
func ParseFormat(value string) (Format, error) {
	const errCtx = "parsing format"

	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf(
			"%s: unknown format %q, want text, json or yaml",
			errCtx, value,
		)
	}
}

// Renderer writes results in a single format.
type Renderer struct {
	Format   Format
	Template string
}

// Render writes results to w. JSON and YAML always encode
// a list, text expands the template once per result.
func (rn *Renderer) Render(
	w io.Writer,
	results ...compare.Result,
) error {
	const errCtx = "rendering report"

	var err error

	switch rn.Format {
	case "", FormatText:
		err = rn.renderText(w, results)
	case FormatJSON:
		err = renderJSON(w, results)
	case FormatYAML:
		err = renderYAML(w, results)
	default:
		err = fmt.Errorf("unknown format %q", rn.Format)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func (rn *Renderer) renderText(
	w io.Writer,
	results []compare.Result,
) error {
	tpl := rn.Template
	if tpl == "" {
		tpl = DefaultTemplate
	}

	for _, res := range results {
		if _, err := fasttemplate.ExecuteStd(
			tpl, "{", "}", w, templateVars(res),
		); err != nil {
			return fmt.Errorf("writing text: %w", err)
		}
	}

	return nil
}

// templateVars exposes the fields of res as template tags.
func templateVars(res compare.Result) map[string]interface{} {
	return map[string]interface{}{
		"input":      res.Input,
		"runes":      strconv.Itoa(res.Runes),
		"modshift32": res.ModShift32,
		"sha256":     res.SHA256,
		"xxhash64":   res.XXHash64,
	}
}

func renderJSON(w io.Writer, results []compare.Result) error {
	if results == nil {
		results = []compare.Result{}
	}

	buf, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling json: %w", err)
	}

	buf = append(buf, '\n')

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}

	return nil
}

func renderYAML(w io.Writer, results []compare.Result) error {
	if results == nil {
		results = []compare.Result{}
	}

	buf, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshaling yaml: %w", err)
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("writing yaml: %w", err)
	}

	return nil
}
