// Package report renders comparison results as text, JSON or YAML. Text
// output expands a template with single-brace {name} tags through
// valyala/fasttemplate; the available tags are input, runes, modshift32,
// sha256 and xxhash64.
package report
