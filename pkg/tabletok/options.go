// Package tabletok provides a configurable table-text tokenizer: a facade
// over internal/tokenizer's byte-stream state machine, in the style of the
// teacher's pkg/csv reader/writer options layer.
package tabletok

import (
	"log/slog"
	"unicode/utf8"
)

// Options configures a Tokenizer. It mirrors the teacher's ReaderOptions
// shape: a plain struct with a DefaultOptions constructor and a Validate
// method, rather than functional options, matching pkg/csv/options.go.
type Options struct {
	// Delimiter separates fields within a row.
	// Default: ','
	Delimiter rune

	// Comment, if not 0, marks a line as a comment to be skipped entirely
	// when it is the first non-whitespace content of the line.
	// Default: 0 (disabled)
	Comment rune

	// Quote, if not 0, is the character that begins and ends a quoted
	// field, inside which Delimiter is literal. A newline inside a quoted
	// field does not end the row, but the newline byte itself is not kept
	// in the field (nor, with StripWhitespaceLines, the space and tab bytes
	// that follow it).
	// Default: '"'
	Quote rune

	// FillExtraCols pads a short row with empty fields instead of raising
	// NotEnoughCols.
	// Default: false
	FillExtraCols bool

	// StripWhitespaceLines skips space and tab bytes at the start of a line;
	// trailing space and tab are not removed by this option. When set (and
	// Delimiter is not space or tab), a delimiter at the end of a line yields
	// a final empty field; when unset, no field follows that delimiter.
	// Default: false
	StripWhitespaceLines bool

	// StripWhitespaceFields trims leading/trailing space and tab bytes from
	// each individual field, including those just inside the quotes of a
	// quoted field.
	// Default: false
	StripWhitespaceFields bool

	// Logger receives pass-level diagnostic events (rows tokenized, error
	// codes, skip_rows behavior). A nil Logger disables diagnostics; the
	// core tokenizer itself never logs.
	// Default: nil
	Logger *slog.Logger
}

// DefaultOptions returns the default tokenizer configuration.
func DefaultOptions() Options {
	return Options{
		Delimiter:             ',',
		Comment:               0,
		Quote:                 '"',
		FillExtraCols:         false,
		StripWhitespaceLines:  false,
		StripWhitespaceFields: false,
		Logger:                nil,
	}
}

// validCodePoint reports whether r is usable as a structural code point
// (delimiter, comment, or quote character): a valid, non-replacement rune.
func validCodePoint(r rune) bool {
	return r != utf8.RuneError && utf8.ValidRune(r)
}

// Validate checks the option combination for internal consistency, the way
// pkg/csv/options.go's ReaderOptions.Validate does for encoding/csv-style
// options.
func (o Options) Validate() error {
	if o.Delimiter == 0 || !validCodePoint(o.Delimiter) {
		return &OptionsError{Field: "Delimiter", Message: "invalid delimiter"}
	}
	if o.Comment != 0 && !validCodePoint(o.Comment) {
		return &OptionsError{Field: "Comment", Message: "invalid comment character"}
	}
	if o.Quote != 0 && !validCodePoint(o.Quote) {
		return &OptionsError{Field: "Quote", Message: "invalid quote character"}
	}
	if o.Comment != 0 && o.Comment == o.Delimiter {
		return &OptionsError{Field: "Comment", Message: "comment character same as delimiter"}
	}
	if o.Quote != 0 && o.Quote == o.Delimiter {
		return &OptionsError{Field: "Quote", Message: "quote character same as delimiter"}
	}
	return nil
}

// OptionsError represents an invalid Options configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "tabletok: invalid " + e.Field + ": " + e.Message
}
