package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/shapestone/tabletok/pkg/tabletok"
)

// tokenizeAndPrint runs a header pass followed by a data pass over data and
// prints the resulting columns, the way the teacher's examples/main.go walks
// a parsed document and prints its records.
func tokenizeAndPrint(p *printer, data []byte) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	opts := tabletok.DefaultOptions()
	opts.Delimiter = runeOrDefault(cli.Delimiter, ',')
	opts.Comment = runeOrDefault(cli.Comment, 0)
	opts.Quote = runeOrDefault(cli.Quote, 0)
	opts.FillExtraCols = cli.FillExtraCols
	opts.StripWhitespaceFields = cli.StripWhitespaceFields
	opts.Logger = logger

	tok, err := tabletok.New(opts)
	if err != nil {
		return err
	}

	tok.Attach(data)
	if err := tok.Tokenize(true, nil, 0); err != nil {
		return reportTokenizeError(p, err)
	}

	tok.StartHeaderIteration()
	var headers []string
	for !tok.FinishedIteration() {
		headers = append(headers, string(tok.NextField()))
	}
	tok.SetNumCols(len(headers))

	useCols := make([]bool, len(headers))
	for i := range useCols {
		useCols[i] = true
	}

	tok.Attach(data)
	if err := tok.Tokenize(false, useCols, cli.SkipRows+1); err != nil {
		return reportTokenizeError(p, err)
	}

	p.success("tokenized " + cli.File)
	p.infof("%d rows, %d columns", tok.NumRows(), tok.NumCols())

	for i, name := range headers {
		p.header(name)
		for _, field := range columnValues(tok, i) {
			p.infof("  %s", field)
		}
	}
	return nil
}

func columnValues(tok *tabletok.Tokenizer, col int) []string {
	tok.StartIteration(col)
	var out []string
	for !tok.FinishedIteration() {
		out = append(out, string(tok.NextField()))
	}
	return out
}

func reportTokenizeError(p *printer, err error) error {
	code := "UNKNOWN"
	switch {
	case errors.Is(err, tabletok.ErrInvalidLine):
		code = "INVALID_LINE"
	case errors.Is(err, tabletok.ErrTooManyCols):
		code = "TOO_MANY_COLS"
	case errors.Is(err, tabletok.ErrNotEnoughCols):
		code = "NOT_ENOUGH_COLS"
	case errors.Is(err, tabletok.ErrConversion):
		code = "CONVERSION_ERROR"
	case errors.Is(err, tabletok.ErrOverflow):
		code = "OVERFLOW_ERROR"
	}
	p.errorCode(code, err.Error())
	return err
}

// runeOrDefault returns the single rune in s, or def if s is empty. CLI flags
// for structural characters are taken as strings so an empty value can mean
// "disabled" (comment) without colliding with a real code point.
func runeOrDefault(s string, def rune) rune {
	if s == "" {
		return def
	}
	r := []rune(s)
	return r[0]
}
