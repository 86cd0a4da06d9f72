package tabletok

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func readColumn(tok *Tokenizer, col int) []string {
	tok.StartIteration(col)
	var out []string
	for !tok.FinishedIteration() {
		out = append(out, string(tok.NextField()))
	}
	return out
}

func readHeader(tok *Tokenizer) []string {
	tok.StartHeaderIteration()
	var out []string
	for !tok.FinishedIteration() {
		out = append(out, string(tok.NextField()))
	}
	return out
}

func newTokenizer(t *testing.T, fillExtraCols bool) *Tokenizer {
	t.Helper()
	opts := DefaultOptions()
	opts.FillExtraCols = fillExtraCols
	tok, err := New(opts)
	assert.NoError(t, err)
	return tok
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Delimiter = 0
	_, err := New(opts)
	assert.Error(t, err)
	var oErr *OptionsError
	assert.True(t, errors.As(err, &oErr))
}

func TestTokenizeHeader(t *testing.T) {
	src := []byte("a,b\n1,2\n3,4\n")

	header := newTokenizer(t, false)
	header.Attach(src)
	assert.NoError(t, header.Tokenize(true, nil, 0))
	assert.Equal(t, []string{"a", "b"}, readHeader(header))
}

func TestTokenizeDataRows(t *testing.T) {
	src := []byte("a,b\n1,2\n3,4\n")
	tok := newTokenizer(t, false)
	tok.SetNumCols(2)
	tok.Attach(src)

	err := tok.Tokenize(false, []bool{true, true}, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, tok.NumRows())
	assert.Equal(t, []string{"1", "3"}, readColumn(tok, 0))
	assert.Equal(t, []string{"2", "4"}, readColumn(tok, 1))
}

func TestTokenizeNotEnoughColsWrapsSentinel(t *testing.T) {
	src := []byte("a,b,c\n1,2\n")
	tok := newTokenizer(t, false)
	tok.SetNumCols(3)
	tok.Attach(src)

	err := tok.Tokenize(false, []bool{true, true, true}, 1)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotEnoughCols))
}

func TestTokenizeTooManyColsWrapsSentinel(t *testing.T) {
	src := []byte("1,2,3\n")
	tok := newTokenizer(t, false)
	tok.SetNumCols(2)
	tok.Attach(src)

	err := tok.Tokenize(false, []bool{true, true}, 0)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooManyCols))
}

func TestToLongAndToDoubleWrapSentinels(t *testing.T) {
	tok := newTokenizer(t, false)

	_, err := tok.ToLong([]byte("not-a-number"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrConversion))

	tok.ClearCode()

	_, err = tok.ToDouble([]byte("1e400"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverflow))
}

func TestFillExtraColsPadsShortRows(t *testing.T) {
	src := []byte("a,b,c\n1,2\n")
	tok := newTokenizer(t, true)
	tok.SetNumCols(3)
	tok.Attach(src)

	err := tok.Tokenize(false, []bool{true, true, true}, 1)
	assert.NoError(t, err)
	assert.Equal(t, []string{""}, readColumn(tok, 2))
}
