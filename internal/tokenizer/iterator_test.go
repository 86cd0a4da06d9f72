package tokenizer

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestIterationEmptyFieldCanonicalization(t *testing.T) {
	tok := New(',', 0, '"', false, true, true)
	tok.SetNumCols(2)
	tok.Attach([]byte("x,y\n1,\n"))

	err := tok.Tokenize(false, []bool{true, true}, 1)
	assert.NoError(t, err)

	tok.StartIteration(1)
	assert.False(t, tok.FinishedIteration())
	f := tok.NextField()
	assert.Equal(t, 0, len(f))
	// Never the raw in-buffer marker byte.
	assert.NotEqual(t, []byte{emptyMarker}, f)
	assert.True(t, tok.FinishedIteration())
}

func TestIterationMultipleFieldsRoundTrip(t *testing.T) {
	tok := New(',', 0, '"', false, true, true)
	tok.SetNumCols(1)
	tok.Attach([]byte("x\nfoo\nbar\nbaz\n"))

	err := tok.Tokenize(false, []bool{true}, 1)
	assert.NoError(t, err)

	tok.StartIteration(0)
	var got []string
	for !tok.FinishedIteration() {
		got = append(got, string(tok.NextField()))
	}
	assert.Equal(t, []string{"foo", "bar", "baz"}, got)
}

func TestIterationHeaderSharesImplementation(t *testing.T) {
	tok := New(',', 0, '"', false, true, true)
	tok.Attach([]byte("alpha,beta,gamma\n"))

	err := tok.Tokenize(true, nil, 0)
	assert.NoError(t, err)

	tok.StartHeaderIteration()
	var got []string
	for !tok.FinishedIteration() {
		got = append(got, string(tok.NextField()))
	}
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, got)
}
