package tokenizer

import "testing"

// FuzzTokenize hunts for panics across arbitrary delimiter/quote/comment
// configurations and arbitrary input bytes; a malformed table is expected to
// produce an error code, never a crash.
func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"a,b,c\n1,2,3\n",
		"\"quoted\nfield\",2\n",
		"# comment\na,b\n1,2\n",
		"",
		",,,\n",
		"a,b\n\"unterminated\n",
		"\x00\x01,\n",
	}
	for _, s := range seeds {
		f.Add(s, uint8(','), uint8('"'), uint8('#'), 3)
	}

	f.Fuzz(func(t *testing.T, src string, delim, quote, comment uint8, numCols int) {
		if numCols < 0 || numCols > 64 {
			return
		}
		tok := New(uint32(delim), uint32(comment), uint32(quote), true, true, true)
		tok.SetNumCols(numCols)
		tok.Attach([]byte(src))

		useCols := make([]bool, numCols)
		for i := range useCols {
			useCols[i] = true
		}

		_ = tok.Tokenize(false, useCols, 0)

		for c := 0; c < numCols; c++ {
			tok.StartIteration(c)
			for !tok.FinishedIteration() {
				_ = tok.NextField()
			}
		}
	})
}

// FuzzNumericConversion confirms ToLong/ToDouble never panic on arbitrary
// field text and always settle on one of the two discriminated error codes
// when they fail.
func FuzzNumericConversion(f *testing.F) {
	seeds := []string{"123", "-0x1A", "1e400", "", "3.14", "nan", "inf", "99999999999999999999999999"}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, field string) {
		tok := New(',', 0, '"', false, true, true)
		if _, err := tok.ToLong([]byte(field)); err != nil {
			if tok.Code() != ConversionError && tok.Code() != OverflowError {
				t.Fatalf("ToLong error with unexpected code %v for %q", tok.Code(), field)
			}
		}

		tok.ClearCode()
		if _, err := tok.ToDouble([]byte(field)); err != nil {
			if tok.Code() != ConversionError && tok.Code() != OverflowError {
				t.Fatalf("ToDouble error with unexpected code %v for %q", tok.Code(), field)
			}
		}
	})
}
