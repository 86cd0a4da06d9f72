package tokenizer

import (
	"strconv"
	"strings"
)

// hasDigitSeparator reports whether s contains a '_' digit separator, which
// strconv's base-0 integer/float parsers accept (per Go's number literal
// syntax) but strtol/strtod — the grounding original's conversion
// primitives — never do: any underscore leaves strtol/strtod's scan
// position short of the end of the string, i.e. partial consumption, which
// is unconditionally CONVERSION_ERROR. Rejecting the separator up front
// keeps ToLong/ToDouble faithful to that original behavior instead of
// silently accepting Go-only numeric literal syntax.
func hasDigitSeparator(s string) bool {
	return strings.ContainsRune(s, '_')
}

// ToLong parses a null-terminated field (as returned by NextField, trailing
// terminator already stripped by the caller) as a base-0 integer, so "0x"
// and leading-"0" prefixes are honored as strtol(str, &tmp, 0) honors them.
// Unlike strtol, the "0b" and "0o" prefixes are also accepted and leading
// whitespace is not skipped.
// ConversionError is recorded if the parse consumed nothing or left bytes
// unconsumed; OverflowError is recorded if the value is out of range for a
// 64-bit signed integer. On ConversionError the returned value is 0; on
// OverflowError it is the clamped math.MaxInt64 or math.MinInt64, like
// strtol's LONG_MAX/LONG_MIN. Callers must ignore it when an error is
// present.
func (t *Tokenizer) ToLong(field []byte) (int64, error) {
	s := string(field)

	if hasDigitSeparator(s) {
		t.code = ConversionError
		return 0, &ConvertError{Code: ConversionError, Field: s}
	}

	v, err := strconv.ParseInt(s, 0, 64)
	if err == nil {
		return v, nil
	}

	numErr, ok := err.(*strconv.NumError)
	if ok && numErr.Err == strconv.ErrRange {
		t.code = OverflowError
		return v, &ConvertError{Code: OverflowError, Field: s}
	}
	t.code = ConversionError
	return 0, &ConvertError{Code: ConversionError, Field: s}
}

// ToDouble parses a null-terminated field as a float64, with the same
// error discipline as ToLong: a failed or partial parse is ConversionError,
// an out-of-range magnitude is OverflowError.
func (t *Tokenizer) ToDouble(field []byte) (float64, error) {
	s := string(field)

	if hasDigitSeparator(s) {
		t.code = ConversionError
		return 0, &ConvertError{Code: ConversionError, Field: s}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return v, nil
	}

	numErr, ok := err.(*strconv.NumError)
	if ok && numErr.Err == strconv.ErrRange {
		t.code = OverflowError
		return v, &ConvertError{Code: OverflowError, Field: s}
	}
	t.code = ConversionError
	return 0, &ConvertError{Code: ConversionError, Field: s}
}

// ClearCode resets the recorded error code, the discipline callers must
// follow between speculative to_long/to_double attempts (the type-inference
// policy typically tries integer, then double, then string).
func (t *Tokenizer) ClearCode() {
	t.code = NoError
}
