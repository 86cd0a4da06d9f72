package tabletok

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/shapestone/tabletok/internal/tokenizer"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Tokenizer wraps internal/tokenizer.Tokenizer with validated construction,
// sentinel-comparable errors, and optional structured diagnostics, the way
// pkg/csv.Reader wraps the teacher's internal parser.
//
// A Tokenizer is not safe for concurrent use by multiple goroutines;
// independent Tokenizers are independent.
type Tokenizer struct {
	core   *tokenizer.Tokenizer
	opts   Options
	passID uuid.UUID
}

// New validates opts and constructs a Tokenizer. An invalid option
// combination returns a non-nil *OptionsError.
func New(opts Options) (*Tokenizer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	core := tokenizer.New(
		uint32(opts.Delimiter),
		uint32(opts.Comment),
		uint32(opts.Quote),
		opts.FillExtraCols,
		opts.StripWhitespaceLines,
		opts.StripWhitespaceFields,
	)
	return &Tokenizer{core: core, opts: opts}, nil
}

func (t *Tokenizer) logger() *slog.Logger {
	if t.opts.Logger == nil {
		return discardLogger
	}
	return t.opts.Logger
}

// Attach borrows source for the next Tokenize call. The caller must keep it
// alive and unmodified until Tokenize returns, and by convention append a
// trailing 0x0A so the last record is terminated.
func (t *Tokenizer) Attach(source []byte) {
	t.core.Attach(source)
}

// SetNumCols sets the number of output columns a following data-mode
// Tokenize call will produce, typically from a prior header pass.
func (t *Tokenizer) SetNumCols(n int) {
	t.core.SetNumCols(n)
}

// NumCols returns the configured output column count.
func (t *Tokenizer) NumCols() int {
	return t.core.NumCols()
}

// NumRows returns the row count produced by the most recent Tokenize pass;
// a header-mode pass counts no rows and leaves it at 0.
func (t *Tokenizer) NumRows() int {
	return t.core.NumRows()
}

// Tokenize runs one tokenization pass over the attached source. headerMode
// collects a single field-name row; otherwise useCols selects which real
// input columns are retained and skipRows lines are skipped first.
//
// Every call is tagged with a correlation ID (visible to the caller only
// through Options.Logger) so a caller tokenizing many sources in sequence can
// line log output back up to the pass it came from.
func (t *Tokenizer) Tokenize(headerMode bool, useCols []bool, skipRows int) error {
	t.passID = uuid.New()
	log := t.logger()
	log.Debug("tokenize start", "pass", t.passID, "header", headerMode, "skip_rows", skipRows)

	err := t.core.Tokenize(headerMode, useCols, skipRows)
	if err != nil {
		wrapped := wrapTokenizeErr(err)
		log.Warn("tokenize failed", "pass", t.passID, "code", t.core.Code(), "err", wrapped)
		return wrapped
	}

	log.Debug("tokenize ok", "pass", t.passID, "rows", t.core.NumRows())
	return nil
}

// StartHeaderIteration begins iteration over the header field buffer.
func (t *Tokenizer) StartHeaderIteration() {
	t.core.StartHeaderIteration()
}

// StartIteration begins iteration over data column col.
func (t *Tokenizer) StartIteration(col int) {
	t.core.StartIteration(col)
}

// FinishedIteration reports whether the active iteration has no field left.
func (t *Tokenizer) FinishedIteration() bool {
	return t.core.FinishedIteration()
}

// NextField returns the next field in the active iteration. Its backing
// array is owned by the Tokenizer and valid only until the next Tokenize
// call; callers that need to retain it must copy.
func (t *Tokenizer) NextField() []byte {
	return t.core.NextField()
}

// ToLong parses field as a base-0 signed 64-bit integer.
func (t *Tokenizer) ToLong(field []byte) (int64, error) {
	v, err := t.core.ToLong(field)
	return v, wrapConvertErr(err)
}

// ToDouble parses field as a float64.
func (t *Tokenizer) ToDouble(field []byte) (float64, error) {
	v, err := t.core.ToDouble(field)
	return v, wrapConvertErr(err)
}

// ClearCode resets the recorded error code between speculative conversion
// attempts.
func (t *Tokenizer) ClearCode() {
	t.core.ClearCode()
}
