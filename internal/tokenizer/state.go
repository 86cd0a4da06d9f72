// Package tokenizer implements the core byte-stream table-text tokenizer:
// a multi-state parser that turns a UTF-8 buffer holding a delimited table
// (header plus rows, optionally quoted, optionally commented) into per-column
// null-terminated field buffers, plus the cursor-based iteration protocol
// downstream typed converters read those buffers through.
package tokenizer

// state names one of the seven tokenizer states.
type state int

const (
	startLine state = iota
	startField
	startQuotedField
	field
	quotedField
	quotedFieldNewline
	comment
)

// Tokenizer drives the state machine described in the package doc over a
// borrowed source buffer. It is not safe for concurrent use by multiple
// goroutines; independent Tokenizers are independent.
type Tokenizer struct {
	source []byte
	pos    int // byte offset of the next unread code point in source

	delimiter uint32
	comment   uint32 // 0 means "no comment character"
	quote     uint32 // 0 means "no quote character"

	fillExtraCols        bool
	stripWhitespaceLines bool
	stripWhitespaceFields bool

	state state
	code  ErrCode

	store   *columnStore
	numCols int
	numRows int

	// iteration cursor
	iterHeader bool
	iterCol    int
	cursor     int

	lastLen int

	// emptyField is the shared two-byte zero sentinel NextField returns in
	// place of the single-byte empty marker, canonicalizing an empty field
	// for downstream consumers. It is owned for the whole tokenizer lifetime.
	emptyField [2]byte
}

// New creates a Tokenizer configured with the given structural code points
// and policy flags. comment == 0 disables comment-line recognition; quote ==
// 0 disables quoting.
func New(delimiter, comment, quote uint32, fillExtraCols, stripWhitespaceLines, stripWhitespaceFields bool) *Tokenizer {
	return &Tokenizer{
		delimiter:             delimiter,
		comment:               comment,
		quote:                 quote,
		fillExtraCols:         fillExtraCols,
		stripWhitespaceLines:  stripWhitespaceLines,
		stripWhitespaceFields: stripWhitespaceFields,
		state:                 startLine,
	}
}

// Attach borrows source for the duration of the next Tokenize call. The
// caller must keep it alive and unmodified until Tokenize returns; by
// convention the caller appends a single 0x0A byte so the last record ends
// with a newline.
func (t *Tokenizer) Attach(source []byte) {
	t.source = source
	t.pos = 0
}

// SetNumCols sets the number of output columns a subsequent data-mode
// Tokenize call will produce, typically from a prior header pass.
func (t *Tokenizer) SetNumCols(n int) {
	t.numCols = n
}

// NumCols returns the configured number of output columns.
func (t *Tokenizer) NumCols() int {
	return t.numCols
}

// NumRows returns the number of completed data rows from the most recent
// Tokenize pass; a header-mode pass counts no rows and leaves it at 0.
func (t *Tokenizer) NumRows() int {
	return t.numRows
}

// Code returns the error code recorded by the most recent Tokenize call or
// numeric conversion.
func (t *Tokenizer) Code() ErrCode {
	return t.code
}

// deleteData releases any buffers from a prior pass, the way delete_data
// frees header_output/output_cols/col_ptrs between tokenize() calls.
func (t *Tokenizer) deleteData() {
	t.store = nil
}
