package tokenizer

// StartHeaderIteration positions the iteration cursor at the start of the
// header buffer.
func (t *Tokenizer) StartHeaderIteration() {
	t.iterHeader = true
	t.cursor = 0
}

// StartIteration positions the iteration cursor at the start of output
// column col's buffer.
func (t *Tokenizer) StartIteration(col int) {
	t.iterHeader = false
	t.iterCol = col
	t.cursor = 0
}

// activeBuffer returns the buffer the iteration cursor currently walks.
func (t *Tokenizer) activeBuffer() []byte {
	if t.iterHeader {
		return t.store.header.buf
	}
	return t.store.columns[t.iterCol].buf
}

// FinishedIteration reports whether iteration over the active buffer is
// complete: either the cursor has reached the buffer's capacity, or it sits
// on a zero byte. Both conditions signal end-of-data because the unused
// tail of every buffer is always zero-filled.
func (t *Tokenizer) FinishedIteration() bool {
	buf := t.activeBuffer()
	return t.cursor >= len(buf) || buf[t.cursor] == fieldTerminator
}

// NextField returns the next null-terminated field from the active buffer
// as a byte slice sharing the buffer's backing array, and advances the
// cursor one byte past the terminator. A field whose stored payload is the
// single-byte empty marker is canonicalized to the shared empty sentinel so
// callers never observe the 0x01 in-buffer marker.
func (t *Tokenizer) NextField() []byte {
	buf := t.activeBuffer()
	start := t.cursor

	for t.cursor < len(buf) && buf[t.cursor] != fieldTerminator {
		n := t.lastLenAt(buf, t.cursor)
		t.cursor += n
	}

	field := buf[start:t.cursor]
	t.cursor++ // next field begins after the terminator

	if len(field) == 1 && field[0] == emptyMarker {
		return t.emptyField[:0]
	}
	return field
}

// lastLenAt decodes the code point at buf[pos] and returns its encoded
// length, the way next_field walks a field via repeated get_char calls in
// the original tokenizer.
func (t *Tokenizer) lastLenAt(buf []byte, pos int) int {
	_, n := getChar(buf[pos:])
	if n < 1 {
		n = 1
	}
	return n
}
