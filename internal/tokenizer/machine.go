package tokenizer

// Tokenize drives the state machine over the attached source. headerMode
// collects one line of field names into the header buffer; data mode fills
// numCols column buffers (set via SetNumCols, typically from a prior header
// pass). useCols is a per-real-column include/exclude flag slice; skipRows
// counts newlines to skip before tokenizing begins.
//
// Every prior pass's buffers are released first. Returns nil on success or a
// *TokenizeError carrying one of the spec.md error codes; the code is also
// recorded on the Tokenizer and retrievable via Code.
func (t *Tokenizer) Tokenize(headerMode bool, useCols []bool, skipRows int) error {
	t.deleteData()
	t.code = NoError

	col := 0
	realCol := 0
	t.numRows = 0
	t.pos = 0
	whitespace := true

	// Advance past skipRows complete lines (counted by 0x0A bytes) before
	// tokenizing begins. Running out of source first is an error in header
	// mode (a header line is required) but a clean empty result in data
	// mode (preserve both behaviors exactly per spec.md's open question).
	skipped := 0
	for skipped < skipRows {
		if t.pos >= len(t.source)-1 { // ignore the trailing newline byte
			if headerMode {
				t.code = InvalidLine
				return &TokenizeError{Code: InvalidLine, Row: 0, Col: 0}
			}
			t.store = newDataStore(t.numCols)
			return nil
		}
		c, n := getChar(t.source[t.pos:])
		t.pos += n
		if isASCIIByte(c, '\n') {
			skipped++
		}
	}

	if headerMode {
		t.store = newHeaderStore()
	} else {
		t.store = newDataStore(t.numCols)
	}

	// push writes the raw bytes of the currently decoded code point to the
	// active output target, gated exactly as the original PUSH_C macro: in
	// header mode every push is written; in data mode a push is written
	// only while col is within range and the real column is included.
	// (Go's slice bounds would panic where the original's PUSH_C silently
	// read past use_cols on an out-of-range real_col; END_FIELD always
	// catches that case and aborts the pass before it can be observed, so
	// the bounds check here changes nothing externally visible.)
	push := func(bs []byte) {
		if headerMode {
			t.store.header.pushBytes(bs)
			return
		}
		if col < t.numCols && realCol < len(useCols) && useCols[realCol] {
			t.store.columns[col].pushBytes(bs)
		}
	}
	pushByte := func(b byte) {
		if headerMode {
			t.store.header.pushByte(b)
			return
		}
		if col < t.numCols && realCol < len(useCols) && useCols[realCol] {
			t.store.columns[col].pushByte(b)
		}
	}

	// endField closes out the field currently being written, the way the
	// END_FIELD macro does: header fields are always finalized; data fields
	// enforce the use_cols/num_cols bookkeeping and report TooManyCols.
	endField := func() error {
		if headerMode {
			t.store.header.endField(t.stripWhitespaceFields)
			return nil
		}
		if realCol >= len(useCols) {
			t.code = TooManyCols
			return &TokenizeError{Code: TooManyCols, Row: t.numRows, Col: col}
		}
		if useCols[realCol] {
			if col >= t.numCols {
				t.code = TooManyCols
				return &TokenizeError{Code: TooManyCols, Row: t.numRows, Col: col}
			}
			t.store.columns[col].endField(t.stripWhitespaceFields)
			col++
		}
		realCol++
		return nil
	}

	// endLine closes out the row, the way the END_LINE macro does: a header
	// pass is done after one line; a data pass either pads short rows with
	// empty fields (fillExtraCols) or fails NotEnoughCols.
	endLine := func() (doneNow bool, err error) {
		if headerMode {
			return true, nil
		}
		if t.fillExtraCols {
			for col < t.numCols {
				pushByte(emptyMarker)
				if err := endField(); err != nil {
					return false, err
				}
			}
		} else if col < t.numCols {
			t.code = NotEnoughCols
			return false, &TokenizeError{Code: NotEnoughCols, Row: t.numRows, Col: col}
		}
		t.numRows++
		return false, nil
	}

	beginField := func() {
		t.state = startField
		whitespace = true
	}

	done := false

	for t.pos < len(t.source) && !done {
		c, n := getChar(t.source[t.pos:])
		t.lastLen = n
		repeat := true

		for repeat && !done {
			repeat = false

			switch t.state {
			case startLine:
				switch {
				case isASCIIByte(c, '\n'):
					// stay
				case isSpaceOrTab(c) && t.stripWhitespaceLines:
					// stay
				case t.comment != 0 && c == t.comment:
					t.state = comment
				default:
					col = 0
					realCol = 0
					beginField()
					repeat = true
				}

			case startField:
				switch {
				case isSpaceOrTab(c) && t.stripWhitespaceFields:
					// skip leading whitespace
				case !t.stripWhitespaceLines && t.comment != 0 && c == t.comment:
					t.state = comment
				case c == t.delimiter:
					if err := endField(); err != nil {
						return err
					}
					beginField()
				case isASCIIByte(c, '\n'):
					if t.stripWhitespaceLines {
						if !(t.delimiter == ' ' || t.delimiter == '\t') {
							if err := endField(); err != nil {
								return err
							}
						}
					}
					// strip_whitespace_lines disabled: the original's
					// trailing-whitespace-as-final-field recovery is
					// commented out upstream; current behavior is to end
					// the line without emitting a trailing field.
					doneNow, err := endLine()
					if err != nil {
						return err
					}
					done = doneNow
					t.state = startLine
				case c == t.quote && t.quote != 0:
					t.state = startQuotedField
				default:
					repeat = true
					t.state = field
				}

			case startQuotedField:
				switch {
				case isSpaceOrTab(c) && t.stripWhitespaceFields:
					// ignore initial whitespace
				case c == t.quote && t.quote != 0:
					if err := endField(); err != nil {
						return err
					}
				default:
					t.state = quotedField
					repeat = true
				}

			case field:
				switch {
				case t.comment != 0 && c == t.comment && whitespace && col == 0:
					t.state = comment
				case c == t.delimiter:
					if err := endField(); err != nil {
						return err
					}
					beginField()
				case isASCIIByte(c, '\n'):
					if err := endField(); err != nil {
						return err
					}
					doneNow, err := endLine()
					if err != nil {
						return err
					}
					done = doneNow
					t.state = startLine
				default:
					if !isSpaceOrTab(c) {
						whitespace = false
					}
					push(t.source[t.pos : t.pos+n])
				}

			case quotedField:
				switch {
				case c == t.quote && t.quote != 0:
					t.state = field
				case isASCIIByte(c, '\n'):
					t.state = quotedFieldNewline
				default:
					push(t.source[t.pos : t.pos+n])
				}

			case quotedFieldNewline:
				switch {
				case (isSpaceOrTab(c) && t.stripWhitespaceLines) || isASCIIByte(c, '\n'):
					// ignore
				case c == t.quote && t.quote != 0:
					t.state = field
				default:
					repeat = true
					t.state = quotedField
				}

			case comment:
				if isASCIIByte(c, '\n') {
					t.state = startLine
				}
			}
		}

		t.pos += n
	}

	t.code = NoError
	return nil
}
