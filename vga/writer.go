// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package vga

const (
	lastRow = Height - 1
	lastCol = Width - 1

	bs = 0x08
	lf = '\n'
)

type byteClass int

const (
	printable byteClass = iota
	newline
	backspace
)

func classify(b byte) byteClass {
	switch b {
	case lf:
		return newline
	case bs:
		return backspace
	default:
		return printable
	}
}

// Writer turns a byte stream into cells, wrapping at the last column and
// scrolling at the last row. The logical position is always inside the grid.
// None of its methods fail.
type Writer struct {
	row, col int

	// attr is the default attribute, used for blanks and plain output.
	// printAttr only differs from it inside WriteStringAttr.
	attr      Attr
	printAttr Attr

	buf    *Buffer
	cursor *Cursor

	cursorVisible bool
}

// NewWriter returns a Writer at (0, 0) with a visible cursor.
func NewWriter(buf *Buffer, ports Ports, attr Attr) *Writer {
	return &Writer{
		attr:          attr,
		printAttr:     attr,
		buf:           buf,
		cursor:        NewCursor(ports),
		cursorVisible: true,
	}
}

func (w *Writer) Position() (row, col int) { return w.row, w.col }
func (w *Writer) Attr() Attr                { return w.attr }
func (w *Writer) CursorVisible() bool       { return w.cursorVisible }

// PutByte interprets one byte: '\n' starts a new line, 0x08 erases the
// previous cell, anything else is drawn as is.
func (w *Writer) PutByte(b byte) {
	switch classify(b) {
	case newline:
		w.NewLine()
	case backspace:
		w.backspace()
	default:
		w.put(b, w.printAttr)
	}
}

// PutString writes s byte by byte. Each byte is one cell, s is expected to be
// in the display code page already.
func (w *Writer) PutString(s string) {
	for i := 0; i < len(s); i++ {
		w.PutByte(s[i])
	}
}

// WriteStringAttr is PutString with printable bytes drawn in attr. Blanks
// left by backspace, scrolling and clearing keep the default attribute.
func (w *Writer) WriteStringAttr(s string, attr Attr) {
	w.printAttr = attr
	w.PutString(s)
	w.printAttr = w.attr
}

// Write implements io.Writer so the writer can sit behind fmt.Fprintf.
func (w *Writer) Write(p []byte) (int, error) {
	for _, b := range p {
		w.PutByte(b)
	}
	return len(p), nil
}

// NewLine moves to column 0 of the next row, scrolling when already on the
// last row.
func (w *Writer) NewLine() {
	if w.row < lastRow {
		w.row++
	} else {
		w.ScrollUp()
	}
	w.col = 0
	w.UpdateCursor()
}

// ScrollUp shifts every row up by one and blanks the last row. Rows are
// copied top to bottom so each source row is read before it is overwritten.
func (w *Writer) ScrollUp() {
	for r := 1; r <= lastRow; r++ {
		for c := 0; c <= lastCol; c++ {
			w.buf.Write(r-1, c, w.buf.Read(r, c))
		}
	}
	w.ClearRow(lastRow)
}

// ClearRow blanks every column of row. Rows outside the grid are ignored.
func (w *Writer) ClearRow(row int) {
	if row < 0 || row > lastRow {
		return
	}
	for c := 0; c <= lastCol; c++ {
		w.buf.Write(row, c, Blank(w.attr))
	}
}

// ClearCurrentRow blanks the current row and returns to its first column.
func (w *Writer) ClearCurrentRow() {
	w.ClearRow(w.row)
	w.col = 0
	w.UpdateCursor()
}

// ClearAll blanks rows 0 through the current row, not the whole screen, and
// returns to (0, 0). Rows below the current one keep their content.
func (w *Writer) ClearAll() {
	for r := 0; r <= w.row; r++ {
		w.ClearRow(r)
	}
	w.row, w.col = 0, 0
	w.UpdateCursor()
}

// SetCursorVisible shows the cursor by re-issuing its position, or hides it.
func (w *Writer) SetCursorVisible(visible bool) {
	w.cursorVisible = visible
	if visible {
		w.UpdateCursor()
	} else {
		w.cursor.Hide()
	}
}

// UpdateCursor copies the logical position into the hardware cursor. It does
// nothing while the cursor is hidden.
func (w *Writer) UpdateCursor() {
	if !w.cursorVisible {
		return
	}
	w.cursor.SetPosition(w.row, w.col)
}

func (w *Writer) put(b byte, attr Attr) {
	w.buf.Write(w.row, w.col, Cell{Code: b, Attr: attr})
	w.advance()
}

func (w *Writer) advance() {
	if w.col == lastCol {
		w.NewLine()
		return
	}
	w.col++
	w.UpdateCursor()
}

// backspace retreats and blanks, draws a blank over the same cell (which
// advances again), then retreats and blanks once more. The net effect is one
// cell back with that cell erased, at the cost of three cursor updates.
func (w *Writer) backspace() {
	w.retreat()
	w.put(0, w.attr)
	w.retreat()
}

// retreat steps one cell back, wrapping to the end of the previous row, and
// blanks the cell it lands on. At (0, 0) only the cursor is refreshed.
func (w *Writer) retreat() {
	switch {
	case w.col > 0:
		w.col--
	case w.row > 0:
		w.row--
		w.col = lastCol
	default:
		w.UpdateCursor()
		return
	}
	w.buf.Write(w.row, w.col, Blank(w.attr))
	w.UpdateCursor()
}
