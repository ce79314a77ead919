//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"bytes"
	"log"

	"github.com/stridetext/stride/buffer"
	"github.com/stridetext/stride/history"
	"github.com/stridetext/stride/operations"
	stride "github.com/stridetext/stride/types"
	"github.com/stridetext/stride/window"
	"github.com/stridetext/stride/wrap"
)

var _ stride.Editor = (*Editor)(nil)

// DefaultSize is used when no screen size is known.
var DefaultSize = stride.Size{Rows: 24, Cols: 80}

// The Editor manages the editing of text in a Buffer.
type Editor struct {
	Cursor   stride.Point // rows count from 0, columns from 1
	Buffer   *buffer.Buffer
	History  *history.History
	size     stride.Size // Cols is fixed for the life of the editor
	fileName string
	options  []buffer.Option
}

func NewEditor(size stride.Size, maxHistory int, opts ...buffer.Option) *Editor {
	if size.Cols <= 2 {
		size.Cols = DefaultSize.Cols
	}
	if size.Rows <= 0 {
		size.Rows = DefaultSize.Rows
	}
	e := &Editor{
		Cursor:  stride.Point{Row: 0, Col: 1},
		Buffer:  buffer.NewBuffer(opts...),
		History: history.NewHistory(maxHistory),
		size:    size,
		options: opts,
	}
	e.fit()
	return e
}

func (e *Editor) ReadFile(path string) error {
	b, err := wrap.ReadFile(path, e.size.Cols, e.options...)
	if err != nil {
		return err
	}
	log.Printf("Read %s: %d characters", path, b.Len())
	e.Buffer.Release()
	e.Buffer = b
	e.History.Clear()
	e.Cursor = stride.Point{Row: 0, Col: 1}
	e.fileName = path
	e.fit()
	return nil
}

func (e *Editor) WriteFile(path string) error {
	if err := wrap.WriteFile(path, e.Buffer, e.size.Cols); err != nil {
		return err
	}
	log.Printf("Wrote %s", path)
	return nil
}

// Bytes returns the text as it would be saved.
func (e *Editor) Bytes() []byte {
	var out bytes.Buffer
	wrap.Save(&out, e.Buffer, e.size.Cols)
	return out.Bytes()
}

func (e *Editor) GetFileName() string {
	return e.fileName
}

func (e *Editor) SetFileName(name string) {
	e.fileName = name
}

func (e *Editor) GetCursor() stride.Point {
	return e.Cursor
}

func (e *Editor) SetCursor(cursor stride.Point) {
	e.Cursor = cursor
	e.keepCursorOnScreen()
}

func (e *Editor) GetSize() stride.Size {
	return e.size
}

// SetHeight changes the number of text rows on screen.
func (e *Editor) SetHeight(rows int) {
	if rows > 0 {
		e.size.Rows = rows
		e.keepCursorOnScreen()
	}
}

// Stride returns the number of characters in a row.
func (e *Editor) Stride() int {
	return window.Stride(e.size.Cols)
}

// Offset returns the offset in the text under the cursor.
func (e *Editor) Offset() int {
	return window.Offset(e.Cursor.Col, e.Cursor.Row, e.size.Cols, e.Buffer.Anchor())
}

// textCursor returns the cursor with its row counted from the start of the
// text rather than the top of the screen. History records cursors this way.
func (e *Editor) textCursor() stride.Point {
	return stride.Point{Row: e.FirstRow() + e.Cursor.Row, Col: e.Cursor.Col}
}

// restoreCursor places the cursor on a point taken from textCursor,
// scrolling until it is on screen.
func (e *Editor) restoreCursor(at stride.Point) {
	offset := window.Offset(at.Col, at.Row, e.size.Cols, 0)
	for offset < e.Buffer.Anchor() && window.ScrollUp(e.Buffer, e.size.Cols, e.size.Rows) {
	}
	if p, ok := window.Position(offset, e.size.Cols, e.Buffer.Anchor()); ok {
		e.Cursor = p
	}
	e.keepCursorOnScreen()
}

// InsertChar inserts c under the cursor and moves the cursor past it.
func (e *Editor) InsertChar(c rune) error {
	at := e.textCursor()
	p := e.Offset()
	if err := window.Extend(e.Buffer, p); err != nil {
		return err
	}
	op := &operations.InsertChar{Position: p, Character: c}
	if err := op.Perform(e.Buffer); err != nil {
		return err
	}
	e.History.RecordInsert(p, c, at)
	e.advance()
	return nil
}

// Backspace deletes the character before the cursor.
func (e *Editor) Backspace() error {
	at := e.textCursor()
	p := e.Offset()
	if p == 0 {
		return nil
	}
	e.retreat()
	if p-1 >= e.Buffer.Len() {
		return nil
	}
	c, _ := e.Buffer.At(p - 1)
	op := &operations.DeleteChar{Position: p - 1, Character: c}
	if err := op.Perform(e.Buffer); err != nil {
		return err
	}
	e.History.RecordDelete(p-1, c, at)
	e.fit()
	return nil
}

// DeleteChar deletes the character under the cursor.
func (e *Editor) DeleteChar() error {
	p := e.Offset()
	c, ok := e.Buffer.At(p)
	if !ok {
		return nil
	}
	op := &operations.DeleteChar{Position: p, Character: c}
	if err := op.Perform(e.Buffer); err != nil {
		return err
	}
	e.History.RecordDelete(p, c, e.textCursor())
	e.fit()
	return nil
}

// Enter pads the rest of the row with spaces, which pushes the text after
// the cursor down to the next row.
func (e *Editor) Enter() error {
	at := e.textCursor()
	p := e.Offset()
	if err := window.Extend(e.Buffer, p); err != nil {
		return err
	}
	e.History.StartBatch()
	defer e.History.EndBatch()
	count := e.Stride() - (e.Cursor.Col - 1)
	op := &operations.EnterLine{Position: p, Count: count}
	if err := op.Perform(e.Buffer); err != nil {
		return err
	}
	e.History.RecordEnter(p, count, at)
	e.Cursor.Row++
	e.Cursor.Col = 1
	e.keepCursorOnScreen()
	return nil
}

// Undo reverts the last edit. It reports false when there is nothing to undo.
func (e *Editor) Undo() (bool, error) {
	at, ok, err := e.History.Undo(e.Buffer)
	if err != nil || !ok {
		return false, err
	}
	e.restoreCursor(at)
	return true, nil
}

// Redo applies the last undone edit again.
func (e *Editor) Redo() (bool, error) {
	at, ok, err := e.History.Redo(e.Buffer)
	if err != nil || !ok {
		return false, err
	}
	e.restoreCursor(at)
	return true, nil
}

func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case stride.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		} else {
			window.ScrollUp(e.Buffer, e.size.Cols, e.size.Rows)
		}
	case stride.MoveDown:
		if e.Cursor.Row < e.size.Rows-1 {
			e.Cursor.Row++
		} else {
			window.ScrollDown(e.Buffer, e.size.Cols, e.size.Rows)
		}
	case stride.MoveLeft:
		e.retreat()
	case stride.MoveRight:
		e.advance()
	}
}

// advance moves the cursor one cell forward, wrapping to the next row.
func (e *Editor) advance() {
	e.Cursor.Col++
	if e.Cursor.Col > e.Stride() {
		e.Cursor.Col = 1
		e.Cursor.Row++
	}
	e.keepCursorOnScreen()
}

// retreat moves the cursor one cell back, wrapping to the previous row.
func (e *Editor) retreat() {
	switch {
	case e.Cursor.Col > 1:
		e.Cursor.Col--
	case e.Cursor.Row > 0:
		e.Cursor.Row--
		e.Cursor.Col = e.Stride()
	case e.Buffer.Anchor() > 0:
		window.ScrollUp(e.Buffer, e.size.Cols, e.size.Rows)
		e.Cursor.Col = e.Stride()
	}
}

// keepCursorOnScreen scrolls until the cursor row is visible.
func (e *Editor) keepCursorOnScreen() {
	for e.Cursor.Row < 0 && window.ScrollUp(e.Buffer, e.size.Cols, e.size.Rows) {
		e.Cursor.Row++
	}
	for e.Cursor.Row >= e.size.Rows && window.ScrollDown(e.Buffer, e.size.Cols, e.size.Rows) {
		e.Cursor.Row--
	}
	if e.Cursor.Row < 0 {
		e.Cursor.Row = 0
	}
	if e.Cursor.Row >= e.size.Rows {
		e.Cursor.Row = e.size.Rows - 1
	}
	if e.Cursor.Col < 1 {
		e.Cursor.Col = 1
	}
	if e.Cursor.Col > e.Stride() {
		e.Cursor.Col = e.Stride()
	}
	e.fit()
}

func (e *Editor) fit() {
	window.Fit(e.Buffer, e.size.Cols, e.size.Rows)
}

// FirstRow returns the index of the row at the top of the screen.
func (e *Editor) FirstRow() int {
	return e.Buffer.Anchor() / e.Stride()
}

// Row returns the text of screen row i, which may be short or empty
// past the end of the text.
func (e *Editor) Row(i int) []rune {
	start := e.Buffer.Anchor() + i*e.Stride()
	return e.Buffer.Slice(start, start+e.Stride())
}
