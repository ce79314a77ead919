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
package screen

import (
	"fmt"
	"path/filepath"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	stride "github.com/stridetext/stride/types"
)

// Gutter is the number of columns used by line numbers.
const Gutter = 4

// grey in the 256 color palette
const dimColor = termbox.Attribute(0xf3)

type Screen struct {
	size stride.Size // screen size
}

// NewScreen opens the terminal. Output settings are made once here.
func NewScreen() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	s := &Screen{}
	s.size.Cols, s.size.Rows = termbox.Size()
	return s, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) GetSize() stride.Size {
	return s.size
}

// TextSize returns the part of a screen of the given size that holds text.
func TextSize(size stride.Size) stride.Size {
	return stride.Size{Rows: size.Rows - 2, Cols: size.Cols - Gutter}
}

func (s *Screen) Render(e stride.Editor, c stride.Commander) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.size.Cols, s.size.Rows = termbox.Size()
	Draw(s, s.size, e, c)
	termbox.Flush()
}

func (s *Screen) SetCell(col int, row int, c rune, attr stride.Attribute) {
	fg, bg := termbox.ColorDefault, termbox.ColorDefault
	switch attr {
	case stride.AttrDim:
		fg = dimColor
	case stride.AttrReverse:
		fg |= termbox.AttrReverse
		bg |= termbox.AttrReverse
	}
	termbox.SetCell(col, row, c, fg, bg)
}

func (s *Screen) SetCursor(cursor stride.Point) {
	termbox.SetCursor(cursor.Col, cursor.Row)
}

// Draw renders an editor and its status onto a display of the given size.
func Draw(d stride.Display, size stride.Size, e stride.Editor, c stride.Commander) {
	if size.Rows > 2 {
		e.SetHeight(size.Rows - 2)
	}
	first := e.FirstRow()
	rows := e.GetSize().Rows
	for i := 0; i < rows && i < size.Rows-2; i++ {
		line := e.Row(i)
		if len(line) == 0 && i > 0 {
			break
		}
		drawString(d, 0, i, fmt.Sprintf("%3d", first+i+1), Gutter-1, stride.AttrDim)
		for j, ch := range line {
			d.SetCell(Gutter+j, i, glyph(ch), stride.AttrNormal)
		}
	}
	drawStatusBar(d, size, e)
	if size.Rows > 0 {
		drawString(d, 0, size.Rows-1, c.GetMessage(), size.Cols, stride.AttrNormal)
	}
	cursor := e.GetCursor()
	d.SetCursor(stride.Point{Row: cursor.Row, Col: Gutter + cursor.Col - 1})
}

func drawStatusBar(d stride.Display, size stride.Size, e stride.Editor) {
	if size.Rows < 2 {
		return
	}
	row := size.Rows - 2
	name := e.GetFileName()
	if name == "" {
		name = "Untitled"
	}
	left := " " + filepath.Base(name) + " "
	stats := e.Stats()
	cursor := e.GetCursor()
	right := fmt.Sprintf(" UTF-8 | L: %d | Ch: %d | W: %d | %d:%d ",
		stats.Rows, stats.Chars, stats.Words, e.FirstRow()+cursor.Row+1, cursor.Col)
	start := size.Cols - runewidth.StringWidth(right)
	if w := runewidth.StringWidth(left); start < w {
		start = w
	}
	for x := 0; x < size.Cols; x++ {
		d.SetCell(x, row, ' ', stride.AttrReverse)
	}
	drawString(d, 0, row, left, size.Cols, stride.AttrReverse)
	drawString(d, start, row, right, size.Cols-start, stride.AttrReverse)
}

// drawString draws at most n cells of text.
func drawString(d stride.Display, col, row int, text string, n int, attr stride.Attribute) {
	for _, ch := range text {
		if n <= 0 {
			return
		}
		d.SetCell(col, row, glyph(ch), attr)
		col++
		n--
	}
}

// glyph keeps one stored character in one screen cell.
func glyph(c rune) rune {
	if runewidth.RuneWidth(c) != 1 {
		return '?'
	}
	return c
}

func (s *Screen) GetNextEvent() *stride.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
		s.size.Cols, s.size.Rows = event.Width, event.Height
	}
	return convert(event)
}

func convert(event termbox.Event) *stride.Event {
	switch event.Type {
	case termbox.EventKey:
		return &stride.Event{Type: stride.EventKey, Key: key(event.Key), Ch: event.Ch}
	case termbox.EventResize:
		return &stride.Event{Type: stride.EventResize}
	case termbox.EventError:
		return &stride.Event{Type: stride.EventError}
	default:
		return &stride.Event{Type: stride.EventNone}
	}
}

func key(k termbox.Key) stride.Key {
	switch k {
	case termbox.KeyArrowDown:
		return stride.KeyArrowDown
	case termbox.KeyArrowLeft:
		return stride.KeyArrowLeft
	case termbox.KeyArrowRight:
		return stride.KeyArrowRight
	case termbox.KeyArrowUp:
		return stride.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return stride.KeyBackspace
	case termbox.KeyDelete:
		return stride.KeyDelete
	case termbox.KeyEnter:
		return stride.KeyEnter
	case termbox.KeyEsc:
		return stride.KeyEsc
	case termbox.KeySpace:
		return stride.KeySpace
	case termbox.KeyTab:
		return stride.KeyTab
	case termbox.KeyCtrlQ:
		return stride.KeyCtrlQ
	case termbox.KeyCtrlS:
		return stride.KeyCtrlS
	case termbox.KeyCtrlY:
		return stride.KeyCtrlY
	case termbox.KeyCtrlZ:
		return stride.KeyCtrlZ
	default:
		return stride.KeyUnsupported
	}
}
