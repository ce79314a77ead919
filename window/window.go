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
package window

import (
	stride "github.com/stridetext/stride/types"
)

// Columns reserved on each screen row: a leading margin and the wrap column.
const reserved = 2

// A Viewport is text with a scrolled window onto it.
type Viewport interface {
	Len() int
	Anchor() int
	End() int
	SetViewport(anchor, end int)
}

// Text is storage that can be padded.
type Text interface {
	Len() int
	MoveCursor(position int) bool
	Insert(c rune) error
}

// Stride returns how many characters a screen row of width columns holds.
func Stride(width int) int {
	if width <= reserved {
		return 1
	}
	return width - reserved
}

// Offset converts a screen position to an offset in the text.
// Columns start at 1, rows at 0, and anchor is the offset of the first
// character on screen.
func Offset(col, row, width, anchor int) int {
	return (col - 1) + row*Stride(width) + anchor
}

// Position converts an offset back to a screen position. It reports false
// for offsets before the anchor.
func Position(offset, width, anchor int) (stride.Point, bool) {
	if offset < anchor {
		return stride.Point{}, false
	}
	n := Stride(width)
	d := offset - anchor
	return stride.Point{Row: d / n, Col: d%n + 1}, true
}

// ScrollUp moves the window up one row.
func ScrollUp(v Viewport, width, height int) bool {
	n := Stride(width)
	if v.Anchor() < n {
		return false
	}
	v.SetViewport(v.Anchor()-n, v.End()-n)
	Fit(v, width, height)
	return true
}

// ScrollDown moves the window down one row. The top row of the window goes
// no further than the empty row that follows the text.
func ScrollDown(v Viewport, width, height int) bool {
	n := Stride(width)
	if v.Anchor()+n > rowsEnd(v.Len(), n) {
		return false
	}
	v.SetViewport(v.Anchor()+n, v.End()+n)
	Fit(v, width, height)
	return true
}

// Fit recomputes the end of the window from its anchor.
func Fit(v Viewport, width, height int) {
	end := v.Anchor() + height*Stride(width)
	if end > v.Len() {
		end = v.Len()
	}
	if end < v.Anchor() {
		end = v.Anchor()
	}
	v.SetViewport(v.Anchor(), end)
}

// Extend pads t with spaces until it holds offset characters.
// Inserting past the end of the text goes through here first.
func Extend(t Text, offset int) error {
	if offset <= t.Len() {
		return nil
	}
	t.MoveCursor(t.Len())
	for t.Len() < offset {
		if err := t.Insert(' '); err != nil {
			return err
		}
	}
	return nil
}

// rowsEnd returns the offset just past the last row of text.
func rowsEnd(length, n int) int {
	return (length + n - 1) / n * n
}
