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
package types

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventError  = 3
	EventNone   = -1
)

const (
	ModeEdit = 0
	ModeQuit = 1
)

type Key uint16

// Keys that the commander understands.
const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEsc
	KeySpace
	KeyTab
	KeyCtrlQ
	KeyCtrlS
	KeyCtrlY
	KeyCtrlZ
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

// The Editor is the part of an editing session the screen draws.
type Editor interface {
	GetCursor() Point
	GetFileName() string
	GetSize() Size
	SetHeight(rows int)
	FirstRow() int
	Row(i int) []rune
	Stats() Stats
}

type Commander interface {
	GetMessage() string
}

// A Display receives the cells of a rendered editor.
type Display interface {
	SetCell(col int, row int, c rune, attr Attribute)
	SetCursor(cursor Point)
}

type Attribute uint16

const (
	AttrNormal Attribute = iota
	AttrDim
	AttrReverse
)

// Stats summarizes the text being edited for the status bar.
type Stats struct {
	Rows  int
	Words int
	Chars int
}
