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
package buffer

import (
	"errors"
	"fmt"
)

const (
	DefaultCapacity = 1024 // initial storage, in runes
	GapSize         = 5    // cells added when an insert finds the gap full
)

// ErrCapacityExceeded is returned when storage cannot grow to the requested size.
var ErrCapacityExceeded = errors.New("buffer capacity exceeded")

// A Buffer holds text in a gap buffer.
// The gap is data[gapStart:gapEnd]; the text is data[:gapStart] followed by data[gapEnd:].
type Buffer struct {
	data      []rune
	gapStart  int
	gapEnd    int
	anchor    int // offset of the first character on screen
	end       int // offset just past the last character on screen
	initial   int
	increment int
	limit     int
}

func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		initial:   DefaultCapacity,
		increment: GapSize,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.limit > 0 && b.initial > b.limit {
		b.initial = b.limit
	}
	b.data = make([]rune, b.initial)
	b.gapEnd = len(b.data)
	return b
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return len(b.data) - (b.gapEnd - b.gapStart)
}

// Cap returns the size of the storage, gap included.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Cursor returns the offset where the next insert will land.
func (b *Buffer) Cursor() int {
	return b.gapStart
}

func (b *Buffer) Anchor() int {
	return b.anchor
}

func (b *Buffer) End() int {
	return b.end
}

// SetViewport records the range of offsets currently shown on screen.
func (b *Buffer) SetViewport(anchor, end int) {
	b.anchor = anchor
	b.end = end
}

// Insert writes c at the cursor and moves the cursor past it.
func (b *Buffer) Insert(c rune) error {
	if b.gapStart == b.gapEnd {
		if err := b.Grow(len(b.data) + b.increment); err != nil {
			return err
		}
	}
	b.data[b.gapStart] = c
	b.gapStart++
	return nil
}

// Delete removes the character before the cursor.
// It reports false and does nothing when the cursor is at the start.
func (b *Buffer) Delete() bool {
	if b.gapStart == 0 {
		return false
	}
	b.gapStart--
	b.data[b.gapStart] = 0
	return true
}

// MoveCursor moves the gap so that the cursor is at position.
// It reports false and does nothing when position is outside the text.
func (b *Buffer) MoveCursor(position int) bool {
	if position < 0 || position > b.Len() {
		return false
	}
	switch {
	case position < b.gapStart:
		n := b.gapStart - position
		copy(b.data[b.gapEnd-n:b.gapEnd], b.data[position:b.gapStart])
		b.gapStart = position
		b.gapEnd -= n
	case position > b.gapStart:
		n := position - b.gapStart
		copy(b.data[b.gapStart:b.gapStart+n], b.data[b.gapEnd:b.gapEnd+n])
		b.gapStart = position
		b.gapEnd += n
	}
	return true
}

// Grow enlarges the storage to capacity runes. The text after the gap is moved
// to the end of the new storage, so the gap absorbs all of the added space.
// Smaller requests are ignored.
func (b *Buffer) Grow(capacity int) error {
	if capacity <= len(b.data) {
		return nil
	}
	if b.limit > 0 && capacity > b.limit {
		return fmt.Errorf("grow to %d runes (limit %d): %w", capacity, b.limit, ErrCapacityExceeded)
	}
	data := make([]rune, capacity)
	copy(data, b.data[:b.gapStart])
	tail := len(b.data) - b.gapEnd
	copy(data[capacity-tail:], b.data[b.gapEnd:])
	b.data = data
	b.gapEnd = capacity - tail
	return nil
}

// Release drops the storage and leaves the buffer empty.
func (b *Buffer) Release() {
	b.data = nil
	b.gapStart = 0
	b.gapEnd = 0
	b.anchor = 0
	b.end = 0
}

// index maps a logical offset to its cell in data.
func (b *Buffer) index(i int) int {
	if i < b.gapStart {
		return i
	}
	return b.gapEnd + (i - b.gapStart)
}

// At returns the character at offset i.
func (b *Buffer) At(i int) (rune, bool) {
	if i < 0 || i >= b.Len() {
		return 0, false
	}
	return b.data[b.index(i)], true
}

// Slice returns a copy of the characters in [from, to), clipped to the text.
func (b *Buffer) Slice(from, to int) []rune {
	if from < 0 {
		from = 0
	}
	if to > b.Len() {
		to = b.Len()
	}
	if from >= to {
		return nil
	}
	out := make([]rune, 0, to-from)
	if from < b.gapStart {
		out = append(out, b.data[from:min(to, b.gapStart)]...)
	}
	if to > b.gapStart {
		out = append(out, b.data[b.index(max(from, b.gapStart)):b.index(to)]...)
	}
	return out
}

// Runes returns a copy of the whole text.
func (b *Buffer) Runes() []rune {
	return b.Slice(0, b.Len())
}

func (b *Buffer) String() string {
	return string(b.Runes())
}
