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
package history

import (
	"github.com/stridetext/stride/operations"
	stride "github.com/stridetext/stride/types"
)

// DefaultMaxEntries is the retention used by the editor.
const DefaultMaxEntries = 100

// An Entry is a recorded edit and the cursor at the time it was made.
// The cursor row counts from the start of the text, not the top of the screen.
type Entry struct {
	Op     operations.Operation
	Cursor stride.Point
}

func (e Entry) Kind() operations.Kind {
	return e.Op.Kind()
}

// History is the undo timeline of one editing session.
// Live entries are entries[head : head+count]; the first current of them
// have been applied.
type History struct {
	entries  []Entry
	head     int
	count    int
	current  int
	max      int // zero or less keeps everything
	batching bool
	batch    []Entry
}

func NewHistory(max int) *History {
	return &History{max: max}
}

// Record adds an edit that has just been applied.
func (h *History) Record(op operations.Operation, at stride.Point) {
	e := Entry{Op: op, Cursor: at}
	if h.batching {
		h.batch = append(h.batch, e)
		return
	}
	h.push(e)
}

func (h *History) RecordInsert(position int, c rune, at stride.Point) {
	h.Record(&operations.InsertChar{Position: position, Character: c}, at)
}

func (h *History) RecordDelete(position int, c rune, at stride.Point) {
	h.Record(&operations.DeleteChar{Position: position, Character: c}, at)
}

func (h *History) RecordEnter(position, count int, at stride.Point) {
	h.Record(&operations.EnterLine{Position: position, Count: count}, at)
}

func (h *History) push(e Entry) {
	// cut the entries that could have been redone
	for i := h.current; i < h.count; i++ {
		h.entries[h.head+i] = Entry{}
	}
	h.count = h.current
	h.entries = append(h.entries[:h.head+h.count], e)
	h.count++
	h.current = h.count

	if h.max > 0 && h.count > h.max {
		h.entries[h.head] = Entry{}
		h.head++
		h.count--
		h.current--
		if h.head > len(h.entries)/2 {
			h.entries = append(h.entries[:0], h.entries[h.head:h.head+h.count]...)
			h.head = 0
		}
	}
}

// StartBatch starts collecting edits into one entry. Batches do not nest.
func (h *History) StartBatch() {
	h.batching = true
}

// EndBatch records the edits collected since StartBatch as one entry.
func (h *History) EndBatch() {
	if !h.batching {
		return
	}
	h.batching = false
	batch := h.batch
	h.batch = nil
	switch len(batch) {
	case 0:
		return
	case 1:
		h.push(batch[0])
	default:
		ops := make([]operations.Operation, len(batch))
		for i, e := range batch {
			ops[i] = e.Op
		}
		h.push(Entry{Op: &operations.Batch{Ops: ops}, Cursor: batch[0].Cursor})
	}
}

func (h *History) Batching() bool {
	return h.batching
}

// Undo reverts the current entry and returns the cursor recorded with it.
// It reports false when there is nothing to undo. An open batch is ended first.
func (h *History) Undo(s operations.Store) (stride.Point, bool, error) {
	h.EndBatch()
	if h.current == 0 {
		return stride.Point{}, false, nil
	}
	e := h.entries[h.head+h.current-1]
	if err := e.Op.Inverse().Perform(s); err != nil {
		return stride.Point{}, false, err
	}
	h.current--
	return e.Cursor, true, nil
}

// Redo applies the entry after the current one again and returns the cursor
// recorded with it. It reports false when there is nothing to redo.
func (h *History) Redo(s operations.Store) (stride.Point, bool, error) {
	h.EndBatch()
	if h.current == h.count {
		return stride.Point{}, false, nil
	}
	e := h.entries[h.head+h.current]
	if err := e.Op.Perform(s); err != nil {
		return stride.Point{}, false, err
	}
	h.current++
	return e.Cursor, true, nil
}

func (h *History) CanUndo() bool {
	return h.current > 0
}

func (h *History) CanRedo() bool {
	return h.current < h.count
}

// Len returns the number of entries in the timeline.
func (h *History) Len() int {
	return h.count
}

// Current returns how many entries are applied.
func (h *History) Current() int {
	return h.current
}

// Entries returns a copy of the timeline, oldest first.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries[h.head:h.head+h.count]...)
}

// Clear drops every entry.
func (h *History) Clear() {
	h.entries = nil
	h.head = 0
	h.count = 0
	h.current = 0
	h.batching = false
	h.batch = nil
}
