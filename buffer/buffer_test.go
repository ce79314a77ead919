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
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func insertString(t *testing.T, b *Buffer, s string) {
	t.Helper()
	for _, c := range s {
		if err := b.Insert(c); err != nil {
			t.Fatalf("Insert(%q) failed: %+v", c, err)
		}
	}
}

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()
	if b.Len() != 0 {
		t.Errorf("Invalid length of new buffer: %d", b.Len())
	}
	if b.Cap() != DefaultCapacity {
		t.Errorf("Invalid capacity of new buffer: %d", b.Cap())
	}
	if b.gapStart != 0 || b.gapEnd != DefaultCapacity {
		t.Errorf("Gap should span the buffer, got [%d,%d)", b.gapStart, b.gapEnd)
	}
}

func TestInsertAndDelete(t *testing.T) {
	b := NewBuffer()
	insertString(t, b, "hello")
	if s := b.String(); s != "hello" {
		t.Errorf("Unexpected text after insertion: '%s'", s)
	}
	if !b.Delete() {
		t.Errorf("Delete at end of text should succeed")
	}
	if s := b.String(); s != "hell" {
		t.Errorf("Unexpected text after deletion: '%s'", s)
	}
	if b.data[b.gapStart] != 0 {
		t.Errorf("Vacated cell was not cleared: %q", b.data[b.gapStart])
	}
	b.MoveCursor(0)
	if b.Delete() {
		t.Errorf("Delete at offset 0 should be a no-op")
	}
	if b.Len() != 4 {
		t.Errorf("Invalid length after no-op delete: %d", b.Len())
	}
}

func TestInsertAtCursor(t *testing.T) {
	b := NewBuffer()
	insertString(t, b, "held")
	b.MoveCursor(3)
	insertString(t, b, "lo wor")
	if s := b.String(); s != "hello world" {
		t.Errorf("Unexpected text after insertion: '%s'", s)
	}
	if b.Cursor() != 9 {
		t.Errorf("Cursor should follow inserted text, got %d", b.Cursor())
	}
}

func TestMoveCursor(t *testing.T) {
	b := NewBuffer(WithCapacity(16))
	insertString(t, b, "abcdefgh")
	for _, p := range []int{0, 8, 3, 5, 1, 7, 4} {
		if !b.MoveCursor(p) {
			t.Errorf("MoveCursor(%d) failed", p)
		}
		if b.Cursor() != p {
			t.Errorf("Cursor at %d after MoveCursor(%d)", b.Cursor(), p)
		}
		if s := b.String(); s != "abcdefgh" {
			t.Errorf("Text changed by MoveCursor(%d): '%s'", p, s)
		}
		if gap := b.gapEnd - b.gapStart; gap != 8 {
			t.Errorf("Gap size changed by MoveCursor(%d): %d", p, gap)
		}
	}
	if b.MoveCursor(9) || b.MoveCursor(-1) {
		t.Errorf("MoveCursor outside the text should fail")
	}
	if b.Cursor() != 4 {
		t.Errorf("Failed MoveCursor moved the cursor to %d", b.Cursor())
	}
}

func TestMoveCursorTwiceIsIdempotent(t *testing.T) {
	b := NewBuffer(WithCapacity(16))
	insertString(t, b, "abcdef")
	b.MoveCursor(2)
	before := append([]rune(nil), b.data...)
	start, end := b.gapStart, b.gapEnd
	b.MoveCursor(2)
	if diff := cmp.Diff(before, b.data); diff != "" {
		t.Errorf("Second MoveCursor moved data (-before +after):\n%s", diff)
	}
	if b.gapStart != start || b.gapEnd != end {
		t.Errorf("Second MoveCursor moved the gap")
	}
}

func TestGrowOnFullGap(t *testing.T) {
	b := NewBuffer(WithCapacity(4))
	insertString(t, b, "abcd")
	if b.gapStart != b.gapEnd {
		t.Fatalf("Gap should be full")
	}
	b.MoveCursor(2)
	insertString(t, b, "X")
	if b.Cap() != 4+GapSize {
		t.Errorf("Invalid capacity after growth: %d", b.Cap())
	}
	if gap := b.gapEnd - b.gapStart; gap != GapSize-1 {
		t.Errorf("Gap should hold the rest of the increment, got %d", gap)
	}
	if s := b.String(); s != "abXcd" {
		t.Errorf("Unexpected text after growth: '%s'", s)
	}
}

func TestGrow(t *testing.T) {
	b := NewBuffer(WithCapacity(8))
	insertString(t, b, "abcdef")
	b.MoveCursor(2)
	if err := b.Grow(4); err != nil || b.Cap() != 8 {
		t.Errorf("Grow to a smaller size should be a no-op: cap=%d err=%v", b.Cap(), err)
	}
	if err := b.Grow(64); err != nil {
		t.Fatalf("Grow failed: %+v", err)
	}
	if b.Cap() != 64 || b.Len() != 6 || b.Cursor() != 2 {
		t.Errorf("Unexpected state after Grow: cap=%d len=%d cursor=%d", b.Cap(), b.Len(), b.Cursor())
	}
	if s := b.String(); s != "abcdef" {
		t.Errorf("Grow changed the text: '%s'", s)
	}
}

func TestGrowLimit(t *testing.T) {
	b := NewBuffer(WithCapacity(4), WithMaxCapacity(6))
	insertString(t, b, "abcd")
	err := b.Grow(7)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Grow past the limit should fail, got %v", err)
	}
	if b.Cap() != 4 || b.String() != "abcd" {
		t.Errorf("Failed Grow changed the buffer")
	}
	err = b.Insert('e')
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Insert needing growth past the limit should fail, got %v", err)
	}
	if b.String() != "abcd" {
		t.Errorf("Failed Insert changed the text: '%s'", b.String())
	}
}

func TestAtAndSlice(t *testing.T) {
	b := NewBuffer(WithCapacity(8))
	insertString(t, b, "abcdef")
	b.MoveCursor(3)
	for i, want := range "abcdef" {
		if c, ok := b.At(i); !ok || c != want {
			t.Errorf("At(%d) = %q, %v; want %q", i, c, ok, want)
		}
	}
	if _, ok := b.At(6); ok {
		t.Errorf("At past the end should fail")
	}
	if s := string(b.Slice(1, 5)); s != "bcde" {
		t.Errorf("Unexpected slice across the gap: '%s'", s)
	}
	if s := string(b.Slice(4, 100)); s != "ef" {
		t.Errorf("Unexpected clipped slice: '%s'", s)
	}
	if b.Slice(5, 2) != nil {
		t.Errorf("Empty range should give a nil slice")
	}
}

// Random edits must leave the same text as the same edits applied to a plain slice.
func TestRandomEdits(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	b := NewBuffer(WithCapacity(3))
	var model []rune
	cursor := 0
	for i := 0; i < 5000; i++ {
		switch r.Intn(3) {
		case 0:
			c := rune('a' + r.Intn(26))
			if err := b.Insert(c); err != nil {
				t.Fatalf("Insert failed: %+v", err)
			}
			model = append(model[:cursor], append([]rune{c}, model[cursor:]...)...)
			cursor++
		case 1:
			if b.Delete() {
				model = append(model[:cursor-1], model[cursor:]...)
				cursor--
			} else if cursor != 0 {
				t.Fatalf("Delete failed with cursor at %d", cursor)
			}
		case 2:
			p := r.Intn(len(model) + 2)
			if b.MoveCursor(p) {
				cursor = p
			} else if p <= len(model) {
				t.Fatalf("MoveCursor(%d) failed with length %d", p, len(model))
			}
		}
		if b.Len() != len(model) {
			t.Fatalf("Length %d, want %d", b.Len(), len(model))
		}
	}
	if diff := cmp.Diff(string(model), b.String()); diff != "" {
		t.Errorf("Text differs from model (-want +got):\n%s", diff)
	}
}

func TestRelease(t *testing.T) {
	b := NewBuffer()
	insertString(t, b, "abc")
	b.SetViewport(1, 3)
	b.Release()
	if b.Len() != 0 || b.Cap() != 0 || b.Anchor() != 0 {
		t.Errorf("Released buffer should be empty")
	}
}
