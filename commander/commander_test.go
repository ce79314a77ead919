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
package commander

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stridetext/stride/buffer"
	"github.com/stridetext/stride/editor"
	stride "github.com/stridetext/stride/types"
)

func setup(t *testing.T, opts ...buffer.Option) *Commander {
	e := editor.NewEditor(stride.Size{Rows: 5, Cols: 22}, 100, opts...)
	e.SetFileName(filepath.Join(t.TempDir(), "test.txt"))
	return NewCommander(e)
}

func key(c *Commander, k stride.Key) error {
	return c.ProcessEvent(&stride.Event{Type: stride.EventKey, Key: k})
}

func typeText(t *testing.T, c *Commander, text string) {
	t.Helper()
	for _, ch := range text {
		var err error
		if ch == ' ' {
			err = key(c, stride.KeySpace)
		} else {
			err = c.ProcessEvent(&stride.Event{Type: stride.EventKey, Ch: ch})
		}
		if err != nil {
			t.Fatalf("Event failed: %+v", err)
		}
	}
}

func text(c *Commander) string {
	return string(c.editor.Bytes())
}

func TestTyping(t *testing.T) {
	c := setup(t)
	typeText(t, c, "hello world")
	key(c, stride.KeyEnter)
	typeText(t, c, "again")
	if s := text(c); s != "hello world\nagain" {
		t.Errorf("Unexpected text: %q", s)
	}
	key(c, stride.KeyCtrlZ)
	if s := text(c); s != "hello world\nagai" {
		t.Errorf("Unexpected text after undo: %q", s)
	}
	key(c, stride.KeyCtrlY)
	if s := text(c); s != "hello world\nagain" {
		t.Errorf("Unexpected text after redo: %q", s)
	}
	if c.GetMessage() != "" {
		t.Errorf("Unexpected message: %s", c.GetMessage())
	}
}

func TestEditingKeys(t *testing.T) {
	c := setup(t)
	typeText(t, c, "abcd")
	key(c, stride.KeyBackspace)
	key(c, stride.KeyArrowLeft)
	key(c, stride.KeyArrowLeft)
	key(c, stride.KeyDelete)
	if s := text(c); s != "ac" {
		t.Errorf("Unexpected text: %q", s)
	}
	key(c, stride.KeyArrowRight)
	key(c, stride.KeyArrowDown)
	key(c, stride.KeyArrowUp)
	if cursor := c.editor.GetCursor(); cursor != (stride.Point{Row: 0, Col: 3}) {
		t.Errorf("Unexpected cursor: %+v", cursor)
	}
}

func TestNothingToUndo(t *testing.T) {
	c := setup(t)
	key(c, stride.KeyCtrlZ)
	if c.GetMessage() != "Nothing to undo" {
		t.Errorf("Unexpected message: %s", c.GetMessage())
	}
	key(c, stride.KeyCtrlY)
	if c.GetMessage() != "Nothing to redo" {
		t.Errorf("Unexpected message: %s", c.GetMessage())
	}
}

func TestTab(t *testing.T) {
	c := setup(t)
	typeText(t, c, "ab")
	key(c, stride.KeyTab)
	if cursor := c.editor.GetCursor(); cursor.Col != 9 {
		t.Errorf("Tab should move to the next tab stop, at %+v", cursor)
	}
	typeText(t, c, "x")
	if c.editor.Buffer.String() != "ab      x" {
		t.Errorf("Unexpected text: %q", c.editor.Buffer.String())
	}
	key(c, stride.KeyCtrlZ)
	key(c, stride.KeyCtrlZ)
	if c.editor.Buffer.String() != "ab" {
		t.Errorf("Tab should be undone in one step: %q", c.editor.Buffer.String())
	}
}

func TestSaveAndQuit(t *testing.T) {
	c := setup(t)
	typeText(t, c, "saved")
	key(c, stride.KeyCtrlS)
	if c.GetMessage() != "File saved" {
		t.Errorf("Unexpected message: %s", c.GetMessage())
	}
	got, err := os.ReadFile(c.editor.GetFileName())
	if err != nil || string(got) != "saved" {
		t.Errorf("Unexpected file contents %q (%v)", got, err)
	}
	typeText(t, c, " twice")
	if !c.IsRunning() {
		t.Fatalf("Commander should be running")
	}
	key(c, stride.KeyCtrlQ)
	if c.IsRunning() {
		t.Errorf("Commander should stop after quit")
	}
	got, _ = os.ReadFile(c.editor.GetFileName())
	if string(got) != "saved twice" {
		t.Errorf("Quit should save the text, got %q", got)
	}
}

func TestSaveWithoutName(t *testing.T) {
	c := setup(t)
	c.editor.SetFileName("")
	key(c, stride.KeyCtrlS)
	if c.GetMessage() != "No file name" {
		t.Errorf("Unexpected message: %s", c.GetMessage())
	}
	name := filepath.Join(t.TempDir(), "named.txt")
	typeText(t, c, "named")
	if err := c.Save(name); err != nil {
		t.Fatalf("Save failed: %+v", err)
	}
	if c.editor.GetFileName() != name {
		t.Errorf("Unnamed text should take the name it is saved under, got '%s'", c.editor.GetFileName())
	}
	typeText(t, c, "!")
	key(c, stride.KeyCtrlS)
	got, _ := os.ReadFile(name)
	if string(got) != "named!" {
		t.Errorf("Unexpected file contents: %q", got)
	}
}

func TestCapacityExceededStops(t *testing.T) {
	c := setup(t, buffer.WithCapacity(2), buffer.WithMaxCapacity(4))
	var err error
	for i := 0; i < 5 && err == nil; i++ {
		err = c.ProcessEvent(&stride.Event{Type: stride.EventKey, Ch: 'x'})
	}
	if !errors.Is(err, buffer.ErrCapacityExceeded) {
		t.Fatalf("Expected capacity failure, got %v", err)
	}
	if c.IsRunning() {
		t.Errorf("Commander should stop after a capacity failure")
	}
}
