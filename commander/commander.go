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
	"fmt"
	"log"

	"github.com/stridetext/stride/buffer"
	"github.com/stridetext/stride/editor"
	stride "github.com/stridetext/stride/types"
)

const tabWidth = 8

type Commander struct {
	editor  *editor.Editor
	mode    int    // ModeEdit until the session ends
	message string // status message
}

func NewCommander(e *editor.Editor) *Commander {
	return &Commander{editor: e, mode: stride.ModeEdit}
}

func (c *Commander) IsRunning() bool {
	return c.mode != stride.ModeQuit
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) ProcessEvent(event *stride.Event) error {
	switch event.Type {
	case stride.EventKey:
		err := c.ProcessKey(event)
		if errors.Is(err, buffer.ErrCapacityExceeded) {
			c.message = err.Error()
			c.Quit()
		}
		return err
	case stride.EventError:
		return errors.New("terminal event error")
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *stride.Event) error {
	e := c.editor

	if event.Key == stride.KeyUnsupported && event.Ch != 0 {
		c.message = ""
		return e.InsertChar(event.Ch)
	}
	switch event.Key {
	case stride.KeyCtrlQ:
		c.Quit()
	case stride.KeyCtrlS:
		c.Save("")
	case stride.KeyCtrlZ:
		return c.Undo()
	case stride.KeyCtrlY:
		return c.Redo()
	case stride.KeyArrowUp:
		e.MoveCursor(stride.MoveUp)
	case stride.KeyArrowDown:
		e.MoveCursor(stride.MoveDown)
	case stride.KeyArrowLeft:
		e.MoveCursor(stride.MoveLeft)
	case stride.KeyArrowRight:
		e.MoveCursor(stride.MoveRight)
	case stride.KeyBackspace:
		return e.Backspace()
	case stride.KeyDelete:
		return e.DeleteChar()
	case stride.KeyEnter:
		return e.Enter()
	case stride.KeySpace:
		return e.InsertChar(' ')
	case stride.KeyTab:
		return c.Tab()
	}
	return nil
}

// Tab inserts spaces up to the next tab stop as one undoable edit.
func (c *Commander) Tab() error {
	e := c.editor
	e.History.StartBatch()
	defer e.History.EndBatch()
	for {
		if err := e.InsertChar(' '); err != nil {
			return err
		}
		if (e.GetCursor().Col-1)%tabWidth == 0 {
			return nil
		}
	}
}

func (c *Commander) Undo() error {
	ok, err := c.editor.Undo()
	if err != nil {
		log.Printf("Undo failed: %+v", err)
		return err
	}
	if !ok {
		c.message = "Nothing to undo"
	}
	return nil
}

func (c *Commander) Redo() error {
	ok, err := c.editor.Redo()
	if err != nil {
		log.Printf("Redo failed: %+v", err)
		return err
	}
	if !ok {
		c.message = "Nothing to redo"
	}
	return nil
}

// Save writes the text to filename, or to the editor's file when filename is empty.
// Unnamed text takes the name it is first saved under.
func (c *Commander) Save(filename string) error {
	if filename == "" {
		filename = c.editor.GetFileName()
	}
	if filename == "" {
		c.message = "No file name"
		return nil
	}
	if err := c.editor.WriteFile(filename); err != nil {
		c.message = err.Error()
		return err
	}
	if c.editor.GetFileName() == "" {
		c.editor.SetFileName(filename)
	}
	c.message = "File saved"
	return nil
}

// Quit saves the text and ends the session.
func (c *Commander) Quit() {
	if err := c.Save(""); err != nil {
		log.Printf("%+v", err)
	}
	c.mode = stride.ModeQuit
}

func (c *Commander) setMessage(format string, args ...interface{}) {
	c.message = fmt.Sprintf(format, args...)
}
