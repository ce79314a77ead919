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
	"os"
	"sync"

	"github.com/steelseries/golisp"

	stride "github.com/stridetext/stride/types"
)

// golisp primitives are global, so scripts act on the commander that is
// evaluating them.
var (
	lock    sync.Mutex
	current *Commander
)

func init() {
	golisp.MakePrimitiveFunction("insert", "1", InsertImpl)
	golisp.MakePrimitiveFunction("enter", "0", EnterImpl)
	golisp.MakePrimitiveFunction("backspace", "0", BackspaceImpl)
	golisp.MakePrimitiveFunction("delete", "0", DeleteImpl)
	golisp.MakePrimitiveFunction("move", "2", MoveImpl)
	golisp.MakePrimitiveFunction("undo", "0", UndoImpl)
	golisp.MakePrimitiveFunction("redo", "0", RedoImpl)
	golisp.MakePrimitiveFunction("can-undo", "0", CanUndoImpl)
	golisp.MakePrimitiveFunction("can-redo", "0", CanRedoImpl)
	golisp.MakePrimitiveFunction("save", "0|1", SaveImpl)
	golisp.MakePrimitiveFunction("text", "0", TextImpl)
	golisp.MakePrimitiveFunction("size", "0", SizeImpl)
	golisp.MakePrimitiveFunction("batch-start", "0", BatchStartImpl)
	golisp.MakePrimitiveFunction("batch-end", "0", BatchEndImpl)
}

func active() (*Commander, error) {
	if current == nil {
		return nil, errors.New("no editor is active")
	}
	return current, nil
}

func InsertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert requires a string argument")
	}
	for _, ch := range golisp.StringValue(val) {
		if ch == '\n' {
			err = c.editor.Enter()
		} else {
			err = c.editor.InsertChar(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func EnterImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	return nil, c.editor.Enter()
}

func BackspaceImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	return nil, c.editor.Backspace()
}

func DeleteImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	return nil, c.editor.DeleteChar()
}

// MoveImpl places the cursor at a screen row and column.
func MoveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	row, col := golisp.Car(args), golisp.Cadr(args)
	if !golisp.IntegerP(row) || !golisp.IntegerP(col) {
		return nil, errors.New("move requires integer arguments")
	}
	c.editor.SetCursor(stride.Point{Row: int(golisp.IntegerValue(row)), Col: int(golisp.IntegerValue(col))})
	return nil, nil
}

func UndoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	ok, err := c.editor.Undo()
	return golisp.BooleanWithValue(ok), err
}

func RedoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	ok, err := c.editor.Redo()
	return golisp.BooleanWithValue(ok), err
}

func CanUndoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(c.editor.History.CanUndo()), nil
}

func CanRedoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(c.editor.History.CanRedo()), nil
}

func SaveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	var filename string
	if !golisp.NilP(args) {
		val := golisp.Car(args)
		if !golisp.StringP(val) {
			return nil, errors.New("save requires a string argument")
		}
		filename = golisp.StringValue(val)
	}
	return nil, c.Save(filename)
}

func TextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(string(c.editor.Bytes())), nil
}

func SizeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.Buffer.Len())), nil
}

func BatchStartImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	c.editor.History.StartBatch()
	return nil, nil
}

func BatchEndImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active()
	if err != nil {
		return nil, err
	}
	c.editor.History.EndBatch()
	return nil, nil
}

func (c *Commander) eval(source string) (*golisp.Data, error) {
	lock.Lock()
	defer lock.Unlock()
	current = c
	defer func() { current = nil }()
	return golisp.ParseAndEval(source)
}

// ParseEval evaluates a lisp expression and returns its printed value, or
// the error it produced. The result is also the status message.
func (c *Commander) ParseEval(command string) string {
	value, err := c.eval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		c.setMessage("error: %v", err)
	} else {
		c.message = golisp.String(value)
	}
	return c.message
}

// ParseEvalFile runs the expressions in a script file.
func (c *Commander) ParseEvalFile(filename string) error {
	source, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	_, err = c.eval("(begin " + string(source) + "\n)")
	// a batch the script left open still becomes one undo step
	if c.editor.History.Batching() {
		log.Printf("%s: batch-start without batch-end", filename)
		c.editor.History.EndBatch()
	}
	if err != nil {
		log.Printf("ERR %+v", err)
		return fmt.Errorf("eval %s: %w", filename, err)
	}
	return nil
}
