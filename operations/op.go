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
package operations

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an operation cannot reach its position.
var ErrOutOfRange = errors.New("position out of range")

// Kind identifies an operation.
type Kind int

const (
	KindInsertChar Kind = iota
	KindDeleteChar
	KindEnterLine
	KindCollapseLine
	KindBatch
)

func (k Kind) String() string {
	switch k {
	case KindInsertChar:
		return "insert-char"
	case KindDeleteChar:
		return "delete-char"
	case KindEnterLine:
		return "enter-line"
	case KindCollapseLine:
		return "collapse-line"
	case KindBatch:
		return "batch"
	default:
		return "unknown"
	}
}

// A Store is the text an operation edits.
type Store interface {
	MoveCursor(position int) bool
	Insert(c rune) error
	Delete() bool
}

type Operation interface {
	Kind() Kind
	Perform(s Store) error // applies the operation
	Inverse() Operation    // returns the operation that undoes it
}

func moveTo(s Store, position int) error {
	if !s.MoveCursor(position) {
		return fmt.Errorf("move to %d: %w", position, ErrOutOfRange)
	}
	return nil
}

func deleteBack(s Store, n int) error {
	for i := 0; i < n; i++ {
		if !s.Delete() {
			return fmt.Errorf("delete at start of text: %w", ErrOutOfRange)
		}
	}
	return nil
}
