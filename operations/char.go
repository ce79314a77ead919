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

// InsertChar puts Character at Position.
type InsertChar struct {
	Position  int
	Character rune
}

func (op *InsertChar) Kind() Kind {
	return KindInsertChar
}

func (op *InsertChar) Perform(s Store) error {
	if err := moveTo(s, op.Position); err != nil {
		return err
	}
	return s.Insert(op.Character)
}

func (op *InsertChar) Inverse() Operation {
	return &DeleteChar{Position: op.Position, Character: op.Character}
}

// DeleteChar removes Character from Position.
type DeleteChar struct {
	Position  int
	Character rune
}

func (op *DeleteChar) Kind() Kind {
	return KindDeleteChar
}

func (op *DeleteChar) Perform(s Store) error {
	if err := moveTo(s, op.Position+1); err != nil {
		return err
	}
	return deleteBack(s, 1)
}

func (op *DeleteChar) Inverse() Operation {
	return &InsertChar{Position: op.Position, Character: op.Character}
}
