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

// EnterLine breaks a row at Position by inserting Count spaces, which pushes
// the rest of the text to the start of the next row.
type EnterLine struct {
	Position int
	Count    int
}

func (op *EnterLine) Kind() Kind {
	return KindEnterLine
}

func (op *EnterLine) Perform(s Store) error {
	if err := moveTo(s, op.Position); err != nil {
		return err
	}
	for i := 0; i < op.Count; i++ {
		if err := s.Insert(' '); err != nil {
			return err
		}
	}
	return nil
}

func (op *EnterLine) Inverse() Operation {
	return &CollapseLine{Position: op.Position, Count: op.Count}
}

// CollapseLine removes the Count characters that follow Position.
type CollapseLine struct {
	Position int
	Count    int
}

func (op *CollapseLine) Kind() Kind {
	return KindCollapseLine
}

func (op *CollapseLine) Perform(s Store) error {
	if err := moveTo(s, op.Position+op.Count); err != nil {
		return err
	}
	return deleteBack(s, op.Count)
}

func (op *CollapseLine) Inverse() Operation {
	return &EnterLine{Position: op.Position, Count: op.Count}
}
