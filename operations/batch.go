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

// A Batch performs several operations as one.
type Batch struct {
	Ops []Operation
}

func (op *Batch) Kind() Kind {
	return KindBatch
}

// Perform applies the operations in order and stops at the first failure.
func (op *Batch) Perform(s Store) error {
	for _, o := range op.Ops {
		if err := o.Perform(s); err != nil {
			return err
		}
	}
	return nil
}

func (op *Batch) Inverse() Operation {
	inverse := &Batch{Ops: make([]Operation, len(op.Ops))}
	for i, o := range op.Ops {
		inverse.Ops[len(op.Ops)-1-i] = o.Inverse()
	}
	return inverse
}
