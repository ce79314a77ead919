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

// Option configures a Buffer.
type Option func(*Buffer)

// WithCapacity sets the initial storage capacity.
func WithCapacity(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.initial = n
		}
	}
}

// WithGrowthIncrement sets how many cells an insert into a full buffer adds.
func WithGrowthIncrement(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.increment = n
		}
	}
}

// WithMaxCapacity limits how large the storage may grow. Zero means no limit.
func WithMaxCapacity(n int) Option {
	return func(b *Buffer) {
		if n >= 0 {
			b.limit = n
		}
	}
}
