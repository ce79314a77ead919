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
package editor

import (
	stride "github.com/stridetext/stride/types"
)

func isBlank(c rune) bool {
	return c == ' ' || c == '\n' || c == '\t'
}

// Stats counts the rows, words and non-blank characters of the text.
func (e *Editor) Stats() stride.Stats {
	var s stride.Stats
	n := e.Buffer.Len()
	if n == 0 {
		return s
	}
	s.Rows = (n + e.Stride() - 1) / e.Stride()
	inWord := false
	for i := 0; i < n; i++ {
		c, _ := e.Buffer.At(i)
		if isBlank(c) {
			inWord = false
			continue
		}
		s.Chars++
		if !inWord {
			s.Words++
			inWord = true
		}
	}
	return s
}
