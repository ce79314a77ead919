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
package wrap

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/stridetext/stride/buffer"
	"github.com/stridetext/stride/window"
)

// A Source is text that can be saved.
type Source interface {
	Len() int
	At(i int) (rune, bool)
}

// Load reads r into a new buffer laid out in rows for a screen width columns wide.
func Load(r io.Reader, width int, opts ...buffer.Option) (*buffer.Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := []rune(string(data))
	stride := window.Stride(width)

	b := buffer.NewBuffer(opts...)
	if err := b.Grow(max(paddedLength(text, stride), len(data)+2*width)); err != nil {
		return nil, err
	}
	col := 0
	for _, c := range text {
		if c == '\n' {
			if err := pad(b, stride-col); err != nil {
				return nil, err
			}
			col = 0
			continue
		}
		if err := b.Insert(c); err != nil {
			return nil, err
		}
		col++
		if col == stride {
			col = 0
		}
	}
	if col > 0 {
		if err := pad(b, stride-col); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func pad(b *buffer.Buffer, n int) error {
	for i := 0; i < n; i++ {
		if err := b.Insert(' '); err != nil {
			return err
		}
	}
	return nil
}

// paddedLength returns the length of text once laid out in rows of stride.
func paddedLength(text []rune, stride int) int {
	n, col := 0, 0
	for _, c := range text {
		if c == '\n' {
			n += stride - col
			col = 0
			continue
		}
		n++
		col++
		if col == stride {
			col = 0
		}
	}
	if col > 0 {
		n += stride - col
	}
	return n
}

// Save writes the text of src to w as lines of at most width-2 characters.
func Save(w io.Writer, src Source, width int) error {
	stride := window.Stride(width)
	bw := bufio.NewWriter(w)
	line := make([]rune, 0, stride)
	space := false // squeezes spaces, and drops them at the start of a wrapped row
	col := 0
	for i := 0; i < src.Len(); i++ {
		if col == stride {
			if err := writeLine(bw, line, true); err != nil {
				return err
			}
			line = line[:0]
			space = true
			col = 0
		}
		c, _ := src.At(i)
		col++
		if c == ' ' {
			if !space {
				line = append(line, c)
			}
			space = true
			continue
		}
		line = append(line, c)
		space = false
	}
	if err := writeLine(bw, line, false); err != nil {
		return err
	}
	return bw.Flush()
}

// writeLine writes one row without its trailing space.
func writeLine(w *bufio.Writer, line []rune, newline bool) error {
	if n := len(line); n > 0 && line[n-1] == ' ' {
		line = line[:n-1]
	}
	for _, c := range line {
		if _, err := w.WriteRune(c); err != nil {
			return err
		}
	}
	if newline {
		return w.WriteByte('\n')
	}
	return nil
}

// ReadFile loads the file at path, creating it empty when it does not exist.
func ReadFile(path string, width int, opts ...buffer.Option) (*buffer.Buffer, error) {
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := Load(f, width, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

// WriteFile saves src to the file at path, replacing its contents.
func WriteFile(path string, src Source, width int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, src, width); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}
