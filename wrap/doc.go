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

// Package wrap converts between files and the fixed-stride text held by a
// buffer.
//
// Every row of stored text holds exactly the number of characters that fit
// on one screen row. Load pads each line of a file with spaces to fill its
// last row and breaks long lines into several rows. Save walks the rows,
// drops the padding, squeezes runs of spaces and separates rows with
// newlines.
//
// The two are not inverses. Runs of spaces in a file are squeezed to one,
// long lines come back broken at the row width, and a line that exactly
// fills a row comes back followed by an empty line.
package wrap
