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

// Package buffer implements the gap buffer that holds the text being edited.
//
// Text is kept in one slice of runes split by a gap. Everything before the
// gap is the text before the cursor and everything after the gap is the
// text after it, so edits at the cursor only touch the gap boundaries and
// moving the cursor costs as much as the distance moved.
//
// Positions are logical offsets into the text and never depend on where the
// gap currently sits.
package buffer
