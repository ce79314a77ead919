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

// Package history keeps the timeline of edits for undo and redo.
//
// The timeline is a list of entries and a current position. Undo applies
// the inverse of the entry at the current position and steps back; redo
// steps forward and applies the entry again. Recording an edit after some
// undos cuts off the entries that could have been redone, and when the
// timeline is full the oldest entry is dropped.
//
// Edits recorded between StartBatch and EndBatch are kept as one entry and
// are undone and redone together.
package history
