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

// Package operations wraps primitive edits into reversible units.
// Every operation can be performed against a store and can produce its
// inverse, which is how the history undoes and redoes edits.
// Operations keep copies of the positions and characters they touch, so
// they stay valid however the store reallocates.
package operations
