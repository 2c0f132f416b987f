// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package search finds degrees of separation between people in a movie graph.
//
// The PathFinder type runs a breadth-first search over states of the form
// (movie, person), meaning "reached this person through this movie":
//   - The frontier is a FIFO queue seeded with one root per movie of the source
//   - An explored set keeps every state from being expanded twice
//   - The first removed state whose person is the target ends the search
//
// The resulting Path lists the co-starring edges from source to target.
// Because the frontier is FIFO, no shorter chain exists.
//
// Each search owns its frontier and explored set, so a single PathFinder can
// answer independent queries concurrently (see ShortestPaths) as long as the
// graph is no longer being loaded.
package search
