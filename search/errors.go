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


package search

import "errors"

var (
	// ErrGraphRequired is returned when a graph is not provided.
	ErrGraphRequired = errors.New("graph required")

	// ErrEmptyFrontier is returned when removing from an empty frontier.
	// Seeing it from a search means the search loop is broken.
	ErrEmptyFrontier = errors.New("empty frontier")

	// ErrPersonNotFound is returned when a source or target person is not in
	// the graph.
	ErrPersonNotFound = errors.New("person not found")
)
