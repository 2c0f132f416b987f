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


// Package graph provides the storage abstraction for the people/movies graph.
//
// The path search only needs read access to two relations: the movies a person
// starred in and the people who starred in a movie. Graph captures those
// reads, plus entity and name lookups used by callers. Builder is the write
// side used by the CSV loader. Store combines both.
//
// # Backends
//
//   - memory: map-backed store, the default
//   - badger: BadgerDB store running in in-memory mode
//
// Both backends return relation sets as sorted slices so that searches over
// them visit neighbors in a deterministic order.
//
// # Usage
//
//	store := memory.NewStore()
//	defer store.Close()
//	if err := store.AddPeople(ctx, people...); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// All store implementations must be safe for concurrent reads once loading has
// finished. Loading itself is expected to happen from a single goroutine.
//
// # Context Support
//
// All store methods accept context.Context. Pass context.Background() for
// operations without specific timeout requirements.
package graph
