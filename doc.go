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


// Package statespace ties a movie graph, its loader and the path finder
// together.
//
// A Catalog loads a dataset directory into the configured graph store and
// hands out path finders over it:
//
//	cat, err := statespace.OpenCatalog(ctx, statespace.NewConfig(
//	    statespace.WithDataDir("small"),
//	))
//	if err != nil {
//	    return err
//	}
//	defer cat.Close()
//
//	finder, err := cat.NewPathFinder()
//	path, found, err := finder.ShortestPath(ctx, source, target)
//
// The tic-tac-toe half of the repository lives in package tictactoe and has
// no state to manage.
package statespace
