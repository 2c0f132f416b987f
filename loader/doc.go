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


// Package loader reads a movie dataset from CSV files into a graph.
//
// A dataset directory holds three files, each with a header row:
//
//	people.csv  id,name,birth
//	movies.csv  id,title,year
//	stars.csv   person_id,movie_id
//
// Columns are found by header name, so their order does not matter and
// extra columns are ignored. Birth and year may be blank.
//
// Rows that fail validation are logged and skipped rather than aborting the
// load, and star rows that name an unknown person or movie are dropped.
// The returned Report counts both.
package loader
