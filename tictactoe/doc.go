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


// Package tictactoe implements the rules of tic-tac-toe and an exhaustive
// minimax player.
//
// Boards are Go arrays, so every Board is a value: Result hands back a new
// Board and never touches the one it was given. Minimax relies on this when
// it explores sibling moves from the same parent position.
//
// X always moves first and is the maximizing player. Utility is scored from
// X's point of view: +1 for an X win, -1 for an O win, 0 otherwise.
package tictactoe
