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


package tictactoe

// Minimax returns the optimal move for the player to move on b.
// ok is false when b is terminal and there is nothing to play.
//
// X picks the move with the highest value, O the lowest. When moves tie the
// first one in Actions order is kept. The whole game tree below b is
// searched on every call.
func Minimax(b Board) (action Action, ok bool) {
	if Terminal(b) {
		return Action{}, false
	}

	maximizing := Player(b) == X
	var best int
	for _, a := range Actions(b) {
		next, _ := Result(b, a)

		var v int
		if maximizing {
			v = minValue(next)
		} else {
			v = maxValue(next)
		}

		if !ok || (maximizing && v > best) || (!maximizing && v < best) {
			action, best, ok = a, v, true
		}
	}
	return action, ok
}

// Value returns the minimax value of b for X under optimal play by both
// sides. Terminal boards score their Utility.
func Value(b Board) int {
	if Player(b) == X {
		return maxValue(b)
	}
	return minValue(b)
}

func maxValue(b Board) int {
	if Terminal(b) {
		return Utility(b)
	}
	v := -2
	for _, a := range Actions(b) {
		next, _ := Result(b, a)
		v = max(v, minValue(next))
	}
	return v
}

func minValue(b Board) int {
	if Terminal(b) {
		return Utility(b)
	}
	v := 2
	for _, a := range Actions(b) {
		next, _ := Result(b, a)
		v = min(v, maxValue(next))
	}
	return v
}
