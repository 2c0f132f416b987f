package search

import (
	"slices"

	"github.com/poiesic/statespace/core"
)

// Node is one step of a path search.
type Node struct {
	State  core.State
	Parent *Node        // nil for a root
	Action core.MovieID // Movie that led to this node
}

// Path walks the parent links back to the root and returns the states in
// source to target order. The root itself is not part of the path.
func (n *Node) Path() core.Path {
	path := core.Path{}
	for node := n; node.Parent != nil; node = node.Parent {
		path = append(path, node.State)
	}
	slices.Reverse(path)
	return path
}

// QueueFrontier is a FIFO frontier of search nodes.
// It is not safe for concurrent use.
type QueueFrontier struct {
	nodes  []*Node
	head   int
	states map[core.State]int // retained node count per state
}

// NewQueueFrontier creates an empty frontier.
func NewQueueFrontier() *QueueFrontier {
	return &QueueFrontier{
		states: make(map[core.State]int),
	}
}

// Add appends a node to the back of the queue.
func (f *QueueFrontier) Add(node *Node) {
	f.nodes = append(f.nodes, node)
	f.states[node.State]++
}

// Remove removes and returns the oldest node.
// Returns ErrEmptyFrontier if there is nothing to remove.
func (f *QueueFrontier) Remove() (*Node, error) {
	if f.Empty() {
		return nil, ErrEmptyFrontier
	}

	node := f.nodes[f.head]
	f.nodes[f.head] = nil
	f.head++

	if n := f.states[node.State]; n > 1 {
		f.states[node.State] = n - 1
	} else {
		delete(f.states, node.State)
	}

	// Reclaim the consumed prefix once it dominates the backing array.
	if f.head > 64 && f.head*2 > len(f.nodes) {
		f.nodes = slices.Clone(f.nodes[f.head:])
		f.head = 0
	}
	return node, nil
}

// Empty reports whether the frontier holds no nodes.
func (f *QueueFrontier) Empty() bool {
	return f.Len() == 0
}

// Len returns the number of nodes in the frontier.
func (f *QueueFrontier) Len() int {
	return len(f.nodes) - f.head
}

// ContainsState reports whether any node in the frontier carries state.
func (f *QueueFrontier) ContainsState(state core.State) bool {
	_, ok := f.states[state]
	return ok
}
