package search

import (
	"sync/atomic"

	"github.com/poiesic/statespace/core"
)

// SearchMonitor provides hooks to observe a path search.
// Monitors passed to a PathFinder used with ShortestPaths must be safe for
// concurrent use.
type SearchMonitor interface {
	Start(source, target core.PersonID)
	Expand(node *Node)
	Enqueue(node *Node)
	Finish(path core.Path, found bool)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_, _ core.PersonID)   {}
func (n *noopMonitor) Expand(_ *Node)             {}
func (n *noopMonitor) Enqueue(_ *Node)            {}
func (n *noopMonitor) Finish(_ core.Path, _ bool) {}

// CountingMonitor tallies search activity across every search it observes.
type CountingMonitor struct {
	searches atomic.Int64
	expanded atomic.Int64
	enqueued atomic.Int64
	found    atomic.Int64
}

var _ SearchMonitor = (*CountingMonitor)(nil)

func (c *CountingMonitor) Start(_, _ core.PersonID) { c.searches.Add(1) }
func (c *CountingMonitor) Expand(_ *Node)           { c.expanded.Add(1) }
func (c *CountingMonitor) Enqueue(_ *Node)          { c.enqueued.Add(1) }

func (c *CountingMonitor) Finish(_ core.Path, found bool) {
	if found {
		c.found.Add(1)
	}
}

// Searches returns the number of searches started.
func (c *CountingMonitor) Searches() int64 { return c.searches.Load() }

// Expanded returns the number of states expanded.
func (c *CountingMonitor) Expanded() int64 { return c.expanded.Load() }

// Enqueued returns the number of child nodes added to frontiers.
func (c *CountingMonitor) Enqueued() int64 { return c.enqueued.Load() }

// Found returns the number of searches that reached their target.
func (c *CountingMonitor) Found() int64 { return c.found.Load() }
