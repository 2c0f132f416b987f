package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/poiesic/statespace/core"
	"github.com/poiesic/statespace/graph"
)

// PathFinder finds shortest co-starring paths between people.
type PathFinder struct {
	graph            graph.Graph
	monitor          SearchMonitor
	cache            *lru.Cache[query, cachedPath]
	poolSize         int
	progress         io.Writer
	progressInterval int
	logger           *slog.Logger
}

type query struct {
	source, target core.PersonID
}

type cachedPath struct {
	path  core.Path
	found bool
}

// Option configures a PathFinder.
type Option func(*PathFinder) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(f *PathFinder) error {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
		return nil
	}
}

// WithMonitor sets a monitor that observes every search.
// Default is a no-op monitor.
func WithMonitor(monitor SearchMonitor) Option {
	return func(f *PathFinder) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		f.monitor = monitor
		return nil
	}
}

// WithCacheSize keeps the answers to the last size queries.
// Zero disables caching, which is the default.
func WithCacheSize(size int) Option {
	return func(f *PathFinder) error {
		if size <= 0 {
			f.cache = nil
			return nil
		}
		cache, err := lru.New[query, cachedPath](size)
		if err != nil {
			return err
		}
		f.cache = cache
		return nil
	}
}

// WithPoolSize sets the worker pool size used by ShortestPaths.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(f *PathFinder) error {
		if size < 1 {
			size = 1
		}
		f.poolSize = size
		return nil
	}
}

// WithProgress makes ShortestPaths write a progress line to w every
// interval answered queries. Default is no progress output.
func WithProgress(w io.Writer, interval int) Option {
	return func(f *PathFinder) error {
		f.progress = w
		f.progressInterval = interval
		return nil
	}
}

// NewPathFinder creates a new path finder over g.
func NewPathFinder(g graph.Graph, opts ...Option) (*PathFinder, error) {
	if g == nil {
		return nil, ErrGraphRequired
	}

	poolSize := runtime.NumCPU()
	if poolSize < 1 {
		poolSize = 1
	}

	f := &PathFinder{
		graph:    g,
		monitor:  &noopMonitor{},
		poolSize: poolSize,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// ShortestPath returns the shortest chain of (movie, person) pairs linking
// source to target.
//
// found is false, with a nil error, when the two people are not connected.
// A person is zero degrees from themselves: source == target yields an empty
// path. Unknown people produce ErrPersonNotFound.
func (f *PathFinder) ShortestPath(ctx context.Context, source, target core.PersonID) (path core.Path, found bool, err error) {
	sourceMovies, err := f.graph.MoviesOf(ctx, source)
	if err != nil {
		return nil, false, f.lookupError(source, err)
	}
	if _, err := f.graph.MoviesOf(ctx, target); err != nil {
		return nil, false, f.lookupError(target, err)
	}

	if source == target {
		return core.Path{}, true, nil
	}

	key := query{source: source, target: target}
	if f.cache != nil {
		if hit, ok := f.cache.Get(key); ok {
			f.logger.Debug("path cache hit", "source", source, "target", target)
			return hit.path.Clone(), hit.found, nil
		}
	}

	path, found, err = f.search(ctx, source, target, sourceMovies)
	if err != nil {
		return nil, false, err
	}

	if f.cache != nil {
		f.cache.Add(key, cachedPath{path: path.Clone(), found: found})
	}
	return path, found, nil
}

// search runs the breadth-first search proper.
func (f *PathFinder) search(ctx context.Context, source, target core.PersonID, sourceMovies []core.MovieID) (core.Path, bool, error) {
	f.monitor.Start(source, target)

	frontier := NewQueueFrontier()
	for _, movie := range sourceMovies {
		frontier.Add(&Node{
			State:  core.State{Movie: movie, Person: source},
			Action: movie,
		})
	}

	explored := make(map[core.State]struct{})

	for {
		if frontier.Empty() {
			f.logger.Debug("target not reachable", "source", source, "target", target, "explored", len(explored))
			f.monitor.Finish(nil, false)
			return nil, false, nil
		}

		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		node, err := frontier.Remove()
		if err != nil {
			return nil, false, err
		}

		if node.State.Person == target {
			path := node.Path()
			f.logger.Debug("path found", "source", source, "target", target,
				"degrees", path.Degrees(), "explored", len(explored))
			f.monitor.Finish(path, true)
			return path, true, nil
		}

		explored[node.State] = struct{}{}
		f.monitor.Expand(node)

		neighbors, err := f.neighbors(ctx, node.State.Person)
		if err != nil {
			return nil, false, err
		}
		for _, state := range neighbors {
			if frontier.ContainsState(state) {
				continue
			}
			if _, seen := explored[state]; seen {
				continue
			}
			child := &Node{State: state, Parent: node, Action: state.Movie}
			frontier.Add(child)
			f.monitor.Enqueue(child)
		}
	}
}

// neighbors returns every (movie, co-star) state reachable from person,
// ordered by movie then person. The person themself is included once per
// movie.
func (f *PathFinder) neighbors(ctx context.Context, person core.PersonID) ([]core.State, error) {
	movies, err := f.graph.MoviesOf(ctx, person)
	if err != nil {
		return nil, fmt.Errorf("movies of %s: %w", person, err)
	}

	var states []core.State
	for _, movie := range movies {
		stars, err := f.graph.StarsOf(ctx, movie)
		if err != nil {
			return nil, fmt.Errorf("stars of %s: %w", movie, err)
		}
		for _, star := range stars {
			states = append(states, core.State{Movie: movie, Person: star})
		}
	}
	return states, nil
}

func (f *PathFinder) lookupError(id core.PersonID, err error) error {
	if errors.Is(err, graph.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, id)
	}
	f.logger.Error("error looking up person", "person", id, "err", err)
	return err
}
