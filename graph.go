package geoaxis

import (
	"context"
	"log/slog"
)

// A small push-based signal graph. Each derived value the axis maintains
// (view limits, tick sets, projected geometry) hangs off a node; marking any
// node dirty schedules one full recompute pass. The scheduler coalesces
// invalidations that arrive while a pass is running into at most one
// follow-up pass, so the last trigger's inputs win and no backlog forms.
//
// Everything here runs synchronously on the goroutine that owns the axis;
// there is no locking and no cancellation. A recompute, once started, runs
// to completion.

// node is one value in the dependency graph. Dirtiness propagates to
// downstream nodes so a flush can report exactly which inputs changed.
type node struct {
	name       string
	sched      *scheduler
	dirty      bool
	downstream []*node
}

// invalidate marks the node and everything downstream of it dirty, then
// asks the scheduler for a flush.
func (n *node) invalidate() {
	n.markDirty()
	n.sched.requestFlush()
}

func (n *node) markDirty() {
	if n.dirty {
		return
	}
	n.dirty = true
	for _, d := range n.downstream {
		d.markDirty()
	}
}

// scheduler owns the graph's nodes and runs the flush callback when any of
// them is invalidated.
type scheduler struct {
	nodes    []*node
	onFlush  func()
	flushing bool
	pending  bool
}

func newScheduler(onFlush func()) *scheduler {
	return &scheduler{onFlush: onFlush}
}

// newNode registers a node, wiring the given upstream dependencies so their
// invalidation reaches it.
func (s *scheduler) newNode(name string, upstream ...*node) *node {
	n := &node{name: name, sched: s}
	for _, up := range upstream {
		up.downstream = append(up.downstream, n)
	}
	s.nodes = append(s.nodes, n)
	return n
}

// requestFlush runs the flush callback, coalescing re-entrant requests:
// an invalidation arriving while a flush is running sets a pending flag and
// triggers exactly one more pass after the current one finishes, however
// many triggers arrived in the meantime.
func (s *scheduler) requestFlush() {
	if s.flushing {
		s.pending = true
		return
	}
	s.flushing = true
	defer func() { s.flushing = false }()

	for {
		s.pending = false
		s.logDirty()
		s.clearDirty()
		s.onFlush()
		if !s.pending {
			return
		}
	}
}

// clearDirty resets all nodes before a pass so triggers fired during the
// pass register as new dirtiness.
func (s *scheduler) clearDirty() {
	for _, n := range s.nodes {
		n.dirty = false
	}
}

func (s *scheduler) logDirty() {
	log := Logger()
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	var dirty []string
	for _, n := range s.nodes {
		if n.dirty {
			dirty = append(dirty, n.name)
		}
	}
	log.Debug("geoaxis: recompute", slog.Any("dirty", dirty))
}
