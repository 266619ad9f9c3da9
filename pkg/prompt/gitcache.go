package prompt

import "sync/atomic"

// gitStatus is one internally consistent (branch, dirty) pair. Readers swap
// the whole snapshot so they never observe a branch from one update paired
// with the dirty flag of another.
type gitStatus struct {
	branch string
	dirty  bool
}

// GitCache is the small shared value between the out-of-band git updater
// and the renderer. It has exactly one writer role and one reader role. The
// validity flag is relaxed: a reader may briefly see a stale value, and a
// false reading before the first update renders as an empty segment. The
// renderer never blocks on this cache.
type GitCache struct {
	status atomic.Pointer[gitStatus]
	valid  atomic.Bool
}

// NewGitCache creates an empty, invalid cache.
func NewGitCache() *GitCache {
	c := &GitCache{}
	c.status.Store(&gitStatus{})
	return c
}

// Update overwrites the stored branch and dirty flag and marks the cache
// valid. An empty branch means "no branch known".
func (c *GitCache) Update(branch string, dirty bool) {
	c.status.Store(&gitStatus{branch: branch, dirty: dirty})
	c.valid.Store(true)
}

// Invalidate marks the cache invalid without clearing the stored values, so
// a stale-but-present value stays distinguishable from "never populated".
func (c *GitCache) Invalidate() {
	c.valid.Store(false)
}

// Valid reports whether the cache has been populated since the last
// invalidation.
func (c *GitCache) Valid() bool {
	return c.valid.Load()
}

// Render formats the cached status: "(branch)", "(branch*)" when dirty, or
// the empty string when no branch is stored. Stored values are rendered
// regardless of validity.
func (c *GitCache) Render() string {
	s := c.status.Load()
	if s.branch == "" {
		return ""
	}
	if s.dirty {
		return "(" + s.branch + "*)"
	}
	return "(" + s.branch + ")"
}
