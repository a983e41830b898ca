// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snap

import (
	"image/color"
	"sync"

	"cogentcore.org/contrast/colors"
)

// Cache memoizes snapping results by color pair and options, for callers
// that snap many repeated pairs, such as every token of a theme.
// Results are identical to those of [Config.Snap]. It is safe for
// concurrent use. It must be made with [NewCache].
type Cache struct {

	// Config is the config used for snapping. It must not be
	// changed after the cache is first used.
	Config Config

	mu      sync.RWMutex
	results map[cacheKey]Result
}

type cacheKey struct {
	fg, bg string
	opts   Options
}

// NewCache returns a new empty [Cache] that snaps with the given config.
func NewCache(cf Config) *Cache {
	return &Cache{Config: cf, results: map[cacheKey]Result{}}
}

// Snap is like [Config.Snap], but returns a cached result if
// the same pair has already been snapped with the same options.
func (c *Cache) Snap(fg, bg color.Color, opts Options) Result {
	key := cacheKey{colors.AsHex(fg), colors.AsHex(bg), opts}
	c.mu.RLock()
	res, ok := c.results[key]
	c.mu.RUnlock()
	if ok {
		return res
	}
	res = c.Config.Snap(fg, bg, opts)
	c.mu.Lock()
	c.results[key] = res
	c.mu.Unlock()
	return res
}

// SnapHex is like [Cache.Snap], but takes hex color strings.
// It returns a [*colors.FormatError] if either string
// is not a valid hex color; errors are not cached.
func (c *Cache) SnapHex(fg, bg string, opts Options) (Result, error) {
	fc, err := colors.FromHex(fg)
	if err != nil {
		return Result{}, err
	}
	bc, err := colors.FromHex(bg)
	if err != nil {
		return Result{}, err
	}
	return c.Snap(fc, bc, opts), nil
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}

// Reset removes all cached results.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.results = map[cacheKey]Result{}
	c.mu.Unlock()
}
