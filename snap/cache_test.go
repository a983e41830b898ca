// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snap

import (
	"image/color"
	"sync"
	"testing"

	"cogentcore.org/contrast/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	c := NewCache(DefaultConfig())
	assert.Zero(t, c.Len())

	have, err := c.SnapHex("#888888", "#FFFFFF", Options{})
	require.NoError(t, err)
	want, err := SnapHex("#888888", "#FFFFFF", Options{})
	require.NoError(t, err)
	assert.Equal(t, want, have)
	assert.Equal(t, 1, c.Len())

	// same pair in another notation
	have = c.Snap(color.RGBA{0x88, 0x88, 0x88, 255}, color.White, Options{})
	assert.Equal(t, want, have)
	assert.Equal(t, 1, c.Len())

	have, err = c.SnapHex("#888", "#FFF", Options{Options: large})
	require.NoError(t, err)
	assert.Equal(t, "#888888", have.FG)
	assert.Equal(t, 2, c.Len())

	_, err = c.SnapHex("#888888", "white", Options{})
	assert.Error(t, err)
	_, err = c.SnapHex("#12345", "#FFFFFF", Options{})
	assert.Error(t, err)
	assert.Equal(t, 2, c.Len())

	c.Reset()
	assert.Zero(t, c.Len())
	have, err = c.SnapHex("#888888", "#FFFFFF", Options{})
	require.NoError(t, err)
	assert.Equal(t, want, have)
}

func TestCacheConfig(t *testing.T) {
	cf := DefaultConfig()
	cf.MaxIterations = 3
	c := NewCache(cf)
	have, err := c.SnapHex("#888888", "#FFFFFF", Options{})
	require.NoError(t, err)
	assert.Equal(t, "#666666", have.FG)
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache(DefaultConfig())
	pairs := [][2]string{{"#888888", "#FFFFFF"}, {"#3366CC", "#224488"}, {"#808080", "#7F7F7F"}, {"#151515", "#7E7E7E"}}
	wants := make([]Result, len(pairs))
	for i, p := range pairs {
		wants[i] = Snap(colors.MustFromHex(p[0]), colors.MustFromHex(p[1]), Options{})
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, p := range pairs {
				have, err := c.SnapHex(p[0], p[1], Options{})
				assert.NoError(t, err)
				assert.Equal(t, wants[i], have)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, len(pairs), c.Len())
}
