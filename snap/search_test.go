// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snap

import (
	"image/color"
	"testing"

	"cogentcore.org/contrast/contrast"
	"cogentcore.org/contrast/hsl"
	"github.com/stretchr/testify/assert"
)

func cand(p Path, change float32, ratio float64, passes bool) candidate {
	return candidate{path: p, change: change, ratio: ratio, passes: passes, iterations: 7}
}

func TestChoose(t *testing.T) {
	type data struct {
		name    string
		cands   []candidate
		opts    Options
		want    Path
		clamped bool
	}
	tests := []data{
		{"smallest change", []candidate{
			cand(FgLighten, 0, 1, false),
			cand(FgDarken, 7, 4.54, true),
			cand(BgDarken, 87, 4.6, true),
			cand(BgLighten, 0, 3.5, false),
		}, Options{}, FgDarken, false},
		{"smallest change on background", []candidate{
			cand(FgLighten, 3, 4.6, true),
			cand(FgDarken, 40, 4.5, true),
			cand(BgDarken, 2, 4.5, true),
			cand(BgLighten, 10, 4.7, true),
		}, Options{}, BgDarken, false},
		{"tie goes to foreground", []candidate{
			cand(FgLighten, 10, 1, false),
			cand(FgDarken, 1.4, 4.5, true),
			cand(BgDarken, 50, 1, false),
			cand(BgLighten, 1.1, 4.5, true),
		}, Options{}, FgDarken, false},
		{"tie goes to preferred background", []candidate{
			cand(FgLighten, 10, 1, false),
			cand(FgDarken, 1.1, 4.5, true),
			cand(BgDarken, 50, 1, false),
			cand(BgLighten, 1.4, 4.5, true),
		}, Options{PreferBackground: true}, BgLighten, false},
		{"both preferences mean foreground", []candidate{
			cand(FgLighten, 10, 1, false),
			cand(FgDarken, 1.4, 4.5, true),
			cand(BgDarken, 50, 1, false),
			cand(BgLighten, 1.1, 4.5, true),
		}, Options{PreferForeground: true, PreferBackground: true}, FgDarken, false},
		{"tie within preferred side in canonical order", []candidate{
			cand(FgLighten, 2.3, 4.5, true),
			cand(FgDarken, 2, 4.5, true),
			cand(BgDarken, 1.9, 4.5, true),
			cand(BgLighten, 30, 4.5, true),
		}, Options{}, FgLighten, false},
		{"no preferred side in tie zone", []candidate{
			cand(FgLighten, 5, 4.5, true),
			cand(FgDarken, 20, 1, false),
			cand(BgDarken, 2.2, 4.5, true),
			cand(BgLighten, 2, 4.5, true),
		}, Options{}, BgLighten, false},
		{"outside tie zone", []candidate{
			cand(FgLighten, 10, 1, false),
			cand(FgDarken, 1.7, 4.5, true),
			cand(BgDarken, 50, 1, false),
			cand(BgLighten, 1.1, 4.5, true),
		}, Options{}, BgLighten, false},
		{"equal change in canonical order", []candidate{
			cand(FgLighten, 10, 1, false),
			cand(FgDarken, 10, 1, false),
			cand(BgDarken, 3, 4.5, true),
			cand(BgLighten, 3, 4.6, true),
		}, Options{}, BgDarken, false},
		{"clamped highest ratio", []candidate{
			cand(FgLighten, 40, 2, false),
			cand(FgDarken, 20, 4.2, false),
			cand(BgDarken, 50, 4.4, false),
			cand(BgLighten, 0, 1.5, false),
		}, Options{}, BgDarken, true},
		{"clamped ratio ties in canonical order", []candidate{
			cand(FgLighten, 40, 2, false),
			cand(FgDarken, 20, 4.4, false),
			cand(BgDarken, 50, 4.4, false),
			cand(BgLighten, 0, 1.5, false),
		}, Options{PreferBackground: true}, FgDarken, true},
	}
	cf := DefaultConfig()
	for _, test := range tests {
		have, clamped := cf.choose(test.cands, test.opts)
		assert.Equal(t, test.want, have.path, test.name)
		assert.Equal(t, test.clamped, clamped, test.name)
	}
}

func TestSearch(t *testing.T) {
	cf := DefaultConfig()
	gray := color.RGBA{0x88, 0x88, 0x88, 255}
	white := color.RGBA{255, 255, 255, 255}
	ratio := contrast.Ratio(gray, white)

	cd := cf.search(FgDarken, hsl.FromColor(gray), white, contrast.Normal, ratio)
	assert.True(t, cd.passes)
	assert.Equal(t, 7, cd.iterations)
	assert.Equal(t, color.RGBA{0x76, 0x76, 0x76, 255}, cd.color)
	assert.InDelta(t, 7.08, cd.change, 0.01)
	assert.True(t, contrast.Meets(cd.ratio, contrast.Normal))

	// lightening toward the white background never passes,
	// so the first and darkest midpoint has the highest ratio
	cd = cf.search(FgLighten, hsl.FromColor(gray), white, contrast.Normal, ratio)
	assert.False(t, cd.passes)
	assert.Equal(t, 7, cd.iterations)
	assert.InDelta(t, 76.67, cd.lightness, 0.01)
	assert.InDelta(t, 23.33, cd.change, 0.01)
	assert.Less(t, cd.ratio, 1.8)

	// the background is already at full lightness
	cd = cf.search(BgLighten, hsl.FromColor(white), gray, contrast.Normal, ratio)
	assert.False(t, cd.passes)
	assert.Zero(t, cd.iterations)
	assert.Zero(t, cd.change)
	assert.Equal(t, white, cd.color)
	assert.Equal(t, ratio, cd.ratio)
}

func TestSearchRangeEnd(t *testing.T) {
	// white passes against #767676, but no midpoint
	// on the way from black to white does
	cf := DefaultConfig()
	black := color.RGBA{0, 0, 0, 255}
	other := color.RGBA{0x76, 0x76, 0x76, 255}
	assert.True(t, contrast.Passes(color.White, other, contrast.Options{}))

	cd := cf.search(FgLighten, hsl.FromColor(black), other, contrast.Normal, contrast.Ratio(black, other))
	assert.False(t, cd.passes)
	assert.Equal(t, 7, cd.iterations)
	assert.Equal(t, float32(99.21875), cd.lightness)
	assert.Equal(t, float32(99.21875), cd.change)
	assert.Equal(t, color.RGBA{0xFD, 0xFD, 0xFD, 255}, cd.color)
	assert.False(t, contrast.Meets(cd.ratio, contrast.Normal))
}

func TestPath(t *testing.T) {
	assert.Equal(t, [...]Path{FgLighten, FgDarken, BgDarken, BgLighten}, Paths)
	for i, p := range Paths {
		assert.Equal(t, Path(i), p)
	}
	assert.Equal(t, Foreground, FgLighten.Side())
	assert.Equal(t, Foreground, FgDarken.Side())
	assert.Equal(t, Background, BgDarken.Side())
	assert.Equal(t, Background, BgLighten.Side())
	assert.True(t, FgLighten.Lighten())
	assert.False(t, FgDarken.Lighten())
	assert.False(t, BgDarken.Lighten())
	assert.True(t, BgLighten.Lighten())
	assert.Equal(t, "bg-darken", BgDarken.String())
	assert.Equal(t, "Path(9)", Path(9).String())
}

func TestSide(t *testing.T) {
	for _, s := range []Side{None, Foreground, Background} {
		b, err := s.MarshalText()
		assert.NoError(t, err)
		var have Side
		assert.NoError(t, have.UnmarshalText(b))
		assert.Equal(t, s, have)
	}
	assert.Equal(t, "fg", Foreground.String())
	assert.Equal(t, "bg", Background.String())
	var s Side
	assert.Error(t, s.UnmarshalText([]byte("both")))
}
