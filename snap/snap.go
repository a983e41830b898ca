// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snap deterministically repairs foreground/background color
// pairs that fail their required WCAG contrast ratio, changing the HSL
// lightness of exactly one of the two colors as little as possible.
//
// Four paths are searched independently (lighten foreground, darken
// foreground, darken background, lighten background), each with a
// bounded bisection over lightness, and the smallest passing change wins.
// Hue and saturation are never changed, and the size of a change is
// measured in HSL lightness, not in a perceptually uniform space.
//
// All functions are pure and safe for concurrent use.
package snap

import (
	"image/color"

	"cogentcore.org/contrast/colors"
	"cogentcore.org/contrast/contrast"
	"cogentcore.org/contrast/hsl"
)

// Result is the result of snapping a color pair.
type Result struct {

	// FG is the resulting foreground color, in #RRGGBB form.
	FG string `json:"fg"`

	// BG is the resulting background color, in #RRGGBB form.
	BG string `json:"bg"`

	// Ratio is the contrast ratio of FG and BG, between 1 and 21.
	Ratio float64 `json:"ratio"`

	// Clamped is whether no adjustment reached the required ratio,
	// in which case FG and BG are the probed pair with the highest
	// ratio (or the input pair if nothing could be attempted).
	Clamped bool `json:"clamped,omitempty"`

	// Adjusted is the side that was changed, or [None] if the pair
	// already passed or no adjustment was attempted.
	Adjusted Side `json:"adjusted,omitempty"`

	// Iterations is the number of bisection steps taken along the
	// winning path, or 0 if no adjustment was attempted.
	Iterations int `json:"iterations,omitempty"`
}

// Snap returns the given color pair adjusted to meet the contrast ratio
// required by the given options, using the [DefaultConfig].
// See [Config.Snap] for more information.
func Snap(fg, bg color.Color, opts Options) Result {
	return DefaultConfig().Snap(fg, bg, opts)
}

// SnapHex is like [Snap], but takes hex color strings.
// It returns a [*colors.FormatError] if either string
// is not a valid hex color.
func SnapHex(fg, bg string, opts Options) (Result, error) {
	return DefaultConfig().SnapHex(fg, bg, opts)
}

// Snap returns the given color pair adjusted to meet the contrast ratio
// required by the given options. A pair that already passes is returned
// unchanged. Identical colors can not be helped and are returned clamped
// with no adjustment. Otherwise, exactly one side is adjusted along the
// winning path; see the package documentation.
// Identical inputs always give identical results.
func (cf Config) Snap(fg, bg color.Color, opts Options) Result {
	threshold := opts.Threshold()
	res := Result{FG: colors.AsHex(fg), BG: colors.AsHex(bg)}
	res.Ratio = contrast.Ratio(fg, bg)
	if contrast.Meets(res.Ratio, threshold) {
		return res
	}
	if res.FG == res.BG {
		res.Ratio = 1
		res.Clamped = true
		return res
	}

	fh := hsl.FromColor(fg)
	bh := hsl.FromColor(bg)
	cands := make([]candidate, 0, len(Paths))
	for p := FgLighten; p <= BgLighten; p++ {
		if p.Side() == Foreground {
			cands = append(cands, cf.search(p, fh, bg, threshold, res.Ratio))
		} else {
			cands = append(cands, cf.search(p, bh, fg, threshold, res.Ratio))
		}
	}

	win, clamped := cf.choose(cands, opts)
	nfg, nbg := fg, bg
	if win.path.Side() == Foreground {
		nfg = win.color
	} else {
		nbg = win.color
	}
	return Result{
		FG:         colors.AsHex(nfg),
		BG:         colors.AsHex(nbg),
		Ratio:      contrast.Ratio(nfg, nbg),
		Clamped:    clamped,
		Adjusted:   win.path.Side(),
		Iterations: win.iterations,
	}
}

// SnapHex is like [Config.Snap], but takes hex color strings.
// It returns a [*colors.FormatError] if either string
// is not a valid hex color.
func (cf Config) SnapHex(fg, bg string, opts Options) (Result, error) {
	fc, err := colors.FromHex(fg)
	if err != nil {
		return Result{}, err
	}
	bc, err := colors.FromHex(bg)
	if err != nil {
		return Result{}, err
	}
	return cf.Snap(fc, bc, opts), nil
}
