// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snap

import (
	"cmp"
	"image/color"
	"slices"

	"cogentcore.org/contrast/contrast"
	"cogentcore.org/contrast/hsl"
	"github.com/chewxy/math32"
)

// candidate is the outcome of searching along one [Path].
type candidate struct {
	path Path

	// color is the adjusted color for the side of the path.
	color color.RGBA

	// lightness is the HSL lightness that color was made from.
	lightness float32

	// ratio is the contrast ratio of color against the other side.
	ratio float64

	// change is the absolute lightness difference from the start color.
	change float32

	// passes is whether ratio meets the threshold.
	passes bool

	// iterations is the number of bisection steps taken.
	iterations int
}

// search bisects the lightness range of the given path, from the start
// lightness toward 100 for lightening and toward 0 for darkening, looking for
// the smallest change at which start has enough contrast against other.
// Each midpoint that passes becomes the best so far and the interval narrows
// toward the start lightness; each that fails narrows it away from the start.
// Only probed midpoints are candidates: if none passes, the failing midpoint
// with the highest ratio is reported, and if the range is too narrow to probe
// at all, the start color itself is reported with the given pair ratio.
func (cf Config) search(p Path, start hsl.HSL, other color.Color, threshold, ratio float64) candidate {
	lo, hi := start.L, float32(100)
	if !p.Lighten() {
		lo, hi = 0, start.L
	}
	cd := candidate{path: p, color: start.AsRGBA(), lightness: start.L, ratio: ratio}
	near := 0.0 // highest ratio of a failing midpoint
	for cd.iterations < cf.MaxIterations && hi-lo >= cf.MinWidth {
		cd.iterations++
		mid := (lo + hi) / 2
		c := start.WithLightness(mid).AsRGBA()
		r := contrast.Ratio(c, other)
		pass := contrast.Meets(r, threshold)
		switch {
		case pass:
			cd.color, cd.lightness, cd.ratio, cd.passes = c, mid, r, true
		case !cd.passes && r > near:
			cd.color, cd.lightness, cd.ratio = c, mid, r
			near = r
		}
		// narrow toward the start when passing, away from it otherwise
		if pass == p.Lighten() {
			hi = mid
		} else {
			lo = mid
		}
	}
	cd.change = math32.Abs(cd.lightness - start.L)
	return cd
}

// choose selects the winning candidate from the candidates of all four
// paths, given in canonical order. If any candidate passes, the winner is
// the passing candidate with the smallest change, where candidates within
// [Config.TieZone] of the smallest change are tied and the tie goes to the
// preferred side (in canonical order), or else to the smallest change.
// If none pass, the winner is the candidate with the highest ratio (the
// first in canonical order among equals), and clamped is true.
func (cf Config) choose(cands []candidate, opts Options) (winner candidate, clamped bool) {
	passing := make([]candidate, 0, len(cands))
	for _, cd := range cands {
		if cd.passes {
			passing = append(passing, cd)
		}
	}
	if len(passing) == 0 {
		winner = cands[0]
		for _, cd := range cands[1:] {
			if cd.ratio > winner.ratio {
				winner = cd
			}
		}
		return winner, true
	}

	slices.SortStableFunc(passing, compareChange)
	n := 1
	for n < len(passing) && passing[n].change-passing[0].change <= cf.TieZone {
		n++
	}
	zone := passing[:n]
	if len(zone) == 1 {
		return zone[0], false
	}
	side := opts.preferred()
	winner = zone[0]
	found := false
	for _, cd := range zone {
		if cd.path.Side() != side {
			continue
		}
		if !found || cd.path < winner.path {
			winner, found = cd, true
		}
	}
	return winner, false
}

// compareChange orders candidates by their change, then canonical order.
func compareChange(a, b candidate) int {
	return cmp.Or(cmp.Compare(a.change, b.change), cmp.Compare(a.path, b.path))
}
