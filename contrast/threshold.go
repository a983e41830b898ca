// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"image/color"

	"cogentcore.org/contrast/colors"
)

const (
	// Normal is the minimum contrast ratio for normal text.
	Normal = 4.5

	// Large is the minimum contrast ratio for large text
	// and for non-text user interface components.
	Large = 3.0

	// Epsilon is the tolerance applied whenever a ratio is compared
	// against a threshold, so that a pair sitting exactly on 4.5:1 or 3:1
	// passes despite rounding in the gamma computation.
	Epsilon = 1e-3
)

// Options describes the kind of content a color pair is used for,
// which determines the contrast ratio it needs.
type Options struct {

	// LargeText is whether the text is large (at least 18pt,
	// or 14pt bold), which only needs the [Large] ratio.
	LargeText bool `json:"isLargeText,omitempty"`

	// UIComponent is whether the pair is a non-text user interface
	// component such as a border, icon, or focus ring, which only
	// needs the [Large] ratio.
	UIComponent bool `json:"uiComponent,omitempty"`
}

// Threshold returns the contrast ratio required for these options:
// [Large] if either flag is set, and [Normal] otherwise.
func (o Options) Threshold() float64 {
	if o.LargeText || o.UIComponent {
		return Large
	}
	return Normal
}

// Meets returns whether the given ratio satisfies the given threshold,
// within [Epsilon]. All threshold checks go through this function.
func Meets(ratio, threshold float64) bool {
	return ratio >= threshold-Epsilon
}

// Passes returns whether the given colors have enough contrast
// for the given options.
func Passes(fg, bg color.Color, opts Options) bool {
	return Meets(Ratio(fg, bg), opts.Threshold())
}

// PassesHex returns whether the given hex colors have enough contrast
// for the given options. It returns a [*colors.FormatError] if either
// string is not a valid hex color.
func PassesHex(fg, bg string, opts Options) (bool, error) {
	fc, err := colors.FromHex(fg)
	if err != nil {
		return false, err
	}
	bc, err := colors.FromHex(bg)
	if err != nil {
		return false, err
	}
	return Passes(fc, bc, opts), nil
}
