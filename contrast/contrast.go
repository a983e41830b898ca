// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contrast computes WCAG relative luminance and contrast ratios,
// and decides whether a foreground/background pair meets the required
// contrast for its kind of content.
// See https://www.w3.org/TR/WCAG21/#dfn-contrast-ratio.
package contrast

import (
	"image/color"
	"math"

	"cogentcore.org/contrast/colors"
)

// RelativeLuminance returns the WCAG relative luminance of the given color,
// between 0 (black) and 1 (white). Alpha is ignored.
func RelativeLuminance(c color.Color) float64 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return 0.2126*linearize(n.R) + 0.7152*linearize(n.G) + 0.0722*linearize(n.B)
}

// linearize applies the inverse sRGB companding function
// to the given 8-bit channel value.
func linearize(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LuminanceHex returns the WCAG relative luminance of the given hex color
// string. It returns a [*colors.FormatError] if the string is not a valid
// hex color.
func LuminanceHex(hex string) (float64, error) {
	c, err := colors.FromHex(hex)
	if err != nil {
		return 0, err
	}
	return RelativeLuminance(c), nil
}

// RatioOfLuminances returns the contrast ratio of the two given
// relative luminance values, which is symmetric in its arguments.
func RatioOfLuminances(a, b float64) float64 {
	lighter := max(a, b)
	darker := min(a, b)
	return (lighter + 0.05) / (darker + 0.05)
}

// Ratio returns the contrast ratio between the given two colors.
// The contrast ratio will be between 1 and 21.
func Ratio(fg, bg color.Color) float64 {
	return RatioOfLuminances(RelativeLuminance(fg), RelativeLuminance(bg))
}

// RatioHex returns the contrast ratio between the given two hex color
// strings. It returns a [*colors.FormatError] if either string is not
// a valid hex color.
func RatioHex(fg, bg string) (float64, error) {
	fc, err := colors.FromHex(fg)
	if err != nil {
		return 0, err
	}
	bc, err := colors.FromHex(bg)
	if err != nil {
		return 0, err
	}
	return Ratio(fc, bc), nil
}
