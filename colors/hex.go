// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides parsing and formatting of the hex color
// strings used for design tokens, always canonicalized to #RRGGBB.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/contrast/base/errors"
	"github.com/chewxy/math32"
)

// FromHex parses the given hex color string and returns the resulting
// opaque color. The leading # is optional, and both the 3-digit shorthand
// (#RGB, where each digit is doubled) and the full 6-digit form (#RRGGBB)
// are accepted in any letter case. Any other input results in a
// [*FormatError]; see [MustFromHex] and [LogFromHex] for versions
// that do not return an error.
func FromHex(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return color.RGBA{}, &FormatError{Input: hex}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, &FormatError{Input: hex}
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) color.RGBA {
	return errors.Must1(FromHex(hex))
}

// LogFromHex parses the given hex color string
// and returns the resulting color. It logs any
// resulting error and returns the zero color in that case;
// see [FromHex] for a version that returns an error.
func LogFromHex(hex string) color.RGBA {
	return errors.Log1(FromHex(hex))
}

// AsHex returns the given color as a canonical #RRGGBB string
// with uppercase digits. Alpha is ignored: the color is converted
// to its non-premultiplied form and only the RGB channels are written.
// It returns "" for a nil color.
func AsHex(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

// Canonical parses the given hex color string and returns it
// in canonical #RRGGBB form.
func Canonical(hex string) (string, error) {
	c, err := FromHex(hex)
	if err != nil {
		return "", err
	}
	return AsHex(c), nil
}

// FromFloat returns the opaque color with the given red, green, and
// blue channels on a 0-255 scale. Each channel is rounded to the nearest
// integer and clamped to 0-255, so channel arithmetic that drifts out
// of range still yields a valid color.
func FromFloat(r, g, b float32) color.RGBA {
	return color.RGBA{channel(r), channel(g), channel(b), 255}
}

func channel(v float32) uint8 {
	v = math32.Round(v)
	switch {
	case v != v, v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
