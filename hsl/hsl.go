// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides a color in the HSL (hue, saturation, lightness)
// color space, used for lightness-only adjustment of colors. Saturation
// and lightness are expressed as percentages (0-100), so that lightness
// deltas are directly in lightness units.
package hsl

import (
	"fmt"
	"image/color"

	"cogentcore.org/contrast/colors"
	"github.com/chewxy/math32"
)

// HSL represents a color in the HSL color space. It implements
// the [color.Color] interface.
type HSL struct {

	// the hue of the color in degrees (0-360)
	H float32 `min:"0" max:"360"`

	// the saturation of the color as a percentage (0-100)
	S float32 `min:"0" max:"100"`

	// the lightness of the color as a percentage (0-100)
	L float32 `min:"0" max:"100"`

	// the transparency of the color (0-1)
	A float32 `min:"0" max:"1"`
}

// New returns a new opaque HSL color from the given hue (0-360),
// saturation (0-100), and lightness (0-100) values.
func New(hue, saturation, lightness float32) HSL {
	return HSL{hue, saturation, lightness, 1}
}

// FromColor constructs a new HSL color from a standard [color.Color].
func FromColor(c color.Color) HSL {
	h := HSL{}
	h.SetColor(c)
	return h
}

// Model is the standard [color.Model] that converts colors to HSL.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HSL); ok {
		return h
	}
	return FromColor(c)
}

// RGBA implements the color.Color interface.
// The channels are quantized to 8 bits first, so that a round trip
// through [HSL.AsRGBA] and RGBA yields the same color.
func (h HSL) RGBA() (r, g, b, a uint32) {
	return h.AsNRGBA().RGBA()
}

// AsNRGBA returns the color as a standard non-premultiplied [color.NRGBA],
// rounding each channel to the nearest 8-bit value.
func (h HSL) AsNRGBA() color.NRGBA {
	r, g, b := HSLToSRGB(h.H, h.S, h.L)
	c := colors.FromFloat(r*255, g*255, b*255)
	a := math32.Round(math32.Min(math32.Max(h.A, 0), 1) * 255)
	return color.NRGBA{c.R, c.G, c.B, uint8(a)}
}

// AsRGBA returns the color as a standard [color.RGBA].
func (h HSL) AsRGBA() color.RGBA {
	return color.RGBAModel.Convert(h.AsNRGBA()).(color.RGBA)
}

// SetColor sets the HSL color from a standard [color.Color].
func (h *HSL) SetColor(c color.Color) {
	if c == nil {
		*h = HSL{}
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	h.H, h.S, h.L = SRGBToHSL(float32(n.R)/255, float32(n.G)/255, float32(n.B)/255)
	h.A = float32(n.A) / 255
}

// WithLightness returns the color with its lightness set to the given
// value, clamped to 0-100. Hue, saturation, and alpha are unchanged.
func (h HSL) WithLightness(lightness float32) HSL {
	h.L = math32.Min(math32.Max(lightness, 0), 100)
	return h
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", h.H, h.S, h.L)
}

// SRGBToHSL converts the given 0-1 normalized, gamma corrected sRGB
// values into hue (0-360), saturation (0-100), and lightness (0-100).
// Achromatic colors (all channels equal) have a hue and saturation of 0.
func SRGBToHSL(r, g, b float32) (h, s, l float32) {
	mx := math32.Max(r, math32.Max(g, b))
	mn := math32.Min(r, math32.Min(g, b))
	l = (mx + mn) / 2
	if mx == mn {
		return 0, 0, l * 100
	}
	d := mx - mn
	if l > 0.5 {
		s = d / (2 - mx - mn)
	} else {
		s = d / (mx + mn)
	}
	switch mx {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h >= 360 {
		h -= 360
	}
	return h, s * 100, l * 100
}

// HSLToSRGB converts the given hue (0-360), saturation (0-100), and
// lightness (0-100) into 0-1 normalized, gamma corrected sRGB values.
func HSLToSRGB(h, s, l float32) (r, g, b float32) {
	s /= 100
	l /= 100
	if s == 0 {
		return l, l, l
	}
	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hn := math32.Mod(h, 360) / 360
	if hn < 0 {
		hn++
	}
	r = hueToRGB(p, q, hn+1.0/3)
	g = hueToRGB(p, q, hn)
	b = hueToRGB(p, q, hn-1.0/3)
	return
}

func hueToRGB(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
