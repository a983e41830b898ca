// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snap

import (
	"fmt"

	"cogentcore.org/contrast/contrast"
)

// Options are the options for snapping a color pair. The embedded
// [contrast.Options] determine the required contrast ratio.
type Options struct {
	contrast.Options

	// LockHue is reserved for keeping the hue fixed while adjusting.
	// It is accepted but currently has no effect: the hue is
	// always kept fixed, since only HSL lightness is adjusted.
	LockHue bool `json:"lockHue,omitempty"`

	// LockChroma is reserved for keeping the chroma fixed while adjusting.
	// It is accepted but currently has no effect: the saturation is
	// always kept fixed, since only HSL lightness is adjusted.
	LockChroma bool `json:"lockChroma,omitempty"`

	// PreferForeground is whether to adjust the foreground when
	// several adjustments are about equally small. This is also
	// the behavior when neither preference is set, and it wins
	// when both are set.
	PreferForeground bool `json:"preferForegroundAdjust,omitempty"`

	// PreferBackground is whether to adjust the background when
	// several adjustments are about equally small. It only takes
	// effect when PreferForeground is not also set.
	PreferBackground bool `json:"preferBackgroundAdjust,omitempty"`
}

// preferred returns the side favored when breaking ties.
func (o Options) preferred() Side {
	if o.PreferBackground && !o.PreferForeground {
		return Background
	}
	return Foreground
}

// Side is a side of a color pair.
type Side int32

const (
	// None is no side, used when nothing was adjusted.
	None Side = iota

	// Foreground is the foreground (text) color.
	Foreground

	// Background is the background color.
	Background
)

// String returns "fg", "bg", or "" for [None].
func (s Side) String() string {
	switch s {
	case Foreground:
		return "fg"
	case Background:
		return "bg"
	}
	return ""
}

// MarshalText implements [encoding.TextMarshaler].
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*s = None
	case "fg":
		*s = Foreground
	case "bg":
		*s = Background
	default:
		return fmt.Errorf("snap.Side: invalid side %q", text)
	}
	return nil
}

// Path is one of the four one-dimensional adjustments tried for a pair.
// The order of the values is the canonical order used to break ties.
type Path int32

const (
	// FgLighten raises the lightness of the foreground.
	FgLighten Path = iota

	// FgDarken lowers the lightness of the foreground.
	FgDarken

	// BgDarken lowers the lightness of the background.
	BgDarken

	// BgLighten raises the lightness of the background.
	BgLighten
)

// Paths are all of the paths, in canonical order.
var Paths = [...]Path{FgLighten, FgDarken, BgDarken, BgLighten}

// Side returns the side of the pair that the path adjusts.
func (p Path) Side() Side {
	if p == FgLighten || p == FgDarken {
		return Foreground
	}
	return Background
}

// Lighten returns whether the path raises lightness (toward 100),
// as opposed to lowering it (toward 0).
func (p Path) Lighten() bool {
	return p == FgLighten || p == BgLighten
}

func (p Path) String() string {
	switch p {
	case FgLighten:
		return "fg-lighten"
	case FgDarken:
		return "fg-darken"
	case BgDarken:
		return "bg-darken"
	case BgLighten:
		return "bg-lighten"
	}
	return fmt.Sprintf("Path(%d)", int32(p))
}
