// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// FromName returns the color value specified
// by the given CSS standard color name, matched
// case-insensitively. It returns an error if
// the name is not found.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("colors.FromName: name not found: %q", name)
	}
	return c, nil
}

// FromString returns the color specified by the given hex color
// string or CSS standard color name. Hex strings take precedence.
// If neither matches, it returns the [*FormatError] from [FromHex].
func FromString(str string) (color.RGBA, error) {
	c, err := FromHex(str)
	if err == nil {
		return c, nil
	}
	if nc, nerr := FromName(str); nerr == nil {
		return nc, nil
	}
	return color.RGBA{}, err
}
