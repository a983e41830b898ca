// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "fmt"

// FormatError is the error returned when a color string
// does not have one of the accepted hex shapes.
type FormatError struct {

	// Input is the offending color string, as given.
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("colors: invalid hex color %q: expected #RGB or #RRGGBB", e.Input)
}
