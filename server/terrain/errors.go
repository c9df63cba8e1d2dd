// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is matched (with errors.Is) by every DimensionError.
var ErrDimensionMismatch = errors.New("grid dimensions do not match")

// ConfigError reports an invalid generation parameter.
// It is always returned before any output is produced.
type ConfigError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", err.Field, err.Value, err.Reason)
}

// DimensionError is returned by two-operand grid algebra on grids of different sizes.
type DimensionError struct {
	Width, Height           int
	OtherWidth, OtherHeight int
}

func (err *DimensionError) Error() string {
	return fmt.Sprintf("%s: %dx%d vs %dx%d", ErrDimensionMismatch, err.Width, err.Height, err.OtherWidth, err.OtherHeight)
}

func (err *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

// IndexError is a read outside of a grid. It is always a programming error.
type IndexError struct {
	X, Y          int
	Width, Height int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("index (%d, %d) out of range for %dx%d grid", err.X, err.Y, err.Width, err.Height)
}
