// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

func min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clamp(val, minimum, maximum float32) float32 {
	return min(max(val, minimum), maximum)
}

// Clamp01 clamps f to [0, 1]. NaN becomes 0.
func Clamp01(f float32) float32 {
	if f != f {
		return 0
	}
	return clamp(f, 0, 1)
}
