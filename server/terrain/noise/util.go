// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "math"

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// inverseLerp maps value from [a, b] to [0, 1]. Returns 0 if a == b.
func inverseLerp(a, b, value float64) float64 {
	if a == b {
		return 0
	}
	return clamp01((value - a) / (b - a))
}

// wrap returns f modulo period in [0, period).
func wrap(f, period float64) float64 {
	f = math.Mod(f, period)
	if f < 0 {
		f += period
	}
	return f
}
