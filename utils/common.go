// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package utils

import "math"

func Ptr[T any](t T) *T {
	return &t
}

// RoundToOneDecimal rounds half away from zero, e.g. 62.45 -> 62.5
func RoundToOneDecimal(f float64) float64 {
	return math.Round(f*10) / 10
}

func Clamp(f, lower, upper float64) float64 {
	return math.Max(lower, math.Min(upper, f))
}
