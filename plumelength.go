/*
Copyright © 2018 the BIOSCREEN authors.
This file is part of BIOSCREEN.

BIOSCREEN is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

BIOSCREEN is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with BIOSCREEN.  If not, see <http://www.gnu.org/licenses/>.
*/

package bioscreen

import (
	"fmt"
	"math"
)

// DefaultMaxDistance is the downgradient scan bound [m] used by
// MaxPlumeLength when no bound is given.
const DefaultMaxDistance = 100000

// Sample is one centerline concentration observation.
type Sample struct {
	Distance      float64 // distance downgradient of the source [m]
	Concentration float64 // centerline concentration [g/m³]
}

// Profile is an ordered sequence of centerline samples with strictly
// increasing distance. It implements plotter.XYer.
type Profile []Sample

// Len returns the number of samples in the profile.
func (pr Profile) Len() int { return len(pr) }

// XY returns the distance and concentration of sample i.
func (pr Profile) XY(i int) (x, y float64) { return pr[i].Distance, pr[i].Concentration }

// Result holds the outcome of a maximum plume length scan.
type Result struct {
	// Length is the last scanned distance [m]. When Converged is true
	// it is the maximum plume length: the smallest scanned distance at
	// which the centerline concentration is below the threshold.
	Length float64

	// Concentration is the centerline concentration at Length.
	Concentration float64

	// Converged reports whether the concentration fell below the
	// threshold before the scan bound was reached. If it is false,
	// the plume extends beyond the scan bound and Length is not a
	// plume length.
	Converged bool

	// Profile contains every sample evaluated during the scan, in
	// increasing distance order.
	Profile Profile
}

// MaxPlumeLength scans along the plume centerline (y=0, z=0) in 1 m
// steps starting at x=1, and stops at the first distance where the
// concentration drops below threshold, or at maxDistance, whichever
// comes first. Reaching maxDistance with the concentration still at or
// above the threshold is a normal outcome reported through
// Result.Converged, not an error.
//
// The scan stops at the first crossing without confirming that the
// concentration keeps decreasing; the profile is assumed to decay
// monotonically beyond the near field.
//
// The bound is interpreted as a whole number of metres: a fractional
// maxDistance is rounded down so that no sample is evaluated past it.
// If maxDistance is not positive, DefaultMaxDistance is used.
func (p Params) MaxPlumeLength(threshold, maxDistance float64) (*Result, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("bioscreen: threshold concentration must be positive but is %g", threshold)
	}
	if maxDistance <= 0 {
		maxDistance = DefaultMaxDistance
	}
	maxDistance = math.Floor(maxDistance)
	x := 1.0
	c, err := p.Concentration(x, 0, 0)
	if err != nil {
		return nil, err
	}
	profile := Profile{{Distance: x, Concentration: c}}
	for c >= threshold && x < maxDistance {
		x++
		c, err = p.Concentration(x, 0, 0)
		if err != nil {
			return nil, err
		}
		profile = append(profile, Sample{Distance: x, Concentration: c})
	}
	return &Result{
		Length:        x,
		Concentration: c,
		Converged:     c < threshold,
		Profile:       profile,
	}, nil
}
