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

	"gonum.org/v1/gonum/integrate/quad"
)

// pointSource evaluates the closed-form steady-state concentration kernel
// for a decaying point source in a uniform flow field, at downgradient
// distance x and transverse offsets y and z from the source location
// (Srinivasan et al., BIOSCREEN-AT). The kernel carries the source-plane
// area factor 2HW; Concentration divides it back out after integration.
func (p Params) pointSource(x, y, z float64) float64 {
	dx, dy, dz := p.Dispersion()
	β := p.Decay + p.Velocity*p.Velocity/(4*dx)
	r := math.Sqrt(β * (x*x/dx + y*y/dy + z*z/dz))
	return p.SourceConcentration * 2 * p.SourceThickness * p.SourceWidth /
		(2 * math.Pi * math.Sqrt(dx*dy*dz)) * math.Pow(β, 1.5) *
		x / (r * r) * (1 + 1/r) * math.Exp(p.Velocity*x/(2*dx)-r)
}

// Concentration returns the steady-state solute concentration at the
// point (x,y,z), where x is the distance downgradient of the source
// plane, y is the horizontal distance from the plume centerline, and z
// is the vertical distance from the source mid-plane. It integrates the
// point-source kernel over the finite source plane using fixed-order
// Gauss-Legendre quadrature with p.QuadPoints points per axis.
//
// x must be greater than zero; the kernel is singular at the source
// plane itself.
func (p Params) Concentration(x, y, z float64) (float64, error) {
	if err := p.Check(); err != nil {
		return math.NaN(), err
	}
	if x <= 0 {
		return math.NaN(), fmt.Errorf("bioscreen: concentration is only defined downgradient "+
			"of the source (x > 0) but x=%g", x)
	}
	halfW := p.SourceWidth / 2
	h := p.SourceThickness
	n := p.quadPoints()
	// In the BIOSCREEN-AT formulation the width-wise source offsets
	// couple with the vertical dispersion term and the thickness-wise
	// offsets with the transverse-horizontal term.
	c := quad.Fixed(func(w2 float64) float64 {
		return quad.Fixed(func(h2 float64) float64 {
			return p.pointSource(x, y-h2, z-w2)
		}, -h, h, n, nil, 0)
	}, -halfW, halfW, n, nil, 0)
	c /= 2 * h * p.SourceWidth
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return math.NaN(), fmt.Errorf("bioscreen: quadrature gave a non-finite concentration "+
			"at (%g,%g,%g)", x, y, z)
	}
	return c, nil
}
