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

// Package bioscreen implements the BIOSCREEN-AT semi-analytical model for
// steady-state solute transport in groundwater from a finite planar source,
// and calculates the maximum downgradient extent of the contaminant plume.
package bioscreen

import (
	"fmt"
)

// Version gives the version number of this version of BIOSCREEN.
const Version = "1.0.0"

// defaultQuadPoints is the number of Gauss-Legendre points used per
// integration axis when Params.QuadPoints is not set.
const defaultQuadPoints = 40

// Params holds the physical parameters describing the contaminant source
// and the aquifer. A Params value is immutable for the duration of a
// model run; all model operations are methods on it.
type Params struct {
	// SourceWidth is the width of the rectangular source plane,
	// perpendicular to groundwater flow [m].
	SourceWidth float64

	// SourceThickness is the half-thickness of the source plane [m];
	// the source extends from -SourceThickness to +SourceThickness
	// vertically.
	SourceThickness float64

	// SourceConcentration is the dissolved concentration at the
	// source plane [g/m³].
	SourceConcentration float64

	// Velocity is the groundwater seepage velocity [m/d].
	Velocity float64

	// AlphaL, AlphaTH, and AlphaTV are the longitudinal,
	// transverse-horizontal, and transverse-vertical
	// dispersivities [m].
	AlphaL, AlphaTH, AlphaTV float64

	// MolecularDiffusion is the effective molecular diffusion
	// coefficient [m²/d]. It may be zero.
	MolecularDiffusion float64

	// Decay is the effective first-order decay constant [1/d].
	Decay float64

	// QuadPoints is the number of Gauss-Legendre quadrature points
	// used per axis when integrating over the source plane. It
	// controls the accuracy of Concentration; if it is less than 1
	// a default of 40 is used.
	QuadPoints int
}

// Dispersion returns the dispersion coefficients in the longitudinal (x),
// transverse-horizontal (y), and transverse-vertical (z) directions,
// calculated as the product of the seepage velocity with the corresponding
// dispersivity, plus molecular diffusion.
func (p Params) Dispersion() (dx, dy, dz float64) {
	dx = p.Velocity*p.AlphaL + p.MolecularDiffusion
	dy = p.Velocity*p.AlphaTH + p.MolecularDiffusion
	dz = p.Velocity*p.AlphaTV + p.MolecularDiffusion
	return
}

// Check returns an error if the parameters do not describe a physically
// valid model.
func (p Params) Check() error {
	if p.SourceWidth <= 0 {
		return fmt.Errorf("bioscreen: source width must be positive but is %g", p.SourceWidth)
	}
	if p.SourceThickness <= 0 {
		return fmt.Errorf("bioscreen: source thickness must be positive but is %g", p.SourceThickness)
	}
	if p.SourceConcentration <= 0 {
		return fmt.Errorf("bioscreen: source concentration must be positive but is %g", p.SourceConcentration)
	}
	if p.Decay < 0 {
		return fmt.Errorf("bioscreen: decay constant must not be negative but is %g", p.Decay)
	}
	dx, dy, dz := p.Dispersion()
	if dx <= 0 || dy <= 0 || dz <= 0 {
		return fmt.Errorf("bioscreen: dispersion coefficients must be positive but are (%g,%g,%g); "+
			"check the seepage velocity, dispersivities and molecular diffusion", dx, dy, dz)
	}
	return nil
}

func (p Params) quadPoints() int {
	if p.QuadPoints < 1 {
		return defaultQuadPoints
	}
	return p.QuadPoints
}
