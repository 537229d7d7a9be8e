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

package bioscreenutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/bioscreen"
	"github.com/spf13/cast"
)

// getFloat retrieves a configuration value as a float64. Unlike the
// viper getter it reports failure instead of silently returning zero,
// so that a mistyped configuration entry doesn't become a physical
// parameter; TOML integers are accepted.
func getFloat(cfg *viper.Viper, name string) (float64, error) {
	v, err := cast.ToFloat64E(cfg.Get(name))
	if err != nil {
		return 0, fmt.Errorf("bioscreen: configuration value %s: %v", name, err)
	}
	return v, nil
}

// ModelParams assembles the physical model parameters from the
// configuration and validates them.
func ModelParams(cfg *viper.Viper) (bioscreen.Params, error) {
	var p bioscreen.Params
	var firstErr error
	get := func(name string) float64 {
		v, err := getFloat(cfg, name)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return v
	}
	p.SourceWidth = get("Source.Width")
	p.SourceThickness = get("Source.Thickness")
	p.SourceConcentration = get("Source.Concentration")
	p.Velocity = get("Aquifer.Velocity")
	p.AlphaL = get("Aquifer.AlphaL")
	p.AlphaTH = get("Aquifer.AlphaTH")
	p.AlphaTV = get("Aquifer.AlphaTV")
	p.MolecularDiffusion = get("Aquifer.MolecularDiffusion")
	p.Decay = get("Aquifer.Decay")
	if firstErr != nil {
		return p, firstErr
	}
	qp, err := cast.ToIntE(cfg.Get("QuadPoints"))
	if err != nil {
		return p, fmt.Errorf("bioscreen: configuration value QuadPoints: %v", err)
	}
	p.QuadPoints = qp
	return p, p.Check()
}
