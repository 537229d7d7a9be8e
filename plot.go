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
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot renders the profile as a concentration-vs-distance line chart
// with a logarithmic concentration axis and saves it to filename. The
// output format is determined by the filename extension (e.g. ".png").
func (pr Profile) Plot(filename string) error {
	return pr.PlotWithThreshold(filename, 0)
}

// PlotWithThreshold is like Plot but additionally draws a dashed
// horizontal line at the given threshold concentration if it is
// positive.
func (pr Profile) PlotWithThreshold(filename string, threshold float64) error {
	if len(pr) == 0 {
		return fmt.Errorf("bioscreen: cannot plot an empty profile")
	}
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "Centerline concentration"
	p.X.Label.Text = "Distance downgradient (m)"
	p.Y.Label.Text = "Concentration (g/m³)"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{}

	l, err := plotter.NewLine(pr)
	if err != nil {
		return err
	}
	l.Color = color.NRGBA{B: 255, A: 255}
	p.Add(l)
	p.Legend.Add("C(x,0,0)", l)
	p.Legend.Top = true

	if threshold > 0 {
		xs := make([]float64, len(pr))
		for i, s := range pr {
			xs[i] = s.Distance
		}
		xmin, xmax := floats.Min(xs), floats.Max(xs)
		t, err := plotter.NewLine(plotter.XYs{{xmin, threshold}, {xmax, threshold}})
		if err != nil {
			return err
		}
		t.Color = color.NRGBA{R: 255, A: 255}
		t.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(t)
		p.Legend.Add("threshold", t)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
