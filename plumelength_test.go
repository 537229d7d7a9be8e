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
	"math"
	"testing"

	"github.com/GaryBoone/GoStats/stats"
)

func TestMaxPlumeLength(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full centerline scan in short mode")
	}
	const (
		threshold = 5e-5
		wantL     = 495.
		wantC     = 4.9046433346674535e-05
	)
	r, err := testParams().MaxPlumeLength(threshold, DefaultMaxDistance)
	if err != nil {
		t.Fatal(err)
	}
	if r.Length != wantL {
		t.Errorf("plume length %g != %g", r.Length, wantL)
	}
	if different(r.Concentration, wantC, testTolerance) {
		t.Errorf("boundary concentration %g != %g", r.Concentration, wantC)
	}
	if !r.Converged {
		t.Error("scan should have converged")
	}
	if len(r.Profile) != int(wantL) {
		t.Errorf("profile has %d samples; want %d", len(r.Profile), int(wantL))
	}
	last := r.Profile[len(r.Profile)-1]
	if last.Distance != r.Length || last.Concentration != r.Concentration {
		t.Errorf("last sample (%g,%g) doesn't match result (%g,%g)",
			last.Distance, last.Concentration, r.Length, r.Concentration)
	}
	// The reported length is the smallest crossing distance: the sample
	// one metre before it must still be at or above the threshold.
	if prev := r.Profile[len(r.Profile)-2]; prev.Concentration < threshold {
		t.Errorf("concentration %g at x=%g is already below the threshold",
			prev.Concentration, prev.Distance)
	}
	for i, s := range r.Profile {
		if s.Distance != float64(i+1) {
			t.Fatalf("sample %d is at distance %g; want %d", i, s.Distance, i+1)
		}
		below := s.Concentration < threshold
		if below != (i == len(r.Profile)-1) {
			t.Fatalf("scan did not stop at the first threshold crossing (sample %d)", i)
		}
	}
}

func TestMaxPlumeLengthBound(t *testing.T) {
	// A threshold below anything the model can reach within the bound
	// must exhaust the scan normally.
	r, err := testParams().MaxPlumeLength(1e-300, 25)
	if err != nil {
		t.Fatal(err)
	}
	if r.Length != 25 {
		t.Errorf("terminal distance %g != 25", r.Length)
	}
	if r.Converged {
		t.Error("scan should not have converged")
	}
	if r.Concentration < 1e-300 {
		t.Errorf("terminal concentration %g is below the threshold", r.Concentration)
	}
	if len(r.Profile) != 25 {
		t.Errorf("profile has %d samples; want 25", len(r.Profile))
	}
}

func TestMaxPlumeLengthFractionalBound(t *testing.T) {
	// A fractional bound is rounded down; no sample may be evaluated
	// past it.
	r, err := testParams().MaxPlumeLength(1e-300, 10.5)
	if err != nil {
		t.Fatal(err)
	}
	if r.Length != 10 {
		t.Errorf("terminal distance %g != 10", r.Length)
	}
	if len(r.Profile) != 10 {
		t.Errorf("profile has %d samples; want 10", len(r.Profile))
	}
	for _, s := range r.Profile {
		if s.Distance > 10.5 {
			t.Errorf("sample at x=%g is past the scan bound", s.Distance)
		}
	}
}

func TestMaxPlumeLengthImmediate(t *testing.T) {
	// A threshold above the near-source concentration stops the scan
	// at the first sample.
	r, err := testParams().MaxPlumeLength(1e3, 100)
	if err != nil {
		t.Fatal(err)
	}
	if r.Length != 1 || len(r.Profile) != 1 {
		t.Errorf("got length %g with %d samples; want 1 and 1", r.Length, len(r.Profile))
	}
	if !r.Converged {
		t.Error("scan should have converged at the first sample")
	}
}

func TestMaxPlumeLengthErrors(t *testing.T) {
	if _, err := testParams().MaxPlumeLength(0, 100); err == nil {
		t.Error("zero threshold should be rejected")
	}
	p := testParams()
	p.SourceConcentration = -1
	if _, err := p.MaxPlumeLength(5e-5, 100); err == nil {
		t.Error("invalid parameters should abort the scan")
	}
}

// Beyond the near field the centerline profile should decay
// monotonically, and exponentially to a good approximation.
func TestMonotoneDecay(t *testing.T) {
	r, err := testParams().MaxPlumeLength(5e-5, 500)
	if err != nil {
		t.Fatal(err)
	}
	tail := r.Profile[49:] // x >= 50 m
	xs := make([]float64, len(tail))
	lnc := make([]float64, len(tail))
	for i, s := range tail {
		if i > 0 && s.Concentration > tail[i-1].Concentration {
			t.Errorf("concentration increases from %g to %g at x=%g",
				tail[i-1].Concentration, s.Concentration, s.Distance)
		}
		xs[i] = s.Distance
		lnc[i] = math.Log(s.Concentration)
	}
	slope, _, rsquared, _, _, _ := stats.LinearRegression(xs, lnc)
	if slope >= 0 {
		t.Errorf("log-concentration regression slope %g; want < 0", slope)
	}
	if rsquared < 0.99 {
		t.Errorf("log-concentration decay is not log-linear (R²=%g)", rsquared)
	}
}
