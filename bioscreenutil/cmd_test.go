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
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestModelParamsDefaults(t *testing.T) {
	p, err := ModelParams(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if p.SourceWidth != 10 || p.SourceThickness != 2 || p.SourceConcentration != 50 {
		t.Errorf("unexpected source defaults: %+v", p)
	}
	if p.Velocity != 20 || p.AlphaL != 10 || p.AlphaTH != 1 || p.AlphaTV != 0.1 {
		t.Errorf("unexpected aquifer defaults: %+v", p)
	}
	if p.MolecularDiffusion != 0 || p.Decay != 0.5 {
		t.Errorf("unexpected aquifer defaults: %+v", p)
	}
	if p.QuadPoints != 40 {
		t.Errorf("QuadPoints default is %d; want 40", p.QuadPoints)
	}
	if got := Cfg.GetFloat64("Threshold"); got != 5e-5 {
		t.Errorf("Threshold default is %g; want 5e-5", got)
	}
	if got := Cfg.GetFloat64("MaxDistance"); got != 100000 {
		t.Errorf("MaxDistance default is %g; want 100000", got)
	}
}

func TestSetConfig(t *testing.T) {
	f, err := os.Create("tmp_config.toml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove("tmp_config.toml")
	fmt.Fprint(f, "Threshold = 1e-4\n\n[Source]\nWidth = 12.5\n")
	f.Close()

	Cfg.Set("config", "tmp_config.toml")
	defer Cfg.Set("config", "")
	if err := setConfig(); err != nil {
		t.Fatal(err)
	}
	p, err := ModelParams(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if p.SourceWidth != 12.5 {
		t.Errorf("Source.Width is %g; want the configured 12.5", p.SourceWidth)
	}
	// Values the file doesn't mention keep their defaults.
	if p.SourceThickness != 2 {
		t.Errorf("Source.Thickness is %g; want the default 2", p.SourceThickness)
	}
	if got := Cfg.GetFloat64("Threshold"); got != 1e-4 {
		t.Errorf("Threshold is %g; want the configured 1e-4", got)
	}
}

func TestRunCmd(t *testing.T) {
	for _, f := range []string{"tmp_run.csv", "tmp_run.png", "tmp_run.log"} {
		defer os.Remove(f)
	}
	var out bytes.Buffer
	Root.SetOutput(&out)
	Root.SetArgs([]string{"run",
		"--Threshold=1e-300",
		"--MaxDistance=20",
		"--OutputFile=tmp_run.csv",
		"--PlotFile=tmp_run.png",
		"--LogFile=tmp_run.log",
	})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No plume length found within 20 m") {
		t.Errorf("unexpected command output %q", out.String())
	}

	cf, err := os.Open("tmp_run.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer cf.Close()
	rows, err := csv.NewReader(cf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 21 { // header plus one sample per meter scanned
		t.Errorf("profile CSV has %d rows; want 21", len(rows))
	}

	if fi, err := os.Stat("tmp_run.png"); err != nil || fi.Size() == 0 {
		t.Errorf("plot file missing or empty (err=%v)", err)
	}
	if fi, err := os.Stat("tmp_run.log"); err != nil || fi.Size() == 0 {
		t.Errorf("log file missing or empty (err=%v)", err)
	}
}

func TestConcCmd(t *testing.T) {
	var out bytes.Buffer
	Root.SetOutput(&out)
	Root.SetArgs([]string{"conc", "--x=100"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "C(100,0,0) = ") {
		t.Errorf("unexpected command output %q", out.String())
	}
}

func TestConcCmdDomainError(t *testing.T) {
	Root.SetOutput(new(bytes.Buffer))
	Root.SetArgs([]string{"conc", "--x=0"})
	if err := Root.Execute(); err == nil {
		t.Error("evaluating at x=0 should fail")
	}
}
