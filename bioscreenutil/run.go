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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/bioscreen"
	"github.com/spf13/cobra"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
}

// Run calculates the maximum plume length and writes the outputs.
//
// CobraCommand is the cobra.Command instance where Run is called from;
// the summary result is printed to its output.
//
// LogFile is the path to the desired logfile location. If it is empty,
// log messages go to standard error.
//
// OutputFile is the path where the scanned profile is written as CSV,
// and PlotFile the path where the log-scale profile plot is saved;
// either may be empty to skip that output.
//
// p holds the physical model parameters, threshold the plume-edge
// concentration, and maxDistance the downgradient scan bound.
func Run(cmd *cobra.Command, logFile, outputFile, plotFile string, p bioscreen.Params, threshold, maxDistance float64) error {
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return fmt.Errorf("bioscreen: problem creating log file: %v", err)
		}
		defer f.Close()
		log.Out = f
	}

	dx, dy, dz := p.Dispersion()
	log.WithFields(logrus.Fields{
		"Dx": dx, "Dy": dy, "Dz": dz,
		"threshold":   threshold,
		"maxDistance": maxDistance,
	}).Info("scanning for the maximum plume length")

	result, err := p.MaxPlumeLength(threshold, maxDistance)
	if err != nil {
		return err
	}
	if result.Converged {
		log.WithFields(logrus.Fields{
			"length":        result.Length,
			"concentration": result.Concentration,
			"samples":       len(result.Profile),
		}).Info("found the maximum plume length")
	} else {
		log.WithFields(logrus.Fields{
			"maxDistance":   maxDistance,
			"concentration": result.Concentration,
		}).Warn("concentration stayed above the threshold to the scan bound")
	}

	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("bioscreen: problem creating output file: %v", err)
		}
		if err := result.Profile.WriteCSV(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"file": outputFile}).Info("wrote profile CSV")
	}
	if plotFile != "" {
		if err := result.Profile.PlotWithThreshold(plotFile, threshold); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"file": plotFile}).Info("wrote profile plot")
	}

	if result.Converged {
		cmd.Printf("Maximum plume length: %g m (concentration %g g/m³)\n",
			result.Length, result.Concentration)
	} else {
		cmd.Printf("No plume length found within %g m (concentration %g g/m³ at the bound)\n",
			maxDistance, result.Concentration)
	}
	return nil
}

// Conc evaluates the steady-state concentration at the point (x,y,z)
// and prints it to the command output.
func Conc(cmd *cobra.Command, p bioscreen.Params, x, y, z float64) error {
	c, err := p.Concentration(x, y, z)
	if err != nil {
		return err
	}
	cmd.Printf("C(%g,%g,%g) = %g g/m³\n", x, y, z, c)
	return nil
}
