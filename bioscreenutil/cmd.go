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

// Package bioscreenutil provides configuration and a command-line
// interface for the BIOSCREEN plume model.
package bioscreenutil

import (
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/bioscreen"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to BIOSCREEN.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Source.Width",
			usage: `
              Source.Width is the width of the rectangular contaminant
              source plane, perpendicular to groundwater flow [m].`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), concCmd.Flags()},
		},
		{
			name: "Source.Thickness",
			usage: `
              Source.Thickness is the half-thickness of the source
              plane [m]; the source extends this far above and below
              its mid-plane.`,
			defaultVal: 2.0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), concCmd.Flags()},
		},
		{
			name: "Source.Concentration",
			usage: `
              Source.Concentration is the dissolved concentration at
              the source plane [g/m³].`,
			defaultVal: 50.0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), concCmd.Flags()},
		},
		{
			name: "Aquifer.Velocity",
			usage: `
              Aquifer.Velocity is the groundwater seepage
              velocity [m/d].`,
			defaultVal: 20.0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), concCmd.Flags()},
		},
		{
			name: "Aquifer.AlphaL",
			usage: `
              Aquifer.AlphaL is the longitudinal dispersivity [m].`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), concCmd.Flags()},
		},
		{
			name: "Aquifer.AlphaTH",
			usage: `
              Aquifer.AlphaTH is the transverse-horizontal
              dispersivity [m].`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), concCmd.Flags()},
		},
		{
			name: "Aquifer.AlphaTV",
			usage: `
              Aquifer.AlphaTV is the transverse-vertical
              dispersivity [m].`,
			defaultVal: 0.1,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), concCmd.Flags()},
		},
		{
			name: "Aquifer.MolecularDiffusion",
			usage: `
              Aquifer.MolecularDiffusion is the effective molecular
              diffusion coefficient [m²/d]. It may be zero.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), concCmd.Flags()},
		},
		{
			name: "Aquifer.Decay",
			usage: `
              Aquifer.Decay is the effective first-order decay
              constant of the contaminant [1/d].`,
			defaultVal: 0.5,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), concCmd.Flags()},
		},
		{
			name: "QuadPoints",
			usage: `
              QuadPoints is the number of Gauss-Legendre quadrature
              points used per axis when integrating over the source
              plane. It controls the accuracy of the concentration
              calculation.`,
			defaultVal: 40,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), concCmd.Flags()},
		},
		{
			name: "Threshold",
			usage: `
              Threshold is the concentration [g/m³] defining the edge
              of the plume. The scan stops at the first distance where
              the centerline concentration drops below this value.`,
			defaultVal: 5.0e-5,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags()},
		},
		{
			name: "MaxDistance",
			usage: `
              MaxDistance is the downgradient scan bound [m]. If the
              concentration stays at or above the threshold all the way
              to this distance, the scan reports that no plume length
              was found within the bound.`,
			defaultVal: 100000.0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where the scanned
              distance-concentration profile is written as CSV. It can
              include environment variables. If it is empty, no CSV
              output is written.`,
			defaultVal: "bioscreen_profile.csv",
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags()},
		},
		{
			name: "PlotFile",
			usage: `
              PlotFile is the path where the log-scale centerline
              concentration plot is saved. It can include environment
              variables. If it is empty, no plot is drawn.`,
			defaultVal: "bioscreen_profile.png",
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags()},
		},
		{
			name: "LogFile",
			usage: `
              LogFile is the path to the desired logfile location. It
              can include environment variables. If LogFile is left
              blank, log messages are written to standard error.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags()},
		},
		{
			name: "x",
			usage: `
              x is the distance downgradient of the source plane [m]
              at which to evaluate the concentration. It must be
              greater than zero.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{concCmd.Flags()},
		},
		{
			name: "y",
			usage: `
              y is the horizontal distance from the plume
              centerline [m] at which to evaluate the concentration.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{concCmd.Flags()},
		},
		{
			name: "z",
			usage: `
              z is the vertical distance from the source mid-plane [m]
              at which to evaluate the concentration.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{concCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("BIOSCREEN")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(concCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("bioscreen: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "bioscreen",
	Short: "A semi-analytical groundwater contaminant plume model.",
	Long: `BIOSCREEN calculates steady-state contaminant concentrations downgradient
of a finite planar source in a uniform groundwater flow field, and the
maximum downgradient extent of the contaminant plume.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format
'BIOSCREEN_var' where 'var' is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration
information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of BIOSCREEN.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("BIOSCREEN v%s\n", bioscreen.Version)
	},
	DisableAutoGenTag: true,
}

// runCmd is a command that calculates the maximum plume length.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Calculate the maximum plume length.",
	Long: `run scans along the plume centerline in 1 m steps until the
concentration drops below the threshold (or the scan bound is reached),
writes the scanned profile as CSV, and draws a log-scale plot of it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := ModelParams(Cfg)
		if err != nil {
			return err
		}
		threshold, err := getFloat(Cfg, "Threshold")
		if err != nil {
			return err
		}
		maxDistance, err := getFloat(Cfg, "MaxDistance")
		if err != nil {
			return err
		}
		return Run(
			cmd,
			os.ExpandEnv(Cfg.GetString("LogFile")),
			os.ExpandEnv(Cfg.GetString("OutputFile")),
			os.ExpandEnv(Cfg.GetString("PlotFile")),
			p, threshold, maxDistance)
	},
	DisableAutoGenTag: true,
}

// concCmd is a command that evaluates the concentration at one point.
var concCmd = &cobra.Command{
	Use:   "conc",
	Short: "Evaluate the concentration at a point.",
	Long: `conc evaluates the steady-state concentration at a single point
(--x, --y, --z) downgradient of the source plane.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := ModelParams(Cfg)
		if err != nil {
			return err
		}
		x, err := getFloat(Cfg, "x")
		if err != nil {
			return err
		}
		y, err := getFloat(Cfg, "y")
		if err != nil {
			return err
		}
		z, err := getFloat(Cfg, "z")
		if err != nil {
			return err
		}
		return Conc(cmd, p, x, y, z)
	},
	DisableAutoGenTag: true,
}
