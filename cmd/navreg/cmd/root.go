package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "navreg",
	Short: "exercise the navreg voxel region pipeline",
	Long: `navreg is a demo harness around the navreg region-building pipeline:
	- write a build-settings YAML file pre-filled with defaults,
	- build a procedural voxel heightfield and partition it into regions,
	- print per-region span counts and build-phase timings.

It never rasterizes a triangle mesh and never produces contours or a
polygon mesh - those stages are out of this module's scope.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
