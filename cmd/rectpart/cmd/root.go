package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "rectpart",
	Short: "partition rectilinear polygons into rectangles",
	Long: `This is the command-line application accompanying go-rectpart:
	- partition rectilinear polygons into a minimal set of rectangles,
	- read polygons from simple YAML files,
	- save the resulting rectangles to YAML,
	- show infos about a polygon (corners, concavity, rectangle count).`,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
