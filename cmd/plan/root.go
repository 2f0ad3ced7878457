package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ha1tch/plan-toolkit/pkg/plan"
	"github.com/ha1tch/plan-toolkit/pkg/planfile"
)

var rootCmd = &cobra.Command{
	Use:   "plan",
	Short: "Floor plan toolkit",
	Long: `plan - floor plan toolkit

Inspect, validate, convert and render floor plan files.

Supported formats:
  .plan   zip container with plan.json and meta.toml
  .json   plain JSON plan
  .svg    scalable vector rendering (output only)
  .png    raster rendering (output only)
  .dxf    CAD interchange drawing (output only)

Use 'plan --help' to see available commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadPlan reads a plan from a .plan or .json file.
func loadPlan(path string) (*plan.Plan, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".plan":
		return planfile.ReadPlanFile(path)
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return planfile.ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
}

// savePlan writes a plan to a .plan or .json file.
func savePlan(path string, p *plan.Plan) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".plan":
		return planfile.WritePlanFile(path, p)
	case ".json":
		data, err := planfile.ToJSON(p, true)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)
	default:
		return fmt.Errorf("unsupported output format: %s", filepath.Ext(path))
	}
}
