package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ha1tch/plan-toolkit/internal/diagram"
)

var plotCmd = &cobra.Command{
	Use:   "plot <input> <output>",
	Short: "Export an annotated plot of a plan",
	Long: `Export a dimensioned plot of a plan using gonum/plot. The output
format follows the file extension (.png, .svg, .pdf).

Examples:
  plan plot house.plan house.png
  plan plot house.plan drawings/house.pdf`,
	Args: cobra.ExactArgs(2),
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	p, err := loadPlan(args[0])
	if err != nil {
		return err
	}

	if err := diagram.ExportPlanDiagram(p, args[1]); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", args[1])
	return nil
}
