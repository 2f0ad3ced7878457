package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ha1tch/plan-toolkit/internal/diagram"
)

var infoASCII bool

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show a summary of a plan file",
	Long: `Print the walls, openings and dimensions of a plan file.

Examples:
  plan info house.plan
  plan info --ascii house.plan`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoASCII, "ascii", false, "Draw an ASCII sketch of the plan")
}

func runInfo(cmd *cobra.Command, args []string) error {
	p, err := loadPlan(args[0])
	if err != nil {
		return err
	}

	name := p.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Printf("Plan: %s\n", name)

	if min, max, ok := p.Bounds(); ok {
		fmt.Printf("Size: %.2fm x %.2fm\n", max.X-min.X, max.Y-min.Y)
	}

	openings := 0
	var total float64
	for i := range p.Walls {
		openings += len(p.Walls[i].Openings)
		total += p.Walls[i].Length()
	}
	fmt.Printf("Walls: %d (%.2fm total), openings: %d\n\n", len(p.Walls), total, openings)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLENGTH\tTHICKNESS\tALIGN\tOPENINGS")
	for i := range p.Walls {
		wall := &p.Walls[i]
		fmt.Fprintf(w, "%s\t%.2fm\t%.2fm\t%s\t%d\n",
			shortID(wall.ID), wall.Length(), wall.Thickness, wall.Alignment, len(wall.Openings))
	}
	w.Flush()

	if infoASCII {
		fmt.Print(diagram.DrawASCIIPlan(p, 72, 24))
	}

	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
