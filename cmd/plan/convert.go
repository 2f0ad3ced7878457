package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert between plan formats",
	Long: `Convert a plan between the .plan container and plain .json.

Examples:
  plan convert house.plan house.json
  plan convert house.json house.plan`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	if strings.EqualFold(filepath.Ext(in), filepath.Ext(out)) {
		return fmt.Errorf("input and output have the same format")
	}

	p, err := loadPlan(in)
	if err != nil {
		return err
	}

	if err := savePlan(out, p); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", out)
	return nil
}
