package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a plan file for geometric problems",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := loadPlan(args[0])
	if err != nil {
		return err
	}

	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid plan: %w", err)
	}

	fmt.Printf("%s: OK (%d walls)\n", args[0], len(p.Walls))
	return nil
}
