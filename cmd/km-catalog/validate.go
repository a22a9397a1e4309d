// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/km-catalog/internal/model"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Audit the knowledge model's identifier references",
	Long: `Validate walks every identifier reference reachable from the knowledge
model's top-level lists and reports the ones that do not resolve against the
entity registry. Unlike extract, which stops at the first dangling
reference, validate collects them all before failing.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")

	km, err := model.Load(stringSetting(cmd, "input", "input"))
	if err != nil {
		return err
	}

	missing := model.Validate(km, all)
	for _, nf := range missing {
		fmt.Fprintf(os.Stdout, "missing %-20s %s\n", nf.Kind, nf.UUID)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%d unresolved reference(s)", len(missing))
	}

	fmt.Fprintln(os.Stdout, "ok: all references resolve")
	return nil
}

func init() {
	validateCmd.Flags().String("input", "km.json", "knowledge-model document to read")
	validateCmd.Flags().Bool("all", false, "also audit top-level phases, metrics, tags, and resource collections")

	rootCmd.AddCommand(validateCmd)
}
