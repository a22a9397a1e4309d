// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/km-catalog/internal/catalog"
	"github.com/pdiddy/km-catalog/internal/extract"
	"github.com/pdiddy/km-catalog/internal/model"
	"github.com/pdiddy/km-catalog/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract translatable text into a POT catalog",
	Long: `Extract walks the knowledge model depth-first from its chapter list,
collects every translatable field, collapses duplicate texts into single
entries with merged locations, and writes a gettext POT template.

By default only the chapter tree is walked, matching the document's primary
entry point. With --all the top-level phases, metrics, tags, and resource
collections are extracted as well.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	ecfg, ccfg := extractConfig(cmd)

	km, err := model.Load(ecfg.InputPath)
	if err != nil {
		return err
	}

	extractor := extract.New(km)
	var messages []types.ExtractedMessage
	if ecfg.WalkAll {
		messages, err = extractor.ExtractAll()
	} else {
		messages, err = extractor.Extract()
	}
	if err != nil {
		return err
	}

	entries := catalog.Group(messages)
	file := catalog.Build(entries, ccfg)
	if err := catalog.Write(file, ccfg.OutputPath); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "wrote %s: %d entries from %d extracted messages\n",
		ccfg.OutputPath, len(entries), len(messages))
	return nil
}

func extractConfig(cmd *cobra.Command) (types.ExtractConfig, types.CatalogConfig) {
	walkAll, _ := cmd.Flags().GetBool("all")

	ecfg := types.ExtractConfig{
		InputPath: stringSetting(cmd, "input", "input"),
		WalkAll:   walkAll,
	}
	ccfg := types.CatalogConfig{
		Project:    stringSetting(cmd, "project", "project.name"),
		Version:    stringSetting(cmd, "project-version", "project.version"),
		OutputPath: stringSetting(cmd, "output", "output"),
	}
	return ecfg, ccfg
}

func init() {
	extractCmd.Flags().String("input", "km.json", "knowledge-model document to read")
	extractCmd.Flags().String("output", "messages.pot", "catalog file to write")
	extractCmd.Flags().String("project", "Common DSW Knowledge Model", "project name for the catalog header")
	extractCmd.Flags().String("project-version", "2.7.0", "project version for the catalog header")
	extractCmd.Flags().Bool("all", false, "also extract top-level phases, metrics, tags, and resource collections")

	rootCmd.AddCommand(extractCmd)
}
