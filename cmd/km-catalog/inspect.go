// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/km-catalog/internal/catalog"
	"github.com/pdiddy/km-catalog/internal/extract"
	"github.com/pdiddy/km-catalog/internal/model"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize a knowledge model's contents",
	Long: `Inspect loads a knowledge model, runs a full extraction (chapters plus
top-level phases, metrics, tags, and resource collections), and prints
entity counts, the number of extracted messages, and the number of unique
translatable texts.`,
	RunE: runInspect,
}

// inspectReport is the summary printed by the inspect command.
type inspectReport struct {
	Entities    entityCounts `json:"entities" yaml:"entities"`
	Messages    int          `json:"messages" yaml:"messages"`
	UniqueTexts int          `json:"unique_texts" yaml:"unique_texts"`
}

type entityCounts struct {
	Chapters            int `json:"chapters" yaml:"chapters"`
	Questions           int `json:"questions" yaml:"questions"`
	Answers             int `json:"answers" yaml:"answers"`
	Choices             int `json:"choices" yaml:"choices"`
	References          int `json:"references" yaml:"references"`
	Tags                int `json:"tags" yaml:"tags"`
	Metrics             int `json:"metrics" yaml:"metrics"`
	Phases              int `json:"phases" yaml:"phases"`
	ResourceCollections int `json:"resource_collections" yaml:"resource_collections"`
	ResourcePages       int `json:"resource_pages" yaml:"resource_pages"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	km, err := model.Load(stringSetting(cmd, "input", "input"))
	if err != nil {
		return err
	}

	messages, err := extract.New(km).ExtractAll()
	if err != nil {
		return err
	}
	entries := catalog.Group(messages)

	report := inspectReport{
		Entities: entityCounts{
			Chapters:            len(km.Entities.Chapters),
			Questions:           len(km.Entities.Questions),
			Answers:             len(km.Entities.Answers),
			Choices:             len(km.Entities.Choices),
			References:          len(km.Entities.References),
			Tags:                len(km.Entities.Tags),
			Metrics:             len(km.Entities.Metrics),
			Phases:              len(km.Entities.Phases),
			ResourceCollections: len(km.Entities.ResourceCollections),
			ResourcePages:       len(km.Entities.ResourcePages),
		},
		Messages:    len(messages),
		UniqueTexts: len(entries),
	}

	switch format {
	case "text", "":
		printInspectReport(report)
	case "yaml":
		out, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		os.Stdout.Write(out)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}

	return nil
}

func printInspectReport(report inspectReport) {
	fmt.Fprintf(os.Stdout, "%-22s %d\n", "chapters", report.Entities.Chapters)
	fmt.Fprintf(os.Stdout, "%-22s %d\n", "questions", report.Entities.Questions)
	fmt.Fprintf(os.Stdout, "%-22s %d\n", "answers", report.Entities.Answers)
	fmt.Fprintf(os.Stdout, "%-22s %d\n", "choices", report.Entities.Choices)
	fmt.Fprintf(os.Stdout, "%-22s %d\n", "references", report.Entities.References)
	fmt.Fprintf(os.Stdout, "%-22s %d\n", "tags", report.Entities.Tags)
	fmt.Fprintf(os.Stdout, "%-22s %d\n", "metrics", report.Entities.Metrics)
	fmt.Fprintf(os.Stdout, "%-22s %d\n", "phases", report.Entities.Phases)
	fmt.Fprintf(os.Stdout, "%-22s %d\n", "resource collections", report.Entities.ResourceCollections)
	fmt.Fprintf(os.Stdout, "%-22s %d\n", "resource pages", report.Entities.ResourcePages)
	fmt.Fprintf(os.Stdout, "\nextracted messages: %d\nunique texts: %d\n",
		report.Messages, report.UniqueTexts)
}

func init() {
	inspectCmd.Flags().String("input", "km.json", "knowledge-model document to read")
	inspectCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(inspectCmd)
}
