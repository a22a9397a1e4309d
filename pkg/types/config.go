// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractConfig holds settings for one extraction run.
type ExtractConfig struct {
	// InputPath is the knowledge-model JSON document to read.
	InputPath string `json:"input_path" yaml:"input_path"`

	// WalkAll extends the walk beyond the chapter tree to the model's
	// top-level phase, metric, tag, and resource-collection lists.
	WalkAll bool `json:"walk_all" yaml:"walk_all"`
}

// CatalogConfig holds settings for catalog serialization.
type CatalogConfig struct {
	// Project is the project name written to the catalog header.
	Project string `json:"project" yaml:"project"`

	// Version is the project version written to the catalog header.
	Version string `json:"version" yaml:"version"`

	// OutputPath is the catalog file to write. Parent directories are
	// created as needed.
	OutputPath string `json:"output_path" yaml:"output_path"`
}
