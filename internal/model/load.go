// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package model loads flat knowledge-model documents into memory and audits
// their referential integrity.
package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdiddy/km-catalog/pkg/types"
)

// Load reads and decodes the knowledge-model JSON document at path. The
// whole document is read into memory before any traversal starts. Shape
// validation beyond JSON decoding is the loader pipeline's job upstream;
// identifier references are resolved lazily by the entity registry.
func Load(path string) (*types.KnowledgeModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge model %s: %w", path, err)
	}

	var km types.KnowledgeModel
	if err := json.Unmarshal(data, &km); err != nil {
		return nil, fmt.Errorf("parsing knowledge model %s: %w", path, err)
	}
	return &km, nil
}
