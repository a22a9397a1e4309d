// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A flagless run must reproduce the canonical catalog header and paths.
func TestExtractFlagDefaults(t *testing.T) {
	tests := []struct {
		flag string
		want string
	}{
		{"input", "km.json"},
		{"output", "messages.pot"},
		{"project", "Common DSW Knowledge Model"},
		{"project-version", "2.7.0"},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := extractCmd.Flags().GetString(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
