// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"

	"github.com/google/uuid"
)

// EntityType tags an extracted message with the node kind that produced it.
// The values are wire-stable: they appear verbatim in catalog location
// comments and must not change between releases.
type EntityType string

const (
	EntityChapter            EntityType = "chapter"
	EntityQuestion           EntityType = "question"
	EntityChoice             EntityType = "choice"
	EntityAnswer             EntityType = "answer"
	EntityURLReference       EntityType = "url-reference"
	EntityCrossReference     EntityType = "cross-reference"
	EntityTag                EntityType = "tag"
	EntityMetric             EntityType = "metrics"
	EntityResourceCollection EntityType = "resource_collection"
	EntityResourcePage       EntityType = "resource_page"
	EntityPhase              EntityType = "phase"
)

// ExtractedMessage is one occurrence of a translatable field: the raw text
// plus the provenance of the node and attribute it came from. Within one
// extraction run the (EntityType, EntityUUID, EntityAttribute) triple is
// unique; the same Text may occur on many messages.
type ExtractedMessage struct {
	// Text is the raw field value. May be empty for always-emitted fields;
	// empty texts are filtered at catalog-build time, not here.
	Text string `json:"text" yaml:"text"`

	// EntityType names the node kind that produced the message.
	EntityType EntityType `json:"entity_type" yaml:"entity_type"`

	// EntityUUID is the source node's identifier.
	EntityUUID uuid.UUID `json:"entity_uuid" yaml:"entity_uuid"`

	// EntityAttribute is the field name within the node (e.g. "title").
	EntityAttribute string `json:"entity_attribute" yaml:"entity_attribute"`
}

// Location renders the provenance path used in catalog location comments:
// "{entity_type}:{entity_uuid}:{entity_attribute}".
func (m ExtractedMessage) Location() string {
	return fmt.Sprintf("%s:%s:%s", m.EntityType, m.EntityUUID, m.EntityAttribute)
}
