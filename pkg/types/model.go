// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared domain types for km-catalog: the flat
// knowledge-model node types, the entity registry that resolves UUID
// references, and the extracted-message record.
package types

import (
	"fmt"

	"github.com/google/uuid"
)

// QuestionType discriminates the question variants. A question carries only
// the child-UUID lists relevant to its variant.
type QuestionType string

const (
	QuestionOptions     QuestionType = "OptionsQuestion"
	QuestionMultiChoice QuestionType = "MultiChoiceQuestion"
	QuestionList        QuestionType = "ListQuestion"
	QuestionValue       QuestionType = "ValueQuestion"
	QuestionIntegration QuestionType = "IntegrationQuestion"
)

// ReferenceType discriminates the reference variants.
type ReferenceType string

const (
	ReferenceURL          ReferenceType = "URLReference"
	ReferenceCross        ReferenceType = "CrossReference"
	ReferenceResourcePage ReferenceType = "ResourcePageReference"
)

// Chapter is a top-level section of the knowledge model.
type Chapter struct {
	UUID uuid.UUID `json:"uuid" yaml:"uuid"`

	// Title is the chapter heading. Always translatable.
	Title string `json:"title" yaml:"title"`

	// Text is an optional chapter description.
	Text string `json:"text" yaml:"text"`

	// QuestionUUIDs lists the chapter's questions in display order.
	QuestionUUIDs []uuid.UUID `json:"questionUuids" yaml:"questionUuids"`
}

// Question is a single question node. The Type tag selects which of the
// variant child lists apply; the others are empty in a well-formed document.
type Question struct {
	UUID  uuid.UUID    `json:"uuid" yaml:"uuid"`
	Type  QuestionType `json:"questionType" yaml:"questionType"`
	Title string       `json:"title" yaml:"title"`
	Text  string       `json:"text" yaml:"text"`

	// ItemTemplateQuestionUUIDs are the nested per-item questions of a
	// list question, in declared order.
	ItemTemplateQuestionUUIDs []uuid.UUID `json:"itemTemplateQuestionUuids" yaml:"itemTemplateQuestionUuids"`

	// ChoiceUUIDs are the choices of a multi-choice question, in declared order.
	ChoiceUUIDs []uuid.UUID `json:"choiceUuids" yaml:"choiceUuids"`

	// AnswerUUIDs are the answers of an options question, in declared order.
	AnswerUUIDs []uuid.UUID `json:"answerUuids" yaml:"answerUuids"`

	// ReferenceUUIDs are the question's references, in declared order,
	// regardless of variant.
	ReferenceUUIDs []uuid.UUID `json:"referenceUuids" yaml:"referenceUuids"`
}

// Answer is one selectable answer of an options question. Selecting it can
// open follow-up questions.
type Answer struct {
	UUID   uuid.UUID `json:"uuid" yaml:"uuid"`
	Label  string    `json:"label" yaml:"label"`
	Advice string    `json:"advice" yaml:"advice"`

	// FollowUpUUIDs lists questions revealed by this answer, in declared order.
	FollowUpUUIDs []uuid.UUID `json:"followUpUuids" yaml:"followUpUuids"`
}

// Choice is one selectable choice of a multi-choice question. No children.
type Choice struct {
	UUID  uuid.UUID `json:"uuid" yaml:"uuid"`
	Label string    `json:"label" yaml:"label"`
}

// Reference attaches supporting material to a question. URL references carry
// a label, cross references a description; resource-page references carry no
// translatable text.
type Reference struct {
	UUID        uuid.UUID     `json:"uuid" yaml:"uuid"`
	Type        ReferenceType `json:"referenceType" yaml:"referenceType"`
	Label       string        `json:"label" yaml:"label"`
	Description string        `json:"description" yaml:"description"`
}

// Tag is a topic label that questions can be annotated with.
type Tag struct {
	UUID        uuid.UUID `json:"uuid" yaml:"uuid"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
}

// Metric is an evaluation dimension answers can score against.
type Metric struct {
	UUID        uuid.UUID `json:"uuid" yaml:"uuid"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
}

// Phase is a project phase questions can be assigned to.
type Phase struct {
	UUID        uuid.UUID `json:"uuid" yaml:"uuid"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
}

// ResourceCollection groups resource pages.
type ResourceCollection struct {
	UUID  uuid.UUID `json:"uuid" yaml:"uuid"`
	Title string    `json:"title" yaml:"title"`

	// ResourcePageUUIDs lists the collection's pages in declared order.
	ResourcePageUUIDs []uuid.UUID `json:"resourcePageUuids" yaml:"resourcePageUuids"`
}

// ResourcePage is a standalone documentation page. No children.
type ResourcePage struct {
	UUID    uuid.UUID `json:"uuid" yaml:"uuid"`
	Title   string    `json:"title" yaml:"title"`
	Content string    `json:"content" yaml:"content"`
}

// Entities is the central registry resolving UUID references to nodes.
// Nodes never embed children; every parent-child link goes through here.
type Entities struct {
	Chapters            map[uuid.UUID]*Chapter            `json:"chapters" yaml:"chapters"`
	Questions           map[uuid.UUID]*Question           `json:"questions" yaml:"questions"`
	Answers             map[uuid.UUID]*Answer             `json:"answers" yaml:"answers"`
	Choices             map[uuid.UUID]*Choice             `json:"choices" yaml:"choices"`
	References          map[uuid.UUID]*Reference          `json:"references" yaml:"references"`
	Tags                map[uuid.UUID]*Tag                `json:"tags" yaml:"tags"`
	Metrics             map[uuid.UUID]*Metric             `json:"metrics" yaml:"metrics"`
	Phases              map[uuid.UUID]*Phase              `json:"phases" yaml:"phases"`
	ResourceCollections map[uuid.UUID]*ResourceCollection `json:"resourceCollections" yaml:"resourceCollections"`
	ResourcePages       map[uuid.UUID]*ResourcePage       `json:"resourcePages" yaml:"resourcePages"`
}

// KnowledgeModel is the root of a flat knowledge-model document: ordered
// top-level UUID lists plus the entity registry that resolves them.
type KnowledgeModel struct {
	ChapterUUIDs            []uuid.UUID `json:"chapterUuids" yaml:"chapterUuids"`
	TagUUIDs                []uuid.UUID `json:"tagUuids" yaml:"tagUuids"`
	MetricUUIDs             []uuid.UUID `json:"metricUuids" yaml:"metricUuids"`
	PhaseUUIDs              []uuid.UUID `json:"phaseUuids" yaml:"phaseUuids"`
	ResourceCollectionUUIDs []uuid.UUID `json:"resourceCollectionUuids" yaml:"resourceCollectionUuids"`

	Entities Entities `json:"entities" yaml:"entities"`
}

// NotFoundError reports a reference to a UUID absent from the entity
// registry. This is a data-integrity fault in the input document, not a
// normal runtime condition.
type NotFoundError struct {
	// Kind names the expected entity kind (e.g. "question").
	Kind string

	// UUID is the identifier that failed to resolve.
	UUID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s: not found in knowledge model", e.Kind, e.UUID)
}

// Chapter resolves a chapter UUID or fails with a NotFoundError.
func (e *Entities) Chapter(id uuid.UUID) (*Chapter, error) {
	if c, ok := e.Chapters[id]; ok && c != nil {
		return c, nil
	}
	return nil, &NotFoundError{Kind: "chapter", UUID: id}
}

// Question resolves a question UUID or fails with a NotFoundError.
func (e *Entities) Question(id uuid.UUID) (*Question, error) {
	if q, ok := e.Questions[id]; ok && q != nil {
		return q, nil
	}
	return nil, &NotFoundError{Kind: "question", UUID: id}
}

// Answer resolves an answer UUID or fails with a NotFoundError.
func (e *Entities) Answer(id uuid.UUID) (*Answer, error) {
	if a, ok := e.Answers[id]; ok && a != nil {
		return a, nil
	}
	return nil, &NotFoundError{Kind: "answer", UUID: id}
}

// Choice resolves a choice UUID or fails with a NotFoundError.
func (e *Entities) Choice(id uuid.UUID) (*Choice, error) {
	if c, ok := e.Choices[id]; ok && c != nil {
		return c, nil
	}
	return nil, &NotFoundError{Kind: "choice", UUID: id}
}

// Reference resolves a reference UUID or fails with a NotFoundError.
func (e *Entities) Reference(id uuid.UUID) (*Reference, error) {
	if r, ok := e.References[id]; ok && r != nil {
		return r, nil
	}
	return nil, &NotFoundError{Kind: "reference", UUID: id}
}

// Tag resolves a tag UUID or fails with a NotFoundError.
func (e *Entities) Tag(id uuid.UUID) (*Tag, error) {
	if t, ok := e.Tags[id]; ok && t != nil {
		return t, nil
	}
	return nil, &NotFoundError{Kind: "tag", UUID: id}
}

// Metric resolves a metric UUID or fails with a NotFoundError.
func (e *Entities) Metric(id uuid.UUID) (*Metric, error) {
	if m, ok := e.Metrics[id]; ok && m != nil {
		return m, nil
	}
	return nil, &NotFoundError{Kind: "metric", UUID: id}
}

// Phase resolves a phase UUID or fails with a NotFoundError.
func (e *Entities) Phase(id uuid.UUID) (*Phase, error) {
	if p, ok := e.Phases[id]; ok && p != nil {
		return p, nil
	}
	return nil, &NotFoundError{Kind: "phase", UUID: id}
}

// ResourceCollection resolves a resource-collection UUID or fails with a NotFoundError.
func (e *Entities) ResourceCollection(id uuid.UUID) (*ResourceCollection, error) {
	if rc, ok := e.ResourceCollections[id]; ok && rc != nil {
		return rc, nil
	}
	return nil, &NotFoundError{Kind: "resource collection", UUID: id}
}

// ResourcePage resolves a resource-page UUID or fails with a NotFoundError.
func (e *Entities) ResourcePage(id uuid.UUID) (*ResourcePage, error) {
	if rp, ok := e.ResourcePages[id]; ok && rp != nil {
		return rp, nil
	}
	return nil, &NotFoundError{Kind: "resource page", UUID: id}
}
