// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract walks a knowledge model depth-first and collects every
// translatable field occurrence as an ExtractedMessage.
//
// Traversal order is driven entirely by the declared UUID lists on each node
// (chapter question order, answer follow-up order, and so on), never by
// registry map iteration, so output is deterministic for a given document.
package extract

import (
	"github.com/google/uuid"

	"github.com/pdiddy/km-catalog/pkg/types"
)

// Extractor accumulates extracted messages over one walk of a knowledge
// model. Not safe for concurrent use; each run owns its accumulator.
type Extractor struct {
	km       *types.KnowledgeModel
	messages []types.ExtractedMessage
}

// New returns an Extractor over km.
func New(km *types.KnowledgeModel) *Extractor {
	return &Extractor{km: km}
}

// Extract walks the document's top-level chapter list in declared order and
// returns the accumulated messages. An unresolved UUID aborts the walk with
// a *types.NotFoundError naming the identifier and the expected kind.
func (e *Extractor) Extract() ([]types.ExtractedMessage, error) {
	e.messages = e.messages[:0]
	for _, id := range e.km.ChapterUUIDs {
		chapter, err := e.km.Entities.Chapter(id)
		if err != nil {
			return nil, err
		}
		if err := e.chapter(chapter); err != nil {
			return nil, err
		}
	}
	return e.messages, nil
}

// ExtractAll walks the chapter tree and then the model's top-level phase,
// metric, tag, and resource-collection lists, in that order. The chapter
// prefix of the result is identical to Extract's output.
func (e *Extractor) ExtractAll() ([]types.ExtractedMessage, error) {
	if _, err := e.Extract(); err != nil {
		return nil, err
	}
	for _, id := range e.km.PhaseUUIDs {
		phase, err := e.km.Entities.Phase(id)
		if err != nil {
			return nil, err
		}
		e.phase(phase)
	}
	for _, id := range e.km.MetricUUIDs {
		metric, err := e.km.Entities.Metric(id)
		if err != nil {
			return nil, err
		}
		e.metric(metric)
	}
	for _, id := range e.km.TagUUIDs {
		tag, err := e.km.Entities.Tag(id)
		if err != nil {
			return nil, err
		}
		e.tag(tag)
	}
	for _, id := range e.km.ResourceCollectionUUIDs {
		rc, err := e.km.Entities.ResourceCollection(id)
		if err != nil {
			return nil, err
		}
		if err := e.resourceCollection(rc); err != nil {
			return nil, err
		}
	}
	return e.messages, nil
}

// emit appends one message. Empty text for always-emitted fields is recorded
// here and filtered uniformly at catalog-build time.
func (e *Extractor) emit(text string, kind types.EntityType, id uuid.UUID, attribute string) {
	e.messages = append(e.messages, types.ExtractedMessage{
		Text:            text,
		EntityType:      kind,
		EntityUUID:      id,
		EntityAttribute: attribute,
	})
}

func (e *Extractor) chapter(chapter *types.Chapter) error {
	e.emit(chapter.Title, types.EntityChapter, chapter.UUID, "title")
	if chapter.Text != "" {
		e.emit(chapter.Text, types.EntityChapter, chapter.UUID, "text")
	}
	for _, id := range chapter.QuestionUUIDs {
		question, err := e.km.Entities.Question(id)
		if err != nil {
			return err
		}
		if err := e.question(question); err != nil {
			return err
		}
	}
	return nil
}

func (e *Extractor) question(question *types.Question) error {
	e.emit(question.Title, types.EntityQuestion, question.UUID, "title")
	if question.Text != "" {
		e.emit(question.Text, types.EntityQuestion, question.UUID, "text")
	}

	// Variant checks are independent, not an exclusive switch: a node
	// matching several variants is walked through every matching branch.
	if question.Type == types.QuestionList {
		for _, id := range question.ItemTemplateQuestionUUIDs {
			item, err := e.km.Entities.Question(id)
			if err != nil {
				return err
			}
			if err := e.question(item); err != nil {
				return err
			}
		}
	}
	if question.Type == types.QuestionMultiChoice {
		for _, id := range question.ChoiceUUIDs {
			choice, err := e.km.Entities.Choice(id)
			if err != nil {
				return err
			}
			e.choice(choice)
		}
	}
	if question.Type == types.QuestionOptions {
		for _, id := range question.AnswerUUIDs {
			answer, err := e.km.Entities.Answer(id)
			if err != nil {
				return err
			}
			if err := e.answer(answer); err != nil {
				return err
			}
		}
	}

	for _, id := range question.ReferenceUUIDs {
		reference, err := e.km.Entities.Reference(id)
		if err != nil {
			return err
		}
		e.reference(reference)
	}
	return nil
}

func (e *Extractor) answer(answer *types.Answer) error {
	e.emit(answer.Label, types.EntityAnswer, answer.UUID, "label")
	if answer.Advice != "" {
		e.emit(answer.Advice, types.EntityAnswer, answer.UUID, "advice")
	}
	for _, id := range answer.FollowUpUUIDs {
		question, err := e.km.Entities.Question(id)
		if err != nil {
			return err
		}
		if err := e.question(question); err != nil {
			return err
		}
	}
	return nil
}

func (e *Extractor) choice(choice *types.Choice) {
	e.emit(choice.Label, types.EntityChoice, choice.UUID, "label")
}

// reference emits nothing for variants without translatable text
// (resource-page references carry only a page link).
func (e *Extractor) reference(reference *types.Reference) {
	if reference.Type == types.ReferenceURL {
		e.emit(reference.Label, types.EntityURLReference, reference.UUID, "label")
	}
	if reference.Type == types.ReferenceCross {
		e.emit(reference.Description, types.EntityCrossReference, reference.UUID, "description")
	}
}

func (e *Extractor) tag(tag *types.Tag) {
	e.emit(tag.Name, types.EntityTag, tag.UUID, "name")
	if tag.Description != "" {
		e.emit(tag.Description, types.EntityTag, tag.UUID, "description")
	}
}

func (e *Extractor) metric(metric *types.Metric) {
	e.emit(metric.Title, types.EntityMetric, metric.UUID, "title")
	if metric.Description != "" {
		e.emit(metric.Description, types.EntityMetric, metric.UUID, "description")
	}
}

func (e *Extractor) phase(phase *types.Phase) {
	e.emit(phase.Title, types.EntityPhase, phase.UUID, "title")
	if phase.Description != "" {
		e.emit(phase.Description, types.EntityPhase, phase.UUID, "description")
	}
}

func (e *Extractor) resourceCollection(rc *types.ResourceCollection) error {
	e.emit(rc.Title, types.EntityResourceCollection, rc.UUID, "title")
	for _, id := range rc.ResourcePageUUIDs {
		page, err := e.km.Entities.ResourcePage(id)
		if err != nil {
			return err
		}
		e.resourcePage(page)
	}
	return nil
}

func (e *Extractor) resourcePage(page *types.ResourcePage) {
	e.emit(page.Title, types.EntityResourcePage, page.UUID, "title")
	if page.Content != "" {
		e.emit(page.Content, types.EntityResourcePage, page.UUID, "content")
	}
}
