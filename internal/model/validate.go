// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"errors"

	"github.com/pdiddy/km-catalog/pkg/types"
)

// Validate walks every identifier reference reachable from the model's
// top-level lists and returns the unresolved ones in discovery order.
// Unlike extraction, which fails fast, validation keeps going so one run
// reports every dangling reference. With all set, the walk also covers the
// top-level phase, metric, tag, and resource-collection lists.
func Validate(km *types.KnowledgeModel, all bool) []*types.NotFoundError {
	v := &validator{km: km}

	for _, id := range km.ChapterUUIDs {
		chapter, err := km.Entities.Chapter(id)
		if v.record(err) {
			continue
		}
		v.chapter(chapter)
	}

	if all {
		for _, id := range km.PhaseUUIDs {
			_, err := km.Entities.Phase(id)
			v.record(err)
		}
		for _, id := range km.MetricUUIDs {
			_, err := km.Entities.Metric(id)
			v.record(err)
		}
		for _, id := range km.TagUUIDs {
			_, err := km.Entities.Tag(id)
			v.record(err)
		}
		for _, id := range km.ResourceCollectionUUIDs {
			rc, err := km.Entities.ResourceCollection(id)
			if v.record(err) {
				continue
			}
			for _, pageID := range rc.ResourcePageUUIDs {
				_, err := km.Entities.ResourcePage(pageID)
				v.record(err)
			}
		}
	}

	return v.missing
}

type validator struct {
	km      *types.KnowledgeModel
	missing []*types.NotFoundError
}

// record collects err's NotFoundError and reports whether err was one.
// Registry lookups fail with no other error kind.
func (v *validator) record(err error) bool {
	if err == nil {
		return false
	}
	var nf *types.NotFoundError
	if errors.As(err, &nf) {
		v.missing = append(v.missing, nf)
	}
	return true
}

func (v *validator) chapter(chapter *types.Chapter) {
	for _, id := range chapter.QuestionUUIDs {
		if question, err := v.km.Entities.Question(id); !v.record(err) {
			v.question(question)
		}
	}
}

func (v *validator) question(question *types.Question) {
	if question.Type == types.QuestionList {
		for _, id := range question.ItemTemplateQuestionUUIDs {
			if item, err := v.km.Entities.Question(id); !v.record(err) {
				v.question(item)
			}
		}
	}
	if question.Type == types.QuestionMultiChoice {
		for _, id := range question.ChoiceUUIDs {
			_, err := v.km.Entities.Choice(id)
			v.record(err)
		}
	}
	if question.Type == types.QuestionOptions {
		for _, id := range question.AnswerUUIDs {
			if answer, err := v.km.Entities.Answer(id); !v.record(err) {
				v.answer(answer)
			}
		}
	}
	for _, id := range question.ReferenceUUIDs {
		_, err := v.km.Entities.Reference(id)
		v.record(err)
	}
}

func (v *validator) answer(answer *types.Answer) {
	for _, id := range answer.FollowUpUUIDs {
		if question, err := v.km.Entities.Question(id); !v.record(err) {
			v.question(question)
		}
	}
}
