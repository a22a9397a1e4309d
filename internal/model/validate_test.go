// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/km-catalog/pkg/types"
)

var (
	chapterID  = uuid.MustParse("10000000-0000-4000-8000-000000000001")
	questionID = uuid.MustParse("20000000-0000-4000-8000-000000000001")
	answerID   = uuid.MustParse("30000000-0000-4000-8000-000000000001")
	danglingA  = uuid.MustParse("ffffffff-0000-4000-8000-000000000001")
	danglingB  = uuid.MustParse("ffffffff-0000-4000-8000-000000000002")
)

func emptyModel() *types.KnowledgeModel {
	return &types.KnowledgeModel{
		Entities: types.Entities{
			Chapters:            map[uuid.UUID]*types.Chapter{},
			Questions:           map[uuid.UUID]*types.Question{},
			Answers:             map[uuid.UUID]*types.Answer{},
			Choices:             map[uuid.UUID]*types.Choice{},
			References:          map[uuid.UUID]*types.Reference{},
			Tags:                map[uuid.UUID]*types.Tag{},
			Metrics:             map[uuid.UUID]*types.Metric{},
			Phases:              map[uuid.UUID]*types.Phase{},
			ResourceCollections: map[uuid.UUID]*types.ResourceCollection{},
			ResourcePages:       map[uuid.UUID]*types.ResourcePage{},
		},
	}
}

func TestValidate_CleanModel(t *testing.T) {
	km := emptyModel()
	km.ChapterUUIDs = []uuid.UUID{chapterID}
	km.Entities.Chapters[chapterID] = &types.Chapter{
		UUID: chapterID, Title: "Ch", QuestionUUIDs: []uuid.UUID{questionID},
	}
	km.Entities.Questions[questionID] = &types.Question{
		UUID: questionID, Type: types.QuestionOptions, Title: "Q",
		AnswerUUIDs: []uuid.UUID{answerID},
	}
	km.Entities.Answers[answerID] = &types.Answer{UUID: answerID, Label: "Yes"}

	assert.Empty(t, Validate(km, true))
}

func TestValidate_CollectsAllDanglingReferences(t *testing.T) {
	km := emptyModel()
	km.ChapterUUIDs = []uuid.UUID{chapterID}
	km.Entities.Chapters[chapterID] = &types.Chapter{
		UUID: chapterID, Title: "Ch", QuestionUUIDs: []uuid.UUID{questionID},
	}
	// One dangling choice and one dangling reference on the same question:
	// both must be reported, not just the first.
	km.Entities.Questions[questionID] = &types.Question{
		UUID: questionID, Type: types.QuestionMultiChoice, Title: "Q",
		ChoiceUUIDs:    []uuid.UUID{danglingA},
		ReferenceUUIDs: []uuid.UUID{danglingB},
	}

	missing := Validate(km, false)
	require.Len(t, missing, 2)
	assert.Equal(t, "choice", missing[0].Kind)
	assert.Equal(t, danglingA, missing[0].UUID)
	assert.Equal(t, "reference", missing[1].Kind)
	assert.Equal(t, danglingB, missing[1].UUID)
}

func TestValidate_TopLevelListsOnlyWithAll(t *testing.T) {
	km := emptyModel()
	km.TagUUIDs = []uuid.UUID{danglingA}

	assert.Empty(t, Validate(km, false))

	missing := Validate(km, true)
	require.Len(t, missing, 1)
	assert.Equal(t, "tag", missing[0].Kind)
	assert.Equal(t, danglingA, missing[0].UUID)
}

func TestValidate_FollowUpChain(t *testing.T) {
	km := emptyModel()
	km.ChapterUUIDs = []uuid.UUID{chapterID}
	km.Entities.Chapters[chapterID] = &types.Chapter{
		UUID: chapterID, Title: "Ch", QuestionUUIDs: []uuid.UUID{questionID},
	}
	km.Entities.Questions[questionID] = &types.Question{
		UUID: questionID, Type: types.QuestionOptions, Title: "Q",
		AnswerUUIDs: []uuid.UUID{answerID},
	}
	km.Entities.Answers[answerID] = &types.Answer{
		UUID: answerID, Label: "Yes", FollowUpUUIDs: []uuid.UUID{danglingA},
	}

	missing := Validate(km, false)
	require.Len(t, missing, 1)
	assert.Equal(t, "question", missing[0].Kind)
	assert.Equal(t, danglingA, missing[0].UUID)
}
