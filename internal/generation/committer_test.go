package generation

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/1Kunalvats9/teen-titans-backend/internal/module"
	"github.com/1Kunalvats9/teen-titans-backend/internal/quiz"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(
		sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)),
		&gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)},
	)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&module.Module{}, &module.Step{},
		&quiz.Quiz{}, &quiz.Question{}, &quiz.Option{},
	))
	return db
}

func sampleContent() *GeneratedContent {
	outline := FallbackOutline("React Hooks")
	return &GeneratedContent{
		Prerequisites: FallbackPrerequisites("React Hooks"),
		Outline:       outline,
		Steps:         FallbackSteps("React Hooks", outline),
		Quiz:          FallbackQuiz("React Hooks", outline),
	}
}

func TestCommitterPersistsFullGraph(t *testing.T) {
	db := openTestDB(t)
	committer := NewCommitter(db)
	creatorID := uuid.New()
	content := sampleContent()

	moduleID, err := committer.Commit(context.Background(), "React Hooks", "", creatorID, content)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, moduleID)

	var m module.Module
	require.NoError(t, db.First(&m, "id = ?", moduleID).Error)
	assert.Equal(t, "React Hooks", m.Title)
	assert.Equal(t, creatorID, m.CreatorID)
	assert.True(t, m.IsPublic)
	assert.NotEmpty(t, m.Description, "a default description is generated when none is provided")

	var steps []module.Step
	require.NoError(t, db.Where("module_id = ?", moduleID).Order("step_order ASC").Find(&steps).Error)
	require.Len(t, steps, len(content.Outline), "step count equals outline entry count")
	for i, step := range steps {
		assert.Equal(t, i+1, step.StepOrder, "step order is contiguous and 1-based")
		assert.Equal(t, content.Steps[i].Title, step.Title)
	}

	var q quiz.Quiz
	require.NoError(t, db.First(&q, "module_id = ?", moduleID).Error)

	var questions []quiz.Question
	require.NoError(t, db.Where("quiz_id = ?", q.ID).Order("question_order ASC").Find(&questions).Error)
	require.Len(t, questions, len(content.Quiz))

	for _, question := range questions {
		var options []quiz.Option
		require.NoError(t, db.Where("question_id = ?", question.ID).Find(&options).Error)
		require.Len(t, options, OptionsPerQuestion)

		correct := 0
		for _, o := range options {
			if o.IsCorrect {
				correct++
			}
		}
		assert.Equal(t, 1, correct, "exactly one option per question is correct")
	}
}

func TestCommitterRollsBackOnFailure(t *testing.T) {
	db := openTestDB(t)
	committer := NewCommitter(db)
	content := sampleContent()

	// An invalid quiz item fails the transaction after the module, steps
	// and quiz rows were already written inside it.
	content.Quiz[2].Options = content.Quiz[2].Options[:3]

	_, err := committer.Commit(context.Background(), "React Hooks", "", uuid.New(), content)
	require.Error(t, err)

	var moduleCount, stepCount, quizCount, questionCount, optionCount int64
	db.Model(&module.Module{}).Count(&moduleCount)
	db.Model(&module.Step{}).Count(&stepCount)
	db.Model(&quiz.Quiz{}).Count(&quizCount)
	db.Model(&quiz.Question{}).Count(&questionCount)
	db.Model(&quiz.Option{}).Count(&optionCount)

	assert.Zero(t, moduleCount, "no module row survives a rolled back commit")
	assert.Zero(t, stepCount)
	assert.Zero(t, quizCount)
	assert.Zero(t, questionCount)
	assert.Zero(t, optionCount)
}

func TestCommitterKeepsProvidedDescription(t *testing.T) {
	db := openTestDB(t)
	committer := NewCommitter(db)

	moduleID, err := committer.Commit(context.Background(), "React Hooks", "A deep dive", uuid.New(), sampleContent())
	require.NoError(t, err)

	var m module.Module
	require.NoError(t, db.First(&m, "id = ?", moduleID).Error)
	assert.Equal(t, "A deep dive", m.Description)
}
