package generation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/1Kunalvats9/teen-titans-backend/internal/config"
	"github.com/1Kunalvats9/teen-titans-backend/internal/module"
	"github.com/1Kunalvats9/teen-titans-backend/internal/quiz"
)

// Committer writes a complete generation result as one atomic unit: the
// module, its ordered steps, the quiz, its questions and their options.
// The transaction either fully commits or leaves no trace.
type Committer interface {
	Commit(ctx context.Context, topic, description string, creatorID uuid.UUID, content *GeneratedContent) (uuid.UUID, error)
}

type committer struct {
	db *gorm.DB
}

func NewCommitter(db *gorm.DB) Committer {
	return &committer{db: db}
}

func (c *committer) Commit(ctx context.Context, topic, description string, creatorID uuid.UUID, content *GeneratedContent) (uuid.UUID, error) {
	log := config.WithContext(ctx)

	if description == "" {
		description = fmt.Sprintf("An AI-generated learning module about %s.", topic)
	}

	prerequisitesJSON, err := json.Marshal(content.Prerequisites)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode prerequisites: %w", err)
	}

	moduleID := uuid.New()
	err = c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := &module.Module{
			ID:            moduleID,
			Title:         topic,
			Description:   description,
			CreatorID:     creatorID,
			IsPublic:      true,
			Prerequisites: datatypes.JSON(prerequisitesJSON),
		}
		if err := tx.Create(m).Error; err != nil {
			return fmt.Errorf("failed to create module: %w", err)
		}

		steps := make([]*module.Step, 0, len(content.Steps))
		for i, step := range content.Steps {
			steps = append(steps, &module.Step{
				ID:        uuid.New(),
				ModuleID:  moduleID,
				Title:     step.Title,
				Content:   step.Content,
				StepOrder: i + 1,
			})
		}
		if len(steps) > 0 {
			if err := tx.Create(&steps).Error; err != nil {
				return fmt.Errorf("failed to create steps: %w", err)
			}
		}

		q := &quiz.Quiz{
			ID:       uuid.New(),
			ModuleID: moduleID,
			Title:    fmt.Sprintf("%s Quiz", topic),
		}
		if err := tx.Create(q).Error; err != nil {
			return fmt.Errorf("failed to create quiz: %w", err)
		}

		for i, item := range content.Quiz {
			if len(item.Options) != OptionsPerQuestion {
				return fmt.Errorf("question %d has %d options, want %d", i, len(item.Options), OptionsPerQuestion)
			}
			if item.CorrectAnswer < 0 || item.CorrectAnswer >= len(item.Options) {
				return fmt.Errorf("question %d has correct answer index %d out of range", i, item.CorrectAnswer)
			}

			question := &quiz.Question{
				ID:            uuid.New(),
				QuizID:        q.ID,
				Text:          item.Question,
				Explanation:   item.Explanation,
				QuestionOrder: i + 1,
			}
			if err := tx.Create(question).Error; err != nil {
				return fmt.Errorf("failed to create question %d: %w", i, err)
			}

			options := make([]*quiz.Option, 0, len(item.Options))
			for oi, text := range item.Options {
				options = append(options, &quiz.Option{
					ID:         uuid.New(),
					QuestionID: question.ID,
					Text:       text,
					IsCorrect:  oi == item.CorrectAnswer,
				})
			}
			if err := tx.Create(&options).Error; err != nil {
				return fmt.Errorf("failed to create options for question %d: %w", i, err)
			}
		}

		return nil
	})
	if err != nil {
		log.WithError(err).Error("Module persistence transaction rolled back")
		return uuid.Nil, err
	}

	return moduleID, nil
}
