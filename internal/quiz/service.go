package quiz

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/1Kunalvats9/teen-titans-backend/internal/config"
	"github.com/1Kunalvats9/teen-titans-backend/internal/module"
)

var (
	ErrQuizNotFound = errors.New("quiz not found")
	ErrUnauthorized = errors.New("unauthorized")
)

type QuizService interface {
	GetByModule(ctx context.Context, moduleID uuid.UUID, requesterID uuid.UUID) (*Quiz, error)
	SubmitAnswers(ctx context.Context, moduleID uuid.UUID, requesterID uuid.UUID, dto SubmitAnswersDTO) (*SubmitResultDTO, error)
}

type quizService struct {
	repo       QuizRepository
	moduleRepo module.ModuleRepository
}

func NewService(repo QuizRepository, moduleRepo module.ModuleRepository) QuizService {
	return &quizService{
		repo:       repo,
		moduleRepo: moduleRepo,
	}
}

func (s *quizService) loadQuiz(moduleID uuid.UUID, requesterID uuid.UUID) (*Quiz, *module.Module, error) {
	m, err := s.moduleRepo.GetByID(moduleID)
	if err != nil {
		return nil, nil, err
	}
	if m == nil {
		return nil, nil, ErrQuizNotFound
	}
	if !m.IsPublic && m.CreatorID != requesterID {
		return nil, nil, ErrUnauthorized
	}

	q, err := s.repo.GetByModuleID(moduleID)
	if err != nil {
		return nil, nil, err
	}
	if q == nil {
		return nil, nil, ErrQuizNotFound
	}
	return q, m, nil
}

// GetByModule returns a module's quiz. Correctness flags are stripped
// unless the requester created the module, so learners can take the quiz
// without the answers leaking through the API.
func (s *quizService) GetByModule(ctx context.Context, moduleID uuid.UUID, requesterID uuid.UUID) (*Quiz, error) {
	q, m, err := s.loadQuiz(moduleID, requesterID)
	if err != nil {
		return nil, err
	}

	if m.CreatorID != requesterID {
		for qi := range q.Questions {
			q.Questions[qi].Explanation = ""
			for oi := range q.Questions[qi].Options {
				q.Questions[qi].Options[oi].IsCorrect = false
			}
		}
	}
	return q, nil
}

func (s *quizService) SubmitAnswers(ctx context.Context, moduleID uuid.UUID, requesterID uuid.UUID, dto SubmitAnswersDTO) (*SubmitResultDTO, error) {
	log := config.WithContext(ctx)

	q, _, err := s.loadQuiz(moduleID, requesterID)
	if err != nil {
		return nil, err
	}

	answered := make(map[uuid.UUID]uuid.UUID, len(dto.Answers))
	for _, a := range dto.Answers {
		answered[a.QuestionID] = a.OptionID
	}

	result := &SubmitResultDTO{Total: len(q.Questions)}
	for _, question := range q.Questions {
		var correctOption Option
		for _, o := range question.Options {
			if o.IsCorrect {
				correctOption = o
				break
			}
		}

		correct := answered[question.ID] == correctOption.ID
		if correct {
			result.Correct++
		}
		result.Results = append(result.Results, AnswerResultDTO{
			QuestionID:      question.ID,
			Correct:         correct,
			CorrectOptionID: correctOption.ID,
			Explanation:     question.Explanation,
		})
	}

	log.Infof("Quiz for module %s scored %d/%d", moduleID, result.Correct, result.Total)
	return result, nil
}
