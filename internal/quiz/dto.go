package quiz

import "github.com/google/uuid"

type SubmitAnswersDTO struct {
	Answers []AnswerDTO `json:"answers"`
}

type AnswerDTO struct {
	QuestionID uuid.UUID `json:"question_id"`
	OptionID   uuid.UUID `json:"option_id"`
}

type AnswerResultDTO struct {
	QuestionID      uuid.UUID `json:"question_id"`
	Correct         bool      `json:"correct"`
	CorrectOptionID uuid.UUID `json:"correct_option_id"`
	Explanation     string    `json:"explanation,omitempty"`
}

type SubmitResultDTO struct {
	Total   int               `json:"total"`
	Correct int               `json:"correct"`
	Results []AnswerResultDTO `json:"results"`
}
