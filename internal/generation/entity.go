package generation

// Stage identifies one of the four sequential generation phases.
type Stage string

const (
	StagePrerequisites Stage = "prerequisites"
	StageOutline       Stage = "outline"
	StageSteps         Stage = "steps"
	StageQuiz          Stage = "quiz"
)

const OptionsPerQuestion = 4

type OutlineEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type StepContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type QuizItem struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// GeneratedContent is the assembled output of a full pipeline run, ready
// for atomic persistence.
type GeneratedContent struct {
	Prerequisites []string       `json:"prerequisites"`
	Outline       []OutlineEntry `json:"outline"`
	Steps         []StepContent  `json:"steps"`
	Quiz          []QuizItem     `json:"quiz"`
}

type GenerateRequestDTO struct {
	Topic       string `json:"topic"`
	Description string `json:"description,omitempty"`
}

type GenerateResponseDTO struct {
	ModuleID string `json:"moduleId"`
}
