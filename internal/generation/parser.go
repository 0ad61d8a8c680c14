package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The parse functions decode a raw model response into the stage's expected
// shape. They return either a valid value or a *ParseFault for the stage
// executor to recover from; they never panic and never return both.

func ParsePrerequisites(raw string) ([]string, *ParseFault) {
	clean := Normalize(raw)

	var prerequisites []string
	if err := json.Unmarshal([]byte(clean), &prerequisites); err != nil {
		return nil, &ParseFault{Stage: StagePrerequisites, Raw: raw, Err: err}
	}
	if len(prerequisites) == 0 {
		return nil, &ParseFault{Stage: StagePrerequisites, Raw: raw, Err: fmt.Errorf("empty prerequisites list")}
	}
	for i, p := range prerequisites {
		if strings.TrimSpace(p) == "" {
			return nil, &ParseFault{Stage: StagePrerequisites, Raw: raw, Err: fmt.Errorf("blank prerequisite at index %d", i)}
		}
	}
	return prerequisites, nil
}

func ParseOutline(raw string) ([]OutlineEntry, *ParseFault) {
	clean := Normalize(raw)

	var outline []OutlineEntry
	if err := json.Unmarshal([]byte(clean), &outline); err != nil {
		return nil, &ParseFault{Stage: StageOutline, Raw: raw, Err: err}
	}
	if len(outline) == 0 {
		return nil, &ParseFault{Stage: StageOutline, Raw: raw, Err: fmt.Errorf("empty outline")}
	}
	for i, entry := range outline {
		if strings.TrimSpace(entry.Title) == "" {
			return nil, &ParseFault{Stage: StageOutline, Raw: raw, Err: fmt.Errorf("outline entry %d has no title", i)}
		}
	}
	return outline, nil
}

// ParseSteps additionally checks the decoded list length against the
// accepted outline. A structurally valid response of the wrong length is a
// parse fault: accepting it would silently corrupt step ordering.
func ParseSteps(raw string, outlineLen int) ([]StepContent, *ParseFault) {
	clean := Normalize(raw)

	var steps []StepContent
	if err := json.Unmarshal([]byte(clean), &steps); err != nil {
		return nil, &ParseFault{Stage: StageSteps, Raw: raw, Err: err}
	}
	if len(steps) != outlineLen {
		return nil, &ParseFault{
			Stage: StageSteps,
			Raw:   raw,
			Err:   fmt.Errorf("decoded %d steps, outline has %d entries", len(steps), outlineLen),
		}
	}
	for i, step := range steps {
		if strings.TrimSpace(step.Title) == "" || strings.TrimSpace(step.Content) == "" {
			return nil, &ParseFault{Stage: StageSteps, Raw: raw, Err: fmt.Errorf("step %d is missing title or content", i)}
		}
	}
	return steps, nil
}

func ParseQuiz(raw string) ([]QuizItem, *ParseFault) {
	clean := Normalize(raw)

	var items []QuizItem
	if err := json.Unmarshal([]byte(clean), &items); err != nil {
		return nil, &ParseFault{Stage: StageQuiz, Raw: raw, Err: err}
	}
	if len(items) == 0 {
		return nil, &ParseFault{Stage: StageQuiz, Raw: raw, Err: fmt.Errorf("empty quiz")}
	}
	for i, item := range items {
		if strings.TrimSpace(item.Question) == "" {
			return nil, &ParseFault{Stage: StageQuiz, Raw: raw, Err: fmt.Errorf("question %d has no text", i)}
		}
		if len(item.Options) != OptionsPerQuestion {
			return nil, &ParseFault{
				Stage: StageQuiz,
				Raw:   raw,
				Err:   fmt.Errorf("question %d has %d options, want %d", i, len(item.Options), OptionsPerQuestion),
			}
		}
		if item.CorrectAnswer < 0 || item.CorrectAnswer >= OptionsPerQuestion {
			return nil, &ParseFault{
				Stage: StageQuiz,
				Raw:   raw,
				Err:   fmt.Errorf("question %d has correct answer index %d out of range", i, item.CorrectAnswer),
			}
		}
	}
	return items, nil
}
