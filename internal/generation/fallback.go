package generation

import "fmt"

// The fallback synthesizers build a minimal but structurally valid payload
// for a stage from the same inputs the stage prompt had. They are fully
// deterministic and their output always satisfies the corresponding parse
// checks, so downstream stages consume fallback output exactly like real
// model output.

func FallbackPrerequisites(topic string) []string {
	return []string{
		fmt.Sprintf("Basic familiarity with the area %s belongs to", topic),
		"Comfort reading short technical explanations",
		fmt.Sprintf("Willingness to practice %s with small exercises", topic),
	}
}

func FallbackOutline(topic string) []OutlineEntry {
	return []OutlineEntry{
		{Title: fmt.Sprintf("Introduction to %s", topic), Description: fmt.Sprintf("What %s is and why it matters.", topic)},
		{Title: fmt.Sprintf("Core Concepts of %s", topic), Description: fmt.Sprintf("The fundamental ideas behind %s.", topic)},
		{Title: fmt.Sprintf("%s in Practice", topic), Description: fmt.Sprintf("Applying %s to small, concrete examples.", topic)},
		{Title: fmt.Sprintf("Common Pitfalls with %s", topic), Description: fmt.Sprintf("Mistakes beginners make with %s and how to avoid them.", topic)},
		{Title: fmt.Sprintf("Next Steps in %s", topic), Description: fmt.Sprintf("Where to go after the basics of %s.", topic)},
	}
}

// FallbackSteps substitutes content for every outline entry. All steps are
// replaced, never a partial reconciliation, so the result always matches
// the outline length.
func FallbackSteps(topic string, outline []OutlineEntry) []StepContent {
	steps := make([]StepContent, 0, len(outline))
	for _, entry := range outline {
		description := entry.Description
		if description == "" {
			description = fmt.Sprintf("This step covers %s as part of learning %s.", entry.Title, topic)
		}
		steps = append(steps, StepContent{
			Title: entry.Title,
			Content: fmt.Sprintf(
				"## %s\n\n%s\n\nThis section of the %s module could not be generated automatically. "+
					"Use it as a placeholder: research %q, take notes on the key ideas, and try to explain them in your own words.",
				entry.Title, description, topic, entry.Title,
			),
		})
	}
	return steps
}

func FallbackQuiz(topic string, outline []OutlineEntry) []QuizItem {
	items := make([]QuizItem, 0, 5)
	for i := 0; i < 5; i++ {
		subject := topic
		if len(outline) > 0 {
			subject = outline[i%len(outline)].Title
		}
		items = append(items, QuizItem{
			Question: fmt.Sprintf("Which statement best describes %q?", subject),
			Options: []string{
				fmt.Sprintf("It is a key part of learning %s", topic),
				fmt.Sprintf("It is unrelated to %s", topic),
				"It is only relevant to advanced practitioners",
				"It can safely be skipped",
			},
			CorrectAnswer: 0,
			Explanation:   fmt.Sprintf("%q is one of the building blocks of this module on %s.", subject, topic),
		})
	}
	return items
}
