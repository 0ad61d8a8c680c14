package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

const systemPrompt = `You are a course author for a learning platform. You produce content for self-paced
learning modules.

Rules:
1. Always answer with pure, valid JSON and nothing else - no prose, no markdown, no code fences.
2. Follow the exact JSON shape requested for each task.
3. Keep the content factual and beginner-friendly unless the styling instruction says otherwise.
`

func describeTopic(topic, description string) string {
	if description == "" {
		return fmt.Sprintf("the topic %q", topic)
	}
	return fmt.Sprintf("the topic %q (%s)", topic, description)
}

func BuildPrerequisitesPrompt(topic, description, personaInstruction string) string {
	return fmt.Sprintf(
		"%s\nStyling instruction: %s\n\n"+
			"List the prerequisites a learner should have before studying %s. "+
			"Answer with a JSON array of 3 to 6 short strings, for example: "+
			`["Prerequisite one", "Prerequisite two"]`,
		systemPrompt, personaInstruction, describeTopic(topic, description),
	)
}

func BuildOutlinePrompt(topic, description, personaInstruction string) string {
	return fmt.Sprintf(
		"%s\nStyling instruction: %s\n\n"+
			"Plan a learning module about %s as an ordered list of 5 to 8 steps. "+
			"Answer with a JSON array of objects, each with a \"title\" and a one-sentence \"description\": "+
			`[{"title": "...", "description": "..."}]`,
		systemPrompt, personaInstruction, describeTopic(topic, description),
	)
}

func BuildStepsPrompt(topic, description, personaInstruction string, outline []OutlineEntry) string {
	outlineJSON, _ := json.Marshal(outline)
	return fmt.Sprintf(
		"%s\nStyling instruction: %s\n\n"+
			"Write the full content for each step of a learning module about %s. "+
			"The planned outline is:\n%s\n\n"+
			"Answer with a JSON array of exactly %d objects in the same order, each with the step \"title\" "+
			"and a \"content\" field holding 300-600 words of markdown-formatted teaching text: "+
			`[{"title": "...", "content": "..."}]`,
		systemPrompt, personaInstruction, describeTopic(topic, description), outlineJSON, len(outline),
	)
}

func BuildQuizPrompt(topic, description, personaInstruction string, outline []OutlineEntry) string {
	titles := make([]string, 0, len(outline))
	for _, entry := range outline {
		titles = append(titles, entry.Title)
	}
	return fmt.Sprintf(
		"%s\nStyling instruction: %s\n\n"+
			"Create a 5 question multiple-choice quiz for a learning module about %s "+
			"covering these steps: %s.\n"+
			"Each question has exactly 4 plausible options and a single correct one; do not make the "+
			"correct option obviously longer or more detailed. "+
			"Answer with a JSON array of objects shaped like: "+
			`[{"question": "...", "options": ["...", "...", "...", "..."], "correctAnswer": 0, "explanation": "..."}]`+
			" where correctAnswer is the 0-based index of the correct option.",
		systemPrompt, personaInstruction, describeTopic(topic, description), strings.Join(titles, "; "),
	)
}
