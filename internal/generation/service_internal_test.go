package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validPrerequisites = `["Basic JavaScript", "Some HTML"]`
	validOutline       = `[{"title": "Intro to Hooks", "description": "Why hooks exist"}, {"title": "useState", "description": "Local state"}]`
	validSteps         = `[{"title": "Intro to Hooks", "content": "Hooks let function components hold state."}, {"title": "useState", "content": "useState returns a value and a setter."}]`
	validQuiz          = `[{"question": "What does useState return?", "options": ["A pair", "A class", "A promise", "Nothing"], "correctAnswer": 0, "explanation": "It returns state and a setter."}]`
)

type scriptedProvider struct {
	responses []string
	errs      []error
	prompts   []string
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string) (string, error) {
	i := len(p.prompts)
	p.prompts = append(p.prompts, prompt)
	if i < len(p.errs) && p.errs[i] != nil {
		return "", p.errs[i]
	}
	if i >= len(p.responses) {
		return "", errors.New("unexpected extra model call")
	}
	return p.responses[i], nil
}

type recordingCommitter struct {
	called  bool
	content *GeneratedContent
	id      uuid.UUID
}

func (c *recordingCommitter) Commit(ctx context.Context, topic, description string, creatorID uuid.UUID, content *GeneratedContent) (uuid.UUID, error) {
	c.called = true
	c.content = content
	return c.id, nil
}

func newTestService(p TextProvider, c Committer) *generationService {
	return &generationService{provider: p, committer: c, cooldown: 0}
}

func TestGenerateContentHappyPath(t *testing.T) {
	provider := &scriptedProvider{responses: []string{validPrerequisites, validOutline, validSteps, validQuiz}}
	svc := newTestService(provider, nil)

	content, err := svc.GenerateContent(context.Background(), "React Hooks", "", "neutral style")
	require.NoError(t, err)

	assert.Equal(t, []string{"Basic JavaScript", "Some HTML"}, content.Prerequisites)
	require.Len(t, content.Outline, 2)
	require.Len(t, content.Steps, 2)
	require.Len(t, content.Quiz, 1)
	assert.Len(t, provider.prompts, 4, "one model call per stage")
}

func TestGenerateContentStagePromptsChain(t *testing.T) {
	provider := &scriptedProvider{responses: []string{validPrerequisites, validOutline, validSteps, validQuiz}}
	svc := newTestService(provider, nil)

	_, err := svc.GenerateContent(context.Background(), "React Hooks", "", "neutral style")
	require.NoError(t, err)

	// later stage prompts embed the accepted outline
	assert.Contains(t, provider.prompts[2], "Intro to Hooks")
	assert.Contains(t, provider.prompts[3], "useState")
}

func TestGenerateContentGarbagePrerequisites(t *testing.T) {
	provider := &scriptedProvider{responses: []string{
		"I'm sorry, I can't help with that.",
		validOutline, validSteps, validQuiz,
	}}
	svc := newTestService(provider, nil)

	content, err := svc.GenerateContent(context.Background(), "React Hooks", "", "neutral style")
	require.NoError(t, err, "a parse fault must never abort the pipeline")

	assert.NotEmpty(t, content.Prerequisites)
	assert.Equal(t, FallbackPrerequisites("React Hooks"), content.Prerequisites)
	require.Len(t, content.Outline, 2, "later stages proceed normally")
	require.Len(t, content.Steps, 2)
}

func TestGenerateContentStepsLengthMismatch(t *testing.T) {
	threeSteps := `[{"title": "A", "content": "a"}, {"title": "B", "content": "b"}, {"title": "C", "content": "c"}]`
	provider := &scriptedProvider{responses: []string{validPrerequisites, validOutline, threeSteps, validQuiz}}
	svc := newTestService(provider, nil)

	content, err := svc.GenerateContent(context.Background(), "React Hooks", "", "neutral style")
	require.NoError(t, err)

	require.Len(t, content.Steps, len(content.Outline), "fallback steps must match the outline length")
	assert.Equal(t, content.Outline[0].Title, content.Steps[0].Title)
}

func TestGenerateContentProviderFailureAborts(t *testing.T) {
	provider := &scriptedProvider{
		responses: []string{validPrerequisites},
		errs:      []error{nil, errors.New("deadline exceeded")},
	}
	svc := newTestService(provider, nil)

	_, err := svc.GenerateContent(context.Background(), "React Hooks", "", "neutral style")
	require.Error(t, err)

	var serviceErr *GenerationServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, StageOutline, serviceErr.Stage)
	assert.Len(t, provider.prompts, 2, "pipeline stops at the failed stage")
}

func TestGenerateModulePersistsResult(t *testing.T) {
	provider := &scriptedProvider{responses: []string{validPrerequisites, validOutline, validSteps, validQuiz}}
	committer := &recordingCommitter{id: uuid.New()}
	svc := newTestService(provider, committer)

	moduleID, err := svc.GenerateModule(context.Background(), uuid.New(), GenerateRequestDTO{Topic: "React Hooks"})
	require.NoError(t, err)

	assert.Equal(t, committer.id, moduleID)
	require.True(t, committer.called)
	assert.Len(t, committer.content.Steps, 2)
}

func TestGenerateModuleSkipsPersistenceOnServiceError(t *testing.T) {
	provider := &scriptedProvider{errs: []error{errors.New("connection refused")}}
	committer := &recordingCommitter{id: uuid.New()}
	svc := newTestService(provider, committer)

	_, err := svc.GenerateModule(context.Background(), uuid.New(), GenerateRequestDTO{Topic: "React Hooks"})
	require.Error(t, err)
	assert.False(t, committer.called, "no persistence after an aborted pipeline")
}
