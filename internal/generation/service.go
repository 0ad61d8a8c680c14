package generation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/1Kunalvats9/teen-titans-backend/internal/config"
	"github.com/1Kunalvats9/teen-titans-backend/internal/persona"
)

// stageCooldown spaces out consecutive model calls to stay inside the
// provider's rate limits. The wait is a deliberate serialization point.
const stageCooldown = 2 * time.Second

type GenerationService interface {
	// GenerateModule runs the full pipeline for the caller and persists the
	// result, returning the new module's ID.
	GenerateModule(ctx context.Context, creatorID uuid.UUID, req GenerateRequestDTO) (uuid.UUID, error)

	// GenerateContent runs the four stages without persisting anything.
	GenerateContent(ctx context.Context, topic, description, personaInstruction string) (*GeneratedContent, error)
}

type generationService struct {
	provider  TextProvider
	personas  persona.Resolver
	committer Committer
	cooldown  time.Duration
}

func NewService(provider TextProvider, personas persona.Resolver, committer Committer) GenerationService {
	return &generationService{
		provider:  provider,
		personas:  personas,
		committer: committer,
		cooldown:  stageCooldown,
	}
}

func (s *generationService) GenerateModule(ctx context.Context, creatorID uuid.UUID, req GenerateRequestDTO) (uuid.UUID, error) {
	log := config.WithContext(ctx)

	personaInstruction := persona.DefaultInstruction
	if s.personas != nil {
		personaInstruction = s.personas.Resolve(ctx, creatorID.String())
	}

	content, err := s.GenerateContent(ctx, req.Topic, req.Description, personaInstruction)
	if err != nil {
		return uuid.Nil, err
	}

	moduleID, err := s.committer.Commit(ctx, req.Topic, req.Description, creatorID, content)
	if err != nil {
		log.WithError(err).Error("Failed to persist generated module")
		return uuid.Nil, err
	}

	log.Infof("Generated module %s for topic %q", moduleID, req.Topic)
	return moduleID, nil
}

// GenerateContent executes the four stages strictly in order: each later
// stage's prompt embeds the accepted output of the earlier ones. A parse
// fault is absorbed by the stage's fallback synthesizer; only a failed
// model call aborts the pipeline.
func (s *generationService) GenerateContent(ctx context.Context, topic, description, personaInstruction string) (*GeneratedContent, error) {
	log := config.WithContext(ctx)
	content := &GeneratedContent{}

	raw, err := s.provider.Generate(ctx, BuildPrerequisitesPrompt(topic, description, personaInstruction))
	if err != nil {
		return nil, &GenerationServiceError{Stage: StagePrerequisites, Err: err}
	}
	prerequisites, fault := ParsePrerequisites(raw)
	if fault != nil {
		log.WithError(fault).Warn("Falling back to synthetic prerequisites")
		prerequisites = FallbackPrerequisites(topic)
	}
	content.Prerequisites = prerequisites

	s.wait(ctx)

	raw, err = s.provider.Generate(ctx, BuildOutlinePrompt(topic, description, personaInstruction))
	if err != nil {
		return nil, &GenerationServiceError{Stage: StageOutline, Err: err}
	}
	outline, fault := ParseOutline(raw)
	if fault != nil {
		log.WithError(fault).Warn("Falling back to synthetic outline")
		outline = FallbackOutline(topic)
	}
	content.Outline = outline

	s.wait(ctx)

	raw, err = s.provider.Generate(ctx, BuildStepsPrompt(topic, description, personaInstruction, outline))
	if err != nil {
		return nil, &GenerationServiceError{Stage: StageSteps, Err: err}
	}
	steps, fault := ParseSteps(raw, len(outline))
	if fault != nil {
		log.WithError(fault).Warn("Falling back to synthetic steps")
		steps = FallbackSteps(topic, outline)
	}
	content.Steps = steps

	s.wait(ctx)

	raw, err = s.provider.Generate(ctx, BuildQuizPrompt(topic, description, personaInstruction, outline))
	if err != nil {
		return nil, &GenerationServiceError{Stage: StageQuiz, Err: err}
	}
	quizItems, fault := ParseQuiz(raw)
	if fault != nil {
		log.WithError(fault).Warn("Falling back to synthetic quiz")
		quizItems = FallbackQuiz(topic, outline)
	}
	content.Quiz = quizItems

	return content, nil
}

func (s *generationService) wait(ctx context.Context) {
	if s.cooldown <= 0 {
		return
	}
	select {
	case <-time.After(s.cooldown):
	case <-ctx.Done():
	}
}
