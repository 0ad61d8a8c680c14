package persona

import (
	"context"

	"github.com/1Kunalvats9/teen-titans-backend/internal/config"
	"github.com/1Kunalvats9/teen-titans-backend/internal/user"
)

// DefaultInstruction is used whenever a caller has no stored persona
// preference or the stored label is unknown.
const DefaultInstruction = "Write in a clear, friendly and encouraging teaching style suitable for a motivated beginner."

var instructions = map[string]string{
	"mentor":      "Write like a patient senior mentor: direct, practical, sprinkling in hard-won tips from real projects.",
	"storyteller": "Teach through short narratives and analogies, turning each concept into a memorable mini-story.",
	"comedian":    "Keep the tone light and witty with occasional jokes, but never at the expense of technical accuracy.",
	"professor":   "Use a rigorous academic tone with precise terminology, formal definitions and references to underlying theory.",
	"coach":       "Be energetic and motivational, framing every section as a challenge the learner is about to conquer.",
}

// Resolver maps a caller's stored persona preference to a prompt styling
// instruction.
type Resolver interface {
	Resolve(ctx context.Context, userID string) string
}

type resolver struct {
	users user.UserRepository
}

func NewResolver(users user.UserRepository) Resolver {
	return &resolver{users: users}
}

func (r *resolver) Resolve(ctx context.Context, userID string) string {
	log := config.WithContext(ctx)

	u, err := r.users.GetByID(userID)
	if err != nil {
		log.WithError(err).Warn("Failed to load user for persona resolution, using default style")
		return DefaultInstruction
	}
	if u == nil || u.Persona == "" {
		return DefaultInstruction
	}

	if _, ok := instructions[u.Persona]; !ok {
		log.Warnf("Unknown persona label %q, using default style", u.Persona)
	}
	return instruction(u.Persona)
}

// instruction resolves a bare label. Unknown labels fall back to the
// default.
func instruction(label string) string {
	if inst, ok := instructions[label]; ok {
		return inst
	}
	return DefaultInstruction
}
