package persona_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/1Kunalvats9/teen-titans-backend/internal/persona"
	"github.com/1Kunalvats9/teen-titans-backend/internal/user"
)

type fakeUserRepo struct {
	user *user.User
	err  error
}

func (f *fakeUserRepo) GetByID(id string) (*user.User, error)             { return f.user, f.err }
func (f *fakeUserRepo) GetByGoogleID(googleID string) (*user.User, error) { return f.user, f.err }
func (f *fakeUserRepo) Create(u *user.User) error                         { return nil }
func (f *fakeUserRepo) Update(u *user.User) error                         { return nil }

func TestResolve(t *testing.T) {
	t.Run("KnownPersona", func(t *testing.T) {
		r := persona.NewResolver(&fakeUserRepo{user: &user.User{Persona: "mentor"}})
		got := r.Resolve(t.Context(), "some-id")
		assert.NotEqual(t, persona.DefaultInstruction, got)
		assert.Contains(t, got, "mentor")
	})

	t.Run("UnsetPersona", func(t *testing.T) {
		r := persona.NewResolver(&fakeUserRepo{user: &user.User{}})
		assert.Equal(t, persona.DefaultInstruction, r.Resolve(t.Context(), "some-id"))
	})

	t.Run("UnknownLabel", func(t *testing.T) {
		r := persona.NewResolver(&fakeUserRepo{user: &user.User{Persona: "astronaut"}})
		assert.Equal(t, persona.DefaultInstruction, r.Resolve(t.Context(), "some-id"))
	})

	t.Run("MissingUser", func(t *testing.T) {
		r := persona.NewResolver(&fakeUserRepo{})
		assert.Equal(t, persona.DefaultInstruction, r.Resolve(t.Context(), "some-id"))
	})

	t.Run("RepoError", func(t *testing.T) {
		r := persona.NewResolver(&fakeUserRepo{err: errors.New("db down")})
		assert.Equal(t, persona.DefaultInstruction, r.Resolve(t.Context(), "some-id"))
	})
}
