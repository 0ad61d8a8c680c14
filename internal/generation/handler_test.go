package generation_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1Kunalvats9/teen-titans-backend/internal/auth"
	"github.com/1Kunalvats9/teen-titans-backend/internal/generation"
)

type fakeService struct {
	called bool
	topic  string
	id     uuid.UUID
	err    error
}

func (f *fakeService) GenerateModule(ctx context.Context, creatorID uuid.UUID, req generation.GenerateRequestDTO) (uuid.UUID, error) {
	f.called = true
	f.topic = req.Topic
	if f.err != nil {
		return uuid.Nil, f.err
	}
	return f.id, nil
}

func (f *fakeService) GenerateContent(ctx context.Context, topic, description, personaInstruction string) (*generation.GeneratedContent, error) {
	return nil, errors.New("not used")
}

func generateRequest(t *testing.T, body string, authenticated bool) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	if authenticated {
		claims := &auth.UserClaims{UserID: uuid.NewString(), Role: "learner"}
		req = req.WithContext(auth.WithClaims(req.Context(), claims))
	}
	return req
}

func TestGenerateModuleHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &fakeService{id: uuid.New()}
		h := generation.NewHandler(svc)

		rec := httptest.NewRecorder()
		h.GenerateModule(rec, generateRequest(t, `{"topic": "React Hooks"}`, true))

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp generation.GenerateResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, svc.id.String(), resp.ModuleID)
	})

	t.Run("TopicTooShort", func(t *testing.T) {
		svc := &fakeService{id: uuid.New()}
		h := generation.NewHandler(svc)

		rec := httptest.NewRecorder()
		h.GenerateModule(rec, generateRequest(t, `{"topic": "ab"}`, true))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, svc.called, "validation failures must not reach the pipeline")

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Topic must be at least 3 characters long", resp["error"])
	})

	t.Run("TopicCountsRunesNotBytes", func(t *testing.T) {
		svc := &fakeService{id: uuid.New()}
		h := generation.NewHandler(svc)

		// two runes, six bytes: still too short
		rec := httptest.NewRecorder()
		h.GenerateModule(rec, generateRequest(t, `{"topic": "日本"}`, true))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, svc.called)

		rec = httptest.NewRecorder()
		h.GenerateModule(rec, generateRequest(t, `{"topic": "日本語"}`, true))
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("TopicOnlyWhitespace", func(t *testing.T) {
		svc := &fakeService{id: uuid.New()}
		h := generation.NewHandler(svc)

		rec := httptest.NewRecorder()
		h.GenerateModule(rec, generateRequest(t, `{"topic": "   a   "}`, true))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, svc.called)
	})

	t.Run("TrimsTopic", func(t *testing.T) {
		svc := &fakeService{id: uuid.New()}
		h := generation.NewHandler(svc)

		rec := httptest.NewRecorder()
		h.GenerateModule(rec, generateRequest(t, `{"topic": "  React Hooks  "}`, true))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "React Hooks", svc.topic)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		svc := &fakeService{id: uuid.New()}
		h := generation.NewHandler(svc)

		rec := httptest.NewRecorder()
		h.GenerateModule(rec, generateRequest(t, `{"topic": "React Hooks"}`, false))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, svc.called)
	})

	t.Run("ServiceFailure", func(t *testing.T) {
		svc := &fakeService{err: &generation.GenerationServiceError{Stage: generation.StageOutline, Err: errors.New("timeout")}}
		h := generation.NewHandler(svc)

		rec := httptest.NewRecorder()
		h.GenerateModule(rec, generateRequest(t, `{"topic": "React Hooks"}`, true))

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp["error"], "outline")
	})

	t.Run("InvalidBody", func(t *testing.T) {
		svc := &fakeService{id: uuid.New()}
		h := generation.NewHandler(svc)

		rec := httptest.NewRecorder()
		h.GenerateModule(rec, generateRequest(t, `{not json`, true))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, svc.called)
	})
}
